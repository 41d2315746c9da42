package main

import (
	"fmt"

	"github.com/philipparndt/gonebula/pkg/analysis"
	"github.com/philipparndt/gonebula/pkg/tri"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a .tri file",
	Long:  "Show record counts, materials, surface area and the bounding box of a .tri file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	res, err := tri.ParseFile(filename, tri.WithNumberPolicy(cfg.NumberPolicy()))
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", filename, err)
	}
	report := analysis.Analyze(res)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "TRI File Information")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Records:")
	fmt.Fprintf(out, "  Valid: %d\n", report.Records)
	fmt.Fprintf(out, "  Skipped lines: %d\n", report.Skipped)
	fmt.Fprintf(out, "  Invalid: %d\n\n", report.Invalid)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Materials: %d\n", len(report.Materials))
	fmt.Fprintf(out, "  Triangles: %d\n", report.TriangleCount)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", report.SurfaceArea)

	if report.BoundingBox.IsEmpty() {
		fmt.Fprintln(out, "Bounding Box: none")
		return nil
	}

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(report.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(report.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(report.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  X: %.6f units\n", report.Dimensions.X)
	fmt.Fprintf(out, "  Y: %.6f units\n", report.Dimensions.Y)
	fmt.Fprintf(out, "  Z: %.6f units\n", report.Dimensions.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n", report.BoundingBox.Diagonal())
	return nil
}
