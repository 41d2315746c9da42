package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/philipparndt/gonebula/pkg/analysis"
	"github.com/philipparndt/gonebula/pkg/material"
	"github.com/philipparndt/gonebula/pkg/tri"
	"github.com/spf13/cobra"
)

var materialsLargest int

var materialsCmd = &cobra.Command{
	Use:   "materials [file]",
	Short: "List the materials of a .tri file",
	Long: `List every material of a .tri file in order of first appearance with
its color, triangle count and surface area. Without a file the special
materials and the color palette are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)

	materialsCmd.Flags().IntVarP(&materialsLargest, "largest", "n", 0, "Only show the n materials with the largest area")
}

func runMaterials(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	if len(args) == 0 {
		fmt.Fprintln(w, "ID\tNAME\tCOLOR")
		for _, id := range material.SpecialIDs() {
			info := material.Lookup(id)
			fmt.Fprintf(w, "%d\t%s\t%s\n", id, info.Name, info.Color.Hex())
		}
		for i, c := range material.Palette {
			fmt.Fprintf(w, "|id| mod %d = %d\tpalette\t%s\n", len(material.Palette), i, c.Hex())
		}
		return nil
	}

	res, err := tri.ParseFile(args[0], tri.WithNumberPolicy(cfg.NumberPolicy()))
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[0], err)
	}
	report := analysis.Analyze(res)

	stats := report.Materials
	if materialsLargest > 0 {
		stats = analysis.LargestMaterials(report, materialsLargest)
	}

	fmt.Fprintln(w, "ID\tNAME\tCOLOR\tTRIANGLES\tAREA")
	for _, m := range stats {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.6f\n", m.ID, m.Name, m.Color.Hex(), m.TriangleCount, m.SurfaceArea)
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No materials loaded")
	}
	return nil
}
