package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gridCmd = &cobra.Command{
	Use:   "grid [file]",
	Short: "Show the reference grid sized for a .tri file",
	Args:  cobra.ExactArgs(1),
	RunE:  runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	params := s.Grid()
	if params == nil {
		fmt.Fprintln(out, "No visible geometry, no grid")
		return nil
	}

	lines := params.Lines()
	sections := 0
	for _, l := range lines {
		if l.Section {
			sections++
		}
	}

	fmt.Fprintln(out, "Grid:")
	fmt.Fprintf(out, "  Position: (%g, %g, %g)\n", params.Position[0], params.Position[1], params.Position[2])
	fmt.Fprintf(out, "  Extent: %g x %g\n", params.Extent[0], params.Extent[1])
	fmt.Fprintf(out, "  Cell size: %g\n", params.CellSize)
	fmt.Fprintf(out, "  Section size: %g\n", params.SectionSize)
	fmt.Fprintf(out, "  Fade distance: %.6f\n", params.FadeDistance)
	fmt.Fprintf(out, "  Lines: %d (%d sections)\n", len(lines), sections)
	return nil
}
