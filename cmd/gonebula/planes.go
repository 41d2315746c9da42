package main

import (
	"fmt"

	"github.com/philipparndt/gonebula/pkg/analysis"
	"github.com/philipparndt/gonebula/pkg/clipping"
	"github.com/spf13/cobra"
)

var planesClip *clipFlags

var planesCmd = &cobra.Command{
	Use:   "planes [file]",
	Short: "Show the clipping state and the derived clip planes",
	Long: `Load a .tri file, apply the given clipping ranges and print the state
of each axis and the clip planes it produces. A plane keeps the points p
with normal·p + constant >= 0.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlanes,
}

func init() {
	rootCmd.AddCommand(planesCmd)
	planesClip = bindClipFlags(planesCmd)
}

func runPlanes(cmd *cobra.Command, args []string) error {
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	if err := planesClip.apply(s); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	box, ok := s.BoundingBox()
	if !ok {
		fmt.Fprintln(out, "No visible geometry, no planes")
		return nil
	}
	fmt.Fprintf(out, "Bounding box: %s .. %s\n\n", analysis.FormatVector(box.Min), analysis.FormatVector(box.Max))

	fmt.Fprintln(out, "Axes:")
	for _, a := range clipping.Axes {
		st := s.Clipping().Axis(a)
		fmt.Fprintf(out, "  %s: %-5s %s\n", a, st.Mode, st.Range)
	}

	planes := s.Planes()
	fmt.Fprintf(out, "\nPlanes (%d):\n", len(planes))
	for _, p := range planes {
		fmt.Fprintf(out, "  %s\n", p)
	}
	return nil
}
