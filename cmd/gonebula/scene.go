package main

import (
	"fmt"

	"github.com/philipparndt/gonebula/internal/logger"
	"github.com/philipparndt/gonebula/pkg/clipping"
	"github.com/philipparndt/gonebula/pkg/scene"
	"github.com/spf13/cobra"
)

// loadScene reads a .tri file into a scene configured from cfg
func loadScene(path string) (*scene.Scene, error) {
	opts := append(cfg.SceneOptions(), scene.WithLogger(logger.Named("scene")))
	s := scene.New(clipping.NewState(), opts...)
	if err := s.LoadFile(path); err != nil {
		return nil, err
	}
	return s, nil
}

// clipFlags are the per-axis clipping flags shared by several commands
type clipFlags struct {
	ranges [3]string
	hide   []int
}

func bindClipFlags(cmd *cobra.Command) *clipFlags {
	f := &clipFlags{}
	for _, a := range clipping.Axes {
		cmd.Flags().StringVar(&f.ranges[a], a.String(), "",
			fmt.Sprintf("Clip along %s: min:max, or \"box\" to clip at the bounding box", a))
	}
	cmd.Flags().IntSliceVar(&f.hide, "hide", nil, "Material ids to hide")
	return f
}

// apply hides materials first so enabled axes freeze the final extent
func (f *clipFlags) apply(s *scene.Scene) error {
	for _, id := range f.hide {
		if !s.SetVisible(id, false) {
			return fmt.Errorf("unknown material %d", id)
		}
	}
	for _, a := range clipping.Axes {
		value := f.ranges[a]
		if value == "" {
			continue
		}
		s.SetClippingEnabled(a, true)
		if value == "box" {
			continue
		}
		r, err := clipping.ParseRange(value)
		if err != nil {
			return fmt.Errorf("--%s: %w", a, err)
		}
		s.SetClippingRange(a, r)
	}
	return nil
}
