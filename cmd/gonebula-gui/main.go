package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gonebula/internal/app"
	"github.com/philipparndt/gonebula/internal/config"
	"github.com/philipparndt/gonebula/internal/logger"
	"github.com/philipparndt/gonebula/version"
	"github.com/spf13/cobra"
)

var flags *config.Flags

var rootCmd = &cobra.Command{
	Use:           "gonebula-gui [file.tri]",
	Short:         "View .tri triangle files",
	Version:       version.GetFullVersion(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flags)
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
			return err
		}
		defer logger.Sync()

		var path string
		if len(args) > 0 {
			path = args[0]
		}
		return app.Run(cfg, path)
	},
}

func init() {
	flags = config.BindFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
