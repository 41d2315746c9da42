package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gonebula/internal/config"
	"github.com/philipparndt/gonebula/internal/logger"
	"github.com/philipparndt/gonebula/version"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	flags *config.Flags
)

var rootCmd = &cobra.Command{
	Use:   "gonebula",
	Short: "Inspect and render .tri triangle files",
	Long: `gonebula reads .tri files: one triangle per line, separating an inner
from an outer material. It lists materials, derives clipping planes and
grid sizes, and renders PNG snapshots of the scene.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flags)
		if err != nil {
			return err
		}
		return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	flags = config.BindFlags(rootCmd.PersistentFlags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
