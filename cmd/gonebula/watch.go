package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/gonebula/internal/logger"
	"github.com/philipparndt/gonebula/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchRender bool

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Reload a .tri file whenever it changes",
	Long: `Watch a .tri file and print its statistics after every change. With
--render a PNG snapshot is written next to the file on each reload.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&watchRender, "render", false, "Write <file>.png after every reload")
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	s, err := loadScene(filename)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report := func() {
		st := s.Stats()
		fmt.Fprintf(out, "%s: %d records, %d triangles, %d materials\n", st.Source, st.Records, st.Triangles, st.Materials)
		if !watchRender {
			return
		}
		img, err := renderSnapshot(s)
		if err == nil {
			err = writePNG(filename+".png", img)
		}
		if err != nil {
			logger.Error("Snapshot failed", zap.Error(err))
		}
	}
	report()

	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce, logger.Named("watcher"))
	if err != nil {
		return err
	}
	defer fw.Close()

	changed := make(chan struct{}, 1)
	if err := fw.Watch([]string{filename}, func(string) {
		select {
		case changed <- struct{}{}:
		default:
		}
	}); err != nil {
		return err
	}
	fw.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	fmt.Fprintf(out, "Watching %s, press Ctrl+C to stop\n", filename)
	for {
		select {
		case <-changed:
			// A failed reload keeps the previous scene
			if err := s.LoadFile(filename); err != nil {
				logger.Warn("Reload failed", zap.Error(err))
				continue
			}
			report()
		case <-stop:
			return nil
		}
	}
}
