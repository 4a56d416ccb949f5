package cmd

import (
	"errors"
	"fmt"

	logger "github.com/PolarWolf314/termlog/internal/logging"
	"github.com/PolarWolf314/termlog/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var demoBanner bool

func init() {
	demoCmd.Flags().BoolVar(&demoBanner, "banner", false, "print an ASCII art banner first")
	addRenderFlags(demoCmd)
}

// resetDemoCommandState resets the demo command's global state for testing.
func resetDemoCommandState() {
	demoBanner = false
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render one sample record per level",
	Long: `Renders a sample record at every level so the colors of the current
terminal can be checked.

Examples:
  termlog demo
  termlog demo --banner --color always`,
	Args: cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		setupDiagnostics(cmd)
	},
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	h, stream, err := newRecordHandler(cmd)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to build formatter: %v", err)
	}
	if demoBanner {
		banner := figure.NewFigure("termlog", "", true).String()
		painter := ui.NewPainter(colorMode.mode, cmd.OutOrStdout())
		if _, err := fmt.Fprintln(stream, painter.Colorize(banner, "cyan")); err != nil {
			return Logger.ErrorfAndReturn("Failed to write banner: %v", err)
		}
	}

	log := logger.New("demo", h)
	samples := []struct {
		level   logger.Level
		message string
		err     error
	}{
		{logger.DEBUG, "starting", nil},
		{logger.INFO, "listening on :8080", nil},
		{logger.WARNING, "cache is 91% full", nil},
		{logger.ERROR, "upstream request failed", errors.New("connection reset by peer")},
		{logger.CRITICAL, "disk full", nil},
	}
	for _, s := range samples {
		if err := log.LogError(s.level, s.err, s.message); err != nil {
			return Logger.ErrorfAndReturn("Failed to emit record: %v", err)
		}
	}
	if err := stream.Flush(); err != nil {
		return Logger.ErrorfAndReturn("Failed to flush output: %v", err)
	}
	return nil
}

// GetDemoCmd returns the demo command for testing.
func GetDemoCmd() *cobra.Command {
	return demoCmd
}
