package cmd

import (
	"fmt"
	"strings"

	logger "github.com/PolarWolf314/termlog/internal/logging"
	"github.com/PolarWolf314/termlog/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	levelsCmd.Flags().Var(&colorMode, "color", "colorize output: auto, always or never")
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List severity levels and their colors",
	Long: `Lists every severity level accepted by --level together with the color
and text attributes used to render it.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	painter := ui.NewPainter(colorMode.mode, out)
	palette := logger.DefaultPalette()

	for _, level := range logger.Levels {
		name := level.String()
		colorName, _ := palette.Color(level)
		label := painter.Colorize(fmt.Sprintf("%-8s", name), colorName)

		attrs, ok := palette.Attrs(level)
		details := colorName
		if ok {
			details += " " + ui.Muted.Render(painter, strings.Join(attrs, ", "))
		}
		if _, err := fmt.Fprintf(out, "%s %2d  %s\n", label, int(level), details); err != nil {
			return err
		}
	}
	return nil
}

// GetLevelsCmd returns the levels command for testing.
func GetLevelsCmd() *cobra.Command {
	return levelsCmd
}
