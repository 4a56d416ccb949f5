package cmd

import (
	"strings"

	logger "github.com/PolarWolf314/termlog/internal/logging"
	"github.com/spf13/cobra"
)

var (
	emitLevel = levelValue{level: logger.INFO}
	emitName  = "termlog"
)

func init() {
	emitCmd.Flags().VarP(&emitLevel, "level", "l", "severity of the record (debug, info, warning, error, critical)")
	emitCmd.Flags().StringVarP(&emitName, "name", "n", "termlog", "logger name used for {name}")
	addRenderFlags(emitCmd)
}

// resetEmitCommandState resets the emit command's global state for testing.
func resetEmitCommandState() {
	emitLevel = levelValue{level: logger.INFO}
	emitName = "termlog"
}

var emitCmd = &cobra.Command{
	Use:   "emit MESSAGE...",
	Short: "Render a single log record",
	Long: `Renders one log record with the given severity and writes it to stdout.

The words of MESSAGE are joined with single spaces and printed verbatim.

Examples:
  termlog emit "service started"
  termlog emit --level critical disk full
  termlog emit -l warning --format "{level}: {message}" cache almost full`,
	Args: cobra.MinimumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		setupDiagnostics(cmd)
	},
	RunE: runEmit,
}

func runEmit(cmd *cobra.Command, args []string) error {
	h, stream, err := newRecordHandler(cmd)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to build formatter: %v", err)
	}
	message := strings.Join(args, " ")
	Logger.Debugf("Emitting %s record from %q", emitLevel.String(), emitName)

	if err := logger.New(emitName, h).Log(emitLevel.level, message); err != nil {
		return Logger.ErrorfAndReturn("Failed to emit record: %v", err)
	}
	if err := stream.Flush(); err != nil {
		return Logger.ErrorfAndReturn("Failed to flush output: %v", err)
	}
	return nil
}

// GetEmitCmd returns the emit command for testing.
func GetEmitCmd() *cobra.Command {
	return emitCmd
}
