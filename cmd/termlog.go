package cmd

import (
	"bufio"
	"io"
	"os"

	logger "github.com/PolarWolf314/termlog/internal/logging"
	"github.com/PolarWolf314/termlog/internal/ui"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
)

var (
	format     string
	dateFormat string
	noFlush    bool
	debug      bool

	// Logger prints the CLI's own diagnostics to stderr when --debug is set.
	Logger *logger.Logger
)

var colorMode = colorModeValue{mode: ui.ModeAuto}

// addRenderFlags registers the flags shared by every command that renders records.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&format, "format", "f", logger.DefaultFormat, "line template using {time} {level} {levelno} {name} {message} {source}")
	cmd.Flags().StringVar(&dateFormat, "date-format", logger.DefaultDateFormat, "Go time layout used for {time}")
	cmd.Flags().Var(&colorMode, "color", "colorize output: auto, always or never")
	cmd.Flags().BoolVar(&noFlush, "no-flush", false, "do not flush after every line")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output on stderr")
}

// setupDiagnostics builds the Logger used for the CLI's own messages.
func setupDiagnostics(cmd *cobra.Command) {
	var out io.Writer = io.Discard
	if debug {
		out = cmd.ErrOrStderr()
	}
	base, err := logger.NewTemplateFormatter("[{level}] {message}", "")
	if err != nil {
		// the template above is constant and always parses
		panic(err)
	}
	f := logger.NewColorFormatter(base, logger.DefaultPalette(), ui.NewPainter(colorMode.mode, out))
	Logger = logger.New("termlog", logger.NewTermHandler(f, logger.HandlerConfig{Stream: out}))
	Logger.Debugf("Initializing %s command with format=%q, date-format=%q, color=%s, no-flush=%t",
		cmd.Name(), format, dateFormat, colorMode.String(), noFlush)
}

// newRecordHandler builds the handler that writes records to the command's
// output. The returned writer must be flushed once the command is done.
func newRecordHandler(cmd *cobra.Command) (*logger.TermHandler, *bufio.Writer, error) {
	base, err := logger.NewTemplateFormatter(format, dateFormat)
	if err != nil {
		return nil, nil, err
	}

	out := cmd.OutOrStdout()
	painter := ui.NewPainter(colorMode.mode, out)
	if f, ok := out.(*os.File); ok {
		out = colorable.NewColorable(f)
	}
	stream := bufio.NewWriter(out)

	f := logger.NewColorFormatter(base, logger.DefaultPalette(), painter)
	h := logger.NewTermHandler(f, logger.HandlerConfig{
		Stream:       stream,
		DisableFlush: noFlush,
	})
	return h, stream, nil
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	format = logger.DefaultFormat
	dateFormat = logger.DefaultDateFormat
	colorMode = colorModeValue{mode: ui.ModeAuto}
	noFlush = false
	debug = false
	resetEmitCommandState()
	resetPipeCommandState()
	resetDemoCommandState()
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}
