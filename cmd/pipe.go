package cmd

import (
	"bufio"
	"io"
	"strings"

	logger "github.com/PolarWolf314/termlog/internal/logging"
	"github.com/spf13/cobra"
)

var (
	pipeLevel = levelValue{level: logger.INFO}
	pipeName  = "termlog"
)

func init() {
	pipeCmd.Flags().VarP(&pipeLevel, "level", "l", "severity for lines without a level prefix")
	pipeCmd.Flags().StringVarP(&pipeName, "name", "n", "termlog", "logger name used for {name}")
	addRenderFlags(pipeCmd)
}

// resetPipeCommandState resets the pipe command's global state for testing.
func resetPipeCommandState() {
	pipeLevel = levelValue{level: logger.INFO}
	pipeName = "termlog"
}

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Render log lines read from stdin",
	Long: `Reads lines from stdin and renders each one as a log record.

A line starting with an upper-case level name ("ERROR disk full") or a
bracketed or colon-terminated one in any case ("[warn] slow",
"critical: out of memory") is rendered at that level with the prefix
removed. Other lines use --level. Blank lines are skipped.

Examples:
  make 2>&1 | termlog pipe
  tail -f app.log | termlog pipe --format "{level} {message}"
  ./deploy.sh | termlog pipe --level debug --no-flush`,
	Args: cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		setupDiagnostics(cmd)
	},
	RunE: runPipe,
}

func runPipe(cmd *cobra.Command, args []string) error {
	h, stream, err := newRecordHandler(cmd)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to build formatter: %v", err)
	}

	log := logger.New(pipeName, h)
	reader := bufio.NewReader(cmd.InOrStdin())
	rendered := 0
	for {
		// ReadString has no line length limit, unlike bufio.Scanner
		line, readErr := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			level, message := splitLevelPrefix(line, pipeLevel.level)
			if err := log.Log(level, message); err != nil {
				return Logger.ErrorfAndReturn("Failed to emit record: %v", err)
			}
			rendered++
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return Logger.ErrorfAndReturn("Failed to read stdin: %v", readErr)
		}
	}

	if err := stream.Flush(); err != nil {
		return Logger.ErrorfAndReturn("Failed to flush output: %v", err)
	}
	Logger.Debugf("Rendered %d lines", rendered)
	return nil
}

// splitLevelPrefix detects a leading level word. A bare word must be upper
// case ("ERROR disk full"); bracketed or colon forms ("[warn]", "debug:")
// match in any case. Lines without a prefix keep fallback.
func splitLevelPrefix(line string, fallback logger.Level) (logger.Level, string) {
	trimmed := strings.TrimLeft(line, " \t")
	word, rest, _ := strings.Cut(trimmed, " ")

	marked := false
	if strings.HasSuffix(word, ":") {
		word = strings.TrimSuffix(word, ":")
		marked = true
	}
	if strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]") {
		word = word[1 : len(word)-1]
		marked = true
	}
	if !marked && word != strings.ToUpper(word) {
		return fallback, line
	}

	level, err := logger.ParseLevel(word)
	if err != nil {
		return fallback, line
	}
	return level, strings.TrimLeft(rest, " \t")
}

// GetPipeCmd returns the pipe command for testing.
func GetPipeCmd() *cobra.Command {
	return pipeCmd
}
