package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/termlog/cmd"
	"github.com/PolarWolf314/termlog/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "termlog",
	Short: "termlog - colorized log lines for the terminal.",
	Long: `termlog renders log records on the terminal, coloring each line by severity
and making critical messages impossible to miss.

Features:
  - Color level names by severity (DEBUG blue ... CRITICAL red)
  - Bold, blinking message text for CRITICAL records
  - Custom line templates and time layouts

Usage:
  termlog <command> [flags]

Available Commands:
  emit      Render a single log record
  pipe      Render log lines read from stdin
  demo      Render one sample record per level
  levels    List severity levels and their colors

Run 'termlog help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to termlog! Run 'termlog --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.GetEmitCmd())
	rootCmd.AddCommand(cmd.GetPipeCmd())
	rootCmd.AddCommand(cmd.GetDemoCmd())
	rootCmd.AddCommand(cmd.GetLevelsCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗"), err)
		os.Exit(1)
	}
}
