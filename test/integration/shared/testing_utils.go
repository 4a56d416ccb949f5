// Package shared contains testing utilities shared between integration tests.
// This file provides a helper for building a fresh CLI instance wired to
// in-memory streams.
package shared

import (
	"bytes"
	"io"
	"strings"

	"github.com/PolarWolf314/termlog/cmd"
	"github.com/spf13/cobra"
)

// CreateTestCLI creates a complete CLI instance for testing with the given
// arguments and streams. A nil stdin reads as empty.
func CreateTestCLI(args []string, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd.ResetGlobalState()

	// Create a fresh root command for this test
	rootCmd := &cobra.Command{
		Use:           "termlog",
		Short:         "termlog - colorized log lines for the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	subcommands := []*cobra.Command{
		cmd.GetEmitCmd(),
		cmd.GetPipeCmd(),
		cmd.GetDemoCmd(),
		cmd.GetLevelsCmd(),
	}
	rootCmd.AddCommand(subcommands...)

	if stdin == nil {
		stdin = strings.NewReader("")
	}
	// Set streams on every command so state from earlier tests never leaks
	for _, c := range append(subcommands, rootCmd) {
		c.SetIn(stdin)
		c.SetOut(stdout)
		c.SetErr(stderr)
	}

	rootCmd.SetArgs(args)
	return rootCmd
}

// Run executes the CLI with args and returns stdout, stderr and the error.
func Run(args []string, stdin string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := CreateTestCLI(args, strings.NewReader(stdin), &stdout, &stderr).Execute()
	return stdout.String(), stderr.String(), err
}
