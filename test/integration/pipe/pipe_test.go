package pipe_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PolarWolf314/termlog/test/integration/shared"
)

// TestPipeIntegration contains integration tests for the `termlog pipe` command.
func TestPipeIntegration(t *testing.T) {
	t.Run("LevelPrefixesSelectLevel", testPipeLevelPrefixes)
	t.Run("DefaultLevelFlag", testPipeDefaultLevel)
	t.Run("ColorsFollowLevel", testPipeColors)
	t.Run("NoFlushStillWritesEverything", testPipeNoFlush)
	t.Run("EmptyInput", testPipeEmptyInput)
	t.Run("CarriageReturnsAreStripped", testPipeCarriageReturns)
	t.Run("ArgumentsAreRejected", testPipeRejectsArgs)
	t.Run("LinesLongerThanScannerLimit", testPipeLongLines)
	t.Run("ProseIsNotALevel", testPipeProse)
	t.Run("FinalFlushErrorIsReported", testPipeFinalFlushError)
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("device full")
}

func testPipeLevelPrefixes(t *testing.T) {
	input := "ERROR disk full\n\nplain line\n[warn] slow\ncritical: out of memory\n"
	stdout, _, err := shared.Run([]string{"pipe", "--color", "never", "--format", "{level} {message}"}, input)
	if err != nil {
		t.Fatalf("Command failed unexpectedly: %v", err)
	}

	want := "ERROR disk full\nINFO plain line\nWARNING slow\nCRITICAL out of memory\n"
	if stdout != want {
		t.Errorf("Output = %q, want %q", stdout, want)
	}
}

func testPipeDefaultLevel(t *testing.T) {
	stdout, _, err := shared.Run([]string{"pipe", "--color", "never", "--format", "{levelno} {message}", "--level", "debug"}, "compiling\nlinking\n")
	if err != nil {
		t.Fatalf("Command failed unexpectedly: %v", err)
	}
	if stdout != "10 compiling\n10 linking\n" {
		t.Errorf("Unexpected output: %q", stdout)
	}
}

func testPipeColors(t *testing.T) {
	stdout, _, err := shared.Run([]string{"pipe", "--color", "always", "--format", "{level} {message}"}, "DEBUG starting\nCRITICAL disk full\n")
	if err != nil {
		t.Fatalf("Command failed unexpectedly: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), stdout)
	}
	if !strings.Contains(lines[0], "\x1b[34mDEBUG") || !strings.HasSuffix(lines[0], " starting") {
		t.Errorf("Unexpected DEBUG line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "\x1b[31mCRITICAL") || !strings.Contains(lines[1], "\x1b[1;5mdisk full") {
		t.Errorf("Unexpected CRITICAL line: %q", lines[1])
	}
}

func testPipeNoFlush(t *testing.T) {
	var input strings.Builder
	for i := 0; i < 500; i++ {
		input.WriteString("INFO tick\n")
	}

	stdout, _, err := shared.Run([]string{"pipe", "--no-flush", "--color", "never", "--format", "{message}"}, input.String())
	if err != nil {
		t.Fatalf("Command failed unexpectedly: %v", err)
	}
	if strings.Count(stdout, "tick\n") != 500 {
		t.Errorf("Expected 500 lines, got %d", strings.Count(stdout, "tick\n"))
	}
}

func testPipeEmptyInput(t *testing.T) {
	stdout, _, err := shared.Run([]string{"pipe"}, "")
	if err != nil {
		t.Fatalf("Command failed unexpectedly: %v", err)
	}
	if stdout != "" {
		t.Errorf("Expected no output, got: %q", stdout)
	}
}

func testPipeCarriageReturns(t *testing.T) {
	stdout, _, err := shared.Run([]string{"pipe", "--color", "never", "--format", "{level} {message}"}, "WARNING low memory\r\n")
	if err != nil {
		t.Fatalf("Command failed unexpectedly: %v", err)
	}
	if stdout != "WARNING low memory\n" {
		t.Errorf("Unexpected output: %q", stdout)
	}
}

func testPipeRejectsArgs(t *testing.T) {
	_, _, err := shared.Run([]string{"pipe", "extra"}, "")
	if err == nil {
		t.Error("Expected an error for unexpected arguments")
	}
}

func testPipeLongLines(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	input := "INFO first\n" + long + "\nINFO last\n"

	stdout, _, err := shared.Run([]string{"pipe", "--color", "never", "--format", "{message}"}, input)
	if err != nil {
		t.Fatalf("Command failed unexpectedly: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "first" || lines[1] != long || lines[2] != "last" {
		t.Errorf("Unexpected lines: %q ... %q", lines[0], lines[2])
	}
}

func testPipeProse(t *testing.T) {
	stdout, _, err := shared.Run([]string{"pipe", "--color", "never", "--format", "{level} {message}"}, "Debug build finished\ndebug: cache warm\n")
	if err != nil {
		t.Fatalf("Command failed unexpectedly: %v", err)
	}
	want := "INFO Debug build finished\nDEBUG cache warm\n"
	if stdout != want {
		t.Errorf("Output = %q, want %q", stdout, want)
	}
}

func testPipeFinalFlushError(t *testing.T) {
	var stderr bytes.Buffer
	cli := shared.CreateTestCLI(
		[]string{"pipe", "--no-flush", "--color", "never"},
		strings.NewReader("INFO a\nINFO b\n"),
		failingWriter{},
		&stderr,
	)

	err := cli.Execute()
	if err == nil {
		t.Fatal("Expected an error when the output cannot be flushed")
	}
	if !strings.Contains(err.Error(), "device full") {
		t.Errorf("Expected the write error to be reported, got: %v", err)
	}
}
