package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	terrors "github.com/PolarWolf314/termlog/internal/errors"
	"golang.org/x/term"
)

// Mode selects when escape sequences are emitted.
type Mode int

const (
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseMode parses "auto", "always" or "never".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("%w: %q", terrors.ErrUnknownColorMode, s)
	}
}

func (m Mode) enabledFor(w io.Writer) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return !noColorEnv() && IsTerminal(w)
	}
}

type fder interface {
	Fd() uintptr
}

// IsTerminal returns true if w is backed by a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// noColorEnv returns true if the NO_COLOR environment variable is set (https://no-color.org/).
func noColorEnv() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
