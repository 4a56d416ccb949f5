package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to CLI text.
type Formatter struct {
	attrs  []color.Attribute
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string. Colors
// follow NO_COLOR and fatih/color's own terminal detection.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return color.New(f.attrs...).Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

// Render formats text for the stream p was resolved against, so --color
// applies to chrome the same way it applies to records.
func (f Formatter) Render(p Painter, text string) string {
	if !p.Enabled() {
		return f.prefix + text + f.suffix
	}
	c := color.New(f.attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// noColor returns true if CLI chrome should be printed without color.
func noColor() bool {
	if noColorEnv() {
		return true
	}
	// Also respect fatih/color's detection (terminal capability, TERM=dumb, etc.).
	return color.NoColor
}

// Semantic formatters for the CLI's own output.
var (
	// Muted formats de-emphasized or secondary text, such as attribute lists.
	// Gray with color, (parentheses) without.
	Muted = Formatter{[]color.Attribute{color.FgHiBlack}, "(", ")"}

	// Error formats error indicators.
	Error = Formatter{[]color.Attribute{color.FgRed}, "", ""}
)
