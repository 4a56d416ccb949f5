package ui

import (
	"io"

	"github.com/fatih/color"
)

var colorNames = map[string]color.Attribute{
	"black":         color.FgBlack,
	"grey":          color.FgHiBlack,
	"red":           color.FgRed,
	"green":         color.FgGreen,
	"yellow":        color.FgYellow,
	"blue":          color.FgBlue,
	"magenta":       color.FgMagenta,
	"cyan":          color.FgCyan,
	"white":         color.FgWhite,
	"light_grey":    color.FgHiWhite,
	"light_red":     color.FgHiRed,
	"light_green":   color.FgHiGreen,
	"light_yellow":  color.FgHiYellow,
	"light_blue":    color.FgHiBlue,
	"light_magenta": color.FgHiMagenta,
	"light_cyan":    color.FgHiCyan,
}

var attributeNames = map[string]color.Attribute{
	"bold":      color.Bold,
	"dark":      color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
	"blink":     color.BlinkSlow,
	"reverse":   color.ReverseVideo,
	"concealed": color.Concealed,
	"strike":    color.CrossedOut,
}

// Painter decorates text with escape sequences when colors are enabled.
type Painter struct {
	enabled bool
}

// NewPainter resolves mode against the stream the painted text is written to.
func NewPainter(mode Mode, w io.Writer) Painter {
	return Painter{enabled: mode.enabledFor(w)}
}

// Enabled reports whether the painter emits escape sequences.
func (p Painter) Enabled() bool {
	return p.enabled
}

// Colorize surrounds text with the escape sequences for colorName followed by
// attrs. Unknown names are skipped; when nothing is left, text is returned as is.
func (p Painter) Colorize(text, colorName string, attrs ...string) string {
	params := make([]color.Attribute, 0, len(attrs)+1)
	if fg, ok := colorNames[colorName]; ok {
		params = append(params, fg)
	}
	for _, name := range attrs {
		if attr, ok := attributeNames[name]; ok {
			params = append(params, attr)
		}
	}
	if len(params) == 0 || !p.enabled {
		return text
	}

	c := color.New(params...)
	c.EnableColor()
	return c.Sprint(text)
}

// Colorize decorates text unless NO_COLOR is set, regardless of where the
// text ends up.
func Colorize(text, colorName string, attrs ...string) string {
	return Painter{enabled: !noColorEnv()}.Colorize(text, colorName, attrs...)
}
