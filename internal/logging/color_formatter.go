package logger

import (
	"github.com/PolarWolf314/termlog/internal/ui"
)

// ColorFormatter colors the level name of every record mapped by its palette
// and applies text attributes to the message of levels that have them.
type ColorFormatter struct {
	base    DisplayFormatter
	palette Palette
	painter ui.Painter
}

func NewColorFormatter(base DisplayFormatter, palette Palette, painter ui.Painter) *ColorFormatter {
	return &ColorFormatter{
		base:    base,
		palette: palette,
		painter: painter,
	}
}

// Decorate returns the display text of r with escape sequences inserted.
// Levels missing from the palette are left undecorated; r is not modified.
func (f *ColorFormatter) Decorate(r *Record) Display {
	if r == nil {
		return Display{}
	}
	d := PlainDisplay(r)
	if c, ok := f.palette.Color(r.Level); ok {
		d.LevelName = f.painter.Colorize(d.LevelName, c)
	}
	if attrs, ok := f.palette.Attrs(r.Level); ok {
		d.Message = f.painter.Colorize(d.Message, "", attrs...)
	}
	return d
}

// Format decorates r and hands the result to the base formatter. Errors from
// the base formatter are returned unchanged.
func (f *ColorFormatter) Format(r *Record) (string, error) {
	if r == nil {
		return "", nil
	}
	return f.base.FormatDisplay(f.Decorate(r))
}
