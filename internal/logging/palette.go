package logger

// Palette maps severities to a color name and an ordered list of text
// attribute names understood by ui.Colorize.
type Palette struct {
	Colors     map[Level]string
	Attributes map[Level][]string
}

// DefaultPalette returns the stock severity colors. Only CRITICAL carries
// attributes.
func DefaultPalette() Palette {
	return Palette{
		Colors: map[Level]string{
			DEBUG:    "blue",
			INFO:     "cyan",
			WARNING:  "yellow",
			ERROR:    "red",
			CRITICAL: "red",
		},
		Attributes: map[Level][]string{
			CRITICAL: {"bold", "blink"},
		},
	}
}

// Color returns the color name for level, if any.
func (p Palette) Color(level Level) (string, bool) {
	name, ok := p.Colors[level]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Attrs returns a copy of the attribute names for level, if any.
func (p Palette) Attrs(level Level) ([]string, bool) {
	attrs, ok := p.Attributes[level]
	if !ok || len(attrs) == 0 {
		return nil, false
	}
	out := make([]string, len(attrs))
	copy(out, attrs)
	return out, true
}
