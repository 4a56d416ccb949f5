package logger

import "testing"

func TestDefaultPaletteColors(t *testing.T) {
	want := map[Level]string{
		DEBUG:    "blue",
		INFO:     "cyan",
		WARNING:  "yellow",
		ERROR:    "red",
		CRITICAL: "red",
	}

	p := DefaultPalette()
	for level, color := range want {
		got, ok := p.Color(level)
		if !ok {
			t.Errorf("Color(%v) not found", level)
			continue
		}
		if got != color {
			t.Errorf("Color(%v) = %q, want %q", level, got, color)
		}
	}
}

func TestDefaultPaletteAttrsOnlyCritical(t *testing.T) {
	p := DefaultPalette()
	for _, level := range Levels {
		attrs, ok := p.Attrs(level)
		if level != CRITICAL {
			if ok {
				t.Errorf("Attrs(%v) = %v, want none", level, attrs)
			}
			continue
		}
		if !ok || len(attrs) != 2 || attrs[0] != "bold" || attrs[1] != "blink" {
			t.Errorf("Attrs(CRITICAL) = %v, %t, want [bold blink]", attrs, ok)
		}
	}
}

func TestPaletteUnmappedLevel(t *testing.T) {
	p := DefaultPalette()
	if c, ok := p.Color(Level(25)); ok {
		t.Errorf("Color(Level 25) = %q, want no color", c)
	}
	if a, ok := p.Attrs(Level(25)); ok {
		t.Errorf("Attrs(Level 25) = %v, want no attributes", a)
	}

	var empty Palette
	if _, ok := empty.Color(DEBUG); ok {
		t.Error("zero Palette should map no colors")
	}
}

func TestPaletteAttrsReturnsCopy(t *testing.T) {
	p := DefaultPalette()
	attrs, _ := p.Attrs(CRITICAL)
	attrs[0] = "underline"

	again, _ := p.Attrs(CRITICAL)
	if again[0] != "bold" {
		t.Errorf("palette attributes were modified through returned slice: %v", again)
	}
}
