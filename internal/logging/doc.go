// Package logger renders log records on a terminal.
//
// A Record flows through three pluggable pieces:
//
//   - Palette maps a severity Level to a color name and text attributes.
//   - ColorFormatter decorates the record's level name (and, for CRITICAL,
//     its message) with escape sequences, then delegates to a
//     TemplateFormatter for the final line.
//   - TermHandler writes the line plus a line terminator to its stream and
//     flushes it.
//
// Logger is a minimal facility that builds records and hands them to a
// Handler while holding a lock, so concurrent callers never interleave lines.
//
// # Decoration
//
// Decoration never touches the Record. ColorFormatter.Decorate returns a
// Display holding the decorated text, so formatting the same record twice
// yields the same line and never wraps escape sequences twice.
//
// # Usage
//
//	base, err := logger.NewTemplateFormatter(logger.DefaultFormat, logger.DefaultDateFormat)
//	if err != nil {
//	    return err
//	}
//	f := logger.NewColorFormatter(base, logger.DefaultPalette(), ui.NewPainter(ui.ModeAuto, os.Stdout))
//	h := logger.NewTermHandler(f, logger.HandlerConfig{Stream: os.Stdout})
//	log := logger.New("app", h)
//	log.Criticalf("disk full")
package logger
