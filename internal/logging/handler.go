package logger

import (
	"io"
	"runtime"

	"github.com/mattn/go-colorable"
)

// Handler delivers records somewhere.
type Handler interface {
	Handle(r *Record) error
}

// Flusher is implemented by streams that buffer output, such as *bufio.Writer.
type Flusher interface {
	Flush() error
}

// HandlerConfig configures a TermHandler. The zero value writes to standard
// output with the platform line terminator and flushes after every line.
type HandlerConfig struct {
	// Stream receives the lines. It is never closed by the handler.
	Stream io.Writer
	// Newline terminates every line.
	Newline string
	// DisableFlush skips the flush after each line.
	DisableFlush bool
}

// TermHandler writes one formatted line per record to its stream.
//
// TermHandler does no locking of its own; concurrent callers sharing a
// stream must serialise calls to Emit, as Logger does.
type TermHandler struct {
	formatter Formatter
	stream    io.Writer
	newline   string
	flush     bool
}

func NewTermHandler(f Formatter, cfg HandlerConfig) *TermHandler {
	if cfg.Stream == nil {
		cfg.Stream = colorable.NewColorableStdout()
	}
	if cfg.Newline == "" {
		cfg.Newline = lineTerminator()
	}
	return &TermHandler{
		formatter: f,
		stream:    cfg.Stream,
		newline:   cfg.Newline,
		flush:     !cfg.DisableFlush,
	}
}

// Emit formats r and writes the result followed by the line terminator. An
// empty result writes nothing. Format, write and flush errors are returned
// exactly as they occurred.
func (h *TermHandler) Emit(r *Record) error {
	line, err := h.formatter.Format(r)
	if err != nil {
		return err
	}
	if line == "" {
		return nil
	}

	if _, err := io.WriteString(h.stream, line+h.newline); err != nil {
		return err
	}
	if !h.flush {
		return nil
	}
	if f, ok := h.stream.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Handle implements Handler.
func (h *TermHandler) Handle(r *Record) error {
	return h.Emit(r)
}

func lineTerminator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
