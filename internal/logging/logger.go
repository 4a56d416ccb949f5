package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
)

// Logger builds records and passes them to a Handler. Every level is
// emitted; there is no filtering.
type Logger struct {
	name    string
	handler Handler
	mu      sync.Mutex
}

func New(name string, h Handler) *Logger {
	return &Logger{name: name, handler: h}
}

// Log emits msg at level and returns the handler's error.
func (l *Logger) Log(level Level, msg string, args ...any) error {
	return l.emit(NewRecord(l.name, level, msg, args...), 2)
}

// LogError emits msg at level with err attached to the record.
func (l *Logger) LogError(level Level, err error, msg string, args ...any) error {
	r := NewRecord(l.name, level, msg, args...)
	r.Err = err
	return l.emit(r, 2)
}

// emit stamps r with the source location skip frames above emit.
func (l *Logger) emit(r *Record, skip int) error {
	if _, file, line, ok := runtime.Caller(skip); ok {
		r.Source = filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handler.Handle(r)
}

func (l *Logger) logf(level Level, msg string, args ...any) {
	if err := l.emit(NewRecord(l.name, level, msg, args...), 3); err != nil {
		fmt.Fprintf(os.Stderr, "%s: failed to emit log record: %v\n", l.name, err)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	l.logf(DEBUG, msg, args...)
}

func (l *Logger) Infof(msg string, args ...any) {
	l.logf(INFO, msg, args...)
}

func (l *Logger) Warnf(msg string, args ...any) {
	l.logf(WARNING, msg, args...)
}

func (l *Logger) Errorf(msg string, args ...any) {
	l.logf(ERROR, msg, args...)
}

func (l *Logger) Criticalf(msg string, args ...any) {
	l.logf(CRITICAL, msg, args...)
}

// ErrorfAndReturn logs at ERROR and returns the same message as an error.
func (l *Logger) ErrorfAndReturn(msg string, args ...any) error {
	l.logf(ERROR, msg, args...)
	return fmt.Errorf(msg, args...)
}
