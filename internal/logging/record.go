package logger

import (
	"fmt"
	"time"
)

// Record is a single log event as produced by a Logger.
type Record struct {
	Name      string
	Level     Level
	LevelName string
	Msg       string
	Args      []any
	Time      time.Time
	Source    string
	Err       error
}

// NewRecord creates a record stamped with the current time.
func NewRecord(name string, level Level, msg string, args ...any) *Record {
	return &Record{
		Name:      name,
		Level:     level,
		LevelName: level.String(),
		Msg:       msg,
		Args:      args,
		Time:      time.Now(),
	}
}

// Message returns Msg with Args substituted. Without args Msg is returned
// verbatim, so a literal '%' needs no escaping.
func (r *Record) Message() string {
	if len(r.Args) == 0 {
		return r.Msg
	}
	return fmt.Sprintf(r.Msg, r.Args...)
}

// Display is the text of a record as it will be shown. Record is shared, not
// copied, and must be treated as read-only.
type Display struct {
	LevelName string
	Message   string
	Record    *Record
}

// PlainDisplay returns the undecorated display text of r.
func PlainDisplay(r *Record) Display {
	levelName := r.LevelName
	if levelName == "" {
		levelName = r.Level.String()
	}
	return Display{
		LevelName: levelName,
		Message:   r.Message(),
		Record:    r,
	}
}
