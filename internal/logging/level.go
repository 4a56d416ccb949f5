package logger

import (
	"fmt"
	"strconv"
	"strings"

	terrors "github.com/PolarWolf314/termlog/internal/errors"
)

// Level is the ordered severity of a record.
type Level int

const (
	DEBUG    Level = 10
	INFO     Level = 20
	WARNING  Level = 30
	ERROR    Level = 40
	CRITICAL Level = 50
)

// Levels lists the known severities from least to most severe.
var Levels = []Level{DEBUG, INFO, WARNING, ERROR, CRITICAL}

var levelNames = map[Level]string{
	DEBUG:    "DEBUG",
	INFO:     "INFO",
	WARNING:  "WARNING",
	ERROR:    "ERROR",
	CRITICAL: "CRITICAL",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Level " + strconv.Itoa(int(l))
}

// ParseLevel resolves a level name, ignoring case. WARN and FATAL are
// accepted as aliases of WARNING and CRITICAL.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARNING", "WARN":
		return WARNING, nil
	case "ERROR":
		return ERROR, nil
	case "CRITICAL", "FATAL":
		return CRITICAL, nil
	default:
		return 0, fmt.Errorf("%w: %q", terrors.ErrUnknownLevel, name)
	}
}
