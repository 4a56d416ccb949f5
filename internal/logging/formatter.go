package logger

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	terrors "github.com/PolarWolf314/termlog/internal/errors"
	"github.com/valyala/fasttemplate"
)

const (
	DefaultFormat     = "{time} {level} {message}"
	DefaultDateFormat = "2006-01-02 15:04:05"
)

// Formatter turns a record into the line a Handler writes. An empty result
// means there is nothing to write.
type Formatter interface {
	Format(r *Record) (string, error)
}

// DisplayFormatter lays out an already prepared Display.
type DisplayFormatter interface {
	FormatDisplay(d Display) (string, error)
}

// TemplateFormatter substitutes record fields into a {placeholder} template.
//
// Known placeholders:
//
//	{time}    - record time, laid out with the date format
//	{level}   - level name
//	{levelno} - numeric level
//	{name}    - logger name
//	{message} - message with arguments applied
//	{source}  - file:line of the log call
type TemplateFormatter struct {
	format     string
	dateFormat string
	tmpl       *fasttemplate.Template
}

// NewTemplateFormatter parses format. dateFormat is a time layout handed to
// time.Format as is; empty selects DefaultDateFormat. An empty format makes
// every record format to "".
func NewTemplateFormatter(format, dateFormat string) (*TemplateFormatter, error) {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	f := &TemplateFormatter{format: format, dateFormat: dateFormat}
	if format == "" {
		return f, nil
	}

	tmpl, err := fasttemplate.NewTemplate(format, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrInvalidTemplate, err)
	}
	f.tmpl = tmpl
	return f, nil
}

// Format lays out r without decoration.
func (f *TemplateFormatter) Format(r *Record) (string, error) {
	if r == nil {
		return "", nil
	}
	return f.FormatDisplay(PlainDisplay(r))
}

// FormatDisplay lays out d. The level name and message are taken from d, every
// other field from d.Record. A record error is appended on its own line.
func (f *TemplateFormatter) FormatDisplay(d Display) (string, error) {
	if f.tmpl == nil || d.Record == nil {
		return "", nil
	}
	r := d.Record

	line, err := f.tmpl.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		switch strings.TrimSpace(tag) {
		case "time":
			return io.WriteString(w, r.Time.Format(f.dateFormat))
		case "level":
			return io.WriteString(w, d.LevelName)
		case "levelno":
			return io.WriteString(w, strconv.Itoa(int(r.Level)))
		case "name":
			return io.WriteString(w, r.Name)
		case "message":
			return io.WriteString(w, d.Message)
		case "source":
			return io.WriteString(w, r.Source)
		default:
			return 0, fmt.Errorf("%w: {%s}", terrors.ErrUnknownPlaceholder, tag)
		}
	})
	if err != nil {
		return "", err
	}

	if r.Err != nil {
		line += "\n" + r.Err.Error()
	}
	return line, nil
}
