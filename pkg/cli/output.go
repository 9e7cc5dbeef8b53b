package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatJSON is indented JSON output (default).
	FormatJSON OutputFormat = "json"
	// FormatCompact is single-line JSON output.
	FormatCompact OutputFormat = "compact"
	// FormatText is plain text output.
	FormatText OutputFormat = "text"
)

// Formatter formats command output.
type Formatter interface {
	Format(data any) ([]byte, error)
	FormatTo(w io.Writer, data any) error
}

// TextFormatter formats output as plain text.
type TextFormatter struct{}

// Format converts data to text format.
func (f *TextFormatter) Format(data any) ([]byte, error) {
	return []byte(fmt.Sprintf("%v\n", data)), nil
}

// FormatTo writes data to writer in text format.
func (f *TextFormatter) FormatTo(w io.Writer, data any) error {
	_, err := fmt.Fprintf(w, "%v\n", data)
	return err
}

// JSONFormatter formats output as JSON. Non-ASCII text and HTML characters
// are written as-is rather than escaped.
type JSONFormatter struct {
	Indent bool
}

// Format converts data to JSON format, without a trailing newline.
func (f *JSONFormatter) Format(data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.FormatTo(&buf, data); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// FormatTo writes data to writer in JSON format followed by a newline.
func (f *JSONFormatter) FormatTo(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// NewFormatter creates a new formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatText:
		return &TextFormatter{}
	case FormatCompact:
		return &JSONFormatter{}
	default:
		return &JSONFormatter{Indent: true}
	}
}

// ParseOutputFormat validates a --format flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatJSON, FormatCompact, FormatText:
		return OutputFormat(s), nil
	case "":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json, compact or text)", s)
}

// WriteError writes {"error": message} and a newline to w.
func WriteError(w io.Writer, message string) error {
	quoted, err := (&JSONFormatter{}).Format(message)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "{\"error\": %s}\n", quoted)
	return err
}
