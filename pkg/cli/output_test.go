package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
)

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{}

	output, err := formatter.Format("test message")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(output) != "test message\n" {
		t.Errorf("Format() = %q, want %q", string(output), "test message\n")
	}

	buf := &bytes.Buffer{}
	if err := formatter.FormatTo(buf, "test message"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != "test message\n" {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), "test message\n")
	}
}

func TestJSONFormatter(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		indent bool
		want   string
	}{
		{
			name: "simple string",
			data: "test",
			want: `"test"`,
		},
		{
			name: "no html escaping",
			data: "a < b && c > d",
			want: `"a < b && c > d"`,
		},
		{
			name: "non-ascii kept",
			data: "café",
			want: `"café"`,
		},
		{
			name:   "map with indent",
			data:   map[string]int{"key": 1},
			indent: true,
			want:   "{\n  \"key\": 1\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &JSONFormatter{Indent: tt.indent}
			output, err := formatter.Format(tt.data)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(output) != tt.want {
				t.Errorf("Format() = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestJSONFormatterWriter(t *testing.T) {
	formatter := &JSONFormatter{Indent: true}
	data := map[string]string{"test": "value"}
	buf := &bytes.Buffer{}

	if err := formatter.FormatTo(buf, data); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Errorf("FormatTo() produced invalid JSON: %v", err)
	}
	if result["test"] != "value" {
		t.Errorf("FormatTo() = %v, want %v", result, data)
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
		want   string
	}{
		{name: "json formatter", format: FormatJSON, want: "*cli.JSONFormatter"},
		{name: "compact formatter", format: FormatCompact, want: "*cli.JSONFormatter"},
		{name: "text formatter", format: FormatText, want: "*cli.TextFormatter"},
		{name: "default to json", format: "unknown", want: "*cli.JSONFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fmt.Sprintf("%T", NewFormatter(tt.format))
			if got != tt.want {
				t.Errorf("NewFormatter(%q) type = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	if f, err := ParseOutputFormat(""); err != nil || f != FormatJSON {
		t.Errorf("ParseOutputFormat(\"\") = %q, %v", f, err)
	}
	if f, err := ParseOutputFormat("text"); err != nil || f != FormatText {
		t.Errorf("ParseOutputFormat(\"text\") = %q, %v", f, err)
	}
	if _, err := ParseOutputFormat("csv"); err == nil {
		t.Error("expected error for csv")
	}
}

func TestWriteError(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteError(buf, `Config section not found: a."b"`); err != nil {
		t.Fatalf("WriteError() error = %v", err)
	}

	want := `{"error": "Config section not found: a.\"b\""}` + "\n"
	if buf.String() != want {
		t.Errorf("WriteError() = %q, want %q", buf.String(), want)
	}
}
