// File: format_test.go
// Title: Formatter Tests
// Description: Tests for level/format parsing and the output formatters.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleEntry() *Entry {
	e := NewEntry(LevelWarn, "step rejected")
	e.Timestamp = time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)
	e.Logger = "scenario"
	e.CorrelationID = "0b6f6c1e-aaaa-bbbb-cccc-000000000000"
	e.WithFields(Fields{"op": "remove_prefix", "count": 9})
	return e
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"audit", LevelAudit, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := ParseFormat("yaml")
	if err == nil || err.Error() != "invalid format: yaml" {
		t.Errorf("ParseFormat(yaml) error = %v", err)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatText, FormatConsole, FormatLogfmt} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(sampleEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "12:30:00 [WRN] {scenario} (run=0b6f6c1e) step rejected [count=9 op=remove_prefix]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatterColorsOnlyLevel(t *testing.T) {
	out, _ := NewConsoleFormatter().Format(sampleEntry())
	s := string(out)
	if !strings.Contains(s, LevelWarn.Color()+"WRN\033[0m") {
		t.Errorf("level tag not colored: %q", s)
	}
	if !strings.HasSuffix(s, "[count=9 op=remove_prefix]\n") {
		t.Errorf("unexpected tail: %q", s)
	}

	plain := NewConsoleFormatter()
	plain.DisableColors = true
	out, _ = plain.Format(sampleEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("DisableColors output contains escapes: %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := sampleEntry()
	e.Error = errors.New("out of range")
	out, _ := NewLogfmtFormatter().Format(e)
	want := `timestamp=2026-10-15T12:30:00Z level=warn message="step rejected" logger=scenario ` +
		`correlation_id=0b6f6c1e-aaaa-bbbb-cccc-000000000000 count=9 op="remove_prefix" error="out of range"` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q\nwant %q", out, want)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*log.JSONFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatConsole, "*log.ConsoleFormatter"},
		{FormatLogfmt, "*log.LogfmtFormatter"},
		{Format(99), "*log.ConsoleFormatter"},
	}
	for _, tt := range tests {
		if got := typeName(GetFormatter(tt.format)); got != tt.want {
			t.Errorf("GetFormatter(%v) = %s, want %s", tt.format, got, tt.want)
		}
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *JSONFormatter:
		return "*log.JSONFormatter"
	case *TextFormatter:
		return "*log.TextFormatter"
	case *ConsoleFormatter:
		return "*log.ConsoleFormatter"
	case *LogfmtFormatter:
		return "*log.LogfmtFormatter"
	}
	return "?"
}

func TestFieldsHelpers(t *testing.T) {
	f := Fields{"a": 1}.Merge(Fields{"b": "x"}).Merge(Fields{"a": 2})
	if f["a"] != 2 || f["b"] != "x" {
		t.Errorf("Merge() = %v", f)
	}
	if keys := f.Keys(); len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v", keys)
	}
	c := f.Clone()
	c["a"] = 3
	if f["a"] != 2 {
		t.Error("Clone() shares the map")
	}
	if Fields(nil).Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}
