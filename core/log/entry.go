// File: entry.go
// Title: Log Entry Structure
// Description: The record handed to a formatter and the Fields map used to
//              attach structured data to a message.
// Author: abeimler
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with log entry structure
// - 2026-10-15 v0.2.0: Caller recorded as a field, field constructors removed

package log

import (
	"maps"
	"slices"
	"time"
)

// Entry is one log record as seen by a Formatter
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// CorrelationID ties together all entries of one CLI run
	CorrelationID string

	Fields   Fields
	Error    error
	Duration time.Duration
}

// Fields are the key-value pairs attached to an entry
type Fields map[string]interface{}

// Merge returns a new Fields holding f and other; keys of other win
func (f Fields) Merge(other Fields) Fields {
	merged := make(Fields, len(f)+len(other))
	maps.Copy(merged, f)
	maps.Copy(merged, other)
	return merged
}

// Clone copies f. A nil map stays nil.
func (f Fields) Clone() Fields {
	return maps.Clone(f)
}

// Keys returns the field names sorted
func (f Fields) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// NewEntry returns an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithFields copies fields into the entry
func (e *Entry) WithFields(fields Fields) *Entry {
	if e.Fields == nil {
		e.Fields = make(Fields, len(fields))
	}
	maps.Copy(e.Fields, fields)
	return e
}

// WithDuration records how long the logged operation took
func (e *Entry) WithDuration(d time.Duration) *Entry {
	e.Duration = d
	return e
}
