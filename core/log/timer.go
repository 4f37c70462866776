// File: timer.go
// Title: Operation Timer
// Description: Measures how long a scenario or a single step took and logs the
//              result through the owning logger.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures the duration of an operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a started timer. A nil logger measures without logging.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion message
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs "<operation> completed" and returns the elapsed time.
// Stopping twice returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		entryFields := t.fields.Merge(Fields{"operation": t.operation})
		t.logger.logTimed(t.level, t.operation+" completed", nil, elapsed, entryFields)
	}
	return elapsed
}

// StopWithError logs "<operation> failed" with err at error level
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger != nil {
		entryFields := t.fields.Merge(Fields{"operation": t.operation, "success": false})
		t.logger.logTimed(LevelError, t.operation+" failed", err, elapsed, entryFields)
	}
	return elapsed
}

// IsRunning returns true until the timer is stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (l *Logger) logTimed(level Level, message string, err error, d time.Duration, fields Fields) {
	if !level.ShouldLog(l.level) {
		return
	}
	l.write(l.newEntry(level, message, err).WithFields(fields).WithDuration(d))
}
