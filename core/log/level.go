// File: level.go
// Title: Log Level Definitions
// Description: Log levels, their names and terminal colors, and parsing of
//              the level names accepted in configuration and flags.
// Author: abeimler
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with standard log levels
// - 2026-10-15 v0.2.0: Level attributes kept in one table

package log

import (
	"slices"
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every container operation executed by a scenario
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	// LevelWarn is used for rejected steps and unmet expectations of low weight
	LevelWarn
	LevelError
	// LevelFatal is logged right before the process exits
	LevelFatal
	// LevelAudit is always written regardless of the minimum level
	LevelAudit
)

type levelInfo struct {
	name  string
	short string
	color string
	// aliases accepted by ParseLevel besides name and short
	aliases []string
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m", nil},
	LevelDebug: {"debug", "DBG", "\033[36m", nil},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[35m", nil},
	LevelAudit: {"audit", "AUD", "\033[34m", nil},
}

func (l Level) info() (levelInfo, bool) {
	if l < 0 || int(l) >= len(levels) {
		return levelInfo{name: "unknown", short: "???", color: "\033[0m"}, false
	}
	return levels[l], true
}

// String returns the lower-case level name
func (l Level) String() string {
	i, _ := l.info()
	return i.name
}

// ShortString returns the three-letter tag used by the text formatters
func (l Level) ShortString() string {
	i, _ := l.info()
	return i.short
}

// Color returns the ANSI escape the console formatter uses for the level tag
func (l Level) Color() string {
	i, _ := l.info()
	return i.color
}

// ShouldLog reports whether l passes the minimum level. Audit always does.
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel accepts a level name, its three-letter tag or a common alias,
// case-insensitively. Unknown input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, i := range levels {
		if s == i.name || s == strings.ToLower(i.short) || slices.Contains(i.aliases, s) {
			return Level(l), nil
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports a level or format name that could not be parsed
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level used when none is configured
func DefaultLevel() Level {
	return LevelInfo
}
