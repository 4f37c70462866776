// Package log provides structured logging for the fixed-size string tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text, console and logfmt
//              output, integrated with the core/error severities. The scenario
//              runner logs every executed step at trace level; the CLI tags all
//              entries of one invocation with a correlation id.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Usage:
//
//	import fsslog "github.com/abeimler/fixed-size-string/core/log"
//
//	logger := fsslog.New().
//		WithLevel(fsslog.LevelDebug).
//		WithName("scenario").
//		WithCorrelationID(runID)
//
//	logger.Debug("step executed", fsslog.Fields{"op": "append", "length": 5})
//	logger.LogError(err) // level follows the error severity
//
//	timer := logger.StartTimer("scenario " + name)
//	defer timer.Stop()
package log
