// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger picks its level
//              from the severity when logging a structured error.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected input the caller can correct,
	// e.g. a scenario step asking to remove more units than are stored
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a failed operation such as an unreadable configuration file
	SeverityHigh

	// SeverityCritical indicates a broken program invariant, e.g. a violated
	// container precondition or an invalid storage type
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should abort the current run
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeContractViolation, CodeInvalidStorage, CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeInvalidConfig, CodeOperationFailed:
		return SeverityHigh

	case CodeMissingConfig, CodeUnsupportedInstance, CodeExpectationFailed:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeInvalidFormat, CodeOutOfRange,
		CodeValidationFailed, CodeRequiredField:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
