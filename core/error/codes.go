// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the fixed-size string module.
//              Codes classify contract violations of the container, malformed
//              storage or literal input, configuration problems and scenario
//              failures of the command line tool.
// Author: abeimler
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Container and scenario codes, removed service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown         Code = "UNKNOWN"
	CodeInternal        Code = "INTERNAL"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeOperationFailed Code = "OPERATION_FAILED"

	// Container contract
	CodeContractViolation Code = "CONTRACT_VIOLATION"
	CodeInvalidStorage    Code = "INVALID_STORAGE"
	CodeInvalidFormat     Code = "INVALID_FORMAT"
	CodeOutOfRange        Code = "OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Scenarios
	CodeUnsupportedInstance Code = "UNSUPPORTED_INSTANCE"
	CodeExpectationFailed   Code = "EXPECTATION_FAILED"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeOperationFailed,
		CodeContractViolation, CodeInvalidStorage, CodeInvalidFormat, CodeOutOfRange,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeUnsupportedInstance, CodeExpectationFailed,
		CodeValidationFailed, CodeRequiredField:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeContractViolation, CodeInvalidStorage, CodeInvalidFormat, CodeOutOfRange:
		return "contract"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeUnsupportedInstance, CodeExpectationFailed:
		return "scenario"
	case CodeValidationFailed, CodeRequiredField:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the code onto a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c.Category() {
	case "scenario":
		return 3
	case "configuration":
		return 4
	case "contract", "validation":
		return 2
	default:
		return 1
	}
}
