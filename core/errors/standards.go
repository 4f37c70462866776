// File: standards.go
// Title: Standard Error Constructors
// Description: Standardized error constructors shared by the container, the
//              configuration loader, the scenario runner and the CLI. Use these
//              instead of fmt.Errorf() or errors.New() so that every error
//              carries a module, an operation and a code.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"

	fsserror "github.com/abeimler/fixed-size-string/core/error"
)

// ContractViolation reports a broken precondition of a container operation.
// These errors are raised as panics by the container.
func ContractViolation(module, operation, condition string, details map[string]interface{}) *fsserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: precondition violated: %s", module, operation, condition).
		Code(fsserror.CodeContractViolation).
		Details(details).
		Severity(fsserror.SeverityCritical).
		Build()
}

// InvalidStorage reports a storage type that is not an array of the unit type
func InvalidStorage(module, storage, unit string) *fsserror.Error {
	return NewErrorBuilder(module).
		Operation("storage").
		Messagef("%s: storage type %s is not a non-empty array of %s", module, storage, unit).
		Code(fsserror.CodeInvalidStorage).
		Detail("storage", storage).
		Detail("unit", unit).
		Severity(fsserror.SeverityCritical).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *fsserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(fsserror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(fsserror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *fsserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s: expected %s", module, operation, expectedFormat).
		Code(fsserror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(fsserror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *fsserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: value %v out of range [%v, %v]", module, operation, value, min, max).
		Code(fsserror.CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(fsserror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *fsserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %v not found", module, operation, identifier).
		Code(fsserror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// OperationFailed wraps cause as a failed module operation
func OperationFailed(module, operation string, cause error) *fsserror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(fsserror.CodeOperationFailed).
		Severity(fsserror.SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *fsserror.Error {
	return NewErrorBuilder(module).
		Operation("validate_" + field).
		Messagef("%s: validation failed for field %s: %s", module, field, reason).
		Code(fsserror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(fsserror.SeverityLow).
		Build()
}

// ExpectationFailed reports a scenario step whose observed state differs from the expected one
func ExpectationFailed(step int, property string, want, got interface{}) *fsserror.Error {
	return NewErrorBuilder(ModuleScenario).
		Operation("expect").
		Message(fmt.Sprintf("step %d: %s = %v, want %v", step, property, got, want)).
		Code(fsserror.CodeExpectationFailed).
		Detail("step", step).
		Detail("property", property).
		Detail("want", want).
		Detail("got", got).
		Build()
}
