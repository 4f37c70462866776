// Package error provides structured error handling for the fixed-size string module.
//
// Package: error
// Title: Structured Errors
// Description: Implements an error type with codes, severities, details and a
//              captured stack trace. The fixedstr container raises *Error values
//              as panics when a precondition is violated; the configuration,
//              scenario and CLI layers return them.
// Author: abeimler
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Container contract codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes mapped to CLI exit statuses
// - Stack trace capture for debugging
// - Severity levels consumed by the logger
//
// Usage:
//
//	import fsserror "github.com/abeimler/fixed-size-string/core/error"
//
//	err := fsserror.New("remove_prefix count exceeds length").
//		WithCode(fsserror.CodeContractViolation).
//		WithOperation("fixedstr.RemovePrefix").
//		WithDetail("count", 7).
//		WithDetail("length", 3)
//
//	if fsserror.HasCode(err, fsserror.CodeContractViolation) {
//		// a caller broke the container contract
//	}
package error
