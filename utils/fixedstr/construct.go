// File: construct.go
// Title: Constructors
// Description: Construction of fixed-capacity strings from unit slices, arrays,
//              terminator-delimited literals and Go strings. The storage type is
//              the first type parameter so the unit type can be inferred from
//              the source.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package fixedstr

import (
	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
)

// New returns a string holding the first min(len(src), Cap) units of src.
// src does not need a terminator; zero units inside it are copied as content.
func New[B any, U Unit](src []U) Basic[U, B] {
	var s Basic[U, B]
	s.Reset(src)
	return s
}

// NewTerminated returns a string holding the units of src before its first
// terminator, truncated to Cap.
func NewTerminated[B any, U Unit](src []U) Basic[U, B] {
	var s Basic[U, B]
	s.ResetTerminated(src)
	return s
}

// FromArray returns a string built from the array src, read up to its first
// terminator. A must be an array of U.
func FromArray[B any, U Unit, A any](src A) Basic[U, B] {
	return NewTerminated[B](unitsOf[U](&src, 0))
}

// MustLiteral returns a string built from a terminator-delimited literal, the
// last unit of lit being the terminator. It panics with an INVALID_FORMAT error
// otherwise. Declare literals as package-level variables so a malformed one
// fails while the program initializes:
//
//	var greeting = fixedstr.MustLiteral[[16]byte]([]byte("hello\x00"))
func MustLiteral[B any, U Unit](lit []U) Basic[U, B] {
	if len(lit) == 0 || lit[len(lit)-1] != 0 {
		panic(fsserrors.InvalidFormat(fsserrors.ModuleFixedstr, "MustLiteral", Decode(lit), "terminator-delimited literal"))
	}
	return New[B](lit[:len(lit)-1])
}

// Of returns a string built from s encoded as units of U (see Units).
func Of[B any, U Unit](s string) Basic[U, B] {
	return New[B](Units[U](s))
}
