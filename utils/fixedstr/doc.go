// File: doc.go
// Title: Package Documentation for fixedstr
// Description: Package fixedstr provides terminator-delimited strings with a
//              statically fixed capacity and inline storage.
// Author: abeimler
// Version: v0.2.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Documented storage types, contract panics and iterators
// - 2026-10-15 v0.2.1: Clarified that String and U8 are one type

// Package fixedstr provides fixed-capacity strings with inline storage.
//
// Package: fixedstr
// Title: Fixed-Capacity Strings
// Description: A Basic value holds up to a statically known number of character
//              units in an array it owns, followed by a zero terminator. Nothing
//              allocates and nothing grows: input beyond the capacity is
//              silently truncated.
// Author: abeimler
// Version: v0.2.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// # Overview
//
// The capacity is part of the type. It is fixed by the storage array given as
// the second type parameter, which has one slot more than the capacity for the
// terminator:
//
//	var name fixedstr.String[[17]byte]   // up to 16 bytes
//	var label fixedstr.U16[[33]uint16]   // up to 32 UTF-16 units
//
// Five aliases of Basic name the supported units: String (byte), Wide (rune),
// U8, U16 and U32. byte is an alias of uint8, so String and U8 denote the same
// type and are interchangeable; they differ only in the unit name used by
// tools such as the scenario registry ("narrow" and "u8"). Likewise Wide and
// U32 share a width but not a type, since rune is int32.
//
// Any other storage type than [Capacity+1]U panics with an INVALID_STORAGE
// error on first use. The shape of each storage type is checked once and
// remembered.
//
// The zero value is an empty string. Two instances with different storage
// types are different types; Equal and Compare only accept the same type.
//
// # Construction
//
//	a := fixedstr.New[[6]byte]([]byte("hello world"))        // "hello", explicit length
//	b := fixedstr.NewTerminated[[6]byte]([]byte("hi\x00xx"))  // "hi", scans for the terminator
//	c := fixedstr.Of[[6]uint16, uint16]("grüß")               // UTF-16 encoded
//	d := fixedstr.FromArray[[6]byte, byte]([4]byte{'a', 'b'}) // "ab"
//
// Literals that must carry their own terminator are built with MustLiteral.
// It panics on a literal without one; declared as a package-level variable
// the check runs while the program initializes:
//
//	var banner = fixedstr.MustLiteral[[9]byte]([]byte("ready\x00"))
//
// # Mutation
//
// Reset, Append and their Terminated and String variants copy as much of the
// source as fits and drop the rest. Clear empties the string. Fill sets every
// storage unit and extends the string to its full capacity. Repair
// resynchronizes the length after the buffer returned by Data was written to
// directly.
//
// RemovePrefix and RemoveSuffix require 0 <= n <= Len. A violation panics
// with a CONTRACT_VIOLATION error from package core/error and leaves the
// string unchanged. TryRemovePrefix and TryRemoveSuffix return an
// OUT_OF_RANGE error instead.
//
// Old content past the current length is never erased by Reset, Clear or
// RemoveSuffix; only the terminator position is authoritative.
//
// # Access and iteration
//
// View returns the content, CStr the content plus terminator and Data the
// whole storage. All three alias the buffer. All and Backward iterate over
// the content, Raw additionally yields the terminator as its final element.
//
// # Concurrency
//
// Basic has no internal synchronization. Share copies, or guard an instance
// with a mutex.
package fixedstr
