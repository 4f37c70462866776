// File: fixedstr.go
// Title: Fixed-Capacity String Type
// Description: Implements Basic, a terminator-delimited string value with inline
//              storage of a statically fixed capacity. Writes beyond the capacity
//              are truncated; no operation allocates.
// Author: abeimler
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with construction and mutators
// - 2026-10-15 v0.2.0: Checked removal variants, Compare

package fixedstr

import (
	"slices"

	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
)

// Unit is the set of supported character unit types.
type Unit interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

// Basic is a string of at most len(B)-1 units of U stored inline in B.
//
// B must be an array type [Capacity+1]U; the extra slot holds the terminator.
// The zero value is an empty string. Instances with different B are distinct
// types and cannot be compared or converted into each other.
//
// Basic is a plain value: copying it copies the whole buffer, and concurrent
// use of one instance requires external synchronization.
type Basic[U Unit, B any] struct {
	n   int
	buf B
}

type (
	// String is a fixed-capacity string of bytes.
	String[B any] = Basic[byte, B]

	// Wide is a fixed-capacity string of runes.
	Wide[B any] = Basic[rune, B]

	// U8 is a fixed-capacity string of 8-bit code units. byte and uint8
	// are the same Go type, so U8[B] and String[B] are identical; the two
	// names only mark the intent at the declaration.
	U8[B any] = Basic[uint8, B]

	// U16 is a fixed-capacity string of 16-bit code units.
	U16[B any] = Basic[uint16, B]

	// U32 is a fixed-capacity string of 32-bit code units.
	U32[B any] = Basic[uint32, B]
)

func (s *Basic[U, B]) storage() []U {
	return unitsOf[U](&s.buf, 1)
}

// Len returns the number of units in use.
func (s *Basic[U, B]) Len() int {
	return s.n
}

// Cap returns the maximum number of units the string can hold.
func (s *Basic[U, B]) Cap() int {
	return len(s.storage()) - 1
}

// Empty reports whether Len is zero.
func (s *Basic[U, B]) Empty() bool {
	return s.n == 0
}

// Data returns the whole inline storage, Cap()+1 units, terminator included.
// The slice aliases the buffer; after writing through it call Repair.
func (s *Basic[U, B]) Data() []U {
	return s.storage()
}

// CStr returns the content followed by its terminator.
func (s *Basic[U, B]) CStr() []U {
	return s.storage()[:s.n+1]
}

// View returns the content without the terminator. The slice aliases the
// buffer and stays valid until the next mutation.
func (s *Basic[U, B]) View() []U {
	return s.storage()[:s.n:s.n]
}

// Clear empties the string.
func (s *Basic[U, B]) Clear() {
	s.n = 0
	s.storage()[0] = 0
}

// Reset replaces the content with src, truncated to Cap units.
// Units past the new length keep their previous values.
func (s *Basic[U, B]) Reset(src []U) {
	s.reset(src, len(src))
}

// ResetTerminated replaces the content with src up to its first terminator
// (or all of src if it has none), truncated to Cap units.
func (s *Basic[U, B]) ResetTerminated(src []U) {
	s.reset(src, terminated(src))
}

// Append adds as many units of src as fit into the remaining capacity and
// drops the rest.
func (s *Basic[U, B]) Append(src []U) {
	s.append(src, len(src))
}

// AppendTerminated is Append for the units of src before its first terminator.
func (s *Basic[U, B]) AppendTerminated(src []U) {
	s.append(src, terminated(src))
}

// RemovePrefix drops the first n units.
//
// It panics with a CONTRACT_VIOLATION error if n is negative or greater than
// Len; the string is left unchanged in that case.
func (s *Basic[U, B]) RemovePrefix(n int) {
	if n < 0 || n > s.n {
		panic(s.violation("RemovePrefix", n))
	}
	st := s.storage()
	copy(st, st[n:s.n])
	s.n -= n
	st[s.n] = 0
}

// RemoveSuffix drops the last n units. The dropped units are not cleared.
//
// It panics with a CONTRACT_VIOLATION error if n is negative or greater than
// Len; the string is left unchanged in that case.
func (s *Basic[U, B]) RemoveSuffix(n int) {
	if n < 0 || n > s.n {
		panic(s.violation("RemoveSuffix", n))
	}
	s.n -= n
	s.storage()[s.n] = 0
}

// TryRemovePrefix is RemovePrefix reporting an OUT_OF_RANGE error instead of
// panicking.
func (s *Basic[U, B]) TryRemovePrefix(n int) error {
	if n < 0 || n > s.n {
		return fsserrors.OutOfRange(fsserrors.ModuleFixedstr, "TryRemovePrefix", n, 0, s.n)
	}
	s.RemovePrefix(n)
	return nil
}

// TryRemoveSuffix is RemoveSuffix reporting an OUT_OF_RANGE error instead of
// panicking.
func (s *Basic[U, B]) TryRemoveSuffix(n int) error {
	if n < 0 || n > s.n {
		return fsserrors.OutOfRange(fsserrors.ModuleFixedstr, "TryRemoveSuffix", n, 0, s.n)
	}
	s.RemoveSuffix(n)
	return nil
}

// Fill sets every storage unit to v and extends the string to full capacity.
// The previous length does not matter: afterwards Len() == Cap().
func (s *Basic[U, B]) Fill(v U) {
	st := s.storage()
	for i := range st {
		st[i] = v
	}
	s.n = len(st) - 1
	st[s.n] = 0
}

// Repair recomputes the length from the first terminator in the storage.
// Use it after writing to the slice returned by Data. If the storage holds
// no terminator at all, the string is cut at Cap and the last slot is zeroed.
func (s *Basic[U, B]) Repair() {
	st := s.storage()
	var zero U
	n := slices.Index(st, zero)
	if n < 0 {
		n = len(st) - 1
		st[n] = 0
	}
	s.n = n
}

// Swap exchanges the contents of s and o.
func (s *Basic[U, B]) Swap(o *Basic[U, B]) {
	*s, *o = *o, *s
}

// Equal reports whether s and o hold the same units. Use it rather than ==,
// which also compares the stale units behind the terminator.
func (s *Basic[U, B]) Equal(o *Basic[U, B]) bool {
	return s.n == o.n && slices.Equal(s.View(), o.View())
}

// Compare compares the contents of s and o unit by unit and returns -1, 0
// or +1.
func (s *Basic[U, B]) Compare(o *Basic[U, B]) int {
	return slices.Compare(s.View(), o.View())
}

// Swap exchanges the contents of a and b.
func Swap[U Unit, B any](a, b *Basic[U, B]) {
	a.Swap(b)
}

func (s *Basic[U, B]) reset(src []U, n int) {
	st := s.storage()
	n = min(n, len(st)-1)
	copy(st, src[:n])
	s.n = n
	st[n] = 0
}

func (s *Basic[U, B]) append(src []U, n int) {
	st := s.storage()
	n = min(n, len(st)-1-s.n)
	copy(st[s.n:], src[:n])
	s.n += n
	st[s.n] = 0
}

func (s *Basic[U, B]) violation(op string, n int) error {
	return fsserrors.ContractViolation(fsserrors.ModuleFixedstr, op, "0 <= count <= length",
		map[string]interface{}{"count": n, "length": s.n})
}

// terminated returns the number of units before the first terminator in src.
func terminated[U Unit](src []U) int {
	var zero U
	if i := slices.Index(src, zero); i >= 0 {
		return i
	}
	return len(src)
}
