// File: iter.go
// Title: Iteration
// Description: Range-over-func iterators over the content and the raw storage.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package fixedstr

import "iter"

// All yields the index and value of every content unit in order.
func (s *Basic[U, B]) All() iter.Seq2[int, U] {
	return func(yield func(int, U) bool) {
		for i, u := range s.View() {
			if !yield(i, u) {
				return
			}
		}
	}
}

// Backward yields the content units from last to first. An empty string
// yields nothing.
func (s *Basic[U, B]) Backward() iter.Seq2[int, U] {
	return func(yield func(int, U) bool) {
		v := s.View()
		for i := len(v) - 1; i >= 0; i-- {
			if !yield(i, v[i]) {
				return
			}
		}
	}
}

// Raw yields indices 0 through Len inclusive, so the terminator is the last
// element produced.
func (s *Basic[U, B]) Raw() iter.Seq2[int, U] {
	return func(yield func(int, U) bool) {
		for i, u := range s.CStr() {
			if !yield(i, u) {
				return
			}
		}
	}
}
