// File: encoding.go
// Title: Text Conversion
// Description: Converts between Go strings and character units and writes the
//              content of a fixed-capacity string to an io.Writer. 8-bit units
//              carry raw bytes, 16-bit units UTF-16 and 32-bit units code points.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package fixedstr

import (
	"io"
	"unicode/utf16"
	"unsafe"
)

// Units encodes s as units of U: bytes for 8-bit units, UTF-16 for 16-bit
// units and code points for 32-bit units.
func Units[U Unit](s string) []U {
	switch unitSize[U]() {
	case 1:
		out := make([]U, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = U(s[i])
		}
		return out
	case 2:
		enc := utf16.Encode([]rune(s))
		out := make([]U, len(enc))
		for i, c := range enc {
			out[i] = U(c)
		}
		return out
	default:
		runes := []rune(s)
		out := make([]U, len(runes))
		for i, r := range runes {
			out[i] = U(r)
		}
		return out
	}
}

// Decode is the inverse of Units. Invalid sequences decode to U+FFFD for
// 16- and 32-bit units; 8-bit units are copied verbatim.
func Decode[U Unit](units []U) string {
	switch unitSize[U]() {
	case 1:
		b := make([]byte, len(units))
		for i, c := range units {
			b[i] = byte(c)
		}
		return string(b)
	case 2:
		w := make([]uint16, len(units))
		for i, c := range units {
			w[i] = uint16(c)
		}
		return string(utf16.Decode(w))
	default:
		r := make([]rune, len(units))
		for i, c := range units {
			r[i] = rune(c)
		}
		return string(r)
	}
}

// String returns the content decoded into a Go string.
func (s *Basic[U, B]) String() string {
	return Decode(s.View())
}

// ResetString replaces the content with s encoded as units of U.
func (s *Basic[U, B]) ResetString(str string) {
	s.Reset(Units[U](str))
}

// AppendString appends str encoded as units of U.
func (s *Basic[U, B]) AppendString(str string) {
	s.Append(Units[U](str))
}

// WriteTo writes the content to w. 8-bit content is written as is without
// copying; wider units are written as UTF-8.
func (s *Basic[U, B]) WriteTo(w io.Writer) (int64, error) {
	v := s.View()
	if len(v) == 0 {
		return 0, nil
	}
	if unitSize[U]() == 1 {
		n, err := w.Write(unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)))
		return int64(n), err
	}
	n, err := io.WriteString(w, Decode(v))
	return int64(n), err
}
