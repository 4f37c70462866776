// File: instance.go
// Title: Type-Erased Instances
// Description: Wraps a concrete fixedstr.Basic instantiation behind an
//              interface so scenarios can pick the unit width and capacity
//              at run time.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package scenario

import (
	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
	"github.com/abeimler/fixed-size-string/utils/fixedstr"
)

// Unit names accepted in scenarios and on the command line
const (
	UnitNarrow = "narrow"
	UnitWide   = "wide"
	UnitU8     = "u8"
	UnitU16    = "u16"
	UnitU32    = "u32"
)

// Instance is one fixed-capacity string of a registered instantiation.
// Text arguments are encoded into the instance's units.
type Instance interface {
	Unit() string
	Len() int
	Cap() int
	// View decodes the active content
	View() string
	// Raw returns every storage unit, terminator slot included, widened
	Raw() []uint32

	Reset(text string)
	ResetTerminated(text string)
	Append(text string)
	AppendTerminated(text string)
	RemovePrefix(n int) error
	RemoveSuffix(n int) error
	// Fill requires text to encode to exactly one unit
	Fill(text string) error
	Clear()
	Repair()
	// Poke writes units straight into storage at index without updating
	// the length
	Poke(index int, text string) error

	// Clone returns an independent copy
	Clone() Instance
	// Equal reports content equality with another instance of the same
	// instantiation; different instantiations are never equal
	Equal(other Instance) bool
}

type instance[U fixedstr.Unit, B any] struct {
	unit string
	s    fixedstr.Basic[U, B]
}

func (in *instance[U, B]) Unit() string { return in.unit }
func (in *instance[U, B]) Len() int { return in.s.Len() }
func (in *instance[U, B]) Cap() int { return in.s.Cap() }
func (in *instance[U, B]) View() string { return in.s.String() }
func (in *instance[U, B]) Clear() { in.s.Clear() }
func (in *instance[U, B]) Repair() { in.s.Repair() }
func (in *instance[U, B]) Reset(t string) { in.s.ResetString(t) }
func (in *instance[U, B]) Append(t string) {
	in.s.AppendString(t)
}

func (in *instance[U, B]) ResetTerminated(t string) {
	in.s.ResetTerminated(fixedstr.Units[U](t))
}

func (in *instance[U, B]) AppendTerminated(t string) {
	in.s.AppendTerminated(fixedstr.Units[U](t))
}

func (in *instance[U, B]) RemovePrefix(n int) error { return in.s.TryRemovePrefix(n) }
func (in *instance[U, B]) RemoveSuffix(n int) error { return in.s.TryRemoveSuffix(n) }

func (in *instance[U, B]) Raw() []uint32 {
	data := in.s.Data()
	out := make([]uint32, len(data))
	for i, u := range data {
		out[i] = uint32(u)
	}
	return out
}

func (in *instance[U, B]) Fill(t string) error {
	units := fixedstr.Units[U](t)
	if len(units) != 1 {
		return fsserrors.InvalidInput(fsserrors.ModuleScenario, "fill", t, "exactly one unit")
	}
	in.s.Fill(units[0])
	return nil
}

func (in *instance[U, B]) Poke(index int, t string) error {
	units := fixedstr.Units[U](t)
	data := in.s.Data()
	if index < 0 || index+len(units) > len(data) {
		return fsserrors.OutOfRange(fsserrors.ModuleScenario, "poke", index, 0, len(data)-len(units))
	}
	copy(data[index:], units)
	return nil
}

func (in *instance[U, B]) Clone() Instance {
	c := *in
	return &c
}

func (in *instance[U, B]) Equal(other Instance) bool {
	o, ok := other.(*instance[U, B])
	return ok && in.unit == o.unit && in.s.Equal(&o.s)
}
