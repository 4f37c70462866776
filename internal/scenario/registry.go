// File: registry.go
// Title: Instantiation Registry
// Description: Maps (unit, capacity) pairs to concrete fixedstr
//              instantiations. Capacities are type-level, so every supported
//              pair is instantiated here once.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package scenario

import (
	"slices"
	"sort"
	"strings"
	"sync"

	fsserror "github.com/abeimler/fixed-size-string/core/error"
	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
	"github.com/abeimler/fixed-size-string/utils/fixedstr"
)

// Capacities instantiated for every unit width
var Capacities = []int{5, 8, 10, 16, 32, 64, 128, 256}

type key struct {
	unit     string
	capacity int
}

// Registry creates instances by unit name and capacity
type Registry struct {
	mu        sync.RWMutex
	factories map[key]func() Instance
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[key]func() Instance)}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry holding every built-in instantiation
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		registerNarrow(r)
		registerWide(r)
		registerU8(r)
		registerU16(r)
		registerU32(r)
		defaultRegistry = r
	})
	return defaultRegistry
}

// Register adds the instantiation fixedstr.Basic[U, B] under unit. The
// capacity is taken from B.
func Register[U fixedstr.Unit, B any](r *Registry, unit string) {
	var probe fixedstr.Basic[U, B]
	k := key{unit: strings.ToLower(unit), capacity: probe.Cap()}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[k] = func() Instance {
		return &instance[U, B]{unit: k.unit}
	}
}

// New returns an empty instance
func (r *Registry) New(unit string, capacity int) (Instance, error) {
	r.mu.RLock()
	factory, ok := r.factories[key{unit: strings.ToLower(unit), capacity: capacity}]
	r.mu.RUnlock()

	if !ok {
		return nil, fsserrors.NewErrorBuilder(fsserrors.ModuleScenario).
			Operation("instantiate").
			Messagef("no instantiation for unit %q with capacity %d", unit, capacity).
			Code(fsserror.CodeUnsupportedInstance).
			Detail("unit", unit).
			Detail("capacity", capacity).
			Detail("supported_units", r.Units()).
			Build()
	}
	return factory(), nil
}

// Of returns an instance constructed from text with explicit length
func (r *Registry) Of(unit string, capacity int, text string) (Instance, error) {
	in, err := r.New(unit, capacity)
	if err != nil {
		return nil, err
	}
	in.Reset(text)
	return in, nil
}

// Units returns the registered unit names, sorted
func (r *Registry) Units() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var units []string
	for k := range r.factories {
		if !slices.Contains(units, k.unit) {
			units = append(units, k.unit)
		}
	}
	sort.Strings(units)
	return units
}

// CapacitiesOf returns the registered capacities of unit, ascending
func (r *Registry) CapacitiesOf(unit string) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var caps []int
	for k := range r.factories {
		if k.unit == strings.ToLower(unit) {
			caps = append(caps, k.capacity)
		}
	}
	sort.Ints(caps)
	return caps
}

func registerNarrow(r *Registry) {
	Register[byte, [6]byte](r, UnitNarrow)
	Register[byte, [9]byte](r, UnitNarrow)
	Register[byte, [11]byte](r, UnitNarrow)
	Register[byte, [17]byte](r, UnitNarrow)
	Register[byte, [33]byte](r, UnitNarrow)
	Register[byte, [65]byte](r, UnitNarrow)
	Register[byte, [129]byte](r, UnitNarrow)
	Register[byte, [257]byte](r, UnitNarrow)
}

func registerWide(r *Registry) {
	Register[rune, [6]rune](r, UnitWide)
	Register[rune, [9]rune](r, UnitWide)
	Register[rune, [11]rune](r, UnitWide)
	Register[rune, [17]rune](r, UnitWide)
	Register[rune, [33]rune](r, UnitWide)
	Register[rune, [65]rune](r, UnitWide)
	Register[rune, [129]rune](r, UnitWide)
	Register[rune, [257]rune](r, UnitWide)
}

func registerU8(r *Registry) {
	Register[uint8, [6]uint8](r, UnitU8)
	Register[uint8, [9]uint8](r, UnitU8)
	Register[uint8, [11]uint8](r, UnitU8)
	Register[uint8, [17]uint8](r, UnitU8)
	Register[uint8, [33]uint8](r, UnitU8)
	Register[uint8, [65]uint8](r, UnitU8)
	Register[uint8, [129]uint8](r, UnitU8)
	Register[uint8, [257]uint8](r, UnitU8)
}

func registerU16(r *Registry) {
	Register[uint16, [6]uint16](r, UnitU16)
	Register[uint16, [9]uint16](r, UnitU16)
	Register[uint16, [11]uint16](r, UnitU16)
	Register[uint16, [17]uint16](r, UnitU16)
	Register[uint16, [33]uint16](r, UnitU16)
	Register[uint16, [65]uint16](r, UnitU16)
	Register[uint16, [129]uint16](r, UnitU16)
	Register[uint16, [257]uint16](r, UnitU16)
}

func registerU32(r *Registry) {
	Register[uint32, [6]uint32](r, UnitU32)
	Register[uint32, [9]uint32](r, UnitU32)
	Register[uint32, [11]uint32](r, UnitU32)
	Register[uint32, [17]uint32](r, UnitU32)
	Register[uint32, [33]uint32](r, UnitU32)
	Register[uint32, [65]uint32](r, UnitU32)
	Register[uint32, [129]uint32](r, UnitU32)
	Register[uint32, [257]uint32](r, UnitU32)
}
