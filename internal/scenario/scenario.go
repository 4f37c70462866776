// File: scenario.go
// Title: Scenario Definition
// Description: Scripted sequences of container operations, decoded from YAML
//              or TOML files, with per-step expectations.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package scenario

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/abeimler/fixed-size-string/core/config"
	fsserror "github.com/abeimler/fixed-size-string/core/error"
	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
)

// Op names a step operation
type Op string

const (
	OpReset            Op = "reset"
	OpAppend           Op = "append"
	OpResetTerminated  Op = "reset_terminated"
	OpAppendTerminated Op = "append_terminated"
	OpRemovePrefix     Op = "remove_prefix"
	OpRemoveSuffix     Op = "remove_suffix"
	OpFill             Op = "fill"
	OpClear            Op = "clear"
	OpRepair           Op = "repair"
	OpPoke             Op = "poke"
)

// Ops lists every supported operation
var Ops = []Op{
	OpReset, OpAppend, OpResetTerminated, OpAppendTerminated,
	OpRemovePrefix, OpRemoveSuffix, OpFill, OpClear, OpRepair, OpPoke,
}

func (o Op) takesText() bool {
	switch o {
	case OpReset, OpAppend, OpResetTerminated, OpAppendTerminated, OpFill, OpPoke:
		return true
	}
	return false
}

func (o Op) takesCount() bool {
	return o == OpRemovePrefix || o == OpRemoveSuffix
}

// Scenario is a named list of steps run against one instantiation
type Scenario struct {
	Name     string  `yaml:"name" toml:"name"`
	Unit     string  `yaml:"unit" toml:"unit"`
	Capacity int     `yaml:"capacity" toml:"capacity"`
	Init     *string `yaml:"init,omitempty" toml:"init,omitempty"`
	Steps    []Step  `yaml:"steps" toml:"steps"`

	// Source is the file the scenario was loaded from
	Source string `yaml:"-" toml:"-"`
}

// Step is one operation with an optional expectation
type Step struct {
	Op     Op      `yaml:"op" toml:"op"`
	Text   string  `yaml:"text,omitempty" toml:"text,omitempty"`
	Count  int     `yaml:"count,omitempty" toml:"count,omitempty"`
	Index  int     `yaml:"index,omitempty" toml:"index,omitempty"`
	Expect *Expect `yaml:"expect,omitempty" toml:"expect,omitempty"`
}

// Expect lists the observable state after a step. Unset fields are not checked.
type Expect struct {
	View   *string `yaml:"view,omitempty" toml:"view,omitempty"`
	Length *int    `yaml:"length,omitempty" toml:"length,omitempty"`
	// Error is the expected error code of the step, e.g. OUT_OF_RANGE
	Error string `yaml:"error,omitempty" toml:"error,omitempty"`
}

// String renders the step the way it is logged
func (s Step) String() string {
	switch {
	case s.Op == OpPoke:
		return fmt.Sprintf("%s[%d] %q", s.Op, s.Index, s.Text)
	case s.Op.takesText():
		return fmt.Sprintf("%s %q", s.Op, s.Text)
	case s.Op.takesCount():
		return fmt.Sprintf("%s %d", s.Op, s.Count)
	default:
		return string(s.Op)
	}
}

// Load reads a scenario file; the format follows the extension
func Load(path string) (*Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fsserrors.NotFound(fsserrors.ModuleScenario, "load", path)
		}
		return nil, fsserrors.OperationFailed(fsserrors.ModuleScenario, "load", err)
	}

	sc, err := Parse(content, config.DetectFormat(path))
	if err != nil {
		return nil, fsserror.Wrap(err, "scenario "+path).WithDetail("file_path", path)
	}
	sc.Source = path
	return sc, nil
}

// Parse decodes and validates a scenario document
func Parse(content []byte, format config.Format) (*Scenario, error) {
	var sc Scenario
	if err := config.Decode(content, format, &sc); err != nil {
		return nil, err
	}
	sc.Unit = strings.ToLower(strings.TrimSpace(sc.Unit))
	for i := range sc.Steps {
		sc.Steps[i].Op = Op(strings.ToLower(strings.TrimSpace(string(sc.Steps[i].Op))))
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the structure of the scenario. Whether unit and capacity
// are instantiated is checked when it runs.
func (sc *Scenario) Validate() error {
	if strings.TrimSpace(sc.Name) == "" {
		return fsserrors.NewErrorBuilder(fsserrors.ModuleScenario).
			Operation("validate_name").
			Message("scenario name is required").
			Code(fsserror.CodeRequiredField).
			Detail("field", "name").
			Build()
	}
	if sc.Unit == "" {
		return fsserrors.ValidationFailed(fsserrors.ModuleScenario, "unit", sc.Unit, "unit is required")
	}
	if sc.Capacity <= 0 {
		return fsserrors.ValidationFailed(fsserrors.ModuleScenario, "capacity", sc.Capacity, "must be positive")
	}

	for i, st := range sc.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		if !slices.Contains(Ops, st.Op) {
			return fsserrors.ValidationFailed(fsserrors.ModuleScenario, field+".op", st.Op, "unknown operation")
		}
		if st.Op == OpPoke && st.Index < 0 {
			return fsserrors.ValidationFailed(fsserrors.ModuleScenario, field+".index", st.Index, "must not be negative")
		}
		if st.Expect != nil && st.Expect.Error != "" && !fsserror.Code(st.Expect.Error).IsValid() {
			return fsserrors.ValidationFailed(fsserrors.ModuleScenario, field+".expect.error", st.Expect.Error, "unknown error code")
		}
	}
	return nil
}
