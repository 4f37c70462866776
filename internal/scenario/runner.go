// File: runner.go
// Title: Scenario Runner
// Description: Executes scenario steps against a registry instance, checks
//              expectations after every step and collects per-step results.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package scenario

import (
	"context"
	"strconv"

	fsserror "github.com/abeimler/fixed-size-string/core/error"
	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
	fsslog "github.com/abeimler/fixed-size-string/core/log"
)

// Snapshot is the observable state of an instance
type Snapshot struct {
	Unit string   `json:"unit"`
	Len  int      `json:"length"`
	Cap  int      `json:"capacity"`
	View string   `json:"view"`
	Raw  []uint32 `json:"raw"`
}

// TakeSnapshot captures the current state of in
func TakeSnapshot(in Instance) Snapshot {
	return Snapshot{
		Unit: in.Unit(),
		Len:  in.Len(),
		Cap:  in.Cap(),
		View: in.View(),
		Raw:  in.Raw(),
	}
}

// StepResult is the outcome of one step. Number is 1-based.
type StepResult struct {
	Number   int      `json:"step"`
	Step     string   `json:"op"`
	Snapshot Snapshot `json:"state"`
	// Err is the error returned by the operation itself
	Err error `json:"-"`
	// Failures are unmet expectations
	Failures []error `json:"-"`
}

// Passed reports whether all expectations of the step held
func (r StepResult) Passed() bool {
	return len(r.Failures) == 0
}

// Result is the outcome of a scenario run
type Result struct {
	Name     string       `json:"name"`
	Source   string       `json:"source,omitempty"`
	Initial  Snapshot     `json:"initial"`
	Steps    []StepResult `json:"steps"`
	Final    Snapshot     `json:"final"`
	Failures int          `json:"failures"`
}

// Passed reports whether every step passed
func (r *Result) Passed() bool {
	return r.Failures == 0
}

// Runner executes scenarios
type Runner struct {
	registry *Registry
	logger   *fsslog.Logger
}

// NewRunner creates a runner. A nil registry uses Default, a nil logger the
// default logger.
func NewRunner(registry *Registry, logger *fsslog.Logger) *Runner {
	if registry == nil {
		registry = Default()
	}
	if logger == nil {
		logger = fsslog.GetDefault()
	}
	return &Runner{registry: registry, logger: logger.WithName("scenario")}
}

// RunFile loads and runs a scenario file
func (r *Runner) RunFile(ctx context.Context, path string) (*Result, error) {
	sc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, sc)
}

// Run executes sc. The result is returned whenever the scenario could be
// started; the error is non-nil if any expectation failed, the scenario is
// invalid or ctx was cancelled.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	logger := r.logger.WithFields(fsslog.Fields{
		"scenario": sc.Name,
		"unit":     sc.Unit,
		"capacity": sc.Capacity,
	})

	in, err := r.registry.New(sc.Unit, sc.Capacity)
	if err != nil {
		return nil, err
	}
	if sc.Init != nil {
		in.Reset(*sc.Init)
	}

	timer := logger.StartTimer("scenario " + sc.Name).WithField("steps", len(sc.Steps))
	result := &Result{
		Name:    sc.Name,
		Source:  sc.Source,
		Initial: TakeSnapshot(in),
		Steps:   make([]StepResult, 0, len(sc.Steps)),
	}

	var firstFailure error
	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			timer.StopWithError(err)
			result.Final = TakeSnapshot(in)
			return result, fsserrors.OperationFailed(fsserrors.ModuleScenario, "run", err).
				WithDetail("step", i+1)
		}

		sr := r.runStep(in, i+1, st)
		result.Steps = append(result.Steps, sr)

		if logger.IsLevelEnabled(fsslog.LevelTrace) {
			fields := fsslog.Fields{
				"step":   sr.Number,
				"op":     sr.Step,
				"length": sr.Snapshot.Len,
				"view":   sr.Snapshot.View,
			}
			if sr.Err != nil {
				fields["step_error"] = fsserror.GetCode(sr.Err)
			}
			logger.Trace("step executed", fields)
		}

		for _, f := range sr.Failures {
			logger.LogError(f)
			if firstFailure == nil {
				firstFailure = f
			}
		}
		if !sr.Passed() {
			result.Failures++
		}
	}

	result.Final = TakeSnapshot(in)

	if firstFailure != nil {
		err := fsserrors.NewErrorBuilder(fsserrors.ModuleScenario).
			Operation("run").
			Messagef("scenario %q: %d of %d steps failed", sc.Name, result.Failures, len(sc.Steps)).
			Cause(firstFailure).
			Code(fsserror.CodeExpectationFailed).
			Detail("scenario", sc.Name).
			Detail("failed_steps", result.Failures).
			Build()
		timer.StopWithError(err)
		return result, err
	}

	timer.Stop()
	return result, nil
}

func (r *Runner) runStep(in Instance, number int, st Step) StepResult {
	sr := StepResult{Number: number, Step: st.String()}

	switch st.Op {
	case OpReset:
		in.Reset(st.Text)
	case OpAppend:
		in.Append(st.Text)
	case OpResetTerminated:
		in.ResetTerminated(st.Text)
	case OpAppendTerminated:
		in.AppendTerminated(st.Text)
	case OpRemovePrefix:
		sr.Err = in.RemovePrefix(st.Count)
	case OpRemoveSuffix:
		sr.Err = in.RemoveSuffix(st.Count)
	case OpFill:
		sr.Err = in.Fill(st.Text)
	case OpClear:
		in.Clear()
	case OpRepair:
		in.Repair()
	case OpPoke:
		sr.Err = in.Poke(st.Index, st.Text)
	}

	sr.Snapshot = TakeSnapshot(in)
	sr.Failures = check(number, st.Expect, sr)
	return sr
}

// check compares the step outcome with exp. A step error without an
// expected error code is a failure.
func check(number int, exp *Expect, sr StepResult) []error {
	var failures []error

	wantCode := ""
	if exp != nil {
		wantCode = exp.Error
	}
	gotCode := ""
	if sr.Err != nil {
		gotCode = string(fsserror.GetCode(sr.Err))
	}
	if wantCode != gotCode {
		f := fsserrors.ExpectationFailed(number, "error", orNone(wantCode), orNone(gotCode))
		if sr.Err != nil {
			f = f.WithContext(sr.Err.Error())
		}
		failures = append(failures, f)
	}

	if exp == nil {
		return failures
	}
	if exp.Length != nil && *exp.Length != sr.Snapshot.Len {
		failures = append(failures, fsserrors.ExpectationFailed(number, "length", *exp.Length, sr.Snapshot.Len))
	}
	if exp.View != nil && *exp.View != sr.Snapshot.View {
		failures = append(failures, fsserrors.ExpectationFailed(number, "view", strconv.Quote(*exp.View), strconv.Quote(sr.Snapshot.View)))
	}
	return failures
}

func orNone(code string) string {
	if code == "" {
		return "none"
	}
	return code
}
