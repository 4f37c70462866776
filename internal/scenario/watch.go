// File: watch.go
// Title: Scenario File Watcher
// Description: Reports changes to scenario files so they can be re-run while
//              being edited.
// Author: abeimler
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation based on fsnotify

package scenario

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	fsserrors "github.com/abeimler/fixed-size-string/core/errors"
	fsslog "github.com/abeimler/fixed-size-string/core/log"
)

// DefaultDebounce collapses the burst of events an editor emits on save
const DefaultDebounce = 100 * time.Millisecond

// Watcher calls a handler whenever one of a set of files changes
type Watcher struct {
	paths    map[string]bool
	debounce time.Duration
	logger   *fsslog.Logger
}

// NewWatcher watches paths. Directories are watched rather than files so
// that editors replacing a file on save are noticed.
func NewWatcher(paths []string, logger *fsslog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = fsslog.GetDefault()
	}
	w := &Watcher{
		paths:    make(map[string]bool, len(paths)),
		debounce: DefaultDebounce,
		logger:   logger.WithName("watch"),
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fsserrors.InvalidInput(fsserrors.ModuleScenario, "watch", p, "a resolvable path")
		}
		w.paths[abs] = true
	}
	return w, nil
}

// WithDebounce sets the quiet period before a change is reported
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run blocks until ctx is done, calling onChange with the path as given to
// NewWatcher, in absolute form, after each debounced change.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fsserrors.OperationFailed(fsserrors.ModuleScenario, "watch", err)
	}
	defer fw.Close()

	dirs := make(map[string]bool)
	for p := range w.paths {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fsserrors.OperationFailed(fsserrors.ModuleScenario, "watch", err).
				WithDetail("dir", dir)
		}
	}

	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !w.paths[name] {
				continue
			}
			w.logger.Debug("scenario file changed", fsslog.Fields{"path": name, "event": ev.Op.String()})
			pending[name] = true
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnWithErr("watch error", err)

		case <-timer.C:
			for p := range pending {
				onChange(p)
			}
			clear(pending)
		}
	}
}
