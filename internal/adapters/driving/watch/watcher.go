// Package watch re-runs days whenever their input files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driving"
	"github.com/custodia-labs/advent-cli/internal/logger"
)

// DefaultDebounce is how long a file must stay quiet before its day re-runs.
const DefaultDebounce = 300 * time.Millisecond

// Options configure a Watcher.
type Options struct {
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration

	// OnReport receives each successful re-run.
	OnReport func(domain.Report)

	// OnError receives each failed re-run. The watcher keeps going.
	OnError func(day int, err error)
}

// Watcher watches input files and re-runs their days one at a time.
type Watcher struct {
	runner  driving.Runner
	opts    Options
	watcher *fsnotify.Watcher
	paths   map[string]int
	pending map[int]time.Time
}

// New watches the input files of days. An empty days list watches every day.
// The directories holding the inputs must exist.
func New(runner driving.Runner, days []int, opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if len(days) == 0 {
		days = runner.Days()
	}

	paths := make(map[string]int, len(days))
	dirs := make(map[string]bool)
	for _, day := range days {
		path, err := filepath.Abs(runner.InputPath(day))
		if err != nil {
			return nil, fmt.Errorf("resolve input path for day %d: %w", day, err)
		}
		paths[path] = day
		dirs[filepath.Dir(path)] = true
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("watching %s", dir)
	}

	return &Watcher{
		runner:  runner,
		opts:    opts,
		watcher: fw,
		paths:   paths,
		pending: make(map[int]time.Time),
	}, nil
}

// DayFor returns the day whose input lives at path.
func (w *Watcher) DayFor(path string) (int, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return 0, false
	}
	day, ok := w.paths[abs]
	return day, ok
}

// Run processes file events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	ticker := time.NewTicker(w.opts.Debounce / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event, time.Now())

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)

		case now := <-ticker.C:
			w.flush(ctx, now)
		}
	}
}

// Close stops watching without waiting for Run.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// handleEvent records a change to a watched input.
func (w *Watcher) handleEvent(event fsnotify.Event, now time.Time) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	day, ok := w.DayFor(event.Name)
	if !ok {
		return
	}
	logger.Debug("watch: %s %s", event.Op, event.Name)
	w.pending[day] = now
}

// flush re-runs every day that has been quiet for the debounce window, in day order.
func (w *Watcher) flush(ctx context.Context, now time.Time) {
	var due []int
	for day, at := range w.pending {
		if now.Sub(at) >= w.opts.Debounce {
			due = append(due, day)
			delete(w.pending, day)
		}
	}
	sort.Ints(due)

	for _, day := range due {
		if ctx.Err() != nil {
			return
		}
		_, err := w.runner.Run(ctx, driving.RunOptions{
			Days:     []int{day},
			OnReport: w.opts.OnReport,
		})
		if err != nil && w.opts.OnError != nil {
			w.opts.OnError(day, err)
		}
	}
}
