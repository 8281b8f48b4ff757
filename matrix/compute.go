// Package matrix: parallel compute driver. This file fans a
// measure.Measure across the active sub-rectangle of a Matrix.
package matrix

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hmatrix/diag"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

const (
	progressMinInterval = 100 * time.Millisecond
	progressMinPercent  = 0.01
	logMinInterval      = 60 * time.Second
)

// ComputeOptions carries the host-supplied progress/log callbacks and the
// sequential-fallback switch. Zero value runs parallel with no progress
// callback; progress is then logged through diag.Info.
type ComputeOptions struct {
	onProgress func(done, total int)
	onLog      func(done, total int)
	sequential bool
}

// ComputeOption configures a Compute call.
type ComputeOption func(*ComputeOptions)

// OnProgress registers a callback throttled to at most once per ~100ms
// and at most once per ~1% of total work, matching spec.md §4.5's
// progress-bar consumer contract. The driver never renders anything
// itself; fn is the host's bar.
func OnProgress(fn func(done, total int)) ComputeOption {
	return func(o *ComputeOptions) { o.onProgress = fn }
}

// OnLog registers a callback throttled to at most once per 60s, matching
// spec.md §4.5's structured-log consumer contract. Without OnLog, Compute
// logs progress itself via diag.Info on the same throttle.
func OnLog(fn func(done, total int)) ComputeOption {
	return func(o *ComputeOptions) { o.onLog = fn }
}

// WithSequential selects the single-goroutine fallback. Observable
// results are identical to the parallel path; useful for hosts that
// cannot spare worker goroutines, or tests that want deterministic
// scheduling.
func WithSequential() ComputeOption {
	return func(o *ComputeOptions) { o.sequential = true }
}

// cellWork is one flattened (x, y) pair in the active sub-rectangle.
type cellWork struct {
	x, y int
}

// flattenWork builds the work queue for m's active sub-rectangle,
// collapsing both axes into one set and skipping the upper triangle
// when m is triangular, per spec.md §4.5's load-balance requirement.
func flattenWork(m *Matrix) []cellWork {
	work := make([]cellWork, 0, len(m.Values))
	for x := m.X.I; x < m.X.N; x++ {
		for y := m.Y.I; y < m.Y.N; y++ {
			if m.Triangular && y-m.Y.I > x-m.X.I {
				continue
			}
			work = append(work, cellWork{x: x, y: y})
		}
	}

	return work
}

// Compute fills every cell of m's active sub-rectangle by calling
// meas.Compare(strs[x], strs[y]) for each (x, y) in the iteration space
// spec.md §4.5 defines. m must already be allocated. strs must cover at
// least [0, m.Num).
//
// Stage 1 (Plan): flatten the iteration space into one work queue.
// Stage 2 (Fan out): run workers (errgroup-bounded parallel, or a single
// goroutine under WithSequential) that each Compare one cell and Set it.
// Stage 3 (Report): a mutex-guarded counter drives the throttled
// OnProgress/OnLog callbacks; Compute returns once every cell is set, or
// the first error/ctx cancellation is observed.
func Compute(ctx context.Context, m *Matrix, strs []strval.StringValue, meas measure.Measure, opts ...ComputeOption) error {
	if m.Values == nil {
		return ErrNotAllocated
	}

	var cfg ComputeOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	work := flattenWork(m)
	total := len(work)
	if total == 0 {
		return nil
	}

	onLog := cfg.onLog
	if onLog == nil {
		onLog = func(done, total int) {
			diag.Info("matrix: compute progress", "done", done, "total", total)
		}
	}
	reporter := newProgressReporter(total, cfg.onProgress, onLog)

	evalAndSet := func(w cellWork) error {
		v := meas.Compare(strs[w.x], strs[w.y])
		if err := m.Set(w.x, w.y, v); err != nil {
			return err
		}
		reporter.tick()

		return nil
	}

	if cfg.sequential {
		for _, w := range work {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := evalAndSet(w); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, w := range work {
		w := w
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return evalAndSet(w)
		})
	}

	return g.Wait()
}

// progressReporter drives the two throttled consumers spec.md §4.5
// describes from a single mutex-guarded done counter. Reporting is
// best-effort: a slow or absent callback never delays cell computation
// beyond the critical section itself, which is O(1).
type progressReporter struct {
	mu         sync.Mutex
	done       int
	total      int
	onProgress func(done, total int)
	onLog      func(done, total int)
	lastProg   time.Time
	lastLog    time.Time
	lastPct    int
}

func newProgressReporter(total int, onProgress, onLog func(done, total int)) *progressReporter {
	return &progressReporter{total: total, onProgress: onProgress, onLog: onLog}
}

func (r *progressReporter) tick() {
	r.mu.Lock()

	r.done++
	done := r.done
	now := time.Now()

	fireProg := false
	if r.onProgress != nil {
		pct := r.done * 100 / r.total
		if r.done == r.total || now.Sub(r.lastProg) >= progressMinInterval && pct-r.lastPct >= int(progressMinPercent*100) {
			fireProg = true
			r.lastProg = now
			r.lastPct = pct
		}
	}

	fireLog := false
	if r.onLog != nil {
		if r.done == r.total || now.Sub(r.lastLog) >= logMinInterval {
			fireLog = true
			r.lastLog = now
		}
	}
	r.mu.Unlock()

	if fireProg {
		r.onProgress(done, r.total)
	}
	if fireLog {
		r.onLog(done, r.total)
	}
}
