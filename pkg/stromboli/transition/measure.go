package transition

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
)

// ErrViewUnavailable indicates the host platform could not resolve geometry
// for a handle, typically because the view was collapsed or already torn
// down. Measurers should wrap it so the pipeline can report the failure as
// the recoverable condition it is.
var ErrViewUnavailable = errors.New("host view unavailable")

// Measurer resolves the window-space geometry of a host view by handle.
// Measuring is the only suspending operation in the engine.
type Measurer interface {
	Measure(ctx context.Context, h Handle) (Metrics, error)
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(ctx context.Context, h Handle) (Metrics, error)

func (f MeasureFunc) Measure(ctx context.Context, h Handle) (Metrics, error) {
	return f(ctx, h)
}

// Pipeline drives geometry measurement for the items relevant to a route
// change. A route change snapshots the registry as the pending set; Resolve
// then queries each pending item sequentially, one host query at a time, and
// produces a single batch to merge into the registry.
//
// Each snapshot supersedes the previous one: a Resolve that finishes after
// its set was replaced reports its batch as stale and the batch is dropped,
// so a newer measurement pass is never overwritten by an older one.
type Pipeline struct {
	measurer   Measurer
	generation atomic.Int64
	busy       atomic.Bool

	mu      sync.Mutex
	pending []Item
}

// NewPipeline creates a pipeline that measures through m.
func NewPipeline(m Measurer) *Pipeline {
	return &Pipeline{measurer: m}
}

// Snapshot replaces the pending set with the given items and returns the new
// generation. Rendering must stay suppressed (Busy) until the set resolves.
func (p *Pipeline) Snapshot(items []Item) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = append([]Item(nil), items...)
	gen := p.generation.Inc()
	p.busy.Store(len(items) > 0)
	return gen
}

// Busy reports whether a non-empty pending set is unresolved. Consumers must
// not render while Busy, to avoid drawing with stale or partial geometry.
func (p *Pipeline) Busy() bool {
	return p.busy.Load()
}

// Resolve measures every pending item in order and returns the accumulated
// batch. A failed query is logged and its item omitted; it is not retried
// and does not abort the rest of the set. ok reports whether the batch
// belongs to the current generation; a stale batch must not be merged.
//
// On success the pending set is cleared and rendering may resume.
func (p *Pipeline) Resolve(ctx context.Context) (updates []MetricsUpdate, ok bool) {
	p.mu.Lock()
	gen := p.generation.Load()
	items := p.pending
	p.mu.Unlock()

	log := internal.GetLogger()
	if p.measurer == nil && len(items) > 0 {
		log.Warn("No measurer configured; leaving items unmeasured", "pending", len(items))
		items = nil
	}
	for _, item := range items {
		if ctx.Err() != nil {
			return updates, false
		}
		metrics, err := p.measurer.Measure(ctx, item.Handle)
		if err != nil {
			log.Warn("Failed to measure transition item",
				"item", item.Key().String(), "error", err)
			continue
		}
		updates = append(updates, MetricsUpdate{
			ID:        item.ID,
			RouteName: item.RouteName,
			Metrics:   metrics,
		})
	}

	// The staleness check and the clear happen under the same lock, so a
	// Snapshot racing in between cannot have its set wiped or rendering
	// unsuppressed by this older pass.
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.generation.Load() != gen {
		log.Debug("Dropping stale measurement batch", "generation", gen)
		return updates, false
	}
	p.pending = nil
	p.busy.Store(false)
	return updates, true
}

// PendingLen returns the size of the unresolved pending set.
func (p *Pipeline) PendingLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}
