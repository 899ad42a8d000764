package overlay

import (
	"context"
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/transition"
)

// FrameTable is the SDL-side geometry source for the measurement pipeline.
// Screens record the window-space rect of each participating element as they
// lay it out; the pipeline measures items by looking their handles up here.
//
// Handles must be comparable values.
type FrameTable struct {
	mu     sync.RWMutex
	frames map[transition.Handle]sdl.FRect
}

// NewFrameTable creates an empty frame table.
func NewFrameTable() *FrameTable {
	return &FrameTable{frames: make(map[transition.Handle]sdl.FRect)}
}

// SetFrame records the current window-space rect for a handle. Called by
// screen layout code every time the element's geometry settles.
func (t *FrameTable) SetFrame(h transition.Handle, frame sdl.FRect) {
	t.mu.Lock()
	t.frames[h] = frame
	t.mu.Unlock()
}

// ClearFrame forgets a handle. Called when the element's view is torn down
// or collapsed; subsequent measurements of it fail and are skipped.
func (t *FrameTable) ClearFrame(h transition.Handle) {
	t.mu.Lock()
	delete(t.frames, h)
	t.mu.Unlock()
}

// Measure implements transition.Measurer.
func (t *FrameTable) Measure(ctx context.Context, h transition.Handle) (transition.Metrics, error) {
	if err := ctx.Err(); err != nil {
		return transition.Metrics{}, err
	}
	t.mu.RLock()
	frame, ok := t.frames[h]
	t.mu.RUnlock()
	if !ok {
		return transition.Metrics{}, fmt.Errorf("handle %v: %w", h, transition.ErrViewUnavailable)
	}
	return transition.Metrics{
		X:      float64(frame.X),
		Y:      float64(frame.Y),
		Width:  float64(frame.W),
		Height: float64(frame.H),
	}, nil
}
