// Package gesture recognizes the backward navigation swipe: a drag that
// starts at the leading edge of the screen and travels far enough to count
// as a completed back gesture. It produces navigate-back intents; it does
// not own the navigation stack and does not animate anything.
package gesture

import "errors"

// ErrSwipeCancelled indicates a drag ended before reaching the completion
// threshold. This is normal flow control, not a failure.
var ErrSwipeCancelled = errors.New("swipe cancelled before threshold")

// Orientation selects the swipe axis for the stack style.
type Orientation int

const (
	// Horizontal is the standard push/pop stack: swipe right from the left
	// edge to go back.
	Horizontal Orientation = iota
	// Vertical is the modal stack: swipe down from the top edge to dismiss.
	Vertical
)

const (
	defaultEdgeWidth = 30
	defaultThreshold = 0.5
)

// Config tunes a Recognizer.
type Config struct {
	Orientation Orientation
	EdgeWidth   float64 // Drag must begin within this distance of the leading edge (default 30)
	Threshold   float64 // Fraction of Distance that completes the gesture (default 0.5)
	Distance    float64 // Full travel distance: window width (Horizontal) or height (Vertical)
}

// Recognizer turns pointer samples into back-navigation intents. Feed it
// PointerDown/PointerMove/PointerUp from the host input layer; it invokes
// the back callback only when a drag past threshold completes.
//
// A nil back callback makes the recognizer inert, which is how the active
// route being the bottom of the stack is expressed.
type Recognizer struct {
	cfg    Config
	onBack func()

	active bool
	startX float64
	startY float64
	travel float64
}

// NewRecognizer creates a recognizer. onBack may be nil; use SetOnBack when
// the active route changes.
func NewRecognizer(cfg Config, onBack func()) *Recognizer {
	if cfg.EdgeWidth <= 0 {
		cfg.EdgeWidth = defaultEdgeWidth
	}
	if cfg.Threshold <= 0 || cfg.Threshold > 1 {
		cfg.Threshold = defaultThreshold
	}
	return &Recognizer{cfg: cfg, onBack: onBack}
}

// SetOnBack swaps the back callback. Pass nil while the bottom-most route is
// active so no gesture can fire.
func (r *Recognizer) SetOnBack(onBack func()) {
	r.onBack = onBack
	if onBack == nil {
		r.active = false
	}
}

// PointerDown begins a drag. Only drags starting within the edge region of
// the leading edge arm the recognizer.
func (r *Recognizer) PointerDown(x, y float64) {
	if r.onBack == nil {
		return
	}
	switch r.cfg.Orientation {
	case Horizontal:
		r.active = x <= r.cfg.EdgeWidth
	case Vertical:
		r.active = y <= r.cfg.EdgeWidth
	}
	if r.active {
		r.startX, r.startY = x, y
		r.travel = 0
	}
}

// PointerMove updates the drag. Backward travel is clamped at zero; the
// gesture cannot complete by overshooting in the wrong direction.
func (r *Recognizer) PointerMove(x, y float64) {
	if !r.active {
		return
	}
	switch r.cfg.Orientation {
	case Horizontal:
		r.travel = x - r.startX
	case Vertical:
		r.travel = y - r.startY
	}
	if r.travel < 0 {
		r.travel = 0
	}
}

// PointerUp ends the drag. A drag past threshold invokes the back callback
// and returns nil; anything else returns ErrSwipeCancelled. Ups without a
// preceding armed down are cancelled too.
func (r *Recognizer) PointerUp(x, y float64) error {
	if !r.active {
		return ErrSwipeCancelled
	}
	r.PointerMove(x, y)
	r.active = false
	if r.cfg.Distance > 0 && r.travel >= r.cfg.Threshold*r.cfg.Distance {
		r.onBack()
		return nil
	}
	return ErrSwipeCancelled
}

// Progress reports the current drag as a fraction of the full travel
// distance, clamped to [0, 1]. Hosts can use it to drive the transition
// state machine while the finger is down.
func (r *Recognizer) Progress() float64 {
	if !r.active || r.cfg.Distance <= 0 {
		return 0
	}
	p := r.travel / r.cfg.Distance
	if p > 1 {
		p = 1
	}
	return p
}

// Active reports whether a drag is in flight.
func (r *Recognizer) Active() bool {
	return r.active
}
