package gesture

import (
	"context"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
)

// TouchSource reads absolute touch events from an evdev input device and
// feeds them to a Recognizer. This is the input path on handheld devices
// where touch arrives straight from the kernel rather than through SDL.
type TouchSource struct {
	dev *evdev.InputDevice
	rec *Recognizer

	x, y    float64
	down    bool
	pending bool
}

// OpenTouchSource opens the input device at path (e.g. /dev/input/event3)
// and binds it to the recognizer.
func OpenTouchSource(path string, rec *Recognizer) (*TouchSource, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return &TouchSource{dev: dev, rec: rec}, nil
}

// Run pumps events until the context is cancelled or the device fails.
// It blocks; run it on its own goroutine.
func (s *TouchSource) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.dev.Close()
	}()

	log := internal.GetLogger()
	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn("Touch device read failed", "error", err)
			return err
		}
		s.handle(ev)
	}
}

func (s *TouchSource) handle(ev *evdev.InputEvent) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			s.x = float64(ev.Value)
			s.pending = true
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			s.y = float64(ev.Value)
			s.pending = true
		}
	case evdev.EV_KEY:
		if ev.Code != evdev.BTN_TOUCH {
			return
		}
		if ev.Value != 0 {
			s.down = true
			s.rec.PointerDown(s.x, s.y)
		} else {
			s.down = false
			s.pending = false
			// Cancellation is the normal outcome of most drags.
			_ = s.rec.PointerUp(s.x, s.y)
		}
	case evdev.EV_SYN:
		// Touch coordinates are only coherent at sync boundaries.
		if s.down && s.pending {
			s.rec.PointerMove(s.x, s.y)
			s.pending = false
		}
	}
}
