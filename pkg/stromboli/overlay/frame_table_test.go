package overlay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/transition"
)

func TestFrameTable_Measure(t *testing.T) {
	ft := NewFrameTable()
	ft.SetFrame("avatar-view", sdl.FRect{X: 16, Y: 120, W: 48, H: 48})

	m, err := ft.Measure(context.Background(), "avatar-view")
	require.NoError(t, err)
	assert.Equal(t, transition.Metrics{X: 16, Y: 120, Width: 48, Height: 48}, m)
}

// TestFrameTable_MissingHandleIsUnavailable: a collapsed or torn-down view
// reports the recoverable measurement failure, not a crash.
func TestFrameTable_MissingHandleIsUnavailable(t *testing.T) {
	ft := NewFrameTable()

	_, err := ft.Measure(context.Background(), "ghost")
	assert.ErrorIs(t, err, transition.ErrViewUnavailable)
}

func TestFrameTable_ClearFrame(t *testing.T) {
	ft := NewFrameTable()
	ft.SetFrame("v", sdl.FRect{W: 10, H: 10})
	ft.ClearFrame("v")

	_, err := ft.Measure(context.Background(), "v")
	assert.ErrorIs(t, err, transition.ErrViewUnavailable)
}

func TestFrameTable_MeasureHonorsCancelledContext(t *testing.T) {
	ft := NewFrameTable()
	ft.SetFrame("v", sdl.FRect{W: 10, H: 10})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ft.Measure(ctx, "v")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveFrame_StyleDrivesGeometry(t *testing.T) {
	item := transition.Item{
		ID: "avatar", RouteName: "List",
		Metrics: &transition.Metrics{X: 0, Y: 0, Width: 40, Height: 40},
	}
	style := transition.Style{
		transition.PropX:      transition.Interp(0, 1, 0, 100),
		transition.PropY:      transition.Interp(0, 1, 0, 200),
		transition.PropWidth:  transition.Interp(0, 1, 40, 80),
		transition.PropHeight: transition.Interp(0, 1, 40, 80),
	}

	frame, opacity, ok := resolveFrame(item, style, 0.5)
	require.True(t, ok)
	assert.Equal(t, sdl.FRect{X: 50, Y: 100, W: 60, H: 60}, frame)
	assert.Equal(t, 1.0, opacity, "opacity defaults to opaque")
}

// TestResolveFrame_FallsBackToMetrics: properties the style leaves alone
// come from measured geometry.
func TestResolveFrame_FallsBackToMetrics(t *testing.T) {
	item := transition.Item{
		ID: "avatar", RouteName: "List",
		Metrics: &transition.Metrics{X: 10, Y: 20, Width: 30, Height: 40},
	}
	style := transition.Style{
		transition.PropOpacity: transition.Interp(0, 1, 1, 0),
	}

	frame, opacity, ok := resolveFrame(item, style, 0.25)
	require.True(t, ok)
	assert.Equal(t, sdl.FRect{X: 10, Y: 20, W: 30, H: 40}, frame)
	assert.Equal(t, 0.75, opacity)
}

// TestResolveFrame_UnmeasuredWithoutStyleSkips enforces the invariant that
// unmeasured items never feed clone geometry.
func TestResolveFrame_UnmeasuredWithoutStyleSkips(t *testing.T) {
	item := transition.Item{ID: "avatar", RouteName: "List"}

	_, _, ok := resolveFrame(item, nil, 0.5)
	assert.False(t, ok)
}

func TestResolveFrame_UnmeasuredWithFullStyleRenders(t *testing.T) {
	item := transition.Item{ID: "avatar", RouteName: "List"}
	style := transition.Style{
		transition.PropX:      transition.Interp(0, 1, 0, 0),
		transition.PropY:      transition.Interp(0, 1, 0, 0),
		transition.PropWidth:  transition.Interp(0, 1, 50, 50),
		transition.PropHeight: transition.Interp(0, 1, 50, 50),
	}

	frame, _, ok := resolveFrame(item, style, 0.5)
	require.True(t, ok)
	assert.Equal(t, float32(50), frame.W)
}
