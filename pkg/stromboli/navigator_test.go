package stromboli_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/transition"
)

func fixedMeasurer(metrics map[transition.Handle]transition.Metrics) transition.Measurer {
	return transition.MeasureFunc(func(_ context.Context, h transition.Handle) (transition.Metrics, error) {
		if m, ok := metrics[h]; ok {
			return m, nil
		}
		return transition.Metrics{}, fmt.Errorf("handle %v: %w", h, transition.ErrViewUnavailable)
	})
}

func TestNavigator_ScopeLifecycle(t *testing.T) {
	nav := stromboli.NewNavigator(stromboli.Options{})
	scope := nav.Scope()

	scope.Register(transition.Item{ID: "avatar", RouteName: "List"})
	scope.Register(transition.Item{ID: "title", RouteName: "List"})
	assert.Equal(t, 2, nav.Registry().Len())

	scope.Unregister("avatar", "List")
	assert.Equal(t, 1, nav.Registry().Len())

	// Unmount racing teardown: unknown keys are ignored.
	assert.NotPanics(t, func() { scope.Unregister("avatar", "List") })
}

// TestNavigator_PushSuppressesRenderUntilMeasured: a route change queues a
// measurement pass; rendering is blocked until the pass resolves, then the
// registry carries the merged geometry.
func TestNavigator_PushSuppressesRenderUntilMeasured(t *testing.T) {
	nav := stromboli.NewNavigator(stromboli.Options{
		Measurer: fixedMeasurer(map[transition.Handle]transition.Metrics{
			"h1": {X: 10, Y: 20, Width: 30, Height: 40},
		}),
	})
	nav.Scope().Register(transition.Item{ID: "avatar", RouteName: "List", Handle: "h1"})

	nav.Push("List", nil)
	require.False(t, nav.CanRender(), "pending measurements must suppress rendering")

	nav.RefreshMetrics(context.Background())
	assert.True(t, nav.CanRender())

	item, ok := nav.Registry().Lookup("avatar", "List")
	require.True(t, ok)
	require.True(t, item.Measured())
	assert.Equal(t, transition.Metrics{X: 10, Y: 20, Width: 30, Height: 40}, *item.Metrics)
}

func TestNavigator_MeasureFailureLeavesItemUnmeasured(t *testing.T) {
	nav := stromboli.NewNavigator(stromboli.Options{
		Measurer: fixedMeasurer(nil),
	})
	nav.Scope().Register(transition.Item{ID: "avatar", RouteName: "List", Handle: "h1"})

	nav.Push("List", nil)
	nav.RefreshMetrics(context.Background())

	assert.True(t, nav.CanRender())
	item, _ := nav.Registry().Lookup("avatar", "List")
	assert.False(t, item.Measured())
}

func TestNavigator_CanGoBack(t *testing.T) {
	nav := stromboli.NewNavigator(stromboli.Options{})

	assert.False(t, nav.CanGoBack())
	nav.Push("Home", nil)
	assert.False(t, nav.CanGoBack(), "bottom of the stack has nowhere to go back to")
	nav.Push("Detail", nil)
	assert.True(t, nav.CanGoBack())

	top := nav.Pop()
	require.NotNil(t, top)
	assert.Equal(t, "Home", top.Route)
	assert.False(t, nav.CanGoBack())
}

func TestNavigator_Announcements(t *testing.T) {
	var spoken []string
	nav := stromboli.NewNavigator(stromboli.Options{
		Locale:   "en",
		Announce: func(text string) { spoken = append(spoken, text) },
	})

	nav.Push("Home", nil)
	nav.Push("Detail", nil)
	nav.Pop()

	assert.Equal(t, []string{
		"Now viewing Home",
		"Now viewing Detail",
		"Returned to Home",
	}, spoken)
}

func TestNavigator_CompileWrapsAmbiguityAsConfigError(t *testing.T) {
	nav := stromboli.NewNavigator(stromboli.Options{
		Rules: transition.NewRuleSet(
			transition.Rule{From: "List", To: "Detail"},
			transition.Rule{From: transition.Wildcard, To: "Detail"},
		),
	})

	prev := transition.Context{Route: "List"}
	_, err := nav.CompileStyleMaps(transition.Context{Route: "Detail"}, &prev)

	require.Error(t, err)
	assert.True(t, stromboli.IsConfigError(err))
	var ambiguous *transition.AmbiguousRuleError
	assert.ErrorAs(t, err, &ambiguous)
}

func TestNavigator_CompileNoRuleYieldsEmptyMaps(t *testing.T) {
	nav := stromboli.NewNavigator(stromboli.Options{})
	nav.Scope().Register(transition.Item{ID: "avatar", RouteName: "List"})

	prev := transition.Context{Route: "List"}
	maps, err := nav.CompileStyleMaps(transition.Context{Route: "Settings"}, &prev)

	require.NoError(t, err)
	assert.Empty(t, maps.InPlace)
	assert.Nil(t, maps.Clones)
	assert.Empty(t, maps.ToClone)
}
