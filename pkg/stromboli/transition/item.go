package transition

import "fmt"

// Handle is an opaque reference to a host-platform view. The engine never
// inspects it; it is handed back to a Measurer to resolve geometry.
type Handle any

// Renderable is the visual content of an item, opaque to the engine. The
// overlay layer knows how to turn one into pixels when cloning.
type Renderable any

// Metrics is an item's measured geometry in window coordinates.
type Metrics struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Item is one participant in a shared-element transition: an identified
// visual element belonging to a route.
//
// An Item with nil Metrics is unmeasured. Unmeasured items must not be used
// to compute clone geometry; style presets skip them.
type Item struct {
	ID         string
	RouteName  string
	Handle     Handle
	Metrics    *Metrics
	Renderable Renderable
}

// Key returns the registry key for the item. (ID, RouteName) pairs are
// unique within a registry at any instant.
func (it Item) Key() ItemKey {
	return ItemKey{ID: it.ID, RouteName: it.RouteName}
}

// Measured reports whether the item has geometry.
func (it Item) Measured() bool {
	return it.Metrics != nil
}

// ItemKey is the composite registry key.
type ItemKey struct {
	ID        string
	RouteName string
}

func (k ItemKey) String() string {
	return fmt.Sprintf("%s@%s", k.ID, k.RouteName)
}

// MetricsUpdate is one entry of a measurement batch merged into a registry.
type MetricsUpdate struct {
	ID        string
	RouteName string
	Metrics   Metrics
}
