package stromboli

import (
	"context"
	"sync"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/announce"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/transition"
)

// Options configures a Navigator.
type Options struct {
	Rules    transition.RuleSet  // Static transition rule table, never mutated at runtime
	Measurer transition.Measurer // Host geometry source for the measurement pipeline
	Locale   string              // BCP 47 locale for navigation announcements; empty disables them
	Announce func(text string)   // Sink for announcements (screen reader hook); nil logs them instead
	LogPath  string              // Full path for log file including filename (creates parent directories)
	LogLevel string              // Raw log level: debug, info, warn, error
}

// Navigator is the screen-stack orchestrator: it owns the transition item
// registry, the rule table, the measurement pipeline, and the navigation
// history. It computes style maps for the external transition state machine
// but never owns progress and never renders.
type Navigator struct {
	rules     transition.RuleSet
	pipeline  *transition.Pipeline
	announcer *announce.Announcer
	sink      func(string)

	mu       sync.Mutex
	registry transition.Registry
	stack    *RouteStack
}

// NewNavigator creates a navigator from the given options.
func NewNavigator(opts Options) *Navigator {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}
	if opts.LogLevel != "" {
		internal.SetRawLogLevel(opts.LogLevel)
	}

	nav := &Navigator{
		rules:    opts.Rules,
		pipeline: transition.NewPipeline(opts.Measurer),
		sink:     opts.Announce,
		registry: transition.NewRegistry(),
		stack:    NewRouteStack(),
	}
	if opts.Locale != "" {
		nav.announcer = announce.New(opts.Locale)
	}
	return nav
}

// ItemScope is the capability object handed to every rendered screen. It
// carries exactly the two element lifecycle notifications a screen may send,
// so screens depend on nothing else of the navigator.
type ItemScope struct {
	nav *Navigator
}

// Register notifies the navigator that an element mounted.
// Registering the same (id, route) again replaces the earlier entry.
func (s ItemScope) Register(item transition.Item) {
	s.nav.mu.Lock()
	s.nav.registry = s.nav.registry.Add(item)
	s.nav.mu.Unlock()
}

// Unregister notifies the navigator that an element unmounted.
// Unknown keys are ignored; unmounts may race route teardown.
func (s ItemScope) Unregister(id, routeName string) {
	s.nav.mu.Lock()
	s.nav.registry = s.nav.registry.Remove(id, routeName)
	s.nav.mu.Unlock()
}

// Scope returns the registration capability to inject into screens.
func (n *Navigator) Scope() ItemScope {
	return ItemScope{nav: n}
}

// Registry returns the current registry snapshot.
func (n *Navigator) Registry() transition.Registry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.registry
}

// Push makes route the active scene and queues a fresh measurement pass for
// every registered item. scene is the host renderer's opaque payload.
func (n *Navigator) Push(route string, scene any) {
	n.mu.Lock()
	n.stack.Push(route, scene)
	items := n.registry.Items()
	n.mu.Unlock()

	n.pipeline.Snapshot(items)
	n.say(route, false)
}

// Pop removes the active scene and queues a fresh measurement pass. Returns
// the entry that became active, or nil if the stack is empty afterwards.
func (n *Navigator) Pop() *RouteEntry {
	n.mu.Lock()
	n.stack.Pop()
	top := n.stack.Peek()
	items := n.registry.Items()
	n.mu.Unlock()

	n.pipeline.Snapshot(items)
	if top != nil {
		n.say(top.Route, true)
	}
	return top
}

// CanGoBack reports whether the active route is not the bottom of the stack.
// The gesture layer must stay inert when this is false.
func (n *Navigator) CanGoBack() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack.CanGoBack()
}

// Stack returns the navigation history.
func (n *Navigator) Stack() *RouteStack {
	return n.stack
}

// CanRender reports whether rendering may proceed. It is false while a
// measurement pass is unresolved, so the host never draws with stale or
// partial geometry.
func (n *Navigator) CanRender() bool {
	return !n.pipeline.Busy()
}

// RefreshMetrics resolves the pending measurement set and merges the result
// into the registry as one batch. Stale batches, superseded by a newer
// navigation change, are dropped. Per-item measurement failures are logged
// and skipped; they never fail the pass.
func (n *Navigator) RefreshMetrics(ctx context.Context) {
	updates, ok := n.pipeline.Resolve(ctx)
	if !ok {
		return
	}
	n.mu.Lock()
	n.registry = n.registry.UpdateMetrics(updates)
	n.mu.Unlock()
}

// CompileStyleMaps compiles the in-place and clone style maps for one
// progress tick. prev is nil on initial mount. The only possible error is an
// ambiguous rule table, which is a configuration mistake.
func (n *Navigator) CompileStyleMaps(cur transition.Context, prev *transition.Context) (transition.StyleMaps, error) {
	maps, err := transition.Compile(cur, prev, n.Registry(), n.rules)
	if err != nil {
		return transition.StyleMaps{}, NewConfigError("match_rule", err)
	}
	return maps, nil
}

func (n *Navigator) say(route string, returned bool) {
	if n.announcer == nil {
		return
	}
	var text string
	if returned {
		text = n.announcer.RouteReturned(route)
	} else {
		text = n.announcer.RouteChanged(route)
	}
	if n.sink != nil {
		n.sink(text)
		return
	}
	internal.GetLogger().Info("Navigation announcement", "text", text)
}
