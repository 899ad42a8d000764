// Package transition implements the shared-element transition engine: the
// registry of participating items, the rule table that selects a transition
// configuration for a (from, to) route pair, the compiler that turns a
// registry snapshot plus a rule into per-item animated style maps, and the
// measurement pipeline that keeps item geometry current.
//
// The engine computes what to render with what style; it never renders and
// never owns transition progress. An external state machine supplies a
// Context pair on every progress tick, and the host renderer applies the
// compiled maps.
//
// # Basic Usage
//
//	rules := transition.NewRuleSet(transition.Rule{
//	    From: "List",
//	    To:   "Detail",
//	    Filter: func(id string) bool { return id == "avatar" },
//	    ShouldClone: func(item transition.Item, from, to string) bool {
//	        return true
//	    },
//	    CloneStyles: transition.FlyOverCloneStyles,
//	})
//
//	reg := transition.NewRegistry()
//	reg = reg.Add(transition.Item{ID: "avatar", RouteName: "List"})
//
//	cur := transition.Context{Route: "Detail", Progress: 0.5}
//	prev := transition.Context{Route: "List"}
//	maps, err := transition.Compile(cur, &prev, reg, rules)
//
// maps.InPlace styles the items still rendered by their screens, maps.Clones
// styles the floating overlay duplicates of maps.ToClone, both keyed by
// resolved route name and then item id.
//
// Every registry mutation returns a new snapshot; holders of an old snapshot
// keep a consistent view across concurrent mounts and unmounts.
package transition
