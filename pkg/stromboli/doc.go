// Package stromboli provides the transition-orchestration layer for
// stack-based screen navigation: shared-element ("hero") animations where a
// visual element present on two screens appears to fly and morph from its
// place on the outgoing screen to its place on the incoming one.
//
// The package computes what to render with what animated style; it does not
// render, does not own the transition progress value, and does not decide
// when transitions start or end. The host application owns the screen stack
// renderer and the state machine that drives progress; on every progress
// tick it asks the Navigator for style maps and applies them.
//
// # Basic Usage
//
//	nav := stromboli.NewNavigator(stromboli.Options{
//	    Rules:    rules,            // transition.RuleSet, or ruleconfig.Load(path)
//	    Measurer: frames,           // e.g. an overlay.FrameTable
//	    Locale:   "en",
//	})
//
//	// Screens receive the registration capability, nothing more.
//	scope := nav.Scope()
//	scope.Register(transition.Item{ID: "avatar", RouteName: "List", Handle: h})
//
//	nav.Push("List", listScene)
//	nav.RefreshMetrics(ctx) // resolve geometry before the first draw
//
//	// Per progress tick, from the transition state machine:
//	maps, err := nav.CompileStyleMaps(cur, &prev)
//
// maps.InPlace styles elements still drawn by their screens; maps.Clones
// styles the floating duplicates the overlay package draws above the stack.
//
// Subpackages: transition holds the engine (registry, rule matching, style
// compilation, measurement), overlay renders clones with SDL, gesture
// recognizes edge swipe-back, ruleconfig loads TOML rule tables, announce
// localizes navigation announcements.
package stromboli
