package transition

// Built-in style map functions. These are what ruleconfig binds preset names
// to, and they double as reference implementations for custom rules.

// CrossFadeStyles fades from-side items out and to-side items in across the
// whole transition.
func CrossFadeStyles(fromItems, toItems []Item, _ Context) map[string]map[string]Style {
	out := map[string]map[string]Style{}
	if len(fromItems) > 0 {
		byID := make(map[string]Style, len(fromItems))
		for _, item := range fromItems {
			byID[item.ID] = Style{PropOpacity: Interp(0, 1, 1, 0)}
		}
		out[KeyFrom] = byID
	}
	if len(toItems) > 0 {
		byID := make(map[string]Style, len(toItems))
		for _, item := range toItems {
			byID[item.ID] = Style{PropOpacity: Interp(0, 1, 0, 1)}
		}
		out[KeyTo] = byID
	}
	return out
}

// SlideStyles builds the standard horizontal push: the incoming screen's
// items slide in from the right edge while the outgoing screen's items drift
// a third of the way off to the left. width is the window width in the same
// coordinate space as item metrics.
func SlideStyles(width float64) StyleMapFunc {
	return func(fromItems, toItems []Item, _ Context) map[string]map[string]Style {
		out := map[string]map[string]Style{}
		if len(fromItems) > 0 {
			byID := make(map[string]Style, len(fromItems))
			for _, item := range fromItems {
				byID[item.ID] = Style{PropX: Interp(0, 1, 0, -width/3)}
			}
			out[KeyFrom] = byID
		}
		if len(toItems) > 0 {
			byID := make(map[string]Style, len(toItems))
			for _, item := range toItems {
				byID[item.ID] = Style{PropX: Interp(0, 1, width, 0)}
			}
			out[KeyTo] = byID
		}
		return out
	}
}

// FlyOverCloneStyles is the hero morph for overlay clones: each from-side
// clone interpolates position and size from its own measured geometry to the
// geometry of the same-id item on the destination route.
//
// Unmeasured from-side items are skipped entirely; their geometry is
// unknown and must not feed clone placement. A from-side item without a
// measured counterpart holds its position and fades out instead.
func FlyOverCloneStyles(fromItems, toItems []Item, _ Context) map[string]map[string]Style {
	counterparts := make(map[string]Item, len(toItems))
	for _, item := range toItems {
		counterparts[item.ID] = item
	}

	byID := map[string]Style{}
	for _, item := range fromItems {
		if !item.Measured() {
			continue
		}
		src := *item.Metrics
		dst, ok := counterparts[item.ID]
		if !ok || !dst.Measured() {
			byID[item.ID] = Style{
				PropX:       Interp(0, 1, src.X, src.X),
				PropY:       Interp(0, 1, src.Y, src.Y),
				PropWidth:   Interp(0, 1, src.Width, src.Width),
				PropHeight:  Interp(0, 1, src.Height, src.Height),
				PropOpacity: Interp(0, 1, 1, 0),
			}
			continue
		}
		tgt := *dst.Metrics
		byID[item.ID] = Style{
			PropX:      Interp(0, 1, src.X, tgt.X),
			PropY:      Interp(0, 1, src.Y, tgt.Y),
			PropWidth:  Interp(0, 1, src.Width, tgt.Width),
			PropHeight: Interp(0, 1, src.Height, tgt.Height),
		}
	}
	if len(byID) == 0 {
		return map[string]map[string]Style{}
	}
	return map[string]map[string]Style{KeyFrom: byID}
}
