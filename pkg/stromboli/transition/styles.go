package transition

// Progress breakpoints for hiding an in-place original while its overlay
// clone is animating. The from-side original drops out over the first 1% of
// progress, the to-side original appears over the last 1%.
const (
	fadeOutEdge = 0.01
	fadeInEdge  = 0.99
)

// ItemStyles maps item id to its animated style.
type ItemStyles map[string]Style

// StyleMaps is the compiled output for one progress tick: styles for items
// animated in place on their screens, styles for overlay clones, and the
// items that must be cloned. Map keys are resolved route names.
type StyleMaps struct {
	InPlace map[string]ItemStyles
	Clones  map[string]ItemStyles // nil when nothing is cloned
	ToClone []Item
}

// Compile builds the style maps for the transition described by cur and
// prev. prev is nil on initial mount. Compilation is synchronous; it only
// reads the registry snapshot it is given.
//
// No matching rule yields empty maps: the pair has no shared-element
// animation and every item renders unaffected. An ambiguous rule table is
// the only error.
func Compile(cur Context, prev *Context, reg Registry, rules RuleSet) (StyleMaps, error) {
	toRoute := cur.Route
	fromRoute := ""
	if prev != nil {
		fromRoute = prev.Route
	}

	rule, err := rules.Match(fromRoute, toRoute)
	if err != nil {
		return StyleMaps{}, err
	}
	if rule == nil {
		return StyleMaps{InPlace: map[string]ItemStyles{}}, nil
	}

	var fromInPlace, toInPlace, fromClone, toClone []Item
	var cloned []Item
	for _, item := range reg.Items() {
		if rule.Filter != nil && !rule.Filter(item.ID) {
			continue
		}
		clone := rule.ShouldClone != nil && rule.ShouldClone(item, fromRoute, toRoute)
		onFrom := prev != nil && item.RouteName == fromRoute
		onTo := item.RouteName == toRoute
		if !onFrom && !onTo {
			continue
		}
		if clone {
			cloned = append(cloned, item)
			if onFrom {
				fromClone = append(fromClone, item)
			}
			if onTo {
				toClone = append(toClone, item)
			}
			continue
		}
		if onFrom {
			fromInPlace = append(fromInPlace, item)
		}
		if onTo {
			toInPlace = append(toInPlace, item)
		}
	}

	raw := map[string]map[string]Style{}
	if rule.Styles != nil {
		raw = rule.Styles(fromInPlace, toInPlace, cur)
	}

	// Cloned items must not double-render: hide the in-place original almost
	// immediately on the from side, reveal it only at the very end on the to
	// side.
	for _, item := range fromClone {
		mergeStyle(raw, KeyFrom, item.ID, Style{
			PropOpacity: Interp(0, fadeOutEdge, 1, 0),
		})
	}
	for _, item := range toClone {
		mergeStyle(raw, KeyTo, item.ID, Style{
			PropOpacity: Interp(fadeInEdge, 1, 0, 1),
		})
	}

	out := StyleMaps{
		InPlace: rewriteRouteKeys(raw, fromRoute, toRoute),
		ToClone: cloned,
	}

	if len(cloned) > 0 && rule.CloneStyles != nil {
		cloneRaw := rule.CloneStyles(fromClone, toClone, cur)
		out.Clones = rewriteRouteKeys(cloneRaw, fromRoute, toRoute)
	}
	return out, nil
}

func mergeStyle(m map[string]map[string]Style, routeKey, id string, forced Style) {
	byID, ok := m[routeKey]
	if !ok {
		byID = map[string]Style{}
		m[routeKey] = byID
	}
	if existing, ok := byID[id]; ok {
		byID[id] = existing.merge(forced)
		return
	}
	byID[id] = forced
}

// rewriteRouteKeys replaces the KeyFrom/KeyTo markers rule authors use with
// the resolved route names, so consumers can key lookups by real route.
// FromPlaceholder stands in when there is no previous route.
func rewriteRouteKeys(raw map[string]map[string]Style, fromRoute, toRoute string) map[string]ItemStyles {
	out := make(map[string]ItemStyles, len(raw))
	for key, byID := range raw {
		switch key {
		case KeyFrom:
			if fromRoute == "" {
				key = FromPlaceholder
			} else {
				key = fromRoute
			}
		case KeyTo:
			key = toRoute
		}
		styles, ok := out[key]
		if !ok {
			styles = make(ItemStyles, len(byID))
			out[key] = styles
		}
		for id, st := range byID {
			styles[id] = st
		}
	}
	return out
}
