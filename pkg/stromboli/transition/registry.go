package transition

// Registry is an immutable collection of transition items keyed by
// (id, routeName). Every mutation returns a new Registry value; a consumer
// holding an older snapshot keeps seeing a consistent view, which is what
// lets in-flight renders survive concurrent mounts and unmounts.
//
// The zero value is an empty, usable registry.
type Registry struct {
	items map[ItemKey]Item
	order []ItemKey // insertion order, for deterministic snapshots
}

// NewRegistry creates an empty registry.
func NewRegistry() Registry {
	return Registry{}
}

// Add inserts or replaces the entry at (item.ID, item.RouteName) and returns
// the updated registry. Replacing an existing key keeps its original position
// in the snapshot order.
func (r Registry) Add(item Item) Registry {
	next := r.clone(1)
	key := item.Key()
	if _, exists := next.items[key]; !exists {
		next.order = append(next.order, key)
	}
	next.items[key] = item
	return next
}

// Remove deletes the entry at (id, routeName) and returns the updated
// registry. Removing an absent key is a no-op; unmount notifications may
// race with route teardown.
func (r Registry) Remove(id, routeName string) Registry {
	key := ItemKey{ID: id, RouteName: routeName}
	if _, exists := r.items[key]; !exists {
		return r
	}
	next := r.clone(0)
	delete(next.items, key)
	for i, k := range next.order {
		if k == key {
			next.order = append(next.order[:i], next.order[i+1:]...)
			break
		}
	}
	return next
}

// UpdateMetrics merges a measurement batch and returns the updated registry.
// Entries whose key is no longer present are dropped silently; the element
// may have unmounted mid-measurement. Merging the same batch twice yields
// the same registry as merging it once.
func (r Registry) UpdateMetrics(updates []MetricsUpdate) Registry {
	if len(updates) == 0 {
		return r
	}
	next := r.clone(0)
	for _, u := range updates {
		key := ItemKey{ID: u.ID, RouteName: u.RouteName}
		item, exists := next.items[key]
		if !exists {
			continue
		}
		m := u.Metrics
		item.Metrics = &m
		next.items[key] = item
	}
	return next
}

// Items returns a snapshot of all items in insertion order.
func (r Registry) Items() []Item {
	out := make([]Item, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.items[key])
	}
	return out
}

// Lookup returns the item at (id, routeName), if present.
func (r Registry) Lookup(id, routeName string) (Item, bool) {
	item, ok := r.items[ItemKey{ID: id, RouteName: routeName}]
	return item, ok
}

// Len returns the number of registered items.
func (r Registry) Len() int {
	return len(r.order)
}

func (r Registry) clone(extra int) Registry {
	next := Registry{
		items: make(map[ItemKey]Item, len(r.items)+extra),
		order: make([]ItemKey, len(r.order), len(r.order)+extra),
	}
	for k, v := range r.items {
		next.items[k] = v
	}
	copy(next.order, r.order)
	return next
}
