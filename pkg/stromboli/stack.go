package stromboli

// RouteEntry represents a single entry in the navigation history.
// It stores the route name and the opaque scene payload the host renderer
// associates with the screen.
type RouteEntry struct {
	Route string
	Scene any
}

// RouteStack manages navigation history. The Navigator consults it to derive
// (from, to) pairs on push and pop and to decide whether a back gesture is
// allowed at all.
type RouteStack struct {
	entries []RouteEntry
}

// NewRouteStack creates a new empty navigation stack.
func NewRouteStack() *RouteStack {
	return &RouteStack{
		entries: make([]RouteEntry, 0),
	}
}

// Push adds a new entry to the stack.
// Called when navigating forward to a new route.
func (s *RouteStack) Push(route string, scene any) {
	s.entries = append(s.entries, RouteEntry{
		Route: route,
		Scene: scene,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *RouteStack) Pop() *RouteEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *RouteStack) Peek() *RouteEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *RouteStack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *RouteStack) Len() int {
	return len(s.entries)
}

// CanGoBack reports whether the active route has somewhere to go back to,
// i.e. it is not the bottom of the stack.
func (s *RouteStack) CanGoBack() bool {
	return len(s.entries) > 1
}

// Clear removes all entries from the stack.
func (s *RouteStack) Clear() {
	s.entries = s.entries[:0]
}
