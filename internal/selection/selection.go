// Package selection tracks which catalog rows the user has marked.
//
// Identifiers are stored as given; nothing checks them against the catalog.
package selection

import "sort"

// Set is a set of selected quadkeys. The zero value is ready to use.
type Set struct {
	ids map[string]struct{}
}

// New returns a set pre-populated with ids.
func New(ids ...string) *Set {
	s := &Set{}
	s.SelectAll(ids)
	return s
}

// Toggle flips membership of id.
func (s *Set) Toggle(id string) {
	if s.IsSelected(id) {
		delete(s.ids, id)
		return
	}
	s.add(id)
}

// ToggleAll clears the visible ids when all of them are already selected and
// selects every visible id otherwise. Selected ids outside visible are kept.
func (s *Set) ToggleAll(visible []string) {
	if s.AllSelected(visible) {
		for _, id := range visible {
			delete(s.ids, id)
		}
		return
	}
	s.SelectAll(visible)
}

// SelectAll adds every id.
func (s *Set) SelectAll(ids []string) {
	for _, id := range ids {
		s.add(id)
	}
}

// AllSelected reports whether every id in visible is selected. An empty
// visible list is never considered fully selected.
func (s *Set) AllSelected(visible []string) bool {
	if len(visible) == 0 {
		return false
	}
	for _, id := range visible {
		if !s.IsSelected(id) {
			return false
		}
	}
	return true
}

// IsSelected reports membership.
func (s *Set) IsSelected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of selected ids.
func (s *Set) Count() int {
	return len(s.ids)
}

// Clear empties the set.
func (s *Set) Clear() {
	s.ids = nil
}

// IDs returns the selected ids in sorted order.
func (s *Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *Set) add(id string) {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	s.ids[id] = struct{}{}
}
