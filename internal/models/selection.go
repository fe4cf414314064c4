package models

import "encoding/json"

// Selection is a single-choice field: a preset picked from a catalog plus
// free custom text. Both parts may be set at the same time.
type Selection struct {
	Preset string `json:"preset"`
	Custom string `json:"custom"`
}

// MultiSelection is a multi-choice field: an ordered set of presets plus one
// custom text string.
type MultiSelection struct {
	Presets OrderedSet `json:"presets"`
	Custom  string     `json:"custom"`
}

// Toggle flips membership of a preset
func (m *MultiSelection) Toggle(item string) {
	m.Presets.Toggle(item)
}

// Clone returns a copy that does not share the preset slice
func (m MultiSelection) Clone() MultiSelection {
	return MultiSelection{Presets: m.Presets.Clone(), Custom: m.Custom}
}

// OrderedSet keeps unique strings in first-insertion order.
// A removed item that is added again goes to the end.
type OrderedSet struct {
	items []string
}

// NewOrderedSet builds a set from items, dropping duplicates and empty strings
func NewOrderedSet(items ...string) OrderedSet {
	var s OrderedSet
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Contains reports whether item is a member
func (s OrderedSet) Contains(item string) bool {
	return s.indexOf(item) >= 0
}

// Add appends item if absent. Returns false if it was already present.
func (s *OrderedSet) Add(item string) bool {
	if item == "" || s.Contains(item) {
		return false
	}
	s.items = append(s.items, item)
	return true
}

// Remove deletes item. Returns false if it was not present.
func (s *OrderedSet) Remove(item string) bool {
	idx := s.indexOf(item)
	if idx < 0 {
		return false
	}
	next := make([]string, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
	return true
}

// Toggle removes item if present, otherwise appends it
func (s *OrderedSet) Toggle(item string) {
	if !s.Remove(item) {
		s.Add(item)
	}
}

// Items returns the members in insertion order
func (s OrderedSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of members
func (s OrderedSet) Len() int {
	return len(s.items)
}

// Clone returns an independent copy
func (s OrderedSet) Clone() OrderedSet {
	if s.items == nil {
		return OrderedSet{}
	}
	return OrderedSet{items: s.Items()}
}

func (s OrderedSet) indexOf(item string) int {
	for i, existing := range s.items {
		if existing == item {
			return i
		}
	}
	return -1
}

// MarshalJSON encodes the set as a JSON array
func (s OrderedSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

// UnmarshalJSON decodes a JSON array, dropping duplicates
func (s *OrderedSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewOrderedSet(items...)
	return nil
}
