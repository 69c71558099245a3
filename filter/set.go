package filter

// Set accumulates the filters registered against one collection, separating
// inclusion from exclusion filters in registration order.
//
// Add does not validate the filter's target; routing a filter to the Set for
// its declared collection is the caller's job. There is no removal operation.
type Set struct {
	inclusions []Filter
	exclusions []Filter
}

// Add appends the filter to the sequence matching its kind. Filters with an
// invalid kind are ignored.
func (s *Set) Add(f Filter) {
	switch f.Kind() {
	case KindInclusion:
		s.inclusions = append(s.inclusions, f)
	case KindExclusion:
		s.exclusions = append(s.exclusions, f)
	}
}

// Inclusions returns the inclusion filters in registration order.
func (s *Set) Inclusions() []Filter { return s.inclusions }

// Exclusions returns the exclusion filters in registration order.
func (s *Set) Exclusions() []Filter { return s.exclusions }

// Empty reports whether no filters are registered.
func (s *Set) Empty() bool {
	return len(s.inclusions) == 0 && len(s.exclusions) == 0
}
