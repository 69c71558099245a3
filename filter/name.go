package filter

import (
	"github.com/hupe1980/cocoedit/coco"
)

// nameFilter matches when a string field is a member of a configured name set.
type nameFilter struct {
	target Target
	kind   Kind
	field  string
	names  map[string]struct{}
}

func newNameFilter(target Target, kind Kind, field string, names []string) *nameFilter {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return &nameFilter{target: target, kind: kind, field: field, names: set}
}

func (f *nameFilter) Target() Target { return f.target }

func (f *nameFilter) Kind() Kind { return f.kind }

// Matches reports whether the record's field value is one of the configured
// names. Records without the field never match.
func (f *nameFilter) Matches(r coco.Record) bool {
	v, ok := r.String(f.field)
	if !ok {
		return false
	}
	_, ok = f.names[v]
	return ok
}

// NewFileName returns an image filter matching records whose "file_name" is
// one of the given names. The kind selects inclusion or exclusion behavior.
func NewFileName(kind Kind, names []string) Filter {
	return newNameFilter(TargetImage, kind, "file_name", names)
}

// NewCategoryName returns a category filter matching records whose "name" is
// one of the given names. The kind selects inclusion or exclusion behavior.
func NewCategoryName(kind Kind, names []string) Filter {
	return newNameFilter(TargetCategory, kind, "name", names)
}
