package filter

import (
	"github.com/hupe1980/cocoedit/coco"
)

// boxAreaFilter matches annotations whose "area" falls within the configured
// bounds.
type boxAreaFilter struct {
	kind     Kind
	min, max *float64
}

// NewBoxArea returns an annotation filter matching records whose "area" lies
// within [min, max]. A nil bound is unbounded on that side; with both bounds
// nil every record with an area matches. Records without a numeric area never
// match.
func NewBoxArea(kind Kind, min, max *float64) Filter {
	return &boxAreaFilter{kind: kind, min: min, max: max}
}

func (f *boxAreaFilter) Target() Target { return TargetAnnotation }

func (f *boxAreaFilter) Kind() Kind { return f.kind }

func (f *boxAreaFilter) Matches(r coco.Record) bool {
	area, ok := r.Float64("area")
	if !ok {
		return false
	}
	if f.min != nil && area < *f.min {
		return false
	}
	if f.max != nil && area > *f.max {
		return false
	}
	return true
}
