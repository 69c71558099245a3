package filter

import (
	"github.com/hupe1980/cocoedit/coco"
)

// funcFilter adapts an arbitrary decision function into a Filter.
type funcFilter struct {
	target Target
	kind   Kind
	fn     func(coco.Record) bool
}

// NewFunc wraps an arbitrary decision function as a filter for the given
// collection and kind. It routes identically to the built-in variants.
func NewFunc(target Target, kind Kind, fn func(coco.Record) bool) Filter {
	return &funcFilter{target: target, kind: kind, fn: fn}
}

func (f *funcFilter) Target() Target { return f.target }

func (f *funcFilter) Kind() Kind { return f.kind }

func (f *funcFilter) Matches(r coco.Record) bool { return f.fn(r) }
