package filter

import (
	"github.com/hupe1980/cocoedit/coco"
)

// Kind classifies a filter as inclusion or exclusion.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindInclusion marks a filter whose match signals "keep".
	KindInclusion
	// KindExclusion marks a filter whose match signals "drop".
	KindExclusion
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInclusion:
		return "inclusion"
	case KindExclusion:
		return "exclusion"
	default:
		return "invalid"
	}
}

// Target identifies the record collection a filter applies to.
type Target uint8

const (
	// TargetInvalid represents an invalid target.
	TargetInvalid Target = iota
	// TargetImage targets the images collection.
	TargetImage
	// TargetCategory targets the categories collection.
	TargetCategory
	// TargetAnnotation targets the annotations collection.
	TargetAnnotation
	// TargetLicense targets the licenses collection.
	TargetLicense
)

// String returns the string representation of the Target.
func (t Target) String() string {
	switch t {
	case TargetImage:
		return "image"
	case TargetCategory:
		return "category"
	case TargetAnnotation:
		return "annotation"
	case TargetLicense:
		return "license"
	default:
		return "invalid"
	}
}

// Valid reports whether the target names one of the four collections.
func (t Target) Valid() bool {
	switch t {
	case TargetImage, TargetCategory, TargetAnnotation, TargetLicense:
		return true
	default:
		return false
	}
}

// Filter is a predicate over a single record. Implementations are immutable
// once constructed; the tags are fixed at construction and used only for
// routing.
type Filter interface {
	// Target returns the collection this filter applies to.
	Target() Target
	// Kind returns whether a match signals keep or drop.
	Kind() Kind
	// Matches reports whether the record matches this filter's criterion.
	Matches(r coco.Record) bool
}
