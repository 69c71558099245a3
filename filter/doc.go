// Package filter provides the predicate machinery for pruning COCO record
// collections.
//
// A Filter is a predicate over one record, tagged with the collection it
// targets and whether a match means "keep" (inclusion) or "drop" (exclusion).
// The tags exist purely for routing; the decision function never inspects
// them. A Set accumulates the filters registered against one collection,
// keeping inclusion and exclusion sequences separate.
package filter
