// Package idset provides membership sets for COCO record ids.
//
// Ids are almost always non-negative integers, but arrive as float64 from
// JSON decoding and as int from hand-built datasets. Integral ids go into a
// roaring bitmap; anything else falls back to a map keyed by a canonical
// string, so float64(2) and int(2) are the same id.
package idset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/cocoedit/coco"
)

// Set is a membership set over record id values.
type Set struct {
	bits *roaring64.Bitmap
	rest map[string]struct{}
}

// New creates an empty Set.
func New() *Set {
	return &Set{bits: roaring64.New()}
}

// FromField builds a Set from the given field across all records. Records
// without the field contribute nothing.
func FromField(records []coco.Record, field string) *Set {
	s := New()
	for _, r := range records {
		if v, ok := r[field]; ok {
			s.Add(v)
		}
	}
	return s
}

// Add inserts an id value.
func (s *Set) Add(id any) {
	if u, ok := asUint64(id); ok {
		s.bits.Add(u)
		return
	}
	if s.rest == nil {
		s.rest = make(map[string]struct{})
	}
	s.rest[canonicalKey(id)] = struct{}{}
}

// Contains reports whether the id value is a member.
func (s *Set) Contains(id any) bool {
	if u, ok := asUint64(id); ok {
		return s.bits.Contains(u)
	}
	if s.rest == nil {
		return false
	}
	_, ok := s.rest[canonicalKey(id)]
	return ok
}

// asUint64 normalizes non-negative integral numerics to uint64.
func asUint64(id any) (uint64, bool) {
	switch v := id.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case int:
		if v >= 0 {
			return uint64(v), true
		}
	case int32:
		if v >= 0 {
			return uint64(v), true
		}
	case int64:
		if v >= 0 {
			return uint64(v), true
		}
	case float64:
		// float64(math.MaxUint64) rounds up to 2^64, so the comparison must
		// be strict to keep the uint64 conversion in range.
		if v >= 0 && v == math.Trunc(v) && v < math.MaxUint64 {
			return uint64(v), true
		}
	case float32:
		return asUint64(float64(v))
	}
	return 0, false
}

// canonicalKey gives non-integral ids a stable map key. Negative integers and
// non-integral floats share the numeric key space so mixed decodings of the
// same number compare equal.
func canonicalKey(id any) string {
	switch v := id.(type) {
	case int:
		return "i:" + strconv.FormatInt(int64(v), 10)
	case int32:
		return "i:" + strconv.FormatInt(int64(v), 10)
	case int64:
		return "i:" + strconv.FormatInt(v, 10)
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return "i:" + strconv.FormatInt(int64(v), 10)
		}
		return "f:" + strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return canonicalKey(float64(v))
	case string:
		return "s:" + v
	case bool:
		if v {
			return "b:1"
		}
		return "b:0"
	default:
		return fmt.Sprintf("x:%v", v)
	}
}
