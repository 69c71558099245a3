package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cocoedit/coco"
)

func TestFileNameFilter(t *testing.T) {
	tests := []struct {
		name   string
		names  []string
		record coco.Record
		want   bool
	}{
		{
			name:   "member matches",
			names:  []string{"image0.jpg", "image1.jpg"},
			record: coco.Record{"file_name": "image0.jpg"},
			want:   true,
		},
		{
			name:   "non-member does not match",
			names:  []string{"image0.jpg"},
			record: coco.Record{"file_name": "image2.jpg"},
			want:   false,
		},
		{
			name:   "missing field never matches",
			names:  []string{"image0.jpg"},
			record: coco.Record{"id": 1},
			want:   false,
		},
		{
			name:   "empty name set matches nothing",
			names:  []string{},
			record: coco.Record{"file_name": "image0.jpg"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFileName(KindInclusion, tt.names)
			assert.Equal(t, tt.want, f.Matches(tt.record))
		})
	}
}

func TestFileNameFilterTags(t *testing.T) {
	inc := NewFileName(KindInclusion, []string{"a.jpg"})
	assert.Equal(t, TargetImage, inc.Target())
	assert.Equal(t, KindInclusion, inc.Kind())

	exc := NewFileName(KindExclusion, []string{"a.jpg"})
	assert.Equal(t, TargetImage, exc.Target())
	assert.Equal(t, KindExclusion, exc.Kind())

	// Both kinds share the decision function.
	r := coco.Record{"file_name": "a.jpg"}
	assert.True(t, inc.Matches(r))
	assert.True(t, exc.Matches(r))
}

func TestCategoryNameFilter(t *testing.T) {
	f := NewCategoryName(KindExclusion, []string{"person", "car"})
	assert.Equal(t, TargetCategory, f.Target())
	assert.True(t, f.Matches(coco.Record{"name": "person"}))
	assert.False(t, f.Matches(coco.Record{"name": "dog"}))
}

func TestBoxAreaFilter(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		min, max *float64
		record   coco.Record
		want     bool
	}{
		{
			name:   "within both bounds",
			min:    ptr(100),
			max:    ptr(300),
			record: coco.Record{"area": 200.0},
			want:   true,
		},
		{
			name:   "below min",
			min:    ptr(100),
			max:    ptr(300),
			record: coco.Record{"area": 50.0},
			want:   false,
		},
		{
			name:   "above max",
			min:    ptr(100),
			max:    ptr(300),
			record: coco.Record{"area": 400.0},
			want:   false,
		},
		{
			name:   "min only inclusive",
			min:    ptr(100),
			record: coco.Record{"area": 100.0},
			want:   true,
		},
		{
			name:   "max only inclusive",
			max:    ptr(100),
			record: coco.Record{"area": 100.0},
			want:   true,
		},
		{
			name:   "no bounds matches any area",
			record: coco.Record{"area": 12345.0},
			want:   true,
		},
		{
			name:   "integer area accepted",
			min:    ptr(100),
			record: coco.Record{"area": 150},
			want:   true,
		},
		{
			name:   "missing area never matches",
			min:    ptr(0),
			record: coco.Record{"id": 1},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewBoxArea(KindInclusion, tt.min, tt.max)
			assert.Equal(t, TargetAnnotation, f.Target())
			assert.Equal(t, tt.want, f.Matches(tt.record))
		})
	}
}

func TestFuncFilter(t *testing.T) {
	f := NewFunc(TargetAnnotation, KindExclusion, func(r coco.Record) bool {
		area, ok := r.Float64("area")
		return ok && area > 250
	})

	assert.Equal(t, TargetAnnotation, f.Target())
	assert.Equal(t, KindExclusion, f.Kind())
	assert.True(t, f.Matches(coco.Record{"area": 300.0}))
	assert.False(t, f.Matches(coco.Record{"area": 100.0}))
}

func TestSetAdd(t *testing.T) {
	var s Set
	require.True(t, s.Empty())

	inc1 := NewFileName(KindInclusion, []string{"a.jpg"})
	inc2 := NewFileName(KindInclusion, []string{"b.jpg"})
	exc := NewFileName(KindExclusion, []string{"c.jpg"})

	s.Add(inc1)
	s.Add(inc2)
	s.Add(exc)

	require.Len(t, s.Inclusions(), 2)
	require.Len(t, s.Exclusions(), 1)
	assert.False(t, s.Empty())

	// Registration order is preserved.
	assert.Same(t, inc1, s.Inclusions()[0])
	assert.Same(t, inc2, s.Inclusions()[1])

	// Filters with an invalid kind are ignored.
	s.Add(NewFunc(TargetImage, KindInvalid, func(coco.Record) bool { return true }))
	assert.Len(t, s.Inclusions(), 2)
	assert.Len(t, s.Exclusions(), 1)
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "image", TargetImage.String())
	assert.Equal(t, "category", TargetCategory.String())
	assert.Equal(t, "annotation", TargetAnnotation.String())
	assert.Equal(t, "license", TargetLicense.String())
	assert.Equal(t, "invalid", Target(99).String())

	assert.True(t, TargetLicense.Valid())
	assert.False(t, TargetInvalid.Valid())
	assert.False(t, Target(99).Valid())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "inclusion", KindInclusion.String())
	assert.Equal(t, "exclusion", KindExclusion.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}
