package coco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecords(t *testing.T) {
	tests := []struct {
		name       string
		records    []Record
		required   []string
		wantID     any
		wantFields []string
	}{
		{
			name: "all fields present",
			records: []Record{
				{"id": 1, "name": "a", "category": "x"},
				{"id": 2, "name": "b", "category": "y"},
			},
			required: []string{"id", "name", "category"},
		},
		{
			name: "one field missing",
			records: []Record{
				{"id": 1, "name": "a", "category": "x"},
				{"id": 2, "category": "y"},
			},
			required:   []string{"id", "name", "category"},
			wantID:     2,
			wantFields: []string{"name"},
		},
		{
			name: "multiple fields missing",
			records: []Record{
				{"id": 3},
			},
			required:   []string{"id", "name", "category"},
			wantID:     3,
			wantFields: []string{"name", "category"},
		},
		{
			name: "missing id reported as Unknown",
			records: []Record{
				{"name": "a"},
			},
			required:   []string{"id", "name"},
			wantID:     "Unknown",
			wantFields: []string{"id"},
		},
		{
			name:     "empty collection",
			records:  []Record{},
			required: []string{"id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecords(tt.records, tt.required, "record")
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}

			var mfe *MissingFieldError
			require.ErrorAs(t, err, &mfe)
			assert.Equal(t, tt.wantID, mfe.ID)
			assert.Equal(t, tt.wantFields, mfe.Fields)
			assert.Equal(t, "record", mfe.Collection)
		})
	}
}

func TestDatasetValidate(t *testing.T) {
	valid := func() *Dataset {
		return &Dataset{
			Images: []Record{
				{"id": 1, "file_name": "image0.jpg", "width": 100, "height": 100},
			},
			Categories: []Record{
				{"id": 1, "name": "cat", "supercategory": "animal"},
			},
			Annotations: []Record{
				{"id": 1, "image_id": 1, "category_id": 1, "bbox": []any{0, 0, 10, 10}, "area": 100, "segmentation": []any{}},
			},
		}
	}

	t.Run("valid dataset", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing collection", func(t *testing.T) {
		ds := valid()
		ds.Annotations = nil
		var mce *MissingCollectionError
		require.ErrorAs(t, ds.Validate(), &mce)
		assert.Equal(t, "annotations", mce.Collection)
	})

	t.Run("image without file_name", func(t *testing.T) {
		ds := valid()
		ds.Images = []Record{{"id": 7, "width": 10, "height": 10}}
		var mfe *MissingFieldError
		require.ErrorAs(t, ds.Validate(), &mfe)
		assert.Equal(t, "image", mfe.Collection)
		assert.Equal(t, 7, mfe.ID)
		assert.Equal(t, []string{"file_name"}, mfe.Fields)
	})

	t.Run("annotation without bbox and area", func(t *testing.T) {
		ds := valid()
		ds.Annotations = []Record{{"id": 1, "image_id": 1, "category_id": 1, "segmentation": []any{}}}
		var mfe *MissingFieldError
		require.ErrorAs(t, ds.Validate(), &mfe)
		assert.Equal(t, "annotation", mfe.Collection)
		assert.Equal(t, []string{"bbox", "area"}, mfe.Fields)
	})
}

func TestDatasetClone(t *testing.T) {
	ds := &Dataset{
		Info: map[string]any{"year": 2017, "nested": map[string]any{"k": "v"}},
		Images: []Record{
			{"id": 1, "file_name": "image0.jpg", "width": 100, "height": 100},
		},
		Categories: []Record{
			{"id": 1, "name": "cat", "supercategory": "animal"},
		},
		Annotations: []Record{
			{"id": 1, "image_id": 1, "category_id": 1, "bbox": []float64{0, 0, 10, 10}, "area": 100.0, "segmentation": [][]float64{{1, 2, 3}}},
		},
		Licenses: []Record{{"id": 1, "name": "CC"}},
	}

	clone := ds.Clone()
	require.Equal(t, ds, clone)

	// Mutating the clone must not leak into the original.
	clone.Images[0]["file_name"] = "changed.jpg"
	clone.Info["nested"].(map[string]any)["k"] = "changed"
	clone.Annotations[0]["bbox"].([]float64)[0] = 99
	clone.Annotations[0]["segmentation"].([][]float64)[0][0] = 99

	assert.Equal(t, "image0.jpg", ds.Images[0]["file_name"])
	assert.Equal(t, "v", ds.Info["nested"].(map[string]any)["k"])
	assert.Equal(t, 0.0, ds.Annotations[0]["bbox"].([]float64)[0])
	assert.Equal(t, 1.0, ds.Annotations[0]["segmentation"].([][]float64)[0][0])
}

func TestDatasetNormalize(t *testing.T) {
	ds := &Dataset{
		Images:      []Record{},
		Categories:  []Record{},
		Annotations: []Record{},
	}
	ds.Normalize()

	assert.NotNil(t, ds.Licenses)
	assert.NotNil(t, ds.Info)
	assert.Empty(t, ds.Licenses)
	assert.Empty(t, ds.Info)
}

func TestRecordAccessors(t *testing.T) {
	r := Record{"id": 5, "file_name": "a.jpg", "area": 250.5, "width": 640}

	id, ok := r.ID()
	require.True(t, ok)
	assert.Equal(t, 5, id)

	name, ok := r.String("file_name")
	require.True(t, ok)
	assert.Equal(t, "a.jpg", name)

	_, ok = r.String("missing")
	assert.False(t, ok)

	area, ok := r.Float64("area")
	require.True(t, ok)
	assert.Equal(t, 250.5, area)

	width, ok := r.Float64("width")
	require.True(t, ok)
	assert.Equal(t, 640.0, width)

	_, ok = r.Float64("file_name")
	assert.False(t, ok)
}
