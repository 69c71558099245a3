package coco

// Record is a single COCO record (an image, annotation, category or license)
// as an open field mapping.
//
// Values follow the JSON type system: float64 for numbers, string, bool,
// []any and map[string]any. Hand-built records may also use Go integer types;
// the numeric accessors normalize both.
type Record map[string]any

// ID returns the record's "id" field, if present.
func (r Record) ID() (any, bool) {
	v, ok := r["id"]
	return v, ok
}

// String returns the named field as a string.
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Float64 returns the named field as a float64, accepting the Go integer
// types that hand-built datasets commonly use.
func (r Record) Float64(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

// CloneRecords returns a deep copy of a record slice.
func CloneRecords(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

// cloneValue deep-copies the JSON type set plus the primitive slices that
// hand-built datasets use for bbox/segmentation fields. Values outside that
// set are copied by reference.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case Record:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []Record:
		return CloneRecords(val)
	case []map[string]any:
		out := make([]map[string]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item).(map[string]any)
		}
		return out
	case []float64:
		out := make([]float64, len(val))
		copy(out, val)
		return out
	case [][]float64:
		out := make([][]float64, len(val))
		for i, item := range val {
			out[i] = append([]float64(nil), item...)
		}
		return out
	case []int:
		out := make([]int, len(val))
		copy(out, val)
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
