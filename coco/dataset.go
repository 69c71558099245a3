package coco

// Dataset is the COCO document aggregate.
//
// Info is opaque metadata passed through unchanged. Licenses defaults to
// empty; images, categories and annotations are required top-level arrays.
// The field order matches the canonical COCO export shape.
type Dataset struct {
	Info        map[string]any `json:"info"`
	Licenses    []Record       `json:"licenses"`
	Images      []Record       `json:"images"`
	Categories  []Record       `json:"categories"`
	Annotations []Record       `json:"annotations"`
}

// Clone returns a deep copy of the dataset, so callers can hand a dataset to
// an editor without the editor aliasing or mutating the original.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	out := &Dataset{
		Licenses:    CloneRecords(d.Licenses),
		Images:      CloneRecords(d.Images),
		Categories:  CloneRecords(d.Categories),
		Annotations: CloneRecords(d.Annotations),
	}
	if d.Info != nil {
		out.Info = cloneValue(d.Info).(map[string]any)
	}
	return out
}

// Normalize fills in the optional top-level fields after decoding: a missing
// "licenses" array becomes empty and a missing "info" object becomes an empty
// map, mirroring the defaults of the COCO format.
func (d *Dataset) Normalize() {
	if d.Licenses == nil {
		d.Licenses = []Record{}
	}
	if d.Info == nil {
		d.Info = map[string]any{}
	}
}
