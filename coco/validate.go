package coco

import (
	"fmt"
)

// Required fields per collection. Validation runs on every load/reset and
// never during filtering or correction.
var (
	RequiredImageFields      = []string{"id", "file_name", "width", "height"}
	RequiredCategoryFields   = []string{"id", "name", "supercategory"}
	RequiredAnnotationFields = []string{"id", "image_id", "category_id", "bbox", "area", "segmentation"}
)

// MissingFieldError reports a record that lacks one or more required fields.
//
// ID is the offending record's "id" value, or "Unknown" when the record has
// no id at all.
type MissingFieldError struct {
	Collection string
	ID         any
	Fields     []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing fields %v in %s with id %v", e.Fields, e.Collection, e.ID)
}

// MissingCollectionError reports a dataset that lacks one of the required
// top-level arrays (images, categories, annotations).
type MissingCollectionError struct {
	Collection string
}

func (e *MissingCollectionError) Error() string {
	return fmt.Sprintf("dataset has no %q collection", e.Collection)
}

// ValidateRecords checks that every record carries all required fields.
// It fails on the first offending record.
func ValidateRecords(records []Record, required []string, collection string) error {
	for _, r := range records {
		var missing []string
		for _, key := range required {
			if _, ok := r[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			id, ok := r.ID()
			if !ok {
				id = "Unknown"
			}
			return &MissingFieldError{Collection: collection, ID: id, Fields: missing}
		}
	}
	return nil
}

// Validate checks that the required collections are present and that every
// image, category and annotation carries its required fields. Licenses and
// info have no required fields.
func (d *Dataset) Validate() error {
	if d.Images == nil {
		return &MissingCollectionError{Collection: "images"}
	}
	if d.Categories == nil {
		return &MissingCollectionError{Collection: "categories"}
	}
	if d.Annotations == nil {
		return &MissingCollectionError{Collection: "annotations"}
	}
	if err := ValidateRecords(d.Images, RequiredImageFields, "image"); err != nil {
		return err
	}
	if err := ValidateRecords(d.Categories, RequiredCategoryFields, "category"); err != nil {
		return err
	}
	return ValidateRecords(d.Annotations, RequiredAnnotationFields, "annotation")
}
