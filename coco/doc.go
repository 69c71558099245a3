// Package coco defines the COCO dataset model used by cocoedit.
//
// Records are schema-light: each image, annotation, category and license is an
// open field mapping rather than a closed struct. This keeps the model
// forward-compatible with COCO extensions and lets custom filters inspect any
// field. Required fields are enforced at ingress via Validate, never during
// filtering or correction.
package coco
