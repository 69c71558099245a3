package cocoedit

import (
	"fmt"

	"github.com/hupe1980/cocoedit/coco"
	"github.com/hupe1980/cocoedit/filter"
)

// MissingFieldError reports a record that lacks required fields during
// load/reset validation. Aliased here so callers can match it with errors.As
// without importing the coco package.
type MissingFieldError = coco.MissingFieldError

// InvalidTargetError indicates a filter registered against an unrecognized
// target collection. No partial registration occurs.
type InvalidTargetError struct {
	Target filter.Target
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid filter target %d: must be one of [image, category, annotation, license]", e.Target)
}
