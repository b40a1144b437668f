// Package announcement provides use cases for the bulletin-board announcements.
// It runs the count, compute, fetch pipeline that produces one page plus its
// navigation bar, and validates input before create, update and delete reach the store.
package announcement

import (
	"fmt"

	"noticeboard/internal/domain/entity"
)

// ErrInvalidOwnerID indicates a non-positive owner account ID.
// It matches entity.ErrInvalidInput with errors.Is.
var ErrInvalidOwnerID = fmt.Errorf("%w: owner id must be positive", entity.ErrInvalidInput)
