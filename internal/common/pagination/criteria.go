package pagination

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Criteria is a caller's request for one page of a keyword-filtered listing.
// PageNumber is raw user input with no a-priori bound; Compute clamps it.
type Criteria struct {
	Keyword    string
	PageNumber int
	PageSize   int `validate:"gte=1"`
}

var criteriaValidator = validator.New()

// Validate returns ErrInvalidArgument when the page size is not positive or
// exceeds maxPageSize. A maxPageSize of zero disables the upper bound.
// PageNumber is never rejected.
func (c Criteria) Validate(maxPageSize int) error {
	if err := criteriaValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, c.PageSize)
	}
	if maxPageSize > 0 && c.PageSize > maxPageSize {
		return fmt.Errorf("%w: page size must be between 1 and %d", ErrInvalidArgument, maxPageSize)
	}
	return nil
}
