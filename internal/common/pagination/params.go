package pagination

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ParseQueryParams parses listing criteria from the HTTP request query string.
// Missing parameters fall back to config defaults.
//
// Query parameters:
//   - q: Title keyword (substring match; empty matches everything)
//   - page: Page number (any integer; out-of-range values are clamped by Compute)
//   - size: Records per page (must be between 1 and config.MaxPageSize)
//
// Returns an error wrapping ErrInvalidArgument if page or size is not an integer
// or size is out of bounds.
func ParseQueryParams(r *http.Request, config Config) (Criteria, error) {
	query := r.URL.Query()
	criteria := Criteria{
		Keyword:    strings.TrimSpace(query.Get("q")),
		PageNumber: config.DefaultPage,
		PageSize:   config.DefaultPageSize,
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return criteria, fmt.Errorf("%w: page must be an integer", ErrInvalidArgument)
		}
		criteria.PageNumber = page
	}

	if sizeStr := query.Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return criteria, fmt.Errorf("%w: size must be an integer", ErrInvalidArgument)
		}
		criteria.PageSize = size
	}

	if err := criteria.Validate(config.MaxPageSize); err != nil {
		return criteria, err
	}
	return criteria, nil
}
