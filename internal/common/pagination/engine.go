package pagination

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for criteria the engine cannot page:
// a non-positive page size, a negative record total or a non-positive nav window.
var ErrInvalidArgument = errors.New("invalid pagination argument")

// PageResult is the outcome of Compute. It is built fresh on every call.
type PageResult struct {
	TotalRecords int64
	TotalPages   int
	CurrentPage  int // 0 only when TotalPages is 0 and PageNumber >= 1
	RangeStart   int64
	RangeEnd     int64
	StartNavi    int
	EndNavi      int
	NavTokens    []NavToken
}

// Empty reports whether there is nothing to fetch. RangeStart and RangeEnd are
// both zero in that case and must not be passed to a store.
func (r PageResult) Empty() bool {
	return r.TotalPages == 0
}

// HasPrev reports whether the nav bar starts with a previous-window marker.
func (r PageResult) HasPrev() bool {
	return len(r.NavTokens) > 0 && r.NavTokens[0].Kind == TokenPrev
}

// HasNext reports whether the nav bar ends with a next-window marker.
func (r PageResult) HasNext() bool {
	return len(r.NavTokens) > 0 && r.NavTokens[len(r.NavTokens)-1].Kind == TokenNext
}

// Compute derives the page window for criteria over totalRecords ranked records.
//
// Steps:
//  1. totalPages = ceil(totalRecords / PageSize)
//  2. currentPage = PageNumber clamped to [1, totalPages], lower bound first
//  3. rank range = (currentPage-1)*PageSize+1 .. +PageSize-1
//  4. nav window = the navWindowSize-aligned block holding currentPage, cut at totalPages
//  5. tokens = [Prev] + window pages + [Next]
//
// Compute is pure: the same inputs always give the same result.
func Compute(c Criteria, totalRecords int64, navWindowSize int) (PageResult, error) {
	if c.PageSize <= 0 {
		return PageResult{}, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, c.PageSize)
	}
	if totalRecords < 0 {
		return PageResult{}, fmt.Errorf("%w: record count must not be negative, got %d", ErrInvalidArgument, totalRecords)
	}
	if navWindowSize <= 0 {
		return PageResult{}, fmt.Errorf("%w: nav window size must be positive, got %d", ErrInvalidArgument, navWindowSize)
	}

	totalPages := CalculateTotalPages(totalRecords, c.PageSize)
	result := PageResult{
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
		CurrentPage:  ClampPage(c.PageNumber, totalPages),
	}
	if result.Empty() {
		result.NavTokens = []NavToken{}
		return result, nil
	}

	result.RangeStart, result.RangeEnd = CalculateRange(result.CurrentPage, c.PageSize)
	result.StartNavi, result.EndNavi = NavWindow(result.CurrentPage, totalPages, navWindowSize)
	result.NavTokens = buildTokens(result.StartNavi, result.EndNavi, totalPages)
	return result, nil
}
