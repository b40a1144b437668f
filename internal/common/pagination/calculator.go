package pagination

// CalculateTotalPages returns ceil(total / size) using integer arithmetic.
// Zero records yield zero pages.
//
// Examples:
//   - Total 0, Size 10 -> 0 pages
//   - Total 5, Size 10 -> 1 page
//   - Total 10, Size 10 -> 1 page
//   - Total 95, Size 10 -> 10 pages
//   - Total 250, Size 10 -> 25 pages
func CalculateTotalPages(total int64, size int) int {
	pages := total / int64(size)
	if total%int64(size) > 0 {
		pages++
	}
	return int(pages)
}

// ClampPage restricts a raw page number to [1, totalPages].
// The lower bound is applied first, so with no pages at all a request below 1
// yields 1 and any other request yields 0.
func ClampPage(page, totalPages int) int {
	switch {
	case page < 1:
		return 1
	case page > totalPages:
		return totalPages
	default:
		return page
	}
}

// CalculateRange returns the 1-based inclusive rank bounds of a page.
// The end bound is not clamped against the record total; stores return a
// short sequence for the last page.
//
// Examples:
//   - Page 1, Size 10 -> 1..10
//   - Page 3, Size 20 -> 41..60
func CalculateRange(page, size int) (start, end int64) {
	start = int64(page-1)*int64(size) + 1
	end = start + int64(size) - 1
	return start, end
}

// NavWindow returns the first and last page numbers of the navigation window
// that contains page. Windows are aligned to multiples of windowSize:
// with a window of 10, pages 1-10 share a window, 11-20 the next, and so on.
// The last window is cut short at totalPages.
func NavWindow(page, totalPages, windowSize int) (start, end int) {
	start = ((page-1)/windowSize)*windowSize + 1
	end = min(start+windowSize-1, totalPages)
	return start, end
}
