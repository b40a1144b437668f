package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	TotalRecords int64      `json:"total_records"` // Records matching the keyword
	TotalPages   int        `json:"total_pages"`   // 0 when nothing matches
	CurrentPage  int        `json:"current_page"`  // Clamped page actually served
	PageSize     int        `json:"page_size"`     // Records per page
	RangeStart   int64      `json:"range_start"`   // First rank on this page (1-based)
	RangeEnd     int64      `json:"range_end"`     // Last rank on this page, may exceed TotalRecords
	Nav          []NavToken `json:"nav"`           // Rendered as "<", "n", ">"
}

// NewMetadata builds response metadata from an engine result.
func NewMetadata(result PageResult, pageSize int) Metadata {
	nav := result.NavTokens
	if nav == nil {
		nav = []NavToken{}
	}
	return Metadata{
		TotalRecords: result.TotalRecords,
		TotalPages:   result.TotalPages,
		CurrentPage:  result.CurrentPage,
		PageSize:     pageSize,
		RangeStart:   result.RangeStart,
		RangeEnd:     result.RangeEnd,
		Nav:          nav,
	}
}
