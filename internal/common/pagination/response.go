package pagination

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., AnnouncementDTO).
//
// Example usage:
//
//	type AnnouncementDTO struct { ... }
//	response := pagination.NewResponse(items, metadata)
//	// response is of type pagination.Response[AnnouncementDTO]
type Response[T any] struct {
	Data       []T      `json:"data"`       // Array of data items for the current page
	Pagination Metadata `json:"pagination"` // Pagination metadata (totals, range, nav tokens)
}

// NewResponse creates a new paginated response with data and metadata.
// A nil data slice is encoded as an empty JSON array.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	if data == nil {
		data = []T{}
	}
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
