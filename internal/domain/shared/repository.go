package shared

// PageRequest identifies a zero-based page of a result set
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest validates page bounds
func NewPageRequest(page, size int) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, NewInvalidArgumentError("Page index must not be less than zero")
	}
	if size < 1 {
		return PageRequest{}, NewInvalidArgumentError("Page size must not be less than one")
	}
	return PageRequest{Page: page, Size: size}, nil
}

// Offset returns the number of rows to skip
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page represents a page of results
type Page[T any] struct {
	Content    []T
	Number     int
	Size       int
	Total      int64
	TotalPages int
}

// NewPage creates a new page and computes the total page count
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	totalPages := int(total) / req.Size
	if int(total)%req.Size > 0 {
		totalPages++
	}
	if content == nil {
		content = make([]T, 0)
	}
	return Page[T]{
		Content:    content,
		Number:     req.Page,
		Size:       req.Size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// IsEmpty reports whether the page has no content
func (p Page[T]) IsEmpty() bool {
	return len(p.Content) == 0
}
