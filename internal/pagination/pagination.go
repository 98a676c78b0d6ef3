package pagination

import (
	"shopmap/internal/apperr"
)

// Paginate slices an already-ordered sequence into fixed-size pages.
// Pages are 1-indexed. A page past the end returns an empty slice and
// hasNext=false; hasNext is true iff at least one item exists beyond the
// returned slice.
func Paginate[T any](items []T, page, pageSize int) ([]T, bool, error) {
	if page < 1 {
		return nil, false, apperr.Validation("page must be >= 1, got %d", page)
	}
	if pageSize < 1 {
		return nil, false, apperr.Validation("page size must be >= 1, got %d", pageSize)
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}, false, nil
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], end < len(items), nil
}
