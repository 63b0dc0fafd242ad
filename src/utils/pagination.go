package utils

// Page is the envelope shared by every list endpoint. Page numbers are
// 1-indexed and Total counts all rows matching the filters, not the slice.
type Page struct {
	Items any   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

func NewPage(items any, page, size int, total int64) Page {
	return Page{Items: items, Page: page, Size: size, Total: total}
}

// NormalizePaging clamps page/size to usable values the same way the list
// controllers default bad input instead of erroring.
func NormalizePaging(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return page, size
}

// Offset converts 1-indexed page/size into a query offset.
func Offset(page, size int) int {
	offset := (page - 1) * size
	if offset < 0 {
		offset = 0
	}
	return offset
}
