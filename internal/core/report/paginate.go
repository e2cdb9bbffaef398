package report

// Page is one client-side slice of a fully fetched row set.
type Page struct {
	Rows       []any
	Number     int
	TotalPages int
}

// Paginate slices the in-memory row set without copying rows. The page
// count is always at least 1, even for an empty set, and out-of-range page
// requests clamp instead of failing. No I/O happens here; the full row set
// was fetched once and is only ever sliced.
func Paginate(rows []any, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := TotalPages(len(rows), pageSize)
	page = ClampPage(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}
	return Page{Rows: rows[start:end], Number: page, TotalPages: totalPages}
}

// TotalPages computes max(1, ceil(totalRows / pageSize)).
func TotalPages(totalRows, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := (totalRows + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// ClampPage forces a requested page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
