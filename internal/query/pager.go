package query

// Pagination is the page metadata block returned alongside every list.
type Pagination struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	HasNextPage bool  `json:"hasNextPage"`
}

// Paginate computes page metadata for a total match count.
// totalPages = ceil(total/size); hasNextPage ⇔ page*size < total.
func Paginate(total int64, p Page) Pagination {
	totalPages := int((total + int64(p.Size) - 1) / int64(p.Size))
	return Pagination{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: p.Num,
		PageSize:    p.Size,
		HasNextPage: p.Num < totalPages,
	}
}
