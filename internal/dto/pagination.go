package dto

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageQuery is bound from ?page=&page_size=. Out-of-range values fall back to defaults.
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Resolve clamps the query: page >= 1, page_size in [1, MaxPageSize], default DefaultPageSize.
func (q PageQuery) Resolve() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

func (q PageQuery) Limit() int {
	return q.Resolve().PageSize
}

func (q PageQuery) Offset() int {
	r := q.Resolve()
	return (r.Page - 1) * r.PageSize
}

// PaginatedResponse is the data payload of every list endpoint.
type PaginatedResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}
