package paging

import "strconv"

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Args are the normalized skip/limit/sort arguments for a list query.
type Args struct {
	Skip  int64
	Limit int64
	Sort  string
}

// Result is the paging metadata returned alongside a page of results.
type Result struct {
	Total       int64 `json:"total"`
	Page        int64 `json:"page"`
	PerPage     int64 `json:"per_page"`
	TotalPages  int64 `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
}

// GetArgs normalizes raw page/limit/sort query values.
func GetArgs(page, limit, sort string) Args {
	p, err := strconv.ParseInt(page, 10, 64)
	if err != nil || p < 1 {
		p = 1
	}

	l, err := strconv.ParseInt(limit, 10, 64)
	if err != nil || l < 1 {
		l = defaultLimit
	}
	if l > maxLimit {
		l = maxLimit
	}

	if sort == "" {
		sort = "created_at"
	}

	return Args{
		Skip:  (p - 1) * l,
		Limit: l,
		Sort:  sort,
	}
}

// GetResult derives the paging metadata for a total row count.
func GetResult(args Args, total int64) Result {
	perPage := args.Limit
	page := args.Skip/perPage + 1
	totalPages := (total + perPage - 1) / perPage

	return Result{
		Total:       total,
		Page:        page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
	}
}
