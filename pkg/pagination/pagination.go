// Package pagination normalizes page/limit/sort query options into the
// skip/limit values repositories feed to the database.
package pagination

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	// SortAsc / SortDesc are the Mongo sort directions.
	SortAsc  = 1
	SortDesc = -1
)

// Options carries raw, possibly-zero pagination parameters as parsed from
// the query string.
type Options struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// Pagination is the normalized result: skip is precomputed and all fields
// are safe to use directly in a query.
type Pagination struct {
	Page      int
	Limit     int
	Skip      int
	SortBy    string
	SortOrder int
}

// Normalize applies defaults and bounds: page >= 1, 1 <= limit <= maxLimit,
// sort by created_at descending unless told otherwise.
func Normalize(opts Options) Pagination {
	page := opts.Page
	if page < 1 {
		page = defaultPage
	}

	limit := opts.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}

	order := SortDesc
	if opts.SortOrder == "asc" {
		order = SortAsc
	}

	return Pagination{
		Page:      page,
		Limit:     limit,
		Skip:      (page - 1) * limit,
		SortBy:    sortBy,
		SortOrder: order,
	}
}
