package dto

import "strings"

const (
	DefaultPageLimit = 12
	MaxPageLimit     = 100
	// MaxPage bounds Page so Offset cannot overflow.
	MaxPage     = 1_000_000
	CategoryAll = "all"
)

type Filter struct {
	Limit    int    `query:"limit"`
	Page     int    `query:"page"`
	Q        string `query:"q"`
	Category string `query:"category"`
	Search   string `query:"search"`
}

// Normalize applies the 1-indexed page and default limit rules.
func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = 1
	}

	if f.Page > MaxPage {
		f.Page = MaxPage
	}

	if f.Limit < 1 {
		f.Limit = DefaultPageLimit
	}

	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}

	return f
}

func (f Filter) Offset() int64 {
	return int64(f.Page-1) * int64(f.Limit)
}

// CategoryFilter returns the trimmed category and whether it applies; "all"
// is the sentinel for no filtering.
func (f Filter) CategoryFilter() (string, bool) {
	category := strings.TrimSpace(f.Category)
	return category, category != "" && category != CategoryAll
}

func (f Filter) TotalPages(total int64) int64 {
	if f.Limit < 1 || total <= 0 {
		return 0
	}

	return (total + int64(f.Limit) - 1) / int64(f.Limit)
}
