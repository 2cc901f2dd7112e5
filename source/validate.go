package source

import (
	"fmt"
	"time"
)

// Result is the outcome of validating a feed. MinDate and MaxDate are the
// data extent across all bars and are only meaningful when OK.
type Result struct {
	Errors  []string
	MinDate *time.Time
	MaxDate *time.Time
}

func (r Result) OK() bool { return len(r.Errors) == 0 }

// Validate checks the paging bookkeeping and every row of a feed, collecting
// all problems rather than stopping at the first. As a side effect it
// truncates bar endpoints to whole hours, the finest column the grid has.
// A feed that fails validation must never reach rendering.
func Validate(src *Source) Result {
	var res Result
	fail := func(format string, args ...any) {
		res.Errors = append(res.Errors, fmt.Sprintf(format, args...))
	}

	if src == nil {
		fail("source is required")
		return res
	}
	if src.CurrentPage < 1 {
		fail("current page cannot be less than 1: %d", src.CurrentPage)
	}
	if src.ItemsPerPage < 1 {
		fail("items per page cannot be less than 1: %d", src.ItemsPerPage)
	}
	if src.PageCount < 1 {
		fail("page count cannot be less than 1: %d", src.PageCount)
	}
	if src.PageCount >= 1 && src.CurrentPage > src.PageCount {
		fail("current page cannot be greater than page count: %d > %d", src.CurrentPage, src.PageCount)
	}
	if len(src.Data) < 1 {
		fail("data must contain at least one row")
	}

	for i := range src.Data {
		row := &src.Data[i]
		if row.ID == 0 {
			fail("row %d: id is required", i)
		}
		if row.Name == "" {
			fail("row %d: name is required", i)
		}
		if row.Values == nil {
			fail("row %d (%s): values is required", i, row.Name)
			continue
		}
		for j := range row.Values {
			v := &row.Values[j]
			if v.From != nil {
				v.From.Time = truncateToHour(v.From.Time)
				if res.MinDate == nil || v.From.Time.Before(*res.MinDate) {
					t := v.From.Time
					res.MinDate = &t
				}
			}
			if v.To != nil {
				v.To.Time = truncateToHour(v.To.Time)
				if res.MaxDate == nil || v.To.Time.After(*res.MaxDate) {
					t := v.To.Time
					res.MaxDate = &t
				}
			}
		}
	}
	return res
}
