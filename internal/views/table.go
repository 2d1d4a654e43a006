package views

import (
	"sort"
	"strings"
	"time"

	"contactflow/internal/model"
)

// Date range filter values.
const (
	RangeAll   = "all"
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// Filter narrows a request list. Zero or "all" values match everything.
type Filter struct {
	Status    string
	Type      string
	Priority  string
	DateRange string

	// Search matches case-insensitively against id, title, type, status,
	// priority, and description.
	Search string
}

// FilterRequests applies the filter and sorts the result newest first by
// creation time.
func FilterRequests(requests []model.Request, f Filter, now time.Time) []model.Request {
	cutoff, hasCutoff := f.cutoff(now)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	matched := make([]model.Request, 0, len(requests))
	for _, r := range requests {
		if !matchesValue(f.Status, r.Status) ||
			!matchesValue(f.Type, r.Type) ||
			!matchesValue(f.Priority, r.Priority) {
			continue
		}
		if hasCutoff && r.CreatedAt.Before(cutoff) {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		matched = append(matched, r)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched
}

func (f Filter) cutoff(now time.Time) (time.Time, bool) {
	switch f.DateRange {
	case RangeToday:
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), true
	case RangeWeek:
		return now.AddDate(0, 0, -7), true
	case RangeMonth:
		return now.AddDate(0, 0, -30), true
	case RangeYear:
		return now.AddDate(0, 0, -365), true
	default:
		return time.Time{}, false
	}
}

func matchesValue(want, have string) bool {
	return want == "" || want == RangeAll || want == have
}

func matchesSearch(r model.Request, search string) bool {
	for _, field := range []string{r.ID, r.Title, r.Type, r.Status, r.Priority, r.Description} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// Window is one page of a list.
type Window struct {
	// Page is the current 1-based page, 0 when the list is empty.
	Page int

	// TotalPages is 0 when the list is empty.
	TotalPages int

	// Start and End delimit the page as a half-open index range.
	Start int
	End   int
}

// Paginate computes the window for the requested page, clamping it into
// the valid range. perPage must be positive.
func Paginate(total, page, perPage int) Window {
	if total <= 0 {
		return Window{}
	}

	totalPages := (total + perPage - 1) / perPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	return Window{Page: page, TotalPages: totalPages, Start: start, End: end}
}
