package visit

import (
	"sort"
	"strings"
)

// Status filter values. StatusFilterAll matches every record.
const StatusFilterAll = "all"

// Sort modes.
const (
	SortRecent     = "recent"
	SortOldest     = "oldest"
	SortRatingDesc = "ratingDesc"
	SortRatingAsc  = "ratingAsc"
)

// FilterState selects and orders records for display. It is transient
// UI state and never persisted.
type FilterState struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	MinRating int    `json:"minRating"`
	Sort      string `json:"sort"`
}

// DefaultFilters returns the identity filter with the default sort.
func DefaultFilters() FilterState {
	return FilterState{Status: StatusFilterAll, Sort: SortRecent}
}

// Active reports whether f differs from the defaults in any way.
func (f FilterState) Active() bool {
	return strings.TrimSpace(f.Search) != "" ||
		(f.Status != "" && f.Status != StatusFilterAll) ||
		f.MinRating > 0 ||
		(f.Sort != "" && f.Sort != SortRecent)
}

// Filter returns the records passing all of f's predicates: status
// match, minimum rating, and a case-insensitive keyword search over
// name, comment, area, and tags.
func Filter(records []Record, f FilterState) []Record {
	keyword := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Status != "" && f.Status != StatusFilterAll && string(r.Status) != f.Status {
			continue
		}
		if r.Rating < f.MinRating {
			continue
		}
		if keyword != "" {
			text := strings.ToLower(strings.Join([]string{
				r.Name, r.Comment, r.Area, strings.Join(r.Tags, " "),
			}, " "))
			if !strings.Contains(text, keyword) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// Sort orders records by the given mode into a new slice. Sorting is
// stable, so records tied on every key keep their relative order.
func Sort(records []Record, mode string) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch mode {
		case SortOldest:
			return a.DateValue().Before(b.DateValue())
		case SortRatingDesc:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.DateValue().After(b.DateValue())
		case SortRatingAsc:
			if a.Rating != b.Rating {
				return a.Rating < b.Rating
			}
			return a.DateValue().After(b.DateValue())
		default: // SortRecent
			return a.DateValue().After(b.DateValue())
		}
	})

	return out
}
