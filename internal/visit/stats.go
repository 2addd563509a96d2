package visit

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Stats summarizes a record list.
type Stats struct {
	Total           int            `json:"total"`
	VisitedCount    int            `json:"visitedCount"`
	WishlistCount   int            `json:"wishlistCount"`
	FirstDate       *string        `json:"firstDate"`
	LastDate        *string        `json:"lastDate"`
	AvgRating       float64        `json:"avgRating"`
	UniqueAreas     int            `json:"uniqueAreas"`
	Prefectures     []string       `json:"prefectures"`
	PrefectureCount int            `json:"prefectureCount"`
	RatingCounts    map[int]int    `json:"ratingCounts"`
	MonthlyVisits   []MonthlyCount `json:"monthlyVisits"`
}

// MonthlyCount is the number of visited records in one YYYY-MM month.
type MonthlyCount struct {
	Month  string `json:"month"`
	Visits int    `json:"visits"`
}

// ComputeStats derives aggregate statistics over records: counts by
// status, date range, average of positive ratings (one decimal),
// distinct areas, prefecture list from visited records, and the chart
// feeds (rating distribution and visits per month).
func ComputeStats(records []Record) Stats {
	stats := Stats{
		Prefectures:   []string{},
		RatingCounts:  map[int]int{},
		MonthlyVisits: []MonthlyCount{},
	}

	stats.Total = len(records)
	if stats.Total == 0 {
		return stats
	}

	// Malformed dates sort as zero time; they stay out of the range.
	var first, last string
	for _, r := range Sort(records, SortOldest) {
		if r.DateValue().IsZero() {
			continue
		}
		if first == "" {
			first = r.Date
		}
		last = r.Date
	}
	if first != "" {
		stats.FirstDate = &first
		stats.LastDate = &last
	}

	var ratingSum, ratingCount int
	areas := map[string]bool{}
	prefectures := map[string]bool{}
	months := map[string]int{}

	for _, r := range records {
		switch r.Status {
		case StatusWishlist:
			stats.WishlistCount++
		default:
			stats.VisitedCount++
		}

		if r.Rating > 0 {
			ratingSum += r.Rating
			ratingCount++
		}

		if a := strings.TrimSpace(r.Area); a != "" {
			areas[a] = true
		}

		if r.Status != StatusVisited {
			continue
		}
		if p, ok := ExtractPrefecture(r.Area); ok {
			prefectures[p] = true
		}
		if r.Rating > 0 {
			stats.RatingCounts[r.Rating]++
		}
		month := r.Date
		if len(month) > 7 {
			month = month[:7]
		}
		months[month]++
	}

	if ratingCount > 0 {
		stats.AvgRating = math.Round(float64(ratingSum)/float64(ratingCount)*10) / 10
	}
	stats.UniqueAreas = len(areas)

	for p := range prefectures {
		stats.Prefectures = append(stats.Prefectures, p)
	}
	collate.New(language.Japanese).SortStrings(stats.Prefectures)
	stats.PrefectureCount = len(stats.Prefectures)

	for m, n := range months {
		stats.MonthlyVisits = append(stats.MonthlyVisits, MonthlyCount{Month: m, Visits: n})
	}
	sort.Slice(stats.MonthlyVisits, func(i, j int) bool {
		return stats.MonthlyVisits[i].Month < stats.MonthlyVisits[j].Month
	})

	return stats
}

// ExtractPrefecture pulls a first-level administrative region name out
// of a free-text area string: the first whitespace-delimited token,
// accepted only when it ends in one of the prefecture suffixes
// (to/dō/fu/ken).
func ExtractPrefecture(area string) (string, bool) {
	s := strings.TrimSpace(area)
	if s == "" {
		return "", false
	}
	first := strings.Fields(s)[0]
	switch r, _ := utf8.DecodeLastRuneInString(first); r {
	case '都', '道', '府', '県':
		return first, true
	}
	return "", false
}
