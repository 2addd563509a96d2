package visit

import "strings"

// Normalize fills concrete defaults for the optional record fields so
// no consumer ever sees them absent: rating clamped to [0,5], tags
// never nil, status one of the known values, visitCount at least 1.
// Idempotent; unknown extra fields pass through untouched.
func Normalize(r Record) Record {
	if r.Rating < 0 {
		r.Rating = 0
	}
	if r.Rating > 5 {
		r.Rating = 5
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if !ValidStatus(string(r.Status)) {
		r.Status = StatusVisited
	}
	if r.VisitCount < 1 {
		r.VisitCount = 1
	}
	return r
}

// NormalizeAll normalizes every record in a new slice.
func NormalizeAll(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = Normalize(r)
	}
	return out
}

// SplitTags turns the free-text comma-separated tag field into a tag
// list, trimming whitespace and dropping empties. Order and duplicates
// are preserved.
func SplitTags(text string) []string {
	tags := []string{}
	for _, t := range strings.Split(text, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
