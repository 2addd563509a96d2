// Package visit provides the sauna visit record model, normalization,
// filtering, and summary statistics.
package visit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

// DateLayout is the calendar date format used by Record.Date.
const DateLayout = "2006-01-02"

// Status says whether a record is a completed visit or a wishlist entry.
type Status string

const (
	StatusVisited  Status = "visited"
	StatusWishlist Status = "wishlist"
)

// ValidStatus returns true if s is a known status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusVisited, StatusWishlist:
		return true
	}
	return false
}

// LatLng is a coordinate pair in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point returns the coordinate as an orb point (lng/lat order).
func (l LatLng) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Record is one pinned sauna location.
type Record struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Comment    string   `json:"comment"`
	Image      string   `json:"image,omitempty"`
	Date       string   `json:"date"`
	Rating     int      `json:"rating"`
	Tags       []string `json:"tags"`
	Status     Status   `json:"status"`
	Area       string   `json:"area"`
	VisitCount int      `json:"visitCount"`

	// Extra carries unknown fields found on imported or persisted
	// records so they survive an export round-trip.
	Extra map[string]json.RawMessage `json:"-"`
}

// Location returns the record's coordinate pair.
func (r Record) Location() LatLng {
	return LatLng{Lat: r.Lat, Lng: r.Lng}
}

// Point returns the record's coordinate as an orb point.
func (r Record) Point() orb.Point {
	return r.Location().Point()
}

// DateValue parses the record's date. Malformed dates yield the zero
// time, which orders after real dates under "recent" and before them
// under "oldest".
func (r Record) DateValue() time.Time {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DirectionsURL returns a Google Maps directions link for the record.
func (r Record) DirectionsURL() string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%v,%v", r.Lat, r.Lng)
}

// knownFields are the JSON keys owned by Record itself; everything
// else lands in Extra.
var knownFields = map[string]bool{
	"id": true, "name": true, "lat": true, "lng": true,
	"comment": true, "image": true, "date": true, "rating": true,
	"tags": true, "status": true, "area": true, "visitCount": true,
}

// recordAlias avoids recursing into the custom JSON methods.
type recordAlias Record

// UnmarshalJSON decodes a record and stashes unrecognized fields in
// Extra.
func (r *Record) UnmarshalJSON(data []byte) error {
	var a recordAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k := range raw {
		if knownFields[k] {
			delete(raw, k)
		}
	}
	if len(raw) > 0 {
		a.Extra = raw
	}

	*r = Record(a)
	return nil
}

// MarshalJSON encodes a record, merging Extra back in. Known fields
// always win over a stale Extra entry.
func (r Record) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(recordAlias(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
