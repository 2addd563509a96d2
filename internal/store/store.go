// Package store owns the authoritative in-memory visit list and all
// reads and writes of the local key-value snapshot. No other package
// touches the storage keys.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/totonoe/sauna-itta/internal/kv"
	"github.com/totonoe/sauna-itta/internal/visit"
)

// Storage keys. visitsKey holds the full record list as one JSON
// array; themeKey holds the theme preference string.
const (
	visitsKey = "sauna-itta_visits"
	themeKey  = "sauna-itta_theme"
)

// ExportFilename is the download name for exported snapshots.
const ExportFilename = "sauna-visits.json"

// Theme preference values. Dark is the default.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ParseError reports malformed import data.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing visit data: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormInput carries the editor form fields for a create or update.
// Validation (non-empty name, a chosen location) happens at the
// interaction layer; the store assumes valid input.
type FormInput struct {
	Name       string `json:"name"`
	Comment    string `json:"comment"`
	Image      string `json:"image"`
	Date       string `json:"date"`
	Rating     int    `json:"rating"`
	TagsText   string `json:"tagsText"`
	Status     string `json:"status"`
	Area       string `json:"area"`
	VisitCount int    `json:"visitCount"`
}

// Store holds the merged visit list and persists it as a whole
// snapshot on every save. Safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	kv     kv.Store
	visits []visit.Record

	now   func() time.Time
	newID func() string
}

// Open loads the seed bundle and any persisted snapshot from backend
// and returns a store over the merged list. A persisted snapshot that
// fails to parse is logged and discarded, degrading to seed-only.
func Open(backend kv.Store) *Store {
	s := &Store{
		kv:    backend,
		now:   time.Now,
		newID: uuid.NewString,
	}
	s.visits = s.initialize()
	return s
}

// initialize merges the seed list with the persisted snapshot. Seed
// records win on id collision; surviving persisted customs are listed
// first.
func (s *Store) initialize() []visit.Record {
	base := seedRecords()

	raw, ok, err := s.kv.Get(visitsKey)
	if err != nil {
		slog.Error("reading persisted visits", "error", err)
		return base
	}
	if !ok {
		return base
	}

	var saved []visit.Record
	if err := json.Unmarshal(raw, &saved); err != nil {
		slog.Error("parsing persisted visits, falling back to seed data", "error", err)
		return base
	}

	seedIDs := make(map[string]bool, len(base))
	for _, r := range base {
		seedIDs[r.ID] = true
	}

	customs := []visit.Record{}
	for _, r := range visit.NormalizeAll(saved) {
		if !seedIDs[r.ID] {
			customs = append(customs, r)
		}
	}

	return append(customs, base...)
}

// Visits returns a copy of the current record list.
func (s *Store) Visits() []visit.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]visit.Record, len(s.visits))
	copy(out, s.visits)
	return out
}

// Find returns the record with the given id, if present.
func (s *Store) Find(id string) (visit.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.visits {
		if r.ID == id {
			return r, true
		}
	}
	return visit.Record{}, false
}

// Create builds a fresh normalized record from a picked location and
// form input: new id, today's date when the form left it blank, tags
// split from the free-text field. The store is not modified; prepend
// the result and Save.
func (s *Store) Create(loc visit.LatLng, form FormInput) visit.Record {
	date := form.Date
	if date == "" {
		date = s.now().Format(visit.DateLayout)
	}

	return visit.Normalize(visit.Record{
		ID:         s.newID(),
		Name:       form.Name,
		Lat:        loc.Lat,
		Lng:        loc.Lng,
		Comment:    form.Comment,
		Image:      form.Image,
		Date:       date,
		Rating:     form.Rating,
		Tags:       visit.SplitTags(form.TagsText),
		Status:     visit.Status(form.Status),
		Area:       form.Area,
		VisitCount: form.VisitCount,
	})
}

// Update returns a new list with the record matching id rebuilt from
// the location and form input, keeping its identity (and any unknown
// extra fields). When no record matches, the list is returned
// unchanged; that is a caller-contract violation, not an error.
func (s *Store) Update(id string, loc visit.LatLng, form FormInput) []visit.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]visit.Record, len(s.visits))
	for i, r := range s.visits {
		if r.ID != id {
			out[i] = r
			continue
		}
		out[i] = visit.Normalize(visit.Record{
			ID:         r.ID,
			Name:       form.Name,
			Lat:        loc.Lat,
			Lng:        loc.Lng,
			Comment:    form.Comment,
			Image:      form.Image,
			Date:       form.Date,
			Rating:     form.Rating,
			Tags:       visit.SplitTags(form.TagsText),
			Status:     visit.Status(form.Status),
			Area:       form.Area,
			VisitCount: form.VisitCount,
			Extra:      r.Extra,
		})
	}
	return out
}

// Delete returns a new list without the record matching id. Absent
// ids are a no-op.
func (s *Store) Delete(id string) []visit.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]visit.Record, 0, len(s.visits))
	for _, r := range s.visits {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

// Save replaces the in-memory list with list and writes the full
// snapshot to the backend. On a write failure — typically
// kv.ErrValueTooLarge from embedded images — the in-memory list stays
// replaced so the session remains consistent, and the error is
// returned so callers can warn that a reload will lose the change.
func (s *Store) Save(list []visit.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visits = make([]visit.Record, len(list))
	copy(s.visits, list)

	data, err := json.Marshal(s.visits)
	if err != nil {
		return fmt.Errorf("serializing visits: %w", err)
	}
	if err := s.kv.Put(visitsKey, data); err != nil {
		return fmt.Errorf("persisting visits: %w", err)
	}
	return nil
}

// Import parses data as a JSON array of records, normalizes them,
// drops any whose id already exists, and returns the count added plus
// the merged list with new records prepended. The store is not
// modified; pass the merged list to Save. Malformed input yields a
// ParseError and zero records added.
func (s *Store) Import(data []byte) (int, []visit.Record, error) {
	var incoming []visit.Record
	if err := json.Unmarshal(data, &incoming); err != nil {
		return 0, nil, &ParseError{Err: err}
	}

	current := s.Visits()
	existing := make(map[string]bool, len(current))
	for _, r := range current {
		existing[r.ID] = true
	}

	added := []visit.Record{}
	for _, r := range visit.NormalizeAll(incoming) {
		if !existing[r.ID] {
			added = append(added, r)
		}
	}

	if len(added) == 0 {
		return 0, current, nil
	}
	return len(added), append(added, current...), nil
}

// Export serializes the current list as indented JSON. The output
// round-trips through Import id-for-id.
func (s *Store) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.Visits(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing visits: %w", err)
	}
	return data, nil
}

// Theme returns the persisted theme preference, defaulting to dark
// when unset or unrecognized.
func (s *Store) Theme() string {
	raw, ok, err := s.kv.Get(themeKey)
	if err != nil {
		slog.Error("reading theme preference", "error", err)
		return ThemeDark
	}
	if theme := string(raw); ok && (theme == ThemeDark || theme == ThemeLight) {
		return theme
	}
	return ThemeDark
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := s.kv.Put(themeKey, []byte(theme)); err != nil {
		return fmt.Errorf("persisting theme: %w", err)
	}
	return nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}
