package web

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/totonoe/sauna-itta/internal/store"
	"github.com/totonoe/sauna-itta/internal/visit"
)

// maxImportBytes caps import uploads. Snapshots above the storage
// limit would fail to persist anyway.
const maxImportBytes = 20 << 20

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// mutationRequest is the body of create and update calls: the staged
// map location plus the form fields.
type mutationRequest struct {
	SelectedLocation *visit.LatLng   `json:"selectedLocation"`
	Form             store.FormInput `json:"form"`
}

// saveResult annotates a mutation response with whether the snapshot
// reached storage. A false value means the change lives only in
// memory and a reload will lose it.
func (s *Server) saveResult(list []visit.Record) bool {
	if err := s.store.Save(list); err != nil {
		slog.Warn("visit snapshot not persisted", "error", err)
		return false
	}
	return true
}

// handleVisits routes /api/visits — list or create.
func (s *Server) handleVisits(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.apiListVisits(w, r)
	case http.MethodPost:
		s.apiCreateVisit(w, r)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiListVisits returns the record list filtered and sorted by the
// query parameters (search, status, min_rating, sort).
func (s *Server) apiListVisits(w http.ResponseWriter, r *http.Request) {
	f := visit.DefaultFilters()
	q := r.URL.Query()

	f.Search = q.Get("search")
	if status := q.Get("status"); status != "" {
		if status != visit.StatusFilterAll && !visit.ValidStatus(status) {
			apiError(w, "status must be all, visited, or wishlist", http.StatusBadRequest)
			return
		}
		f.Status = status
	}
	if minStr := q.Get("min_rating"); minStr != "" {
		min, err := strconv.Atoi(minStr)
		if err != nil || min < 0 || min > 5 {
			apiError(w, "min_rating must be 0-5", http.StatusBadRequest)
			return
		}
		f.MinRating = min
	}
	if sortMode := q.Get("sort"); sortMode != "" {
		switch sortMode {
		case visit.SortRecent, visit.SortOldest, visit.SortRatingDesc, visit.SortRatingAsc:
			f.Sort = sortMode
		default:
			apiError(w, "unknown sort mode", http.StatusBadRequest)
			return
		}
	}

	visits := visit.Sort(visit.Filter(s.store.Visits(), f), f.Sort)
	apiJSON(w, visits, http.StatusOK)
}

// apiCreateVisit adds a new record from a picked location and form.
func (s *Server) apiCreateVisit(w http.ResponseWriter, r *http.Request) {
	var req mutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SelectedLocation == nil {
		apiError(w, "no location chosen", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Form.Name) == "" {
		apiError(w, "name is required", http.StatusBadRequest)
		return
	}

	rec := s.store.Create(*req.SelectedLocation, req.Form)
	saved := s.saveResult(append([]visit.Record{rec}, s.store.Visits()...))

	apiJSON(w, map[string]interface{}{"visit": rec, "saved": saved}, http.StatusCreated)
}

// handleVisitRoute routes /api/visits/{id} and the import/export
// endpoints.
func (s *Server) handleVisitRoute(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/visits/")

	switch path {
	case "import":
		if r.Method != http.MethodPost {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiImportVisits(w, r)
		return
	case "export":
		if r.Method != http.MethodGet {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiExportVisits(w)
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.apiUpdateVisit(w, r, path)
	case http.MethodDelete:
		s.apiDeleteVisit(w, path)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiUpdateVisit replaces the record matching id.
func (s *Server) apiUpdateVisit(w http.ResponseWriter, r *http.Request, id string) {
	if _, ok := s.store.Find(id); !ok {
		apiError(w, "visit not found", http.StatusNotFound)
		return
	}

	var req mutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SelectedLocation == nil {
		apiError(w, "no location chosen", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Form.Name) == "" {
		apiError(w, "name is required", http.StatusBadRequest)
		return
	}

	list := s.store.Update(id, *req.SelectedLocation, req.Form)
	saved := s.saveResult(list)

	updated, _ := s.store.Find(id)
	apiJSON(w, map[string]interface{}{"visit": updated, "saved": saved}, http.StatusOK)
}

// apiDeleteVisit removes the record matching id. Deleting an absent
// id is not an error.
func (s *Server) apiDeleteVisit(w http.ResponseWriter, id string) {
	saved := s.saveResult(s.store.Delete(id))
	apiJSON(w, map[string]interface{}{"deleted": id, "saved": saved}, http.StatusOK)
}

// apiImportVisits merges an uploaded JSON array into the store.
func (s *Server) apiImportVisits(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		apiError(w, "reading upload", http.StatusBadRequest)
		return
	}

	added, merged, err := s.store.Import(data)
	if err != nil {
		var parseErr *store.ParseError
		if errors.As(err, &parseErr) {
			apiError(w, "invalid import file", http.StatusBadRequest)
			return
		}
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	saved := true
	if added > 0 {
		saved = s.saveResult(merged)
	}

	apiJSON(w, map[string]interface{}{
		"added": added,
		"total": len(merged),
		"saved": saved,
	}, http.StatusOK)
}

// apiExportVisits serves the snapshot as a JSON download.
func (s *Server) apiExportVisits(w http.ResponseWriter) {
	data, err := s.store.Export()
	if err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+store.ExportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Warn("writing export", "error", err)
	}
}

// handleStats returns summary statistics over the full list.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiJSON(w, visit.ComputeStats(s.store.Visits()), http.StatusOK)
}

// handleTheme reads or writes the theme preference.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		apiJSON(w, map[string]string{"theme": s.store.Theme()}, http.StatusOK)
	case http.MethodPut:
		var req struct {
			Theme string `json:"theme"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if err := s.store.SetTheme(req.Theme); err != nil {
			apiError(w, err.Error(), http.StatusBadRequest)
			return
		}
		apiJSON(w, map[string]string{"theme": req.Theme}, http.StatusOK)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
