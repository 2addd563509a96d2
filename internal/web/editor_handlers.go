package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/totonoe/sauna-itta/internal/visit"
)

// handleEditorState returns the current editor snapshot.
func (s *Server) handleEditorState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	state := s.editor.State()
	s.mu.Unlock()
	apiJSON(w, state, http.StatusOK)
}

// handleEditorAction routes /api/editor/{action} transition requests
// and responds with the resulting state.
func (s *Server) handleEditorAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	action := strings.TrimPrefix(r.URL.Path, "/api/editor/")

	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case "start-create":
		s.editor.StartCreate()

	case "start-edit":
		var req struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		rec, ok := s.store.Find(req.ID)
		if !ok {
			apiError(w, "visit not found", http.StatusNotFound)
			return
		}
		s.editor.StartEdit(rec)

	case "select-location":
		var loc visit.LatLng
		if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
			apiError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		s.editor.SelectLocation(loc)

	case "cancel":
		var req struct {
			Completed bool `json:"completed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		s.editor.CancelEdit(req.Completed)

	case "toggle-sidebar":
		s.editor.ToggleSidebar()

	case "layout":
		var req struct {
			Narrow bool `json:"narrow"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		s.editor.SetNarrow(req.Narrow)

	default:
		apiError(w, "unknown editor action", http.StatusNotFound)
		return
	}

	apiJSON(w, s.editor.State(), http.StatusOK)
}
