// Package web provides the HTTP server for the map UI: an embedded
// single-page app and a JSON API over the visit store.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/totonoe/sauna-itta/internal/editor"
	"github.com/totonoe/sauna-itta/internal/logging"
	"github.com/totonoe/sauna-itta/internal/store"
)

//go:embed static/*
var staticFS embed.FS

// Server is the map UI HTTP server. It owns the editor state machine
// for the single browsing session; the store handles its own locking.
type Server struct {
	store *store.Store
	mux   *http.ServeMux

	mu     sync.Mutex
	editor *editor.Machine
}

// NewServer creates a web server over the given store.
func NewServer(st *store.Store) (*Server, error) {
	s := &Server{
		store:  st,
		editor: editor.New(false),
		mux:    http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.HandleFunc("/api/visits", s.handleVisits)
	s.mux.HandleFunc("/api/visits/", s.handleVisitRoute)
	s.mux.HandleFunc("/api/stats", s.handleStats)
	s.mux.HandleFunc("/api/theme", s.handleTheme)
	s.mux.HandleFunc("/api/editor", s.handleEditorState)
	s.mux.HandleFunc("/api/editor/", s.handleEditorAction)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.Handle("/", http.FileServer(&spaFileSystem{root: http.FS(staticContent)}))

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Serving the sauna map on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
