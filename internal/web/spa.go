package web

import (
	"net/http"
	"os"
)

// spaFileSystem implements http.FileSystem with single-page-app
// routing: missing paths fall back to index.html so client-side
// routes survive a reload.
type spaFileSystem struct {
	root http.FileSystem
}

func (s *spaFileSystem) Open(name string) (http.File, error) {
	f, err := s.root.Open(name)
	if os.IsNotExist(err) {
		return s.root.Open("index.html")
	}
	return f, err
}
