package server

import (
	"path/filepath"

	"github.com/coursekit/coursekit/internal/catalog"
	"github.com/coursekit/coursekit/internal/site"
)

// courseState is one immutable snapshot of the served course. Handlers read
// a snapshot; Refresh builds a fresh one and swaps the pointer, so no reader
// ever observes a half-updated catalog.
type courseState struct {
	catalog  *catalog.Catalog
	renderer *site.Renderer
	index    []site.SearchEntry
}

func (s *Server) snapshot() *courseState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.course
}

// Refresh reloads the catalog and search index from the content directory
// and swaps the served snapshot. On a load error the previous snapshot keeps
// serving and the error is returned for logging.
func (s *Server) Refresh() error {
	cs := s.snapshot()

	c, err := catalog.Load(filepath.Join(s.cfg.ContentDir, catalog.CatalogFile))
	if err != nil {
		return err
	}
	index, err := site.BuildSearchIndex(c, s.cfg.ContentDir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.course = &courseState{catalog: c, renderer: cs.renderer, index: index}
	s.mu.Unlock()
	return nil
}
