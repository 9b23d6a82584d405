// Package server is the coursekit dev server: it resolves every request
// path against the catalog at request time, renders the matched lesson, and
// pushes live-reload events to connected browsers when content changes.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/coursekit/coursekit/internal/catalog"
	"github.com/coursekit/coursekit/internal/site"
	"github.com/coursekit/coursekit/internal/walker"
)

// Config holds dev server configuration.
type Config struct {
	Port         int
	ContentDir   string
	LiveReload   bool
	AllowAll     bool // allow all CORS origins
	AssetInclude []string
	AssetExclude []string
}

// Server serves a course catalog over HTTP.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
	hub        *Hub

	// course holds the catalog, renderer, and search index together so a
	// content refresh swaps them as one unit. The catalog itself stays
	// immutable; refresh replaces the whole snapshot.
	mu     sync.RWMutex
	course *courseState
}

// New creates a dev server for the given catalog and renderer.
func New(cfg Config, c *catalog.Catalog, renderer *site.Renderer, index []site.SearchEntry) *Server {
	s := &Server{
		cfg: cfg,
		hub: NewHub(),
		course: &courseState{
			catalog:  c,
			renderer: renderer,
			index:    index,
		},
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Post("/api/search", s.handleSearch)
	if s.cfg.LiveReload {
		r.Get("/ws/reload", s.hub.ServeWS)
	}

	// Everything else goes through catalog resolution.
	r.NotFound(s.handlePage)

	return r
}

// Router exposes the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Hub exposes the live-reload hub so a content watcher can broadcast.
func (s *Server) Hub() *Hub { return s.hub }

// handlePage resolves the request path against the catalog. The resolver is
// invoked per request: it is the single source of truth for which lesson, if
// any, is active.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	cs := s.snapshot()
	path := r.URL.Path

	if path == "/" {
		page, err := cs.renderer.IndexPage(cs.catalog, "/")
		s.writePage(w, page, err, http.StatusOK)
		return
	}

	if ref := cs.catalog.Resolve(path); ref != nil {
		page, err := cs.renderer.LessonPage(cs.catalog, *ref, "/")
		s.writePage(w, page, err, http.StatusOK)
		return
	}

	switch path {
	case "/style.css":
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(site.CSS()))
		return
	case "/script.js":
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Write([]byte(site.JS()))
		return
	case "/search-index.json":
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cs.index)
		return
	}

	if s.serveAsset(w, r, path) {
		return
	}

	// Unmatched path: full navigation, nothing active, 404 status.
	page, err := cs.renderer.NotFoundPage(cs.catalog, "/")
	s.writePage(w, page, err, http.StatusNotFound)
}

// serveAsset serves a content-dir asset when the path names one that passes
// the asset filters. Returns false when the path is not an asset.
func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request, path string) bool {
	rel := strings.TrimPrefix(path, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return false
	}
	if strings.HasSuffix(rel, ".md") || rel == catalog.CatalogFile {
		return false
	}
	if !walker.Match(rel, s.cfg.AssetInclude, s.cfg.AssetExclude) {
		return false
	}

	full := filepath.Join(s.cfg.ContentDir, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeFile(w, r, full)
	return true
}

func (s *Server) writePage(w http.ResponseWriter, page []byte, err error, status int) {
	if err != nil {
		log.Printf("server: rendering page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(page)
}

// searchRequest is the JSON body for POST /api/search.
type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// searchResponse is the JSON response for POST /api/search.
type searchResponse struct {
	Results []site.SearchResult `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, `{"error":"query is required"}`, http.StatusBadRequest)
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > 20 {
		limit = 8
	}

	cs := s.snapshot()
	results := site.Search(cs.index, req.Query, limit)
	if results == nil {
		results = []site.SearchResult{}
	}
	json.NewEncoder(w).Encode(searchResponse{Results: results})
}

// Start begins listening on the configured port and blocks until the
// listener stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("coursekit dev server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
