package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coursekit/coursekit/internal/catalog"
	"github.com/coursekit/coursekit/internal/site"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Title: "Test Course",
		Modules: []catalog.Module{
			{
				ID:    "module-1",
				Title: "Module 1: Basics",
				Lessons: []catalog.Lesson{
					{ID: "primitive-types", Title: "Primitive Types", Topics: []catalog.Topic{"string", "number"}},
					{ID: "type-annotations", Title: "Type Annotations"},
				},
			},
		},
	}
}

func testServer(t *testing.T, contentDir string) *httptest.Server {
	t.Helper()

	c := testCatalog()
	renderer, err := site.New(site.Options{
		ContentDir:     contentDir,
		HighlightStyle: "github",
		AssetInclude:   []string{"**"},
	})
	if err != nil {
		t.Fatalf("site.New failed: %v", err)
	}
	index, err := site.BuildSearchIndex(c, contentDir)
	if err != nil {
		t.Fatalf("BuildSearchIndex failed: %v", err)
	}

	srv := New(Config{
		Port:         0,
		ContentDir:   contentDir,
		AssetInclude: []string{"**"},
	}, c, renderer, index)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	ts := testServer(t, t.TempDir())
	status, body := get(t, ts, "/healthz")
	if status != http.StatusOK || !strings.Contains(body, "ok") {
		t.Errorf("healthz = %d %q", status, body)
	}
}

func TestIndexRoute(t *testing.T) {
	ts := testServer(t, t.TempDir())
	status, body := get(t, ts, "/")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "Module 1: Basics") {
		t.Error("index missing module heading")
	}
	if strings.Contains(body, `class="active"`) {
		t.Error("index should have no active lesson")
	}
}

func TestLessonRouteResolved(t *testing.T) {
	contentDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(contentDir, "module-1"), 0o755); err != nil {
		t.Fatal(err)
	}
	body := "# Primitive Types\n\nServed body.\n"
	if err := os.WriteFile(filepath.Join(contentDir, "module-1", "primitive-types.md"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	ts := testServer(t, contentDir)
	status, html := get(t, ts, "/module-1/primitive-types")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(html, "Served body.") {
		t.Error("lesson body not rendered")
	}
	if !strings.Contains(html, `class="active"`) {
		t.Error("active lesson not highlighted")
	}
	if !strings.Contains(html, `<ul class="topics">`) {
		t.Error("topics sublist not expanded")
	}
}

// Exact-match resolution: trailing slashes, deeper paths, and unknown pairs
// all render the 404 page with nothing active.
func TestUnmatchedRoutes(t *testing.T) {
	ts := testServer(t, t.TempDir())

	for _, path := range []string{
		"/module-1/primitive-types/",
		"/module-1/primitive-types/extra",
		"/nonexistent-module/nonexistent-lesson",
		"/module-1",
	} {
		status, body := get(t, ts, path)
		if status != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, status)
		}
		if !strings.Contains(body, "Page not found") {
			t.Errorf("GET %s: body is not the 404 page", path)
		}
		if strings.Contains(body, `class="active"`) {
			t.Errorf("GET %s: 404 page must have nothing active", path)
		}
		// Navigation still renders in full.
		if !strings.Contains(body, "Primitive Types") {
			t.Errorf("GET %s: 404 page missing navigation", path)
		}
	}
}

func TestStaticAssets(t *testing.T) {
	contentDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(contentDir, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(contentDir, "images", "logo.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	ts := testServer(t, contentDir)

	status, body := get(t, ts, "/style.css")
	if status != http.StatusOK || !strings.Contains(body, "sidebar") {
		t.Errorf("style.css = %d", status)
	}
	status, _ = get(t, ts, "/script.js")
	if status != http.StatusOK {
		t.Errorf("script.js = %d", status)
	}
	status, body = get(t, ts, "/images/logo.svg")
	if status != http.StatusOK || body != "<svg/>" {
		t.Errorf("asset = %d %q", status, body)
	}

	// Raw markdown and the catalog file are never served.
	status, _ = get(t, ts, "/catalog.yml")
	if status != http.StatusNotFound {
		t.Errorf("catalog.yml status = %d, want 404", status)
	}
}

func TestSearchIndexRoute(t *testing.T) {
	ts := testServer(t, t.TempDir())
	status, body := get(t, ts, "/search-index.json")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var entries []site.SearchEntry
	if err := json.Unmarshal([]byte(body), &entries); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2", len(entries))
	}
}

func TestAPISearch(t *testing.T) {
	ts := testServer(t, t.TempDir())

	payload := bytes.NewBufferString(`{"query":"primitive"}`)
	resp, err := http.Post(ts.URL+"/api/search", "application/json", payload)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got struct {
		Results []site.SearchResult `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got.Results) != 1 || got.Results[0].Entry.Path != "/module-1/primitive-types" {
		t.Errorf("results = %+v", got.Results)
	}
}

func TestAPISearchRejectsEmptyQuery(t *testing.T) {
	ts := testServer(t, t.TempDir())
	resp, err := http.Post(ts.URL+"/api/search", "application/json", bytes.NewBufferString(`{"query":"  "}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRefreshSwapsCatalog(t *testing.T) {
	contentDir := t.TempDir()
	catalogYAML := `title: Refreshed Course
modules:
  - id: module-9
    title: "Module 9"
    lessons:
      - id: fresh-lesson
        title: Fresh Lesson
`
	if err := os.WriteFile(filepath.Join(contentDir, catalog.CatalogFile), []byte(catalogYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	c := testCatalog()
	renderer, err := site.New(site.Options{ContentDir: contentDir, HighlightStyle: "github"})
	if err != nil {
		t.Fatal(err)
	}
	srv := New(Config{ContentDir: contentDir, AssetInclude: []string{"**"}}, c, renderer, nil)

	if srv.snapshot().catalog.Resolve("/module-9/fresh-lesson") != nil {
		t.Fatal("new lesson resolvable before refresh")
	}
	if err := srv.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if srv.snapshot().catalog.Resolve("/module-9/fresh-lesson") == nil {
		t.Error("new lesson not resolvable after refresh")
	}
	if len(srv.snapshot().index) != 1 {
		t.Errorf("index entries = %d, want 1", len(srv.snapshot().index))
	}
}
