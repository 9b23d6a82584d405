package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coursekit/coursekit/internal/catalog"
	"github.com/coursekit/coursekit/internal/progress"
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
			{
				ID:    "module-2",
				Title: "Module 2: Objects",
				Lessons: []catalog.Lesson{
					{ID: "interfaces", Title: "Interfaces"},
				},
			},
		},
	}
}

func testRenderer(t *testing.T, contentDir, outputDir string) *Renderer {
	t.Helper()
	r, err := New(Options{
		ContentDir:     contentDir,
		OutputDir:      outputDir,
		HighlightStyle: "github",
		AssetInclude:   []string{"**"},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r
}

func writeBody(t *testing.T, contentDir, rel, body string) {
	t.Helper()
	path := filepath.Join(contentDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLessonPageWithBody(t *testing.T) {
	contentDir := t.TempDir()
	writeBody(t, contentDir, "module-1/primitive-types.md",
		"# Primitive Types\n\nSome prose.\n\n```ts\nlet x: string;\n```\n")

	r := testRenderer(t, contentDir, t.TempDir())
	c := testCatalog()

	page, err := r.LessonPage(c, catalog.Ref{ModuleID: "module-1", LessonID: "primitive-types"}, "/")
	if err != nil {
		t.Fatalf("LessonPage failed: %v", err)
	}
	html := string(page)

	if !strings.Contains(html, "Some prose.") {
		t.Error("page missing rendered body")
	}
	if !strings.Contains(html, `class="active"`) {
		t.Error("page missing active sidebar entry")
	}
	if !strings.Contains(html, `<ul class="topics">`) {
		t.Error("page missing expanded topics for active lesson")
	}
	if !strings.Contains(html, "<title>Primitive Types — Test Course</title>") {
		t.Error("page missing title")
	}
	// Highlighted code blocks come out of chroma with inline styles.
	if !strings.Contains(html, "<pre") {
		t.Error("page missing code block")
	}
}

func TestLessonPageWithoutBodyRendersOutline(t *testing.T) {
	r := testRenderer(t, t.TempDir(), t.TempDir())
	c := testCatalog()

	page, err := r.LessonPage(c, catalog.Ref{ModuleID: "module-1", LessonID: "primitive-types"}, "/")
	if err != nil {
		t.Fatalf("LessonPage failed: %v", err)
	}
	html := string(page)

	if !strings.Contains(html, "This lesson covers:") {
		t.Error("bodyless lesson should render a topic outline")
	}
	if !strings.Contains(html, "<li>string</li>") {
		t.Error("outline missing topics")
	}
}

func TestLessonPageUnknownRef(t *testing.T) {
	r := testRenderer(t, t.TempDir(), t.TempDir())
	if _, err := r.LessonPage(testCatalog(), catalog.Ref{ModuleID: "ghost", LessonID: "lesson"}, "/"); err == nil {
		t.Error("LessonPage succeeded for ref not in catalog")
	}
}

func TestIndexPage(t *testing.T) {
	r := testRenderer(t, t.TempDir(), t.TempDir())
	page, err := r.IndexPage(testCatalog(), "/")
	if err != nil {
		t.Fatalf("IndexPage failed: %v", err)
	}
	html := string(page)

	if !strings.Contains(html, "Module 1: Basics") || !strings.Contains(html, "Module 2: Objects") {
		t.Error("index missing module headings")
	}
	if !strings.Contains(html, `href="/module-2/interfaces"`) {
		t.Error("index missing lesson link")
	}
	if strings.Contains(html, `class="active"`) {
		t.Error("index should have nothing active")
	}
}

func TestNotFoundPage(t *testing.T) {
	r := testRenderer(t, t.TempDir(), t.TempDir())
	page, err := r.NotFoundPage(testCatalog(), "/")
	if err != nil {
		t.Fatalf("NotFoundPage failed: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "Page not found") {
		t.Error("missing not-found message")
	}
	if !strings.Contains(html, `href="/module-1/primitive-types"`) {
		t.Error("not-found page should still carry full navigation")
	}
	if strings.Contains(html, `class="active"`) {
		t.Error("not-found page should have nothing active")
	}
}

func TestGenerate(t *testing.T) {
	contentDir := t.TempDir()
	outputDir := t.TempDir()
	writeBody(t, contentDir, "module-1/primitive-types.md", "# Primitive Types\n\nBody.\n")
	writeBody(t, contentDir, "images/logo.svg", "<svg/>")

	r := testRenderer(t, contentDir, outputDir)
	c := testCatalog()

	pages, err := r.Generate(c, progress.Discard{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if pages != 4 { // index + 3 lessons
		t.Errorf("pages = %d, want 4", pages)
	}

	wantFiles := []string{
		"index.html",
		"style.css",
		"script.js",
		"search-index.json",
		"module-1/primitive-types/index.html",
		"module-1/type-annotations/index.html",
		"module-2/interfaces/index.html",
		"images/logo.svg",
	}
	for _, rel := range wantFiles {
		if _, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing output file %s: %v", rel, err)
		}
	}

	// Lesson pages are two levels deep and reference shared assets relatively.
	data, err := os.ReadFile(filepath.Join(outputDir, "module-1", "primitive-types", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `href="../../style.css"`) {
		t.Error("lesson page missing relative stylesheet link")
	}
	if !strings.Contains(string(data), `href="../../module-1/type-annotations"`) {
		t.Error("lesson page sidebar missing relative lesson link")
	}
}
