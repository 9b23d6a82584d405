package nav

import (
	"strings"
	"testing"

	"github.com/coursekit/coursekit/internal/catalog"
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
					{ID: "interfaces", Title: "Interfaces", Topics: []catalog.Topic{"readonly"}},
				},
			},
		},
	}
}

func TestBuildMarksSingleActive(t *testing.T) {
	c := testCatalog()
	tree := Build(c, &catalog.Ref{ModuleID: "module-1", LessonID: "primitive-types"})

	if got := tree.ActiveCount(); got != 1 {
		t.Fatalf("active entries = %d, want 1", got)
	}

	e := tree.Groups[0].Entries[0]
	if !e.Active {
		t.Error("first lesson should be active")
	}
	if len(e.Topics) != 2 || e.Topics[0] != "string" {
		t.Errorf("active topics = %v", e.Topics)
	}

	// Non-active lessons never carry topics, even when the lesson has some.
	if got := tree.Groups[1].Entries[0].Topics; got != nil {
		t.Errorf("inactive entry topics = %v, want nil", got)
	}
}

func TestBuildNilActive(t *testing.T) {
	tree := Build(testCatalog(), nil)
	if got := tree.ActiveCount(); got != 0 {
		t.Errorf("active entries = %d, want 0", got)
	}
	for _, g := range tree.Groups {
		for _, e := range g.Entries {
			if e.Topics != nil {
				t.Errorf("entry %q has topics without being active", e.Title)
			}
		}
	}
}

// A ref naming an id pair absent from the catalog renders with nothing
// active, not an error.
func TestBuildUnknownActiveRef(t *testing.T) {
	tree := Build(testCatalog(), &catalog.Ref{ModuleID: "ghost", LessonID: "lesson"})
	if got := tree.ActiveCount(); got != 0 {
		t.Errorf("active entries = %d, want 0", got)
	}
}

func TestBuildPreservesCatalogOrder(t *testing.T) {
	tree := Build(testCatalog(), nil)

	if len(tree.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(tree.Groups))
	}
	if tree.Groups[0].Title != "Module 1: Basics" || tree.Groups[1].Title != "Module 2: Objects" {
		t.Errorf("group order: %q, %q", tree.Groups[0].Title, tree.Groups[1].Title)
	}
	if tree.Groups[0].Entries[0].Href != "/module-1/primitive-types" {
		t.Errorf("first href = %q", tree.Groups[0].Entries[0].Href)
	}
}

func TestHTMLActiveAndTopics(t *testing.T) {
	c := testCatalog()
	ref := c.Resolve("/module-1/primitive-types")
	html := string(Build(c, ref).HTML("/"))

	if !strings.Contains(html, `class="active"`) {
		t.Error("missing active class")
	}
	if strings.Count(html, `class="active"`) != 1 {
		t.Error("more than one active entry")
	}
	if !strings.Contains(html, `<ul class="topics">`) {
		t.Error("missing topics sublist for active lesson")
	}
	if !strings.Contains(html, `href="/module-1/primitive-types"`) {
		t.Error("missing lesson link")
	}
	if !strings.Contains(html, `href="/"`) {
		t.Error("missing home link")
	}
}

func TestHTMLNothingActive(t *testing.T) {
	html := string(Build(testCatalog(), nil).HTML("/"))
	if strings.Contains(html, `class="active"`) {
		t.Error("no entry should be active")
	}
	if strings.Contains(html, `class="topics"`) {
		t.Error("no topics sublist should be expanded")
	}
}

func TestHTMLBasePath(t *testing.T) {
	html := string(Build(testCatalog(), nil).HTML("../../"))
	if !strings.Contains(html, `href="../../module-2/interfaces"`) {
		t.Errorf("lesson href not prefixed with base path:\n%s", html)
	}
	if !strings.Contains(html, `href="../../index.html"`) {
		t.Error("home href not prefixed with base path")
	}
}

func TestHTMLEscapesTitles(t *testing.T) {
	c := testCatalog()
	c.Modules[0].Lessons[1].Title = `Generics <T> & Friends`
	html := string(Build(c, nil).HTML("/"))
	if strings.Contains(html, "<T>") {
		t.Error("lesson title not escaped")
	}
	if !strings.Contains(html, "Generics &lt;T&gt; &amp; Friends") {
		t.Error("escaped title missing")
	}
}
