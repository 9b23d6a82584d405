// Package nav builds the sidebar navigation for a course catalog: module
// headers, lesson links, and an expanded topic sublist on the active lesson.
package nav

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/coursekit/coursekit/internal/catalog"
)

// Entry is one lesson link in the navigation.
type Entry struct {
	Title  string
	Href   string // canonical route path, e.g. "/module-1/primitive-types"
	Active bool
	Topics []string // populated only when Active and the lesson has topics
}

// Group is one module heading with its ordered lesson entries.
type Group struct {
	Title   string
	Entries []Entry
}

// Tree is the full navigation structure for one render.
type Tree struct {
	SiteTitle string
	Groups    []Group
}

// Build walks the catalog in declaration order and produces the navigation
// tree for the given active lesson. It is a pure function of its inputs:
// passing a ref that matches nothing in the catalog (or nil) yields a tree
// with no entry marked active.
func Build(c *catalog.Catalog, active *catalog.Ref) *Tree {
	t := &Tree{SiteTitle: c.Title, Groups: make([]Group, 0, len(c.Modules))}

	for _, m := range c.Modules {
		g := Group{Title: m.Title, Entries: make([]Entry, 0, len(m.Lessons))}
		for _, l := range m.Lessons {
			e := Entry{
				Title: l.Title,
				Href:  catalog.LessonPath(m.ID, l.ID),
			}
			if active != nil && active.ModuleID == m.ID && active.LessonID == l.ID {
				e.Active = true
				for _, topic := range l.Topics {
					e.Topics = append(e.Topics, string(topic))
				}
			}
			g.Entries = append(g.Entries, e)
		}
		t.Groups = append(t.Groups, g)
	}

	return t
}

// HTML renders the tree as nested <ul>/<li> sidebar markup. basePath is the
// prefix back to the site root: "/" when served dynamically, "", "../" or
// "../../" on statically generated pages.
func (t *Tree) HTML(basePath string) template.HTML {
	var b strings.Builder

	homeHref := basePath + "index.html"
	if basePath == "/" {
		homeHref = "/"
	}
	fmt.Fprintf(&b, `<ul><li class="home-link"><a href="%s">%s</a></li></ul>`+"\n",
		homeHref, template.HTMLEscapeString(t.SiteTitle))

	b.WriteString("<ul>\n")
	for _, g := range t.Groups {
		fmt.Fprintf(&b, `<li class="module"><span class="module-title">%s</span>`+"\n",
			template.HTMLEscapeString(g.Title))
		b.WriteString("<ul>\n")
		for _, e := range g.Entries {
			href := basePath + strings.TrimPrefix(e.Href, "/")
			activeClass := ""
			if e.Active {
				activeClass = ` class="active"`
			}
			fmt.Fprintf(&b, `<li class="lesson"><a href="%s"%s>%s</a>`,
				href, activeClass, template.HTMLEscapeString(e.Title))
			if e.Active && len(e.Topics) > 0 {
				b.WriteString(`<ul class="topics">`)
				for _, topic := range e.Topics {
					fmt.Fprintf(&b, `<li class="topic">%s</li>`, template.HTMLEscapeString(topic))
				}
				b.WriteString("</ul>")
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n</li>\n")
	}
	b.WriteString("</ul>\n")

	return template.HTML(b.String())
}

// ActiveCount reports how many entries are marked active; a rendered tree
// carries at most one.
func (t *Tree) ActiveCount() int {
	n := 0
	for _, g := range t.Groups {
		for _, e := range g.Entries {
			if e.Active {
				n++
			}
		}
	}
	return n
}
