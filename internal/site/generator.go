// Package site renders a course catalog into HTML: a static build for
// deployment and per-request rendering for the dev server.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/coursekit/coursekit/internal/catalog"
	"github.com/coursekit/coursekit/internal/nav"
	"github.com/coursekit/coursekit/internal/progress"
	"github.com/coursekit/coursekit/internal/walker"
)

// Options configures a Renderer.
type Options struct {
	ContentDir     string
	OutputDir      string
	HighlightStyle string   // chroma style name for fenced code blocks
	LiveReload     bool     // inject the reload script (dev server only)
	AssetInclude   []string // glob filters for the asset pipeline
	AssetExclude   []string
}

// Renderer turns catalog lessons into HTML pages. It is safe for concurrent
// use once constructed: goldmark converters and parsed templates are
// read-only after New.
type Renderer struct {
	opts Options
	md   goldmark.Markdown
	tmpl *template.Template
}

// pageData is the data passed to the page template.
type pageData struct {
	Title      string
	SiteTitle  string
	Content    template.HTML
	NavHTML    template.HTML
	BasePath   string
	LiveReload bool
}

// New creates a Renderer. The highlight style is applied to fenced code
// blocks via chroma.
func New(opts Options) (*Renderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(opts.HighlightStyle),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &Renderer{opts: opts, md: md, tmpl: tmpl}, nil
}

// LessonPage renders the full HTML page for one lesson. basePath is the
// relative prefix back to the site root ("/" in serve mode, "../../" on
// static lesson pages).
func (r *Renderer) LessonPage(c *catalog.Catalog, ref catalog.Ref, basePath string) ([]byte, error) {
	m, l, ok := c.Lookup(ref)
	if !ok {
		return nil, fmt.Errorf("lesson %s/%s not in catalog", ref.ModuleID, ref.LessonID)
	}

	body, err := r.lessonBody(m, l)
	if err != nil {
		return nil, err
	}

	var htmlBuf bytes.Buffer
	if err := r.md.Convert(body, &htmlBuf); err != nil {
		return nil, fmt.Errorf("converting %s/%s: %w", m.ID, l.ID, err)
	}

	return r.page(pageData{
		Title:      l.Title,
		SiteTitle:  c.Title,
		Content:    template.HTML(htmlBuf.String()),
		NavHTML:    nav.Build(c, &ref).HTML(basePath),
		BasePath:   basePath,
		LiveReload: r.opts.LiveReload,
	})
}

// IndexPage renders the course overview page: every module with its lesson
// links, nothing active.
func (r *Renderer) IndexPage(c *catalog.Catalog, basePath string) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "<h1>%s</h1>\n", template.HTMLEscapeString(c.Title))
	for _, m := range c.Modules {
		fmt.Fprintf(&b, `<section class="module-overview"><h2>%s</h2><ul>`+"\n",
			template.HTMLEscapeString(m.Title))
		for _, l := range m.Lessons {
			href := basePath + m.ID + "/" + l.ID
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`+"\n", href, template.HTMLEscapeString(l.Title))
		}
		b.WriteString("</ul></section>\n")
	}

	return r.page(pageData{
		Title:      c.Title,
		SiteTitle:  c.Title,
		Content:    template.HTML(b.String()),
		NavHTML:    nav.Build(c, nil).HTML(basePath),
		BasePath:   basePath,
		LiveReload: r.opts.LiveReload,
	})
}

// NotFoundPage renders the page served for unmatched routes: the full
// navigation with nothing active, per route-resolution policy.
func (r *Renderer) NotFoundPage(c *catalog.Catalog, basePath string) ([]byte, error) {
	content := `<h1>Page not found</h1><p>No lesson lives at this address. Pick one from the sidebar.</p>`
	return r.page(pageData{
		Title:      "Not Found",
		SiteTitle:  c.Title,
		Content:    template.HTML(content),
		NavHTML:    nav.Build(c, nil).HTML(basePath),
		BasePath:   basePath,
		LiveReload: r.opts.LiveReload,
	})
}

func (r *Renderer) page(data pageData) ([]byte, error) {
	var out bytes.Buffer
	if err := r.tmpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return out.Bytes(), nil
}

// lessonBody returns the markdown source for a lesson: its body file when
// one exists under contentDir/{moduleID}/{lessonID}.md, otherwise a
// generated outline of its topics.
func (r *Renderer) lessonBody(m *catalog.Module, l *catalog.Lesson) ([]byte, error) {
	path := filepath.Join(r.opts.ContentDir, m.ID, l.ID+".md")
	body, err := os.ReadFile(path)
	if err == nil {
		return body, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading lesson body %s: %w", path, err)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n", l.Title)
	if len(l.Topics) > 0 {
		b.WriteString("\nThis lesson covers:\n\n")
		for _, topic := range l.Topics {
			fmt.Fprintf(&b, "- %s\n", topic)
		}
	}
	return b.Bytes(), nil
}

// Generate builds the full static site: one directory per lesson holding an
// index.html (so the /{moduleID}/{lessonID} route convention survives on any
// static file server), the root index page, assets, and the search index.
// Returns the number of HTML pages written.
func (r *Renderer) Generate(c *catalog.Catalog, rep progress.Reporter) (int, error) {
	if rep == nil {
		rep = progress.Discard{}
	}
	out := r.opts.OutputDir

	if err := os.MkdirAll(out, 0o755); err != nil {
		return 0, err
	}

	// Static assets shared by every page.
	if err := os.WriteFile(filepath.Join(out, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(out, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	entries, err := BuildSearchIndex(c, r.opts.ContentDir)
	if err != nil {
		return 0, fmt.Errorf("building search index: %w", err)
	}
	if err := WriteSearchIndex(entries, filepath.Join(out, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	total := c.LessonCount() + 1
	rep.Start(total)
	pages := 0

	index, err := r.IndexPage(c, "")
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(out, "index.html"), index, 0o644); err != nil {
		return 0, err
	}
	pages++
	rep.Update(pages, "index")

	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			ref := catalog.Ref{ModuleID: m.ID, LessonID: l.ID}
			// Lesson pages live two levels deep.
			page, err := r.LessonPage(c, ref, "../../")
			if err != nil {
				return 0, err
			}
			dir := filepath.Join(out, m.ID, l.ID)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return 0, err
			}
			if err := os.WriteFile(filepath.Join(dir, "index.html"), page, 0o644); err != nil {
				return 0, err
			}
			pages++
			rep.Update(pages, m.ID+"/"+l.ID)
		}
	}
	rep.Finish()

	if err := r.copyAssets(); err != nil {
		return 0, fmt.Errorf("copying assets: %w", err)
	}

	return pages, nil
}

// copyAssets copies non-markdown content files (images etc.) into the
// output directory, preserving relative paths.
func (r *Renderer) copyAssets() error {
	assets, err := walker.CollectAssets(r.opts.ContentDir, r.opts.AssetInclude, r.opts.AssetExclude)
	if err != nil {
		return err
	}
	for _, rel := range assets {
		src := filepath.Join(r.opts.ContentDir, filepath.FromSlash(rel))
		dst := filepath.Join(r.opts.OutputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
