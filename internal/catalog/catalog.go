package catalog

import (
	"fmt"
	"regexp"
)

// Topic is a short label describing a sub-concept covered by a lesson.
type Topic string

// Lesson is a single addressable page within a module. Its route is
// /{module.ID}/{lesson.ID}.
type Lesson struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Topics []Topic `yaml:"topics"`
}

// Module is a named, ordered grouping of lessons.
type Module struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Lessons []Lesson `yaml:"lessons"`
}

// Catalog is the full course content model: an ordered sequence of modules.
// It is loaded once and read-only thereafter; concurrent readers need no
// synchronization.
type Catalog struct {
	Title   string   `yaml:"title"`
	Modules []Module `yaml:"modules"`
}

// slugPattern is the allowed shape for module and lesson ids: lowercase
// alphanumeric segments separated by single hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks catalog integrity: every id is a well-formed slug, module
// ids are unique across the catalog, and lesson ids are unique within their
// module. Together these guarantee that /{moduleID}/{lessonID} identifies at
// most one lesson, which Resolve relies on.
func (c *Catalog) Validate() error {
	if len(c.Modules) == 0 {
		return fmt.Errorf("catalog has no modules")
	}

	seenModules := make(map[string]bool, len(c.Modules))
	for _, m := range c.Modules {
		if m.ID == "" {
			return fmt.Errorf("module %q has an empty id", m.Title)
		}
		if !slugPattern.MatchString(m.ID) {
			return fmt.Errorf("module id %q is not a valid slug", m.ID)
		}
		if seenModules[m.ID] {
			return fmt.Errorf("duplicate module id %q", m.ID)
		}
		seenModules[m.ID] = true

		seenLessons := make(map[string]bool, len(m.Lessons))
		for _, l := range m.Lessons {
			if l.ID == "" {
				return fmt.Errorf("module %q: lesson %q has an empty id", m.ID, l.Title)
			}
			if !slugPattern.MatchString(l.ID) {
				return fmt.Errorf("module %q: lesson id %q is not a valid slug", m.ID, l.ID)
			}
			if seenLessons[l.ID] {
				return fmt.Errorf("module %q: duplicate lesson id %q", m.ID, l.ID)
			}
			seenLessons[l.ID] = true
		}
	}

	return nil
}

// Lookup finds the module and lesson for the given ref. It returns false if
// the ref names an id pair that is not in the catalog.
func (c *Catalog) Lookup(ref Ref) (*Module, *Lesson, bool) {
	for mi := range c.Modules {
		m := &c.Modules[mi]
		if m.ID != ref.ModuleID {
			continue
		}
		for li := range m.Lessons {
			if m.Lessons[li].ID == ref.LessonID {
				return m, &m.Lessons[li], true
			}
		}
	}
	return nil, nil, false
}

// LessonCount returns the total number of lessons across all modules.
func (c *Catalog) LessonCount() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}
