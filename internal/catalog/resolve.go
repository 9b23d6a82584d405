package catalog

// Ref identifies one lesson in the catalog by its id pair.
type Ref struct {
	ModuleID string
	LessonID string
}

// LessonPath constructs the canonical route path for a lesson. Every lesson
// is addressable at exactly /{moduleID}/{lessonID}.
func LessonPath(moduleID, lessonID string) string {
	return "/" + moduleID + "/" + lessonID
}

// Resolve maps the current request path to the active lesson, or nil when no
// lesson matches. Matching is exact byte equality against each lesson's
// constructed path: no trailing-slash normalization, no case folding, no
// prefix matching ("/m/l/extra" does not match "/m/l"). On a validated
// catalog at most one lesson can match; if the uniqueness invariant were
// ever violated, the first match in catalog order wins.
//
// Resolve is total: any input string, including the empty string, yields
// either a ref drawn from the catalog or nil.
func (c *Catalog) Resolve(currentPath string) *Ref {
	for mi := range c.Modules {
		m := &c.Modules[mi]
		for li := range m.Lessons {
			if LessonPath(m.ID, m.Lessons[li].ID) == currentPath {
				return &Ref{ModuleID: m.ID, LessonID: m.Lessons[li].ID}
			}
		}
	}
	return nil
}
