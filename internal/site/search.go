package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/coursekit/coursekit/internal/catalog"
)

// SearchEntry is one searchable lesson in the index.
type SearchEntry struct {
	Path    string   `json:"path"` // canonical route, e.g. /module-1/primitive-types
	Title   string   `json:"title"`
	Module  string   `json:"module"`
	Topics  []string `json:"topics,omitempty"`
	Content string   `json:"content,omitempty"` // body excerpt, markdown stripped of code fences
}

// maxExcerpt bounds how much lesson body lands in the index.
const maxExcerpt = 2000

// BuildSearchIndex produces one entry per lesson in catalog order. Lesson
// bodies are read from contentDir when present; lessons without a body are
// indexed by title and topics alone.
func BuildSearchIndex(c *catalog.Catalog, contentDir string) ([]SearchEntry, error) {
	var entries []SearchEntry

	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			entry := SearchEntry{
				Path:   catalog.LessonPath(m.ID, l.ID),
				Title:  l.Title,
				Module: m.Title,
			}
			for _, topic := range l.Topics {
				entry.Topics = append(entry.Topics, string(topic))
			}

			bodyPath := filepath.Join(contentDir, m.ID, l.ID+".md")
			body, err := os.ReadFile(bodyPath)
			if err != nil && !os.IsNotExist(err) {
				return nil, err
			}
			if err == nil {
				entry.Content = excerpt(string(body))
			}

			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// excerpt flattens markdown for indexing: code fences and headings are
// dropped, remaining lines are joined with spaces and truncated.
func excerpt(md string) string {
	var cleaned []string
	inFence := false
	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	out := strings.Join(cleaned, " ")
	if len(out) > maxExcerpt {
		out = out[:maxExcerpt]
	}
	return out
}

// WriteSearchIndex writes the index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// SearchResult is one scored hit from Search.
type SearchResult struct {
	Entry SearchEntry `json:"entry"`
	Score int         `json:"score"`
}

// Search runs a case-insensitive substring search over the index. Title
// matches outrank topic matches, which outrank body matches. Results are
// sorted by score, ties broken by catalog order, and capped at limit.
func Search(entries []SearchEntry, query string, limit int) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []SearchResult
	for _, e := range entries {
		score := 0
		if strings.Contains(strings.ToLower(e.Title), query) {
			score += 3
		}
		for _, topic := range e.Topics {
			if strings.Contains(strings.ToLower(topic), query) {
				score += 2
				break
			}
		}
		if strings.Contains(strings.ToLower(e.Content), query) {
			score++
		}
		if score > 0 {
			results = append(results, SearchResult{Entry: e, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
