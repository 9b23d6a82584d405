package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursekit/coursekit/internal/catalog"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the course catalog and content",
	Long: `Loads the catalog, verifies its integrity (unique module/lesson ids,
well-formed slugs), and cross-checks lesson bodies: lessons without a body
file and markdown files without a catalog entry are reported.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Load validates: duplicate ids and malformed slugs fail here.
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Catalog OK: %d modules, %d lessons\n", len(cat.Modules), cat.LessonCount())

	// Lessons without a body render as topic outlines; worth knowing about.
	missing := 0
	for _, m := range cat.Modules {
		for _, l := range m.Lessons {
			bodyPath := filepath.Join(cfg.ContentDir, m.ID, l.ID+".md")
			if _, err := os.Stat(bodyPath); os.IsNotExist(err) {
				fmt.Printf("  note: %s/%s has no body file (renders topic outline)\n", m.ID, l.ID)
				missing++
			} else if verbose {
				fmt.Printf("  ok: %s/%s\n", m.ID, l.ID)
			}
		}
	}

	// Markdown files that no lesson claims are likely renamed slugs.
	orphans, err := findOrphans(cfg.ContentDir, cat)
	if err != nil {
		return err
	}
	for _, o := range orphans {
		fmt.Printf("  warning: %s matches no catalog lesson\n", o)
	}

	if len(orphans) > 0 {
		return fmt.Errorf("%d orphaned markdown file(s)", len(orphans))
	}
	if missing == 0 {
		fmt.Println("All lessons have body files")
	}
	return nil
}

// findOrphans lists markdown files under contentDir that do not correspond
// to any cataloged lesson.
func findOrphans(contentDir string, cat *catalog.Catalog) ([]string, error) {
	var orphans []string

	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".md") {
			return err
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		parts := strings.Split(strings.TrimSuffix(rel, ".md"), "/")
		if len(parts) != 2 {
			orphans = append(orphans, rel)
			return nil
		}
		if _, _, ok := cat.Lookup(catalog.Ref{ModuleID: parts[0], LessonID: parts[1]}); !ok {
			orphans = append(orphans, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orphans, nil
}
