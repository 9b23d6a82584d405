package catalog

import (
	"fmt"
	"os"
	"path/filepath"
)

// starterCatalog is the catalog scaffolded by `coursekit init`. It is a
// small TypeScript reference course that exercises the full content model:
// multiple modules, lessons with and without topics, and lessons with and
// without body files.
const starterCatalog = `title: TypeScript Reference
modules:
  - id: module-1
    title: "Module 1: Type Fundamentals"
    lessons:
      - id: primitive-types
        title: Primitive Types
        topics: [string, number, boolean, "null", undefined, symbol, bigint]
      - id: type-annotations
        title: Type Annotations
        topics: [variables, function parameters, return types]
  - id: module-2
    title: "Module 2: Working with Objects"
    lessons:
      - id: interfaces
        title: Interfaces
        topics: [optional properties, readonly, index signatures]
      - id: type-aliases
        title: Type Aliases
  - id: module-3
    title: "Module 3: Wrapping Up"
    lessons:
      - id: quick-reference
        title: Quick Reference
`

// starterLessons maps "moduleID/lessonID.md" to starter body content.
var starterLessons = map[string]string{
	"module-1/primitive-types.md": `# Primitive Types

TypeScript's primitive types mirror JavaScript's runtime values.

` + "```ts" + `
let name: string = "Ada";
let age: number = 36;
let active: boolean = true;
` + "```" + `

The ` + "`null`" + ` and ` + "`undefined`" + ` types each have exactly one
value. Under ` + "`strictNullChecks`" + ` they are not assignable to other
types unless explicitly included in a union.
`,
	"module-1/type-annotations.md": `# Type Annotations

An annotation pins the type of a binding where inference is not enough.

` + "```ts" + `
function greet(name: string): string {
  return ` + "`Hello, ${name}`" + `;
}
` + "```" + `
`,
	"module-2/interfaces.md": `# Interfaces

Interfaces describe the shape of an object.

` + "```ts" + `
interface Point {
  readonly x: number;
  readonly y: number;
  label?: string;
}
` + "```" + `
`,
}

// Scaffold writes the starter catalog and lesson bodies into dir. It
// refuses to touch a directory that already contains a catalog file.
func Scaffold(dir string) error {
	catalogPath := filepath.Join(dir, CatalogFile)
	if _, err := os.Stat(catalogPath); err == nil {
		return fmt.Errorf("%s already exists; refusing to overwrite", catalogPath)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating content directory: %w", err)
	}
	if err := os.WriteFile(catalogPath, []byte(starterCatalog), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", catalogPath, err)
	}

	for rel, body := range starterLessons {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return nil
}
