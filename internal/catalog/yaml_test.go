package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbeeredd04/trecgen/internal/catalog"
)

const overrideYAML = `
sections:
  - numeral: I
    name: STRUCTURAL SYSTEMS
subsections:
  - section: I
    letter: A
    name: Foundations
    keywords: [Foundation, SLAB]
    checkboxBase: 0
    page: 3
  - section: I
    letter: B
    name: Grading and Drainage
    keywords: [grading, drainage]
    checkboxBase: 1
    page: 3
priority: [I.A, I.B]
capacities:
  - page: 3
    rows: 12
`

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(overrideYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Subsections) != 2 {
		t.Fatalf("expected 2 subsections, got %d", len(c.Subsections))
	}

	// Keywords are lowercased on load.
	m := catalog.NewMapper(c)
	if sub := m.Match("foundation movement", ""); sub == nil || sub.ID() != "I.A" {
		t.Errorf("Match(foundation movement) = %v, want I.A", sub)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	bad := `
sections:
  - numeral: I
    name: STRUCTURAL SYSTEMS
subsections:
  - section: I
    letter: A
    name: Foundations
    checkboxBase: 0
    page: 3
priority: []
capacities:
  - page: 3
    rows: 12
`
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.Load(path); err == nil {
		t.Fatal("expected validation error for priority missing I.A")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
