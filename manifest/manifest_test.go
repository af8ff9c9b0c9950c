package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifestFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classes.ini")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing manifest fixture: %v", err)
	}
	return path
}

const sampleManifest = `
[A]
deps = C
size = 2048

[B]
deps = C
size = 1024

[C]
size = 4096
`

func TestLoadManifest(t *testing.T) {
	path := writeManifestFile(t, sampleManifest)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	size, err := NewCompiler(m).GetCompiledSize("C", nil)
	if err != nil {
		t.Fatalf("GetCompiledSize: %v", err)
	}
	if size != 4096 {
		t.Fatalf("size = %d, want 4096", size)
	}
}

func TestResolveDependenciesStopsAtExcluded(t *testing.T) {
	path := writeManifestFile(t, `
[A]
deps = B

[B]
deps = C

[C]
size = 1
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r := NewResolver(m)

	full, err := r.ResolveDependencies([]string{"A"}, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDependencies: %v", err)
	}
	if len(full) != 3 {
		t.Fatalf("full closure = %v, want 3 classes", full)
	}

	partial, err := r.ResolveDependencies([]string{"A"}, []string{"B"}, nil)
	if err != nil {
		t.Fatalf("ResolveDependencies with exclude: %v", err)
	}
	for _, c := range partial {
		if c == "B" || c == "C" {
			t.Fatalf("excluded class %s (or its dependency) leaked into %v", c, partial)
		}
	}
	if len(partial) != 1 || partial[0] != "A" {
		t.Fatalf("partial closure = %v, want [A]", partial)
	}
}

func TestSortClassesTopological(t *testing.T) {
	path := writeManifestFile(t, sampleManifest)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r := NewResolver(m)

	sorted, err := r.SortClasses([]string{"A", "B", "C"}, nil)
	if err != nil {
		t.Fatalf("SortClasses: %v", err)
	}
	pos := make(map[string]int, len(sorted))
	for i, c := range sorted {
		pos[c] = i
	}
	if pos["C"] >= pos["A"] || pos["C"] >= pos["B"] {
		t.Fatalf("C must sort before its dependents A and B, got %v", sorted)
	}
}
