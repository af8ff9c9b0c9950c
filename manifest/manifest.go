// Package manifest is a reference Resolver/Compiler pair for the
// partbuilder CLI: a small in-memory class graph loaded from an INI
// file, one section per class.
package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Manifest holds every known class's direct dependencies and compiled
// size, keyed by class id.
type Manifest struct {
	deps  map[string][]string
	sizes map[string]int64
}

// Load parses path: one INI section per class id, with a comma
// separated `deps` key and an integer `size` key (bytes).
func Load(path string) (*Manifest, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading manifest %s: %w", path, err)
	}

	m := &Manifest{
		deps:  make(map[string][]string),
		sizes: make(map[string]int64),
	}

	for _, sec := range f.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection {
			continue
		}
		m.deps[name] = splitCSV(sec.Key("deps").String())
		m.sizes[name] = sec.Key("size").MustInt64(0)
	}

	return m, nil
}

// ClassIDs returns every class id known to the manifest.
func (m *Manifest) ClassIDs() []string {
	out := make([]string, 0, len(m.deps))
	for id := range m.deps {
		out = append(out, id)
	}
	return out
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
