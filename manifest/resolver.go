package manifest

import "sort"

// Resolver implements partpkg.Resolver over a Manifest's class graph.
type Resolver struct {
	m *Manifest
}

// NewResolver wraps m.
func NewResolver(m *Manifest) *Resolver {
	return &Resolver{m: m}
}

// ResolveDependencies does a breadth-first walk of roots over the
// manifest's dependency edges. Traversal stops at an excluded class: its
// own further dependencies are not pulled in, matching the "do not
// traverse through an excluded class" choice recorded in DESIGN.md.
func (r *Resolver) ResolveDependencies(roots []string, excludes []string, variants map[string]string) ([]string, error) {
	excluded := make(map[string]bool, len(excludes))
	for _, c := range excludes {
		excluded[c] = true
	}

	seen := make(map[string]bool)
	var order []string
	queue := append([]string{}, roots...)

	for len(queue) > 0 {
		class := queue[0]
		queue = queue[1:]

		if excluded[class] || seen[class] {
			continue
		}
		seen[class] = true
		order = append(order, class)

		for _, dep := range r.m.deps[class] {
			if !excluded[dep] && !seen[dep] {
				queue = append(queue, dep)
			}
		}
	}

	return order, nil
}

// SortClasses returns classIDs in a stable topological order (Kahn's
// algorithm over the manifest's edges restricted to classIDs), ties
// broken lexically so the result is reproducible across runs.
func (r *Resolver) SortClasses(classIDs []string, variants map[string]string) ([]string, error) {
	inSet := make(map[string]bool, len(classIDs))
	for _, c := range classIDs {
		inSet[c] = true
	}

	indegree := make(map[string]int, len(classIDs))
	children := make(map[string][]string, len(classIDs))
	for _, c := range classIDs {
		indegree[c] = 0
	}
	for _, c := range classIDs {
		for _, dep := range r.m.deps[c] {
			if !inSet[dep] {
				continue
			}
			// dep must load before c.
			children[dep] = append(children[dep], c)
			indegree[c]++
		}
	}

	var ready []string
	for _, c := range classIDs {
		if indegree[c] == 0 {
			ready = append(ready, c)
		}
	}
	sort.Strings(ready)

	out := make([]string, 0, len(classIDs))
	for len(ready) > 0 {
		sort.Strings(ready)
		next := ready[0]
		ready = ready[1:]
		out = append(out, next)

		kids := append([]string{}, children[next]...)
		sort.Strings(kids)
		for _, k := range kids {
			indegree[k]--
			if indegree[k] == 0 {
				ready = append(ready, k)
			}
		}
	}

	if len(out) != len(classIDs) {
		// A cycle leaves some classes permanently blocked; append them
		// in lexical order rather than dropping them silently.
		remaining := make([]string, 0, len(classIDs)-len(out))
		placed := make(map[string]bool, len(out))
		for _, c := range out {
			placed[c] = true
		}
		for _, c := range classIDs {
			if !placed[c] {
				remaining = append(remaining, c)
			}
		}
		sort.Strings(remaining)
		out = append(out, remaining...)
	}

	return out, nil
}
