package partpkg

import "sort"

// fakeResolver maps each root class to a fixed closure and drops any
// excluded class from the result (adequate for the scenarios in
// builder_test.go, which pin resolver behavior directly rather than
// exercising a real transitive-closure algorithm — that lives in
// package manifest).
type fakeResolver struct {
	closures map[string][]string
}

func (f *fakeResolver) ResolveDependencies(roots []string, excludes []string, variants map[string]string) ([]string, error) {
	excluded := toSet(excludes)
	seen := make(map[string]bool)
	var out []string
	for _, root := range roots {
		for _, c := range f.closures[root] {
			if excluded[c] || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeResolver) SortClasses(classIDs []string, variants map[string]string) ([]string, error) {
	out := append([]string{}, classIDs...)
	sort.Strings(out)
	return out, nil
}

// fakeCompiler returns a fixed size per class, defaulting to 0.
type fakeCompiler struct {
	sizes map[string]int64
}

func (f *fakeCompiler) GetCompiledSize(classID string, variants map[string]string) (int64, error) {
	return f.sizes[classID], nil
}

// recordingConsole captures emitted lines for assertions, without
// imposing any particular rendering (spec §4.H leaves format open).
type recordingConsole struct {
	depth int
	lines []string
}

func (c *recordingConsole) Debug(format string, args ...any) { c.lines = append(c.lines, format) }
func (c *recordingConsole) Info(format string, args ...any)  { c.lines = append(c.lines, format) }
func (c *recordingConsole) Indent()                          { c.depth++ }
func (c *recordingConsole) Outdent()                         { c.depth-- }
