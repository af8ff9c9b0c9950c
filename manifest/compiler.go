package manifest

// Compiler implements partpkg.Compiler as a direct manifest lookup.
type Compiler struct {
	m *Manifest
}

// NewCompiler wraps m.
func NewCompiler(m *Manifest) *Compiler {
	return &Compiler{m: m}
}

// GetCompiledSize returns the manifest's recorded byte size for classID,
// or zero for an unknown class.
func (c *Compiler) GetCompiledSize(classID string, variants map[string]string) (int64, error) {
	return c.m.sizes[classID], nil
}
