package partpkg

// expandDependencies is §4.B: expand each part's entry classes into
// its full transitive dependency set, excluding every other part's
// entry classes (those belong to the other part, not this one's
// closure) plus the globally smart-excluded classes.
func (b *Builder) expandDependencies(parts map[string]*Part, order []string, smartExclude []string, classSet map[string]bool, variants map[string]string) error {
	b.console.Debug("")
	b.console.Info("Resolving part dependencies...")
	b.console.Indent()
	defer b.console.Outdent()

	for _, name := range order {
		part := parts[name]

		var partExcludes []string
		for _, other := range order {
			if other == name {
				continue
			}
			partExcludes = append(partExcludes, parts[other].InitialDeps...)
		}
		partExcludes = append(partExcludes, smartExclude...)

		part.Deps = filterKnown(part.Deps, classSet)

		if len(part.Deps) == 0 {
			b.console.Info("Part %s is ignored in current configuration", part.Name)
			continue
		}

		fullSet, err := b.resolver.ResolveDependencies(part.Deps, partExcludes, variants)
		if err != nil {
			return err
		}

		fullSet = filterKnown(fullSet, classSet)

		b.console.Debug("Part %s depends on %d classes", part.Name, len(fullSet))
		part.Deps = fullSet
	}

	return nil
}
