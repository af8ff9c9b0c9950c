package partpkg

// collapseParts is §4.E: for each part at position k in the collapse
// list, merge every package after its k-th highest-priority package
// into that k-th package. The position offset lets several parts
// collapse in the same pass without their targets clobbering one
// another.
func (b *Builder) collapseParts(parts map[string]*Part, packages map[uint64]*Package, collapseParts []string) error {
	b.console.Debug("")
	b.console.Info("Collapsing part packages...")
	b.console.Indent()
	defer b.console.Outdent()

	for pos, name := range collapseParts {
		part, ok := parts[name]
		if !ok {
			continue
		}

		b.console.Debug("Part %s...", name)
		b.console.Indent()

		// A part's Packages slice can already have shrunk past pos by
		// the time its turn comes up: an earlier part's collapse in
		// this same pass may have merged away one of this part's
		// packages (§9 open question (b), a non-collapse-part edge
		// loss that can also land on a later collapsing part). This is
		// a genuine configuration problem, not a no-op: the requested
		// collapse position no longer names a package this part loads.
		if pos >= len(part.Packages) {
			b.console.Outdent()
			return &CollapsePositionError{Part: name, Position: pos, Available: len(part.Packages)}
		}

		toID := part.Packages[pos]
		toPkg := packages[toID]

		// Snapshot: mergePackage mutates part.Packages as we go.
		rest := append([]uint64{}, part.Packages[pos+1:]...)
		for _, fromID := range rest {
			fromPkg, ok := packages[fromID]
			if !ok {
				continue
			}
			b.console.Debug("Merging package #%d into #%d", fromID, toID)
			if err := mergePackage(parts, packages, fromPkg, toPkg, collapseParts); err != nil {
				return err
			}
		}

		b.console.Outdent()
	}

	return nil
}
