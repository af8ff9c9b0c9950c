package partpkg

// printPartStats is §4.H: log a package summary (class counts, in
// sortPackageIDs priority order) and a part summary (each part's
// package list).
func (b *Builder) printPartStats(parts map[string]*Part, order []string, packages map[uint64]*Package) {
	ids := make([]uint64, 0, len(packages))
	for id := range packages {
		ids = append(ids, id)
	}
	ids = sortPackageIDs(ids, packages)

	b.console.Debug("")
	b.console.Debug("Package summary")
	b.console.Indent()
	for _, id := range ids {
		b.console.Debug("Package #%d contains %d classes", id, len(packages[id].Classes))
	}
	b.console.Outdent()

	b.console.Debug("")
	b.console.Debug("Part summary")
	b.console.Indent()
	for _, name := range order {
		part := parts[name]
		b.console.Debug("Part %s uses %d packages: %v", part.Name, len(part.Packages), part.Packages)
	}
	b.console.Outdent()
	b.console.Debug("")
}
