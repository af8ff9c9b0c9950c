package partpkg

// finalize is §4.G: renumber surviving packages by sorted priority and
// emit the per-part package index list and per-package sorted class
// list.
func (b *Builder) finalize(parts map[string]*Part, order []string, packages map[uint64]*Package, opts Options) (Result, error) {
	ids := make([]uint64, 0, len(packages))
	for id := range packages {
		ids = append(ids, id)
	}
	ids = sortPackageIDs(ids, packages)

	indexOfID := make(map[uint64]int, len(ids))
	for i, id := range ids {
		indexOfID[id] = i
	}

	resultParts := make(map[string][]int, len(order))
	for _, name := range order {
		part := parts[name]
		list := make([]int, 0, len(part.Packages))
		for _, id := range part.Packages {
			list = append(list, indexOfID[id])
		}
		resultParts[name] = list
	}

	resultClasses := make([][]string, len(ids))
	for i, id := range ids {
		sorted, err := b.resolver.SortClasses(packages[id].Classes, opts.Variants)
		if err != nil {
			return Result{}, err
		}
		resultClasses[i] = sorted
	}

	return Result{
		BootPart: opts.BootPart,
		Parts:    resultParts,
		Classes:  resultClasses,
	}, nil
}
