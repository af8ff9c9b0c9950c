package partpkg

// optimizePackages is §4.F: iterate packages from lowest to highest
// priority, and merge any package whose compiled size falls below its
// threshold into the nearest previous package common to every part
// that needs it.
func (b *Builder) optimizePackages(parts map[string]*Part, packages map[uint64]*Package, opts Options) error {
	minShared := opts.MinPackageSize
	minUnshared := opts.MinPackageSizeForUnshared
	if minUnshared == 0 {
		minUnshared = minShared
	}

	b.console.Debug("")
	b.console.Info("Optimizing package sizes...")
	b.console.Indent()
	b.console.Debug("Minimum size: %dKB", minShared)
	b.console.Indent()
	defer b.console.Outdent()
	defer b.console.Outdent()

	allIDs := make([]uint64, 0, len(packages))
	for id := range packages {
		allIDs = append(allIDs, id)
	}
	allIDs = sortPackageIDs(allIDs, packages)
	reverseIDs(allIDs) // lowest priority first

	for _, fromID := range allIDs {
		fromPkg, ok := packages[fromID]
		if !ok {
			continue // already folded into an earlier merge target
		}

		size, err := b.packageSizeKB(fromPkg, opts.Variants)
		if err != nil {
			return err
		}
		b.console.Debug("Package #%d: %dKB", fromPkg.ID, size)

		if fromPkg.PartCount == 1 && size >= minUnshared {
			continue
		}
		if fromPkg.PartCount > 1 && size >= minShared {
			continue
		}

		b.console.Indent()
		b.console.Debug("Search a target package for package #%d", fromPkg.ID)
		toPkg := previousCommonPackage(fromPkg, parts, packages)
		if toPkg != nil {
			b.console.Debug("Merge package #%d into #%d", fromPkg.ID, toPkg.ID)
			if err := mergePackage(parts, packages, fromPkg, toPkg, nil); err != nil {
				return err
			}
		} else {
			b.console.Debug("No previous common package for #%d, leaving as-is", fromPkg.ID)
		}
		b.console.Outdent()
	}

	return nil
}

func (b *Builder) packageSizeKB(pkg *Package, variants map[string]string) (int64, error) {
	var total int64
	for _, class := range pkg.Classes {
		size, err := b.compiler.GetCompiledSize(class, variants)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total / 1024, nil
}

// previousCommonPackage implements the "previous common package"
// search (spec §4.F): among the package ids that precede sid in the
// Packages list of every part that currently loads sid (so of equal or
// higher priority than sid), the one with the lowest priority.
func previousCommonPackage(searchPkg *Package, parts map[string]*Part, packages map[uint64]*Package) *Package {
	sid := searchPkg.ID

	var relevantParts []string
	var relevantPackages []uint64

	for _, part := range parts {
		idx := indexOf(part.Packages, sid)
		if idx < 0 {
			continue
		}
		relevantParts = append(relevantParts, part.Name)
		relevantPackages = append(relevantPackages, part.Packages[:idx]...)
	}

	ordered := sortPackageIDs(relevantPackages, packages)
	reverseIDs(ordered) // lowest priority first among candidates

	need := len(relevantParts)
	for _, id := range ordered {
		if countOccurrences(relevantPackages, id) == need {
			return packages[id]
		}
	}
	return nil
}

func indexOf(ids []uint64, id uint64) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}

func countOccurrences(ids []uint64, id uint64) int {
	n := 0
	for _, x := range ids {
		if x == id {
			n++
		}
	}
	return n
}

func reverseIDs(ids []uint64) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}
