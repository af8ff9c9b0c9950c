package partpkg

import "sort"

// buildPackages is §4.C: group classes by the set of parts that use
// them, emitting one package per distinct set.
func (b *Builder) buildPackages(parts map[string]*Part, order []string) map[uint64]*Package {
	allClasses := make(map[string]bool)
	depSets := make(map[string]map[string]bool, len(order))
	for _, name := range order {
		depSets[name] = toSet(parts[name].Deps)
		for c := range depSets[name] {
			allClasses[c] = true
		}
	}

	classes := make([]string, 0, len(allClasses))
	for c := range allClasses {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	packages := make(map[uint64]*Package)
	for _, class := range classes {
		var pkgID uint64
		for _, name := range order {
			if depSets[name][class] {
				pkgID |= parts[name].Bit
			}
		}

		pkg, ok := packages[pkgID]
		if !ok {
			pkg = &Package{ID: pkgID}
			packages[pkgID] = pkg
		}
		pkg.Classes = append(pkg.Classes, class)
	}

	for _, name := range order {
		part := parts[name]
		for _, pkg := range packages {
			if pkg.ID&part.Bit != 0 {
				part.Packages = append(part.Packages, pkg.ID)
				pkg.Parts = append(pkg.Parts, part.Name)
			}
		}
	}
	for _, pkg := range packages {
		pkg.PartCount = len(pkg.Parts)
	}

	for _, part := range parts {
		part.Packages = sortPackageIDs(part.Packages, packages)
	}

	return packages
}
