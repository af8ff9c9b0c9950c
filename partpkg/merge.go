package partpkg

// mergePackage is the procedure shared by the collapser (§4.E) and the
// size optimizer (§4.F): fold fromPkg's classes into toPkg and delete
// fromPkg from the registry.
//
// toPkg.Parts/PartCount are deliberately left untouched (spec §4.F,
// §9 open question (a)): priority ordering downstream is governed by
// ownership established in §4.C, not by the widened reach a merge
// target acquires.
//
// If collapseParts is non-nil, every part in it that currently loads
// fromPkg must already load toPkg, or the merge is infeasible (§4.E
// collapse precondition). Parts not in collapseParts simply lose the
// edge to fromPkg without gaining one to toPkg (§9 open question (b),
// preserved verbatim even though it is the original's own "suspicious"
// design choice).
func mergePackage(parts map[string]*Part, packages map[uint64]*Package, fromPkg, toPkg *Package, collapseParts []string) error {
	for _, part := range parts {
		if !hasPackage(part.Packages, fromPkg.ID) {
			continue
		}

		if collapseParts != nil && contains(collapseParts, part.Name) && !hasPackage(part.Packages, toPkg.ID) {
			return &MergeInfeasibleError{FromID: fromPkg.ID, ToID: toPkg.ID}
		}

		part.Packages = removePackage(part.Packages, fromPkg.ID)
	}

	toPkg.Classes = append(toPkg.Classes, fromPkg.Classes...)
	delete(packages, fromPkg.ID)

	return nil
}

func hasPackage(ids []uint64, id uint64) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func removePackage(ids []uint64, id uint64) []uint64 {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
