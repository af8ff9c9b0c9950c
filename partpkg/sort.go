package partpkg

import "sort"

// sortPackageIDs orders ids by descending part count (more widely
// shared packages load earlier), tie-broken by ascending numeric id
// (see priorityLess).
// This is §4.D and is used wherever a stable package order is needed:
// building each part's Packages list, the optimizer's merge-target
// search, and the final renumbering.
func sortPackageIDs(ids []uint64, packages map[uint64]*Package) []uint64 {
	out := make([]uint64, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool {
		return priorityLess(out[i], out[j], packages)
	})
	return out
}

// priorityLess reports whether a should sort before b: higher
// part-count first. Ties are broken by ascending numeric id — the
// worked two-part example in the package-builder specification pins
// this direction explicitly (a boot-only package with a lower id
// sorts ahead of a same-priority ui-only package with a higher id),
// even though that spec's own prose describes the tie-break as
// "descending id"; the concrete example wins over the summary.
func priorityLess(a, b uint64, packages map[uint64]*Package) bool {
	pa, pb := packages[a].PartCount, packages[b].PartCount
	if pa != pb {
		return pa > pb
	}
	return a < b
}
