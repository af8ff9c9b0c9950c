package partpkg

// maxParts is the number of parts that fit in a uint64 package id.
const maxParts = 64

// Options configures one GetPackages run. Zero value is usable: no
// collapse, no size optimization.
type Options struct {
	// SmartExclude is globally excluded from every part's dependency
	// closure (spec §4.B).
	SmartExclude []string

	// CollapseParts are collapsed in the given order (spec §4.E): the
	// part at position k merges every package after its k-th
	// highest-priority package into that k-th package.
	CollapseParts []string

	// BootPart, if non-empty and present in PartIncludes and not
	// already in CollapseParts, is silently prepended to the
	// collapse list used internally (spec §6 config table).
	BootPart string

	// MinPackageSize is the KB threshold below which a shared package
	// (PartCount > 1) is a candidate for merging into a previous
	// common package. Zero disables the optimizer.
	MinPackageSize int64

	// MinPackageSizeForUnshared is the KB threshold for PartCount==1
	// packages. Zero means "use MinPackageSize".
	MinPackageSizeForUnshared int64

	Variants map[string]string
}

// Result is the outcome of one GetPackages call (spec §4.G).
type Result struct {
	BootPart string
	// Parts maps part name to the ordered list of final package
	// indices it must load.
	Parts map[string][]int
	// Classes[i] is the sorted class list of final package i.
	Classes [][]string
}

// Builder owns the working Part/Package tables for the duration of
// one GetPackages call. It is not safe for concurrent use.
type Builder struct {
	resolver Resolver
	compiler Compiler
	console  Console
}

// NewBuilder wires the external collaborators. console may be nil, in
// which case diagnostics are discarded.
func NewBuilder(resolver Resolver, compiler Compiler, console Console) *Builder {
	if console == nil {
		console = NoOpConsole{}
	}
	return &Builder{resolver: resolver, compiler: compiler, console: console}
}

// GetPackages runs the full A->B->C->D->(E)->(F)->G pipeline.
//
// partIncludes maps part name to its entry classes, iterated in the
// order given by order (the part's bit position = its index in
// order); classList is the full universe of known classes.
func (b *Builder) GetPackages(order []string, partIncludes map[string][]string, classList []string, opts Options) (Result, error) {
	parts, err := b.newPartTable(order, partIncludes)
	if err != nil {
		return Result{}, err
	}

	classSet := toSet(classList)

	if err := b.expandDependencies(parts, order, opts.SmartExclude, classSet, opts.Variants); err != nil {
		return Result{}, err
	}

	packages := b.buildPackages(parts, order)

	b.printPartStats(parts, order, packages)

	collapseParts := opts.CollapseParts
	if opts.BootPart != "" {
		if _, ok := partIncludes[opts.BootPart]; ok && !contains(collapseParts, opts.BootPart) {
			collapseParts = append([]string{opts.BootPart}, collapseParts...)
		}
	}

	if len(collapseParts) > 0 {
		if err := b.collapseParts(parts, packages, collapseParts); err != nil {
			return Result{}, err
		}
	}

	if opts.MinPackageSize > 0 {
		if err := b.optimizePackages(parts, packages, opts); err != nil {
			return Result{}, err
		}
	}

	b.printPartStats(parts, order, packages)

	return b.finalize(parts, order, packages, opts)
}

// newPartTable is §4.A: assign each part a single-bit identity in
// input iteration order.
func (b *Builder) newPartTable(order []string, partIncludes map[string][]string) (map[string]*Part, error) {
	if len(order) > maxParts {
		return nil, &TooManyPartsError{Count: len(order), Width: maxParts}
	}

	b.console.Debug("Creating part structures...")
	b.console.Indent()
	defer b.console.Outdent()

	parts := make(map[string]*Part, len(order))
	for pos, name := range order {
		deps := append([]string{}, partIncludes[name]...)
		p := &Part{
			Name:        name,
			Bit:         1 << uint(pos),
			InitialDeps: append([]string{}, deps...),
			Deps:        deps,
		}
		parts[name] = p
		b.console.Debug("Part %s => %d", name, p.Bit)
	}
	return parts, nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, c := range items {
		set[c] = true
	}
	return set
}

func contains(items []string, item string) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}

func filterKnown(classes []string, known map[string]bool) []string {
	out := classes[:0:0]
	for _, c := range classes {
		if known[c] {
			out = append(out, c)
		}
	}
	return out
}
