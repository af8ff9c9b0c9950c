package partpkg

import (
	"errors"
	"reflect"
	"testing"
)

func TestSinglePartNoSharing(t *testing.T) {
	resolver := &fakeResolver{closures: map[string][]string{
		"A": {"A", "B"},
	}}
	b := NewBuilder(resolver, &fakeCompiler{}, nil)

	result, err := b.GetPackages(
		[]string{"boot"},
		map[string][]string{"boot": {"A", "B"}},
		[]string{"A", "B", "C"},
		Options{BootPart: "boot"},
	)
	if err != nil {
		t.Fatalf("GetPackages: %v", err)
	}

	if !reflect.DeepEqual(result.Parts["boot"], []int{0}) {
		t.Fatalf("boot parts = %v", result.Parts["boot"])
	}
	if !reflect.DeepEqual(result.Classes, [][]string{{"A", "B"}}) {
		t.Fatalf("classes = %v", result.Classes)
	}
}

func TestTwoPartsShareCommonClass(t *testing.T) {
	resolver := &fakeResolver{closures: map[string][]string{
		"A": {"A", "C"},
		"B": {"B", "C"},
	}}
	b := NewBuilder(resolver, &fakeCompiler{}, nil)

	result, err := b.GetPackages(
		[]string{"boot", "ui"},
		map[string][]string{"boot": {"A"}, "ui": {"B"}},
		[]string{"A", "B", "C"},
		Options{},
	)
	if err != nil {
		t.Fatalf("GetPackages: %v", err)
	}

	// Shared package (0b11={C}) must be highest priority => index 0.
	if !reflect.DeepEqual(result.Classes, [][]string{{"C"}, {"A"}, {"B"}}) {
		t.Fatalf("classes = %v", result.Classes)
	}
	if !reflect.DeepEqual(result.Parts["boot"], []int{0, 1}) {
		t.Fatalf("boot parts = %v", result.Parts["boot"])
	}
	if !reflect.DeepEqual(result.Parts["ui"], []int{0, 2}) {
		t.Fatalf("ui parts = %v", result.Parts["ui"])
	}
}

func TestTooManyPartsRejected(t *testing.T) {
	order := make([]string, maxParts+1)
	includes := make(map[string][]string, len(order))
	for i := range order {
		name := string(rune('a' + i%26))
		order[i] = name
		includes[name] = nil
	}

	b := NewBuilder(&fakeResolver{}, &fakeCompiler{}, nil)
	_, err := b.GetPackages(order, includes, nil, Options{})
	var tooMany *TooManyPartsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("expected *TooManyPartsError, got %T: %v", err, err)
	}
}

func TestInactivePartSurvivesWithNoPackages(t *testing.T) {
	resolver := &fakeResolver{closures: map[string][]string{"A": {"A"}}}
	b := NewBuilder(resolver, &fakeCompiler{}, nil)

	result, err := b.GetPackages(
		[]string{"boot", "unused"},
		map[string][]string{"boot": {"A"}, "unused": {"ghost-class-not-in-list"}},
		[]string{"A"},
		Options{},
	)
	if err != nil {
		t.Fatalf("GetPackages: %v", err)
	}
	if len(result.Parts["unused"]) != 0 {
		t.Fatalf("expected inactive part to own no packages, got %v", result.Parts["unused"])
	}
}

func TestDeterministicAcrossRuns(t *testing.T) {
	build := func() Result {
		resolver := &fakeResolver{closures: map[string][]string{
			"A": {"A", "C", "D"},
			"B": {"B", "C"},
		}}
		b := NewBuilder(resolver, &fakeCompiler{}, nil)
		result, err := b.GetPackages(
			[]string{"boot", "ui"},
			map[string][]string{"boot": {"A"}, "ui": {"B"}},
			[]string{"A", "B", "C", "D"},
			Options{},
		)
		if err != nil {
			t.Fatalf("GetPackages: %v", err)
		}
		return result
	}

	a, b := build(), build()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("non-deterministic output:\n%+v\n%+v", a, b)
	}
}

func TestPriorityMonotonicWithinEachPart(t *testing.T) {
	resolver := &fakeResolver{closures: map[string][]string{
		"A": {"A", "C", "D"},
		"B": {"B", "C"},
		"E": {"E", "D"},
	}}
	b := NewBuilder(resolver, &fakeCompiler{}, nil)
	result, err := b.GetPackages(
		[]string{"boot", "ui", "extra"},
		map[string][]string{"boot": {"A"}, "ui": {"B"}, "extra": {"E"}},
		[]string{"A", "B", "C", "D", "E"},
		Options{},
	)
	if err != nil {
		t.Fatalf("GetPackages: %v", err)
	}

	// Final package indices are assigned by descending part_count
	// (§4.D/§4.G), so within each part the index sequence must be
	// strictly increasing.
	for part, indices := range result.Parts {
		prev := -1
		for _, idx := range indices {
			if idx <= prev {
				t.Fatalf("part %s: package indices not increasing: %v", part, indices)
			}
			prev = idx
		}
	}
}

func TestDisjointClasses(t *testing.T) {
	resolver := &fakeResolver{closures: map[string][]string{
		"A": {"A", "C", "D"},
		"B": {"B", "C"},
	}}
	b := NewBuilder(resolver, &fakeCompiler{}, nil)
	result, err := b.GetPackages(
		[]string{"boot", "ui"},
		map[string][]string{"boot": {"A"}, "ui": {"B"}},
		[]string{"A", "B", "C", "D"},
		Options{},
	)
	if err != nil {
		t.Fatalf("GetPackages: %v", err)
	}

	seen := make(map[string]bool)
	for _, pkgClasses := range result.Classes {
		for _, c := range pkgClasses {
			if seen[c] {
				t.Fatalf("class %s appears in more than one final package", c)
			}
			seen[c] = true
		}
	}
}

func TestNoEmptySurvivingPackages(t *testing.T) {
	resolver := &fakeResolver{closures: map[string][]string{
		"A": {"A", "C"},
		"B": {"B", "C"},
	}}
	b := NewBuilder(resolver, &fakeCompiler{}, nil)
	result, err := b.GetPackages(
		[]string{"boot", "ui"},
		map[string][]string{"boot": {"A"}, "ui": {"B"}},
		[]string{"A", "B", "C"},
		Options{CollapseParts: []string{"boot"}},
	)
	if err != nil {
		t.Fatalf("GetPackages: %v", err)
	}
	for i, pkgClasses := range result.Classes {
		if len(pkgClasses) == 0 {
			t.Fatalf("final package %d is empty", i)
		}
	}
}
