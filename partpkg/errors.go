package partpkg

import "fmt"

// Sentinel errors - checkable with errors.Is().
var (
	// ErrMergeInfeasible is returned when a collapse merge would drop a
	// package edge that a collapsing part is required to keep.
	ErrMergeInfeasible = fmt.Errorf("merge infeasible")

	// ErrTooManyParts is returned when the number of parts exceeds the
	// builder's bit-field width.
	ErrTooManyParts = fmt.Errorf("too many parts for bit-field width")

	// ErrCollapsePosition is returned when a collapsing part's position
	// in the collapse list no longer names one of its packages.
	ErrCollapsePosition = fmt.Errorf("collapse position out of range")
)

// MergeInfeasibleError wraps ErrMergeInfeasible with the two package
// ids involved, per spec: the collapse precondition failed because
// toID was not already in the packages list of a part being collapsed.
type MergeInfeasibleError struct {
	FromID uint64
	ToID   uint64
}

func (e *MergeInfeasibleError) Error() string {
	return fmt.Sprintf("could not merge package #%d into #%d: target not loaded by all collapsing parts", e.FromID, e.ToID)
}

func (e *MergeInfeasibleError) Unwrap() error { return ErrMergeInfeasible }

// TooManyPartsError wraps ErrTooManyParts with the offending count and
// the builder's configured bit width.
type TooManyPartsError struct {
	Count int
	Width int
}

func (e *TooManyPartsError) Error() string {
	return fmt.Sprintf("%d parts exceed bit-field width of %d", e.Count, e.Width)
}

func (e *TooManyPartsError) Unwrap() error { return ErrTooManyParts }

// CollapsePositionError wraps ErrCollapsePosition with the part and
// position whose collapse slot no longer exists, because an earlier
// part's collapse in the same pass merged away one of this part's
// packages first.
type CollapsePositionError struct {
	Part      string
	Position  int
	Available int
}

func (e *CollapsePositionError) Error() string {
	return fmt.Sprintf("part %s has no package at collapse position %d (only %d available)", e.Part, e.Position, e.Available)
}

func (e *CollapsePositionError) Unwrap() error { return ErrCollapsePosition }
