package snapper

import (
	"errors"
	"fmt"
)

// ErrEmptyEdgeSet indicates an attempt to build a spatial index over zero
// reference edges. Unlike per-line faults this is fatal to the whole batch:
// without reference edges there is nothing to snap to.
var ErrEmptyEdgeSet = errors.New("edge set is empty")

// ErrDegenerateLine indicates an input line with too few points to process
type ErrDegenerateLine struct {
	Points int
}

func (e *ErrDegenerateLine) Error() string {
	return fmt.Sprintf("degenerate line: %d point(s), need at least 2", e.Points)
}

// ErrInvalidSnappedLine indicates a reassembled line that failed the validity
// check and could not be repaired
type ErrInvalidSnappedLine struct {
	Reason string
}

func (e *ErrInvalidSnappedLine) Error() string {
	return fmt.Sprintf("invalid snapped line: %s", e.Reason)
}

// ErrSnapFault indicates a computational fault absorbed while snapping a line
type ErrSnapFault struct {
	Cause interface{}
}

func (e *ErrSnapFault) Error() string {
	return fmt.Sprintf("snap computation fault: %v", e.Cause)
}
