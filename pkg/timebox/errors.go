package timebox

import (
	"errors"
	"fmt"
)

// UnknownEnumError reports an unrecognized enum code on the wire.
type UnknownEnumError struct {
	Kind  string
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

// BrokenChainError reports a relative timing with no neighbour to
// resolve against (an "ap" with no predecessor or a "bn" with no
// successor).
type BrokenChainError struct {
	Index int
	Name  string
	Kind  Anchor
}

func (e *BrokenChainError) Error() string {
	side := "successor"
	if e.Kind == AnchorAfterPrev {
		side = "predecessor"
	}
	return fmt.Sprintf("event %d (%q): %s timing has no resolvable %s", e.Index, e.Name, e.Kind, side)
}

// OverlapError reports two non-background events occupying the same
// time after resolution.
type OverlapError struct {
	AIndex int
	AName  string
	AEnd   string
	BIndex int
	BName  string
	BStart string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("event %d (%q) ends at %s after event %d (%q) starts at %s",
		e.AIndex, e.AName, e.AEnd, e.BIndex, e.BName, e.BStart)
}

// IndexError reports a patch op index out of range.
type IndexError struct {
	Op    OpKind
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("patch op %q: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

// ValidationError aggregates plan invariant violations. Apply and the
// plan validator return it so callers can feed structured issues back
// into the patch retry loop.
type ValidationError struct {
	Issues []Issue
}

// Issue is one structured validation finding.
type Issue struct {
	Location string `json:"loc"`
	Type     string `json:"type"`
	Message  string `json:"msg"`
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("plan validation: %s: %s", e.Issues[0].Location, e.Issues[0].Message)
	}
	return fmt.Sprintf("plan validation: %d issues (first: %s)", len(e.Issues), e.Issues[0].Message)
}

// IssuesOf extracts structured issues from any plan error. Errors that
// carry no structure are wrapped into a single generic issue.
func IssuesOf(err error) []Issue {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Issues
	}
	var bc *BrokenChainError
	if errors.As(err, &bc) {
		return []Issue{{
			Location: fmt.Sprintf("events[%d]", bc.Index),
			Type:     "broken_chain",
			Message:  bc.Error(),
		}}
	}
	var ov *OverlapError
	if errors.As(err, &ov) {
		return []Issue{{
			Location: fmt.Sprintf("events[%d]", ov.AIndex),
			Type:     "overlap",
			Message:  ov.Error(),
		}}
	}
	var ie *IndexError
	if errors.As(err, &ie) {
		return []Issue{{
			Location: fmt.Sprintf("patch[%s]", ie.Op),
			Type:     "index",
			Message:  ie.Error(),
		}}
	}
	return []Issue{{Location: "plan", Type: "error", Message: err.Error()}}
}
