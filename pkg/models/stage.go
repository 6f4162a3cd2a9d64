// Package models contains the wire-level request/response types and
// the shared planning enums used across the engine.
package models

import "fmt"

// Stage is one of the five linear phases of a planning session.
type Stage string

const (
	StageCollectConstraints Stage = "collect_constraints"
	StageCaptureInputs      Stage = "capture_inputs"
	StageSkeleton           Stage = "skeleton"
	StageRefine             Stage = "refine"
	StageReviewCommit       Stage = "review_commit"
)

// stageOrder fixes the linear progression of the session graph.
var stageOrder = []Stage{
	StageCollectConstraints,
	StageCaptureInputs,
	StageSkeleton,
	StageRefine,
	StageReviewCommit,
}

// AllStages returns the five stages in graph order.
func AllStages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// ParseStage validates a stage identifier.
func ParseStage(s string) (Stage, error) {
	for _, st := range stageOrder {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", s)
}

// Index returns the zero-based position of the stage in the graph.
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the following stage, or the stage itself when terminal.
func (s Stage) Next() Stage {
	i := s.Index()
	if i < 0 || i+1 >= len(stageOrder) {
		return s
	}
	return stageOrder[i+1]
}

// Prev returns the preceding stage, or the stage itself when first.
func (s Stage) Prev() Stage {
	i := s.Index()
	if i <= 0 {
		return s
	}
	return stageOrder[i-1]
}

// Terminal reports whether the stage is the last one.
func (s Stage) Terminal() bool {
	return s == StageReviewCommit
}

// SchedulingStage reports whether the stage lays events on the clock;
// these stages receive the plan/review and gap-filler constraint types.
func (s Stage) SchedulingStage() bool {
	switch s {
	case StageSkeleton, StageRefine, StageReviewCommit:
		return true
	default:
		return false
	}
}
