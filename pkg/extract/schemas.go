package extract

import (
	"strings"

	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// PlannedDate is the planned-date extractor output. PlannedDate is nil
// when the utterance names no date; the extractor must not invent one.
type PlannedDate struct {
	PlannedDate *string  `json:"planned_date"`
	Confidence  *float64 `json:"confidence,omitempty"`
	Timezone    string   `json:"timezone,omitempty"`
	Language    string   `json:"language,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// ConstraintBase is one extracted scheduling rule before it becomes a
// durable record.
type ConstraintBase struct {
	Name              string              `json:"name"`
	Description       string              `json:"description,omitempty"`
	Necessity         string              `json:"necessity"`
	RuleKind          string              `json:"rule_kind"`
	ScalarParams      map[string]float64  `json:"scalar_params,omitempty"`
	Windows           []constraint.Window `json:"windows,omitempty"`
	DaysOfWeek        []string            `json:"days_of_week,omitempty"`
	AppliesEventTypes []string            `json:"applies_event_types,omitempty"`
	Topics            []string            `json:"topics,omitempty"`
}

// Interpretation is the constraint-interpreter output. ShouldExtract
// is true only when the message explicitly states a durable scheduling
// rule.
type Interpretation struct {
	ShouldExtract bool             `json:"should_extract"`
	Scope         string           `json:"scope,omitempty"`
	StartDate     string           `json:"start_date,omitempty"`
	EndDate       string           `json:"end_date,omitempty"`
	Constraints   []ConstraintBase `json:"constraints,omitempty"`
}

// ResponseSection is one block of a structured reply message.
type ResponseSection struct {
	Title string   `json:"title,omitempty"`
	Lines []string `json:"lines,omitempty"`
}

// StageGate is the readiness classification for one stage turn.
type StageGate struct {
	StageID         string            `json:"stage_id"`
	Ready           bool              `json:"ready"`
	Summary         []string          `json:"summary,omitempty"`
	Missing         []string          `json:"missing,omitempty"`
	Question        string            `json:"question,omitempty"`
	Facts           map[string]any    `json:"facts,omitempty"`
	ResponseMessage []ResponseSection `json:"response_message,omitempty"`
}

// Decision actions routed by the decision extractor.
const (
	ActionProvideInfo = "provide_info"
	ActionProceed     = "proceed"
	ActionBack        = "back"
	ActionRedo        = "redo"
	ActionCancel      = "cancel"
	ActionAssist      = "assist"
)

// Decision is the per-turn routing action.
type Decision struct {
	Action      string `json:"action"`
	TargetStage string `json:"target_stage,omitempty"`
	Note        string `json:"note,omitempty"`
}

// Valid reports whether the action is one of the recognized verbs.
func (d Decision) Valid() bool {
	switch d.Action {
	case ActionProvideInfo, ActionProceed, ActionBack, ActionRedo, ActionCancel, ActionAssist:
		return true
	}
	return false
}

// ExtractedConstraintRecord is the full constraint-extractor output,
// including governance and applicability the interpreter leaves open.
type ExtractedConstraintRecord struct {
	ConstraintBase
	Scope         string   `json:"scope"`
	Status        string   `json:"status,omitempty"`
	Source        string   `json:"source,omitempty"`
	Confidence    float64  `json:"confidence,omitempty"`
	StartDate     string   `json:"start_date,omitempty"`
	EndDate       string   `json:"end_date,omitempty"`
	Timezone      string   `json:"timezone,omitempty"`
	Recurrence    string   `json:"recurrence,omitempty"`
	TTLDays       int      `json:"ttl_days,omitempty"`
	AppliesStages []string `json:"applies_stages,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// ToRecord converts the wire shape into a durable record. Unknown enum
// values surface as validation errors from the store, not here; this
// conversion only normalizes casing and defaults.
func (e ExtractedConstraintRecord) ToRecord() *constraint.Record {
	rec := &constraint.Record{
		Name:         e.Name,
		Description:  e.Description,
		Necessity:    constraint.Necessity(strings.ToLower(e.Necessity)),
		Status:       constraint.StatusProposed,
		Source:       constraint.SourceUser,
		Confidence:   e.Confidence,
		Scope:        constraint.Scope(strings.ToLower(e.Scope)),
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Timezone:     e.Timezone,
		Recurrence:   e.Recurrence,
		TTLDays:      e.TTLDays,
		RuleKind:     strings.ToLower(strings.TrimSpace(e.RuleKind)),
		ScalarParams: e.ScalarParams,
		Windows:      e.Windows,
		Topics:       e.Topics,
		Tags:         e.Tags,
	}
	if e.Status != "" {
		rec.Status = constraint.Status(strings.ToLower(e.Status))
	}
	if e.Source != "" {
		rec.Source = constraint.Source(strings.ToLower(e.Source))
	}
	if rec.Confidence == 0 {
		rec.Confidence = 0.5
	}
	for _, d := range e.DaysOfWeek {
		rec.DaysOfWeek = append(rec.DaysOfWeek, constraint.Weekday(strings.ToUpper(d)))
	}
	for _, s := range e.AppliesStages {
		if stage, err := models.ParseStage(s); err == nil {
			rec.AppliesStages = append(rec.AppliesStages, stage)
		}
	}
	for _, et := range e.AppliesEventTypes {
		if parsed, err := timebox.ParseEventType(et); err == nil {
			rec.AppliesEventTypes = append(rec.AppliesEventTypes, parsed)
		}
	}
	return rec
}
