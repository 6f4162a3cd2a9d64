// Package prompt builds the message sequences for the LLM extractors.
// Stateless; all state comes from parameters.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/llm"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// Builder composes extractor prompts. Thread-safe, no mutable state.
type Builder struct{}

// NewBuilder creates a prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// gateFactKeys enumerates the recognized fact keys per stage. The gate
// instructions forbid facts outside this list.
var gateFactKeys = map[models.Stage][]string{
	models.StageCollectConstraints: {"timezone", "date", "work_window", "sleep_target", "immovables", "commutes", "habits"},
	models.StageCaptureInputs:      {"daily_one_thing", "tasks", "block_plan"},
	models.StageSkeleton:           {"skeleton_confirmed", "adjustments"},
	models.StageRefine:             {"refinements_done", "open_requests"},
	models.StageReviewCommit:       {"commit_confirmed", "final_notes"},
}

// BuildPlannedDateMessages prompts the planned-date extractor.
func (b *Builder) BuildPlannedDateMessages(utterance string, now time.Time, timezone string) []llm.Message {
	user := fmt.Sprintf("Current datetime: %s\nTimezone: %s\n\nUser message:\n%s",
		now.Format(time.RFC3339), timezone, utterance)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: plannedDateInstructions + "\n\n" + jsonOnly},
		{Role: llm.RoleUser, Content: user},
	}
}

// BuildInterpreterMessages prompts the constraint interpreter.
func (b *Builder) BuildInterpreterMessages(utterance, plannedDate, timezone string) []llm.Message {
	user := fmt.Sprintf("Planned date: %s\nTimezone: %s\n\nUser message:\n%s",
		orUnknown(plannedDate), timezone, utterance)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: interpreterInstructions + "\n\n" + jsonOnly},
		{Role: llm.RoleUser, Content: user},
	}
}

// BuildDecisionMessages prompts the decision router for one turn.
func (b *Builder) BuildDecisionMessages(stage models.Stage, stageQuestion, userText string) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current stage: %s\n", stage)
	if stageQuestion != "" {
		fmt.Fprintf(&sb, "Open question to the user: %s\n", stageQuestion)
	}
	fmt.Fprintf(&sb, "\nUser message:\n%s", userText)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: decisionInstructions + "\n\n" + jsonOnly},
		{Role: llm.RoleUser, Content: sb.String()},
	}
}

// GateContext carries everything the stage gate sees for one turn.
type GateContext struct {
	Stage           models.Stage
	PlannedDate     string
	Timezone        string
	FrameFacts      map[string]any
	InputFacts      map[string]any
	Durable         []*constraint.Record
	LastUserMessage string
}

// BuildStageGateMessages prompts the per-stage readiness gate.
func (b *Builder) BuildStageGateMessages(gc GateContext) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Stage: %s\n", gc.Stage)
	fmt.Fprintf(&sb, "Recognized fact keys: %s\n", strings.Join(gateFactKeys[gc.Stage], ", "))
	fmt.Fprintf(&sb, "Planned date: %s\nTimezone: %s\n", orUnknown(gc.PlannedDate), orUnknown(gc.Timezone))
	if len(gc.FrameFacts) > 0 {
		fmt.Fprintf(&sb, "\nKnown frame facts:\n%s\n", renderJSON(gc.FrameFacts))
	}
	if len(gc.InputFacts) > 0 {
		fmt.Fprintf(&sb, "\nKnown input facts:\n%s\n", renderJSON(gc.InputFacts))
	}
	if len(gc.Durable) > 0 {
		fmt.Fprintf(&sb, "\nSaved durable constraints:\n%s\n", ConstraintsTable(gc.Durable))
	}
	if gc.LastUserMessage != "" {
		fmt.Fprintf(&sb, "\nLatest user message:\n%s", gc.LastUserMessage)
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: gateInstructions + "\n\n" + jsonOnly},
		{Role: llm.RoleUser, Content: sb.String()},
	}
}

// Handoff carries the session context for a fire-and-forget constraint
// extraction.
type Handoff struct {
	PlannedDate   string
	Timezone      string
	Stage         models.Stage
	EventTypes    []timebox.EventType
	SuggestedTags []string
}

// BuildConstraintExtractorMessages prompts the full constraint extractor.
func (b *Builder) BuildConstraintExtractorMessages(utterance string, h Handoff) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Planned date: %s\nTimezone: %s\nStage: %s\n",
		orUnknown(h.PlannedDate), orUnknown(h.Timezone), h.Stage)
	if len(h.EventTypes) > 0 {
		codes := make([]string, len(h.EventTypes))
		for i, et := range h.EventTypes {
			codes[i] = string(et)
		}
		fmt.Fprintf(&sb, "Impacted event types: %s\n", strings.Join(codes, ", "))
	}
	if len(h.SuggestedTags) > 0 {
		fmt.Fprintf(&sb, "Suggested tags: %s\n", strings.Join(h.SuggestedTags, ", "))
	}
	fmt.Fprintf(&sb, "\nUser message:\n%s", utterance)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: constraintExtractorInstructions + "\n\n" + jsonOnly},
		{Role: llm.RoleUser, Content: sb.String()},
	}
}

// BuildPatchMessages prompts the patch generator for one edit turn.
func (b *Builder) BuildPatchMessages(plan *timebox.Plan, userMessage string, constraints []*constraint.Record, actions []string, retryFeedback string) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current plan:\n%s\n", renderPlan(plan))
	if len(constraints) > 0 {
		fmt.Fprintf(&sb, "\nActive constraints:\n%s\n", ConstraintsTable(constraints))
	}
	if len(actions) > 0 {
		fmt.Fprintf(&sb, "\nRecent actions:\n- %s\n", strings.Join(actions, "\n- "))
	}
	if retryFeedback != "" {
		fmt.Fprintf(&sb, "\nYour previous patch failed validation. Fix these issues:\n%s\n", retryFeedback)
	}
	fmt.Fprintf(&sb, "\nUser request:\n%s", userMessage)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: patchInstructions + "\n\n" + jsonOnly},
		{Role: llm.RoleUser, Content: sb.String()},
	}
}

// BuildSkeletonMessages prompts the first full-day layout. The output
// schema is the same patch contract applied to an empty plan.
func (b *Builder) BuildSkeletonMessages(date, timezone string, frameFacts, inputFacts map[string]any, constraints []*constraint.Record) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Planned date: %s\nTimezone: %s\n", date, timezone)
	if len(frameFacts) > 0 {
		fmt.Fprintf(&sb, "\nFrame facts:\n%s\n", renderJSON(frameFacts))
	}
	if len(inputFacts) > 0 {
		fmt.Fprintf(&sb, "\nInputs:\n%s\n", renderJSON(inputFacts))
	}
	if len(constraints) > 0 {
		fmt.Fprintf(&sb, "\nActive constraints:\n%s\n", ConstraintsTable(constraints))
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: skeletonInstructions + "\n\n" + patchInstructions + "\n\n" + jsonOnly},
		{Role: llm.RoleUser, Content: sb.String()},
	}
}

// BuildOverviewMessages prompts the Markdown day-overview rendering.
// Output is prose, not JSON.
func (b *Builder) BuildOverviewMessages(plan *timebox.Plan) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: overviewInstructions},
		{Role: llm.RoleUser, Content: "Day plan:\n" + renderPlan(plan)},
	}
}

// ConstraintsTable renders records in the compact prompt form, one per
// line.
func ConstraintsTable(records []*constraint.Record) string {
	var sb strings.Builder
	for _, r := range records {
		fmt.Fprintf(&sb, "- [%s/%s] %s (%s", r.Necessity, r.Status, r.Name, r.RuleKind)
		for _, w := range r.Windows {
			fmt.Fprintf(&sb, "; %s %s-%s", w.Kind, w.Start, w.End)
		}
		if len(r.DaysOfWeek) > 0 {
			days := make([]string, len(r.DaysOfWeek))
			for i, d := range r.DaysOfWeek {
				days[i] = string(d)
			}
			fmt.Fprintf(&sb, "; days %s", strings.Join(days, ","))
		}
		sb.WriteString(")\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderPlan(plan *timebox.Plan) string {
	data, err := plan.MarshalIndent()
	if err != nil {
		return "{}"
	}
	return data
}

func renderJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
