package extract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/llm"
	"github.com/hugocool/fateforger/pkg/timebox"
)

func TestRecoverJSON_Wrappings(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain JSON", `{"action":"proceed"}`},
		{"fenced block", "Here you go:\n```\n{\"action\":\"proceed\"}\n```"},
		{"fenced json block", "```json\n{\"action\":\"proceed\"}\n```"},
		{"embedded in prose", `Sure! The decision is {"action":"proceed"} as requested.`},
		{"double-encoded", `"{\"action\":\"proceed\"}"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decision
			require.NoError(t, RecoverJSON(tt.text, &d))
			assert.Equal(t, ActionProceed, d.Action)
		})
	}
}

func TestRecoverJSON_NestedBraces(t *testing.T) {
	text := `The gate says {"stage_id":"collect_constraints","ready":true,"facts":{"work_window":{"start":"09:00","end":"17:00"}}} hope that helps`
	var g StageGate
	require.NoError(t, RecoverJSON(text, &g))
	assert.True(t, g.Ready)
	assert.Contains(t, g.Facts, "work_window")
}

func TestRecoverJSON_Failure(t *testing.T) {
	var d Decision
	err := RecoverJSON("I could not decide anything, sorry.", &d)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestRecoverJSON_PatchWire(t *testing.T) {
	text := "```json\n" + `{"ops":[{"op":"ae","events":[{"name":"Prep","event_type":"SW","timing":{"a":"bn","duration":"PT30M"}}]}]}` + "\n```"
	var p timebox.Patch
	require.NoError(t, RecoverJSON(text, &p))
	require.Len(t, p.Ops, 1)
}

func TestDecisionValid(t *testing.T) {
	assert.True(t, Decision{Action: ActionAssist}.Valid())
	assert.False(t, Decision{Action: "shrug"}.Valid())
}

type cannedGenerator struct {
	text  string
	err   error
	delay time.Duration
}

func (g *cannedGenerator) CollectText(ctx context.Context, _ string, _ []llm.Message) (string, error) {
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.text, g.err
}

func TestRun_ParsesSchema(t *testing.T) {
	gen := &cannedGenerator{text: `{"planned_date":"2026-02-13","confidence":0.9}`}
	got, err := Run[PlannedDate](context.Background(), gen, "C1:T1", "planned_date", nil, time.Second)
	require.NoError(t, err)
	require.NotNil(t, got.PlannedDate)
	assert.Equal(t, "2026-02-13", *got.PlannedDate)
}

func TestRun_Timeout(t *testing.T) {
	gen := &cannedGenerator{text: `{}`, delay: 200 * time.Millisecond}
	_, err := Run[Decision](context.Background(), gen, "C1:T1", "decision", nil, 10*time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Contains(t, err.Error(), "decision extractor")
}

func TestExtractedConstraintRecord_ToRecord(t *testing.T) {
	e := ExtractedConstraintRecord{
		ConstraintBase: ConstraintBase{
			Name:              "No calls after 17:00",
			Necessity:         "MUST",
			RuleKind:          " Avoid_Window ",
			DaysOfWeek:        []string{"mo", "tu"},
			AppliesEventTypes: []string{"m", "bogus"},
		},
		Scope:         "Profile",
		AppliesStages: []string{"refine", "not_a_stage"},
	}
	rec := e.ToRecord()
	assert.Equal(t, "avoid_window", rec.RuleKind)
	assert.Equal(t, 0.5, rec.Confidence)
	assert.Len(t, rec.DaysOfWeek, 2)
	assert.Len(t, rec.AppliesEventTypes, 1, "unknown event types are dropped")
	assert.Len(t, rec.AppliesStages, 1, "unknown stages are dropped")
}
