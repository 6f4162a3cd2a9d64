package prompt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/llm"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/timebox"
)

func TestBuildStageGateMessages(t *testing.T) {
	b := NewBuilder()
	msgs := b.BuildStageGateMessages(GateContext{
		Stage:       models.StageCollectConstraints,
		PlannedDate: "2026-02-13",
		Timezone:    "Europe/Amsterdam",
		FrameFacts:  map[string]any{"work_window": "09:00-17:00"},
		Durable: []*constraint.Record{{
			Name:      "Sleep 23:00 to 07:00",
			Necessity: constraint.NecessityShould,
			Status:    constraint.StatusLocked,
			RuleKind:  "sleep_window",
			Windows:   []constraint.Window{{Kind: "sleep", Start: "23:00", End: "07:00"}},
		}},
		LastUserMessage: "I have standup at 9:30",
	})

	require.Len(t, msgs, 2)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[1].Content, "work_window, sleep_target", "recognized keys are enumerated")
	assert.Contains(t, msgs[1].Content, "sleep_window")
	assert.Contains(t, msgs[1].Content, "standup at 9:30")
}

func TestBuildPatchMessages_RetryFeedback(t *testing.T) {
	b := NewBuilder()
	plan := &timebox.Plan{
		Date:     "2026-02-13",
		Timezone: "Europe/Amsterdam",
		Events: []timebox.Event{{
			Name:   "Meeting",
			Type:   timebox.EventMeeting,
			Timing: timebox.FixedWindow{Start: timebox.TimeOfDay{Hour: 10}, End: timebox.TimeOfDay{Hour: 11}},
		}},
	}

	msgs := b.BuildPatchMessages(plan, "add 30 min prep right before", nil, nil, `events[1]: overlap: "Prep" ends 10:30 after "Meeting" starts 10:00`)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, "failed validation")
	assert.Contains(t, msgs[1].Content, "overlap")
	assert.Contains(t, msgs[0].Content, `"bn"`, "patch schema names the timing variants")
}

func TestBuildPlannedDateMessages(t *testing.T) {
	b := NewBuilder()
	now := time.Date(2026, 2, 12, 18, 0, 0, 0, time.UTC)
	msgs := b.BuildPlannedDateMessages("plan tomorrow please", now, "Europe/Amsterdam")
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Content, "2026-02-12T18:00:00Z")
	assert.Contains(t, msgs[1].Content, "plan tomorrow please")
}

func TestConstraintsTable_Compact(t *testing.T) {
	table := ConstraintsTable([]*constraint.Record{
		{
			Name:       "No calls after 18:00",
			Necessity:  constraint.NecessityMust,
			Status:     constraint.StatusProposed,
			RuleKind:   "avoid_window",
			Windows:    []constraint.Window{{Kind: "avoid", Start: "18:00", End: "23:59"}},
			DaysOfWeek: []constraint.Weekday{"MO", "TU"},
		},
	})
	assert.Equal(t, "- [must/proposed] No calls after 18:00 (avoid_window; avoid 18:00-23:59; days MO,TU)", table)
}
