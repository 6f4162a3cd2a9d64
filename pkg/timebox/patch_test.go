package timebox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anchoredPlan(t *testing.T) *Plan {
	t.Helper()
	return testPlan(
		Event{Name: "Standup", Type: EventMeeting, Timing: FixedWindow{Start: mustTOD(t, "09:00"), End: mustTOD(t, "09:15")}},
		Event{Name: "Focus", Type: EventDeepWork, Timing: AfterPrev{Duration: 2 * time.Hour}},
		Event{Name: "Admin", Type: EventShallowWork, Timing: AfterPrev{Duration: time.Hour}},
	)
}

func TestApply_AddRemoveUpdateMove(t *testing.T) {
	plan := anchoredPlan(t)

	t.Run("add after index", func(t *testing.T) {
		after := 0
		next, err := Apply(plan, Patch{Ops: []Op{
			AddEvents{
				Events:      []Event{{Name: "Email", Type: EventShallowWork, Timing: AfterPrev{Duration: 20 * time.Minute}}},
				InsertAfter: &after,
			},
		}})
		require.NoError(t, err)
		require.Len(t, next.Events, 4)
		assert.Equal(t, "Email", next.Events[1].Name)
		// Input plan untouched.
		assert.Len(t, plan.Events, 3)
	})

	t.Run("remove", func(t *testing.T) {
		next, err := Apply(plan, Patch{Ops: []Op{RemoveAt{Index: 2}}})
		require.NoError(t, err)
		require.Len(t, next.Events, 2)
		assert.Equal(t, "Focus", next.Events[1].Name)
	})

	t.Run("update merges only set fields", func(t *testing.T) {
		name := "Deep Focus"
		next, err := Apply(plan, Patch{Ops: []Op{UpdateAt{Index: 1, Name: &name}}})
		require.NoError(t, err)
		assert.Equal(t, "Deep Focus", next.Events[1].Name)
		assert.Equal(t, EventDeepWork, next.Events[1].Type)
		assert.Equal(t, AfterPrev{Duration: 2 * time.Hour}, next.Events[1].Timing)
	})

	t.Run("move clamps target", func(t *testing.T) {
		next, err := Apply(plan, Patch{Ops: []Op{Move{From: 2, To: 99}}})
		require.NoError(t, err)
		assert.Equal(t, "Admin", next.Events[2].Name)

		// Moving the anchor first keeps the chain resolvable.
		next, err = Apply(plan, Patch{Ops: []Op{Move{From: 1, To: 2}}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Standup", "Admin", "Focus"},
			[]string{next.Events[0].Name, next.Events[1].Name, next.Events[2].Name})
	})

	t.Run("replace all", func(t *testing.T) {
		next, err := Apply(plan, Patch{Ops: []Op{ReplaceAll{Events: []Event{
			{Name: "Solo", Type: EventDeepWork, Timing: FixedStart{Start: mustTOD(t, "10:00"), Duration: time.Hour}},
		}}}})
		require.NoError(t, err)
		require.Len(t, next.Events, 1)
		assert.Equal(t, "Solo", next.Events[0].Name)
	})
}

func TestApply_IndexErrors(t *testing.T) {
	plan := anchoredPlan(t)
	tests := []struct {
		name string
		op   Op
	}{
		{name: "remove out of range", op: RemoveAt{Index: 3}},
		{name: "remove negative", op: RemoveAt{Index: -1}},
		{name: "update out of range", op: UpdateAt{Index: 9}},
		{name: "move from out of range", op: Move{From: 5, To: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(plan, Patch{Ops: []Op{tt.op}})
			var ie *IndexError
			require.ErrorAs(t, err, &ie)
		})
	}
}

func TestApply_ValidatorErrorsPropagate(t *testing.T) {
	plan := anchoredPlan(t)
	// Adding a fixed event on top of Standup produces an overlap.
	_, err := Apply(plan, Patch{Ops: []Op{
		AddEvents{Events: []Event{
			{Name: "Clash", Type: EventMeeting, Timing: FixedWindow{Start: mustTOD(t, "09:00"), End: mustTOD(t, "10:00")}},
		}},
	}})
	var ov *OverlapError
	require.ErrorAs(t, err, &ov)
}

func TestPatchJSON_RoundTrip(t *testing.T) {
	after := 1
	name := "Renamed"
	et := EventBuffer
	patch := Patch{Ops: []Op{
		AddEvents{
			Events:      []Event{{Name: "Email", Type: EventShallowWork, Timing: AfterPrev{Duration: 20 * time.Minute}}},
			InsertAfter: &after,
		},
		RemoveAt{Index: 2},
		UpdateAt{Index: 0, Name: &name, Type: &et, Timing: BeforeNext{Duration: 10 * time.Minute}},
		Move{From: 0, To: 1},
		ReplaceAll{Events: nil},
	}}

	data, err := patch.MarshalJSON()
	require.NoError(t, err)

	var back Patch
	require.NoError(t, back.UnmarshalJSON(data))
	require.Len(t, back.Ops, 5)
	assert.Equal(t, patch.Ops[0], back.Ops[0])
	assert.Equal(t, patch.Ops[2], back.Ops[2])
	assert.Equal(t, patch.Ops[3], back.Ops[3])
}

func TestPatchJSON_UnknownOp(t *testing.T) {
	var p Patch
	err := p.UnmarshalJSON([]byte(`[{"op":"zz"}]`))
	var ue *UnknownEnumError
	require.ErrorAs(t, err, &ue)
}
