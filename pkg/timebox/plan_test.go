package timebox

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTOD(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func testPlan(events ...Event) *Plan {
	return &Plan{
		Events:   events,
		Date:     "2026-02-13",
		Timezone: "Europe/Amsterdam",
	}
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "PT30M", want: 30 * time.Minute},
		{in: "PT1H30M", want: 90 * time.Minute},
		{in: "PT45S", want: 45 * time.Second},
		{in: "P1DT2H", want: 26 * time.Hour},
		{in: "pt15m", want: 15 * time.Minute},
		{in: "P", wantErr: true},
		{in: "", wantErr: true},
		{in: "30m", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseISODuration(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatISODuration_RoundTrip(t *testing.T) {
	for _, d := range []time.Duration{
		30 * time.Minute, 90 * time.Minute, 26 * time.Hour, 45 * time.Second,
	} {
		back, err := ParseISODuration(FormatISODuration(d))
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestResolveTimes_ForwardAndBackward(t *testing.T) {
	plan := testPlan(
		Event{Name: "Prep", Type: EventShallowWork, Timing: BeforeNext{Duration: 30 * time.Minute}},
		Event{Name: "Meeting", Type: EventMeeting, Timing: FixedWindow{Start: mustTOD(t, "10:00"), End: mustTOD(t, "11:00")}},
		Event{Name: "Focus", Type: EventDeepWork, Timing: AfterPrev{Duration: 90 * time.Minute}},
	)

	resolved, err := plan.ResolveTimes(true)
	require.NoError(t, err)
	require.Len(t, resolved, 3)

	// Backward pass fills Prep to end exactly at Meeting's start.
	assert.Equal(t, "09:30", resolved[0].Start.Format("15:04"))
	assert.Equal(t, "10:00", resolved[0].End.Format("15:04"))
	assert.Equal(t, "11:00", resolved[2].Start.Format("15:04"))
	assert.Equal(t, "12:30", resolved[2].End.Format("15:04"))
	assert.Equal(t, 90*time.Minute, resolved[2].Duration)
}

func TestResolveTimes_BrokenChain(t *testing.T) {
	t.Run("ap with no predecessor", func(t *testing.T) {
		plan := testPlan(
			Event{Name: "Floating", Type: EventDeepWork, Timing: AfterPrev{Duration: time.Hour}},
		)
		_, err := plan.ResolveTimes(true)
		var bc *BrokenChainError
		require.ErrorAs(t, err, &bc)
		assert.Equal(t, 0, bc.Index)
	})

	t.Run("bn with no successor", func(t *testing.T) {
		plan := testPlan(
			Event{Name: "Meeting", Type: EventMeeting, Timing: FixedWindow{Start: mustTOD(t, "10:00"), End: mustTOD(t, "11:00")}},
			Event{Name: "Trailing", Type: EventShallowWork, Timing: BeforeNext{Duration: 30 * time.Minute}},
		)
		_, err := plan.ResolveTimes(true)
		var bc *BrokenChainError
		require.ErrorAs(t, err, &bc)
		assert.Equal(t, 1, bc.Index)
	})
}

func TestResolveTimes_Overlap(t *testing.T) {
	plan := testPlan(
		Event{Name: "A", Type: EventMeeting, Timing: FixedWindow{Start: mustTOD(t, "10:00"), End: mustTOD(t, "11:00")}},
		Event{Name: "B", Type: EventDeepWork, Timing: FixedStart{Start: mustTOD(t, "10:30"), Duration: time.Hour}},
	)

	_, err := plan.ResolveTimes(true)
	var ov *OverlapError
	require.ErrorAs(t, err, &ov)
	assert.Equal(t, "A", ov.AName)
	assert.Equal(t, "B", ov.BName)

	// Remote snapshots skip the overlap check.
	resolved, err := plan.ResolveTimes(false)
	require.NoError(t, err)
	assert.Len(t, resolved, 2)
}

func TestResolveTimes_BackgroundExemptFromOverlap(t *testing.T) {
	plan := testPlan(
		Event{Name: "Focus", Type: EventDeepWork, Timing: FixedWindow{Start: mustTOD(t, "09:00"), End: mustTOD(t, "12:00")}},
		Event{Name: "Laundry", Type: EventBackground, Timing: FixedWindow{Start: mustTOD(t, "09:30"), End: mustTOD(t, "10:30")}},
	)
	_, err := plan.ResolveTimes(true)
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("valid plan", func(t *testing.T) {
		plan := testPlan(
			Event{Name: "Meeting", Type: EventMeeting, Timing: FixedWindow{Start: mustTOD(t, "10:00"), End: mustTOD(t, "11:00")}},
			Event{Name: "Focus", Type: EventDeepWork, Timing: AfterPrev{Duration: time.Hour}},
		)
		assert.NoError(t, plan.Validate())
	})

	t.Run("no anchored event", func(t *testing.T) {
		plan := testPlan(
			Event{Name: "Drift", Type: EventDeepWork, Timing: AfterPrev{Duration: time.Hour}},
		)
		err := plan.Validate()
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "no_anchor", ve.Issues[0].Type)
	})

	t.Run("background with relative timing", func(t *testing.T) {
		plan := testPlan(
			Event{Name: "Meeting", Type: EventMeeting, Timing: FixedWindow{Start: mustTOD(t, "10:00"), End: mustTOD(t, "11:00")}},
			Event{Name: "Laundry", Type: EventBackground, Timing: AfterPrev{Duration: time.Hour}},
		)
		err := plan.Validate()
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "background_timing", ve.Issues[0].Type)
	})

	t.Run("increasing ends across non-background events", func(t *testing.T) {
		plan := testPlan(
			Event{Name: "One", Type: EventPlanReview, Timing: FixedStart{Start: mustTOD(t, "08:30"), Duration: 15 * time.Minute}},
			Event{Name: "Two", Type: EventDeepWork, Timing: AfterPrev{Duration: 90 * time.Minute}},
			Event{Name: "Three", Type: EventBuffer, Timing: AfterPrev{Duration: 15 * time.Minute}},
		)
		require.NoError(t, plan.Validate())
		resolved, err := plan.ResolveTimes(true)
		require.NoError(t, err)
		for i := 0; i+1 < len(resolved); i++ {
			assert.True(t, resolved[i].End.Before(resolved[i+1].End) || resolved[i].End.Equal(resolved[i+1].Start))
			assert.Greater(t, resolved[i].Duration, time.Duration(0))
		}
	})
}

func TestTimingJSON_TaggedUnion(t *testing.T) {
	tests := []struct {
		name   string
		timing Timing
		wire   string
	}{
		{name: "ap", timing: AfterPrev{Duration: 30 * time.Minute}, wire: `{"a":"ap","duration":"PT30M"}`},
		{name: "bn", timing: BeforeNext{Duration: 45 * time.Minute}, wire: `{"a":"bn","duration":"PT45M"}`},
		{name: "fs", timing: FixedStart{Start: TimeOfDay{9, 0}, Duration: time.Hour}, wire: `{"a":"fs","duration":"PT1H","start":"09:00"}`},
		{name: "fw", timing: FixedWindow{Start: TimeOfDay{9, 0}, End: TimeOfDay{10, 30}}, wire: `{"a":"fw","start":"09:00","end":"10:30"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalTiming(tt.timing)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(data))

			back, err := UnmarshalTiming(data)
			require.NoError(t, err)
			assert.Equal(t, tt.timing, back)
		})
	}

	t.Run("unknown anchor", func(t *testing.T) {
		_, err := UnmarshalTiming([]byte(`{"a":"xx"}`))
		var ue *UnknownEnumError
		require.ErrorAs(t, err, &ue)
	})
}

func TestPlanJSON_RoundTrip(t *testing.T) {
	plan := testPlan(
		Event{Name: "Meeting", Description: "weekly", Type: EventMeeting, Timing: FixedWindow{Start: TimeOfDay{10, 0}, End: TimeOfDay{11, 0}}},
		Event{Name: "Focus", Type: EventDeepWork, Timing: AfterPrev{Duration: 90 * time.Minute}},
	)
	data, err := json.Marshal(plan)
	require.NoError(t, err)

	var back Plan
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *plan, back)
}
