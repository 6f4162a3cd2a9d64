package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/timebox"
)

func TestThreadChannel(t *testing.T) {
	assert.Equal(t, "plan:C1:T1", ThreadChannel("C1:T1"))
}

func TestUpdateRecord_Marshal(t *testing.T) {
	rec := &UpdateRecord{
		ThreadTS:    "T1",
		ChannelID:   "C1",
		UserID:      "U1",
		Stage:       "refine",
		UserMessage: "move lunch to 13:00",
		Constraints: []*constraint.Record{{UID: "cr_x", Name: "Lunch break"}},
		Plan: &timebox.Plan{
			Date:     "2026-02-13",
			Timezone: "Europe/Amsterdam",
		},
		PatchHistory: []timebox.Patch{{Ops: []timebox.Op{timebox.RemoveAt{Index: 0}}}},
	}

	data, err := rec.Marshal()
	require.NoError(t, err)

	var round map[string]any
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, "refine", round["stage"])
	assert.NotNil(t, round["plan"])
	assert.NotNil(t, round["patch_history"])
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("small payload passes through", func(t *testing.T) {
		got, err := truncateIfNeeded([]byte(`{"thread_ts":"T1","channel_id":"C1","stage":"refine"}`))
		require.NoError(t, err)
		assert.NotContains(t, got, "truncated")
	})

	t.Run("oversized payload keeps routing fields only", func(t *testing.T) {
		big := `{"thread_ts":"T1","channel_id":"C1","stage":"refine","user_message":"` +
			strings.Repeat("x", notifyLimit) + `"}`
		got, err := truncateIfNeeded([]byte(big))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), notifyLimit)

		var env map[string]any
		require.NoError(t, json.Unmarshal([]byte(got), &env))
		assert.Equal(t, true, env["truncated"])
		assert.Equal(t, "T1", env["thread_ts"])
		assert.Equal(t, "C1", env["channel_id"])
	})
}
