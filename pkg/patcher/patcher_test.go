package patcher

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/llm"
	"github.com/hugocool/fateforger/pkg/prompt"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// scriptedGenerator replays responses in order and records the prompts
// it saw.
type scriptedGenerator struct {
	responses []string
	prompts   []string
	calls     int
}

func (g *scriptedGenerator) CollectText(_ context.Context, _ string, messages []llm.Message) (string, error) {
	var userContent string
	for _, m := range messages {
		if m.Role == llm.RoleUser {
			userContent = m.Content
		}
	}
	g.prompts = append(g.prompts, userContent)
	if g.calls >= len(g.responses) {
		return "", fmt.Errorf("no scripted response left")
	}
	resp := g.responses[g.calls]
	g.calls++
	return resp, nil
}

func meetingPlan() *timebox.Plan {
	return &timebox.Plan{
		Date:     "2026-02-13",
		Timezone: "Europe/Amsterdam",
		Events: []timebox.Event{{
			Name: "Meeting",
			Type: timebox.EventMeeting,
			Timing: timebox.FixedWindow{
				Start: timebox.TimeOfDay{Hour: 10},
				End:   timebox.TimeOfDay{Hour: 11},
			},
		}},
	}
}

func TestApplyPatch_RetriesOnOverlap(t *testing.T) {
	// First attempt overlaps the meeting; second uses a before-next
	// anchor and passes.
	overlapping := `{"ops":[{"op":"ae","events":[{"name":"Prep","event_type":"SW","timing":{"a":"fs","start":"10:30","duration":"PT30M"}}]}]}`
	good := `{"ops":[{"op":"ae","events":[{"name":"Prep","event_type":"SW","timing":{"a":"bn","duration":"PT30M"}}]},{"op":"me","from":1,"to":0}]}`

	gen := &scriptedGenerator{responses: []string{overlapping, good}}
	p := New(gen, prompt.NewBuilder())

	newPlan, patch, err := p.ApplyPatch(context.Background(), Request{
		SessionKey:  "C1:T1",
		Plan:        meetingPlan(),
		UserMessage: "add 30 min prep right before",
	})
	require.NoError(t, err)
	require.NotNil(t, patch)
	assert.Equal(t, 2, gen.calls)

	// The retry prompt carried the overlap feedback.
	assert.Contains(t, gen.prompts[1], "overlap")

	resolved, err := newPlan.ResolveTimes(true)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "Prep", resolved[0].Event.Name)
	assert.Equal(t, "09:30", timebox.TimeOfDayFrom(resolved[0].Start).String())
}

func TestApplyPatch_ExhaustsAttempts(t *testing.T) {
	bad := `{"ops":[{"op":"re","index":99}]}`
	gen := &scriptedGenerator{responses: []string{bad, bad, bad, bad, bad}}
	p := New(gen, prompt.NewBuilder())

	_, _, err := p.ApplyPatch(context.Background(), Request{
		SessionKey:  "C1:T1",
		Plan:        meetingPlan(),
		UserMessage: "remove something",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 5 attempts")
	assert.Equal(t, 5, gen.calls)
}

func TestApplyPatch_ExternalValidator(t *testing.T) {
	patch := `{"ops":[{"op":"ue","index":0,"name":"Team meeting"}]}`
	gen := &scriptedGenerator{responses: []string{patch, patch, patch, patch, patch}}
	p := New(gen, prompt.NewBuilder())

	called := 0
	_, _, err := p.ApplyPatch(context.Background(), Request{
		SessionKey:  "C1:T1",
		Plan:        meetingPlan(),
		UserMessage: "rename the meeting",
		Validator: func(pl *timebox.Plan) error {
			called++
			return fmt.Errorf("house rule: meetings keep their invite names")
		},
	})
	require.Error(t, err)
	assert.Equal(t, 5, called, "validator failures retry like any other")
}

func TestBuildFeedback_Truncates(t *testing.T) {
	p := New(&scriptedGenerator{}, prompt.NewBuilder())
	p.feedbackBudget = 32

	long := fmt.Errorf("x%s", string(make([]byte, 500)))
	fb := p.buildFeedback(long)
	assert.LessOrEqual(t, len(fb), 32)
}
