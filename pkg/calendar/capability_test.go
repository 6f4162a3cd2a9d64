package calendar

import (
	"context"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/timebox"
)

// fakeCaller records tool calls and replays canned responses.
type fakeCaller struct {
	calls     []string
	responses map[string]*mcpsdk.CallToolResult
	err       error
}

func textResult(text string, isError bool) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		IsError: isError,
	}
}

func (f *fakeCaller) CallTool(_ context.Context, toolName string, _ map[string]any) (*mcpsdk.CallToolResult, error) {
	f.calls = append(f.calls, toolName)
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.responses[toolName]; ok {
		return r, nil
	}
	return textResult("{}", false), nil
}

func TestListDayEvents_Normalizes(t *testing.T) {
	payload := `{"events":[
		{"id":"ev_late","summary":"Late sync","status":"confirmed",
		 "start":{"dateTime":"2026-02-13T16:00:00","timeZone":"Europe/Amsterdam"},
		 "end":{"dateTime":"2026-02-13T17:00:00","timeZone":"Europe/Amsterdam"}},
		{"id":"ev_cancelled","summary":"Gone","status":"cancelled",
		 "start":{"dateTime":"2026-02-13T09:00:00","timeZone":"Europe/Amsterdam"},
		 "end":{"dateTime":"2026-02-13T10:00:00","timeZone":"Europe/Amsterdam"}},
		{"id":"ev_allday","summary":"Birthday","status":"confirmed",
		 "start":{"date":"2026-02-13"},"end":{"date":"2026-02-14"}},
		{"id":"ev_early","summary":"Standup","status":"confirmed","colorId":"11",
		 "start":{"dateTime":"2026-02-13T09:30:00","timeZone":"Europe/Amsterdam"},
		 "end":{"dateTime":"2026-02-13T09:45:00","timeZone":"Europe/Amsterdam"}}
	]}`
	caller := &fakeCaller{responses: map[string]*mcpsdk.CallToolResult{
		ToolListEvents: textResult(payload, false),
	}}
	capability := NewCapability(caller)

	snap, err := capability.ListDayEvents(context.Background(), "primary", "2026-02-13", "Europe/Amsterdam")
	require.NoError(t, err)

	require.Len(t, snap.Events, 2, "cancelled and all-day events are dropped")
	assert.Equal(t, "ev_early", snap.Events[0].ID, "sorted by start time")
	assert.Equal(t, "ev_late", snap.Events[1].ID)
	assert.Len(t, snap.Diagnostics, 2)

	plan := snap.ToPlan("2026-02-13", "Europe/Amsterdam")
	require.Len(t, plan.Events, 2)
	assert.Equal(t, timebox.EventMeeting, plan.Events[0].Type, "colorId 11 maps back to meeting")
	fw, ok := plan.Events[0].Timing.(timebox.FixedWindow)
	require.True(t, ok)
	assert.Equal(t, "09:30", fw.Start.String())
	assert.Equal(t, "09:45", fw.End.String())
}

func TestListDayEvents_ClampsToDay(t *testing.T) {
	payload := `{"events":[
		{"id":"ev_spill","summary":"Overnight shift","status":"confirmed",
		 "start":{"dateTime":"2026-02-12T22:00:00","timeZone":"Europe/Amsterdam"},
		 "end":{"dateTime":"2026-02-13T06:00:00","timeZone":"Europe/Amsterdam"}}
	]}`
	caller := &fakeCaller{responses: map[string]*mcpsdk.CallToolResult{
		ToolListEvents: textResult(payload, false),
	}}
	capability := NewCapability(caller)

	snap, err := capability.ListDayEvents(context.Background(), "primary", "2026-02-13", "Europe/Amsterdam")
	require.NoError(t, err)
	require.Len(t, snap.Events, 1)
	got := snap.Events[0]
	assert.Equal(t, "00:00", timebox.TimeOfDayFrom(got.Start).String(), "start clamped to day start")
	assert.Equal(t, "06:00", timebox.TimeOfDayFrom(got.End).String())
}

func TestListDayEvents_RPCErrors(t *testing.T) {
	t.Run("non-JSON payload", func(t *testing.T) {
		caller := &fakeCaller{responses: map[string]*mcpsdk.CallToolResult{
			ToolListEvents: textResult("oops, upstream exploded", false),
		}}
		capability := NewCapability(caller)
		_, err := capability.ListDayEvents(context.Background(), "primary", "2026-02-13", "UTC")
		var rpcErr *RPCError
		require.ErrorAs(t, err, &rpcErr)
		assert.Equal(t, ToolListEvents, rpcErr.Tool)
	})

	t.Run("tool error flag", func(t *testing.T) {
		caller := &fakeCaller{responses: map[string]*mcpsdk.CallToolResult{
			ToolListEvents: textResult("quota exceeded", true),
		}}
		capability := NewCapability(caller)
		_, err := capability.ListDayEvents(context.Background(), "primary", "2026-02-13", "UTC")
		var rpcErr *RPCError
		require.ErrorAs(t, err, &rpcErr)
		assert.Contains(t, rpcErr.Payload, "quota exceeded")
	})
}

func TestGetEvent_NotFoundReturnsNil(t *testing.T) {
	caller := &fakeCaller{responses: map[string]*mcpsdk.CallToolResult{
		ToolGetEvent: textResult("event not found", true),
	}}
	capability := NewCapability(caller)

	got, err := capability.GetEvent(context.Background(), "primary", "ff7g_missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMutationOps_PassPayload(t *testing.T) {
	caller := &fakeCaller{responses: map[string]*mcpsdk.CallToolResult{
		ToolCreateEvent: textResult(`{"id":"ff7g_new"}`, false),
		ToolUpdateEvent: textResult(`{"id":"ff7g_new"}`, false),
		ToolDeleteEvent: textResult(`{}`, false),
	}}
	capability := NewCapability(caller)
	ctx := context.Background()

	payload := EventPayload{
		Summary:  "Deep work",
		Start:    "2026-02-13T09:00:00",
		End:      "2026-02-13T11:00:00",
		TimeZone: "Europe/Amsterdam",
		ColorID:  "9",
	}

	_, err := capability.CreateEvent(ctx, "primary", "ff7g_new", payload)
	require.NoError(t, err)
	_, err = capability.UpdateEvent(ctx, "primary", "ff7g_new", payload)
	require.NoError(t, err)
	_, err = capability.DeleteEvent(ctx, "primary", "ff7g_new")
	require.NoError(t, err)

	assert.Equal(t, []string{ToolCreateEvent, ToolUpdateEvent, ToolDeleteEvent}, caller.calls)
}
