package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names exposed by the calendar MCP server.
const (
	ToolListEvents  = "list-events"
	ToolGetEvent    = "get-event"
	ToolCreateEvent = "create-event"
	ToolUpdateEvent = "update-event"
	ToolDeleteEvent = "delete-event"
)

// RPCError is raised when a calendar tool call returns a tool-level
// error flag or a payload that cannot be parsed as JSON.
type RPCError struct {
	Tool    string
	Payload string
}

func (e *RPCError) Error() string {
	payload := e.Payload
	if len(payload) > 200 {
		payload = payload[:200] + "..."
	}
	return fmt.Sprintf("calendar rpc %s failed: %s", e.Tool, payload)
}

// toolCaller is the transport surface the capability needs. *Client
// satisfies it; tests substitute a fake.
type toolCaller interface {
	CallTool(ctx context.Context, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error)
}

// Capability exposes the four calendar operations over the MCP client.
type Capability struct {
	caller toolCaller
	logger *slog.Logger
}

// NewCapability wraps a calendar MCP client.
func NewCapability(caller toolCaller) *Capability {
	return &Capability{
		caller: caller,
		logger: slog.Default().With("component", "calendar.capability"),
	}
}

// ListDayEvents returns the day-bounded remote snapshot for a local
// day. Cancelled and all-day events are dropped; what remains is
// clamped to the day and stably sorted by start time.
func (c *Capability) ListDayEvents(ctx context.Context, calendarID, localDay, timezone string) (*Snapshot, error) {
	text, err := c.call(ctx, ToolListEvents, map[string]any{
		"calendarId": calendarID,
		"timeMin":    localDay + "T00:00:00",
		"timeMax":    localDay + "T23:59:59",
		"timeZone":   timezone,
	})
	if err != nil {
		return nil, err
	}

	events, err := parseEventList(ToolListEvents, text)
	if err != nil {
		return nil, err
	}

	snapshot, err := NormalizeDay(events, localDay, timezone)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Listed day events",
		"calendar_id", calendarID, "day", localDay,
		"kept", len(snapshot.Events), "dropped", len(snapshot.Diagnostics))
	return snapshot, nil
}

// GetEvent fetches a single remote event. Returns nil when the server
// reports the event as missing.
func (c *Capability) GetEvent(ctx context.Context, calendarID, eventID string) (*RemoteEvent, error) {
	text, err := c.call(ctx, ToolGetEvent, map[string]any{
		"calendarId": calendarID,
		"eventId":    eventID,
	})
	if err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) && strings.Contains(strings.ToLower(rpcErr.Payload), "not found") {
			return nil, nil
		}
		return nil, err
	}
	return parseEvent(ToolGetEvent, text)
}

// CreateEvent creates a remote event from a sync payload. When eventID
// is non-empty the server is asked to use it as the external id, which
// keeps owned ids deterministic. Returns the raw response text for the
// transaction record.
func (c *Capability) CreateEvent(ctx context.Context, calendarID, eventID string, payload EventPayload) (string, error) {
	args := payload.toArgs()
	args["calendarId"] = calendarID
	if eventID != "" {
		args["eventId"] = eventID
	}
	return c.call(ctx, ToolCreateEvent, args)
}

// UpdateEvent updates a remote event in place.
func (c *Capability) UpdateEvent(ctx context.Context, calendarID, eventID string, payload EventPayload) (string, error) {
	args := payload.toArgs()
	args["calendarId"] = calendarID
	args["eventId"] = eventID
	return c.call(ctx, ToolUpdateEvent, args)
}

// DeleteEvent removes a remote event.
func (c *Capability) DeleteEvent(ctx context.Context, calendarID, eventID string) (string, error) {
	return c.call(ctx, ToolDeleteEvent, map[string]any{
		"calendarId": calendarID,
		"eventId":    eventID,
	})
}

// call executes one tool and maps tool-level errors to RPCError.
func (c *Capability) call(ctx context.Context, toolName string, args map[string]any) (string, error) {
	result, err := c.caller.CallTool(ctx, toolName, args)
	if err != nil {
		return "", fmt.Errorf("calendar tool %s: %w", toolName, err)
	}

	text := extractTextContent(result)
	if result.IsError {
		return "", &RPCError{Tool: toolName, Payload: text}
	}
	return text, nil
}

// extractTextContent concatenates all TextContent items from a tool result.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
