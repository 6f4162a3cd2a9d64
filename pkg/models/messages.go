package models

// ThreadRef routes an inbound message to its planning thread.
type ThreadRef struct {
	ChannelID string `json:"channel_id" binding:"required"`
	ThreadTS  string `json:"thread_ts" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
}

// StartRequest opens (or replaces) a planning session for a thread.
type StartRequest struct {
	ThreadRef
	UserInput     string         `json:"user_input" binding:"required"`
	IntentSummary string         `json:"intent_summary,omitempty"`
	Context       map[string]any `json:"context,omitempty"`
}

// CommitDateRequest commits the session to a concrete local date.
type CommitDateRequest struct {
	ThreadRef
	PlannedDate string `json:"planned_date" binding:"required"`
	Timezone    string `json:"timezone" binding:"required"`
}

// UserReplyRequest runs one graph turn with the user's text.
type UserReplyRequest struct {
	ThreadRef
	Text string `json:"text" binding:"required"`
}

// StageActionKind is a deterministic stage control.
type StageActionKind string

const (
	StageActionProceed StageActionKind = "proceed"
	StageActionBack    StageActionKind = "back"
	StageActionRedo    StageActionKind = "redo"
	StageActionCancel  StageActionKind = "cancel"
)

// StageActionRequest applies a stage control to the session.
type StageActionRequest struct {
	ThreadRef
	Action StageActionKind `json:"action" binding:"required"`
}

// SubmitRequest drives the stage-5 submit controls
// (confirm, cancel, undo).
type SubmitRequest struct {
	ThreadRef
}

// ActionButton is one interactive control attached to a reply.
type ActionButton struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Style string `json:"style,omitempty"`
}

// Submit control button ids.
const (
	ButtonConfirmSubmit = "confirm_submit"
	ButtonCancelSubmit  = "cancel_submit"
	ButtonUndoSubmit    = "undo_submit"
)

// Reply is the single outbound message produced by a turn.
type Reply struct {
	Text    string         `json:"text"`
	Buttons []ActionButton `json:"buttons,omitempty"`
}
