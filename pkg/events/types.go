// Package events publishes planning updates to observers via
// PostgreSQL NOTIFY/LISTEN. Every committed graph turn ends with one
// update record on the thread's channel; observers (dashboards, the
// haunting pipeline) subscribe without touching the session state.
package events

import (
	"encoding/json"

	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// GlobalUpdatesChannel carries every update record; per-thread
// channels carry only their own.
const GlobalUpdatesChannel = "plan_updates"

// ThreadChannel returns the NOTIFY channel for one planning thread.
func ThreadChannel(sessionKey string) string {
	return "plan:" + sessionKey
}

// UpdateRecord is the final observer-facing record of one graph turn.
type UpdateRecord struct {
	ThreadTS     string               `json:"thread_ts"`
	ChannelID    string               `json:"channel_id"`
	UserID       string               `json:"user_id"`
	Stage        string               `json:"stage"`
	UserMessage  string               `json:"user_message,omitempty"`
	Constraints  []*constraint.Record `json:"constraints,omitempty"`
	Plan         *timebox.Plan        `json:"plan,omitempty"`
	Actions      []string             `json:"actions,omitempty"`
	PatchHistory []timebox.Patch      `json:"patch_history,omitempty"`
}

// Marshal renders the record for the wire.
func (u *UpdateRecord) Marshal() ([]byte, error) {
	return json.Marshal(u)
}
