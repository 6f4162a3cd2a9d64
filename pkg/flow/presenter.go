package flow

import (
	"strings"

	"github.com/hugocool/fateforger/pkg/extract"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/session"
)

// present renders the turn's single outbound reply from the stage
// gate plus any background notes, attaching submit controls when a
// submission is armed.
func (c *Controller) present(s *session.Session, gate *extract.StageGate) *models.Reply {
	var sb strings.Builder

	if gate != nil {
		if len(gate.ResponseMessage) > 0 {
			for _, section := range gate.ResponseMessage {
				if section.Title != "" {
					sb.WriteString("*" + section.Title + "*\n")
				}
				for _, line := range section.Lines {
					sb.WriteString(line + "\n")
				}
				sb.WriteString("\n")
			}
		} else {
			for _, line := range gate.Summary {
				sb.WriteString(line + "\n")
			}
		}
		if gate.Question != "" {
			sb.WriteString("\n" + gate.Question)
		}
	}

	if notes := s.DrainNotes(); len(notes) > 0 {
		sb.WriteString("\n\n_" + strings.Join(notes, "_\n_") + "_")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		text = "I'm listening - tell me more about your day."
	}

	reply := &models.Reply{Text: text}
	if s.PendingSubmit {
		reply.Buttons = armButtons()
		// A prior sync that is still live stays reversible while the
		// next submission is armed.
		if s.LastSyncTx != nil {
			reply.Buttons = append(reply.Buttons, undoButton())
		}
	}
	return reply
}

func armButtons() []models.ActionButton {
	return []models.ActionButton{
		{ID: models.ButtonConfirmSubmit, Label: "Submit to calendar", Style: "primary"},
		{ID: models.ButtonCancelSubmit, Label: "Cancel"},
	}
}

func undoButton() models.ActionButton {
	return models.ActionButton{ID: models.ButtonUndoSubmit, Label: "Undo", Style: "danger"}
}
