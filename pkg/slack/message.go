package slack

import (
	goslack "github.com/slack-go/slack"

	"github.com/hugocool/fateforger/pkg/models"
)

const maxBlockTextLength = 2900

// buttonStyles maps reply button styles onto Block Kit styles.
var buttonStyles = map[string]goslack.Style{
	"primary": goslack.StylePrimary,
	"danger":  goslack.StyleDanger,
}

// BuildReplyBlocks renders one planning reply as Block Kit blocks: a
// markdown section plus, when the reply carries controls, an action
// block whose button values are the submit-control ids.
func BuildReplyBlocks(reply *models.Reply) []goslack.Block {
	var blocks []goslack.Block

	text := reply.Text
	if text == "" {
		text = "..."
	}
	blocks = append(blocks, goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(text), false, false),
		nil, nil,
	))

	if len(reply.Buttons) > 0 {
		elements := make([]goslack.BlockElement, 0, len(reply.Buttons))
		for _, b := range reply.Buttons {
			btn := goslack.NewButtonBlockElement(b.ID, b.ID,
				goslack.NewTextBlockObject(goslack.PlainTextType, b.Label, false, false))
			if style, ok := buttonStyles[b.Style]; ok {
				btn.Style = style
			}
			elements = append(elements, btn)
		}
		blocks = append(blocks, goslack.NewActionBlock("plan_controls", elements...))
	}

	return blocks
}

// BuildKickoffBlocks renders the scheduled morning prompt that anchors
// the day's planning thread.
func BuildKickoffBlocks(plannedDate string) []goslack.Block {
	text := ":sunrise: *Time to plan " + plannedDate + "* - reply in this thread to get started."
	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
