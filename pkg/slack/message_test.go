package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/models"
)

func TestBuildReplyBlocks_TextOnly(t *testing.T) {
	blocks := BuildReplyBlocks(&models.Reply{Text: "Committed to 2026-02-13."})

	require.Len(t, blocks, 1)
	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "Committed to 2026-02-13.", section.Text.Text)
	assert.Equal(t, goslack.MarkdownType, section.Text.Type)
}

func TestBuildReplyBlocks_WithButtons(t *testing.T) {
	reply := &models.Reply{
		Text: "Confirm to write this to your calendar.",
		Buttons: []models.ActionButton{
			{ID: models.ButtonConfirmSubmit, Label: "Submit to calendar", Style: "primary"},
			{ID: models.ButtonCancelSubmit, Label: "Cancel"},
		},
	}

	blocks := BuildReplyBlocks(reply)
	require.Len(t, blocks, 2)

	actions, ok := blocks[1].(*goslack.ActionBlock)
	require.True(t, ok)
	require.Len(t, actions.Elements.ElementSet, 2)

	confirm, ok := actions.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, models.ButtonConfirmSubmit, confirm.ActionID)
	assert.Equal(t, goslack.StylePrimary, confirm.Style)

	cancel, ok := actions.Elements.ElementSet[1].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, models.ButtonCancelSubmit, cancel.ActionID)
}

func TestBuildReplyBlocks_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", maxBlockTextLength+500)
	blocks := BuildReplyBlocks(&models.Reply{Text: long})

	section := blocks[0].(*goslack.SectionBlock)
	assert.Less(t, len(section.Text.Text), len(long))
	assert.Contains(t, section.Text.Text, "truncated")
}

func TestBuildKickoffBlocks(t *testing.T) {
	blocks := BuildKickoffBlocks("2026-02-13")

	require.Len(t, blocks, 1)
	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, "2026-02-13")
}
