package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/extract"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/prompt"
	"github.com/hugocool/fateforger/pkg/session"
)

// runTurn executes one serialized graph turn:
// TurnInit → Decision → Transition → stage node → Presenter.
func (c *Controller) runTurn(ctx context.Context, s *session.Session, userText string, forced *extract.Decision, fromAction bool) *models.Reply {
	s.LockTurn()
	defer s.UnlockTurn()

	if s.Completed {
		return sessionEndedReply()
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.GraphTurnTimeout)
	defer cancel()

	if !s.Committed {
		c.interpretPlannedDate(ctx, s, userText)
		if s.PlannedDate == "" {
			return &models.Reply{Text: "I still need a date before we can plan. Which day is this for?"}
		}
		if s.Timezone == "" {
			s.Timezone = c.cfg.DefaultTimezone
		}
		c.commit(ctx, s)
	}

	reply := c.pipeline(ctx, s, userText, forced, fromAction)

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		c.logger.Warn("Graph turn timeout", "session_key", s.Key, "stage", s.Stage)
		s.Debugf("graph_turn_timeout stage=%s", s.Stage)
		return &models.Reply{Text: processingTimeoutText}
	}

	s.Touch()
	c.publishFinalUpdate(context.WithoutCancel(ctx), s)
	return reply
}

func (c *Controller) pipeline(ctx context.Context, s *session.Session, userText string, forced *extract.Decision, fromAction bool) *models.Reply {
	// TurnInit: latch text, fire background work.
	if strings.TrimSpace(userText) != "" {
		s.LastUserMessage = userText
	}
	c.turnInitBackground(ctx, s, userText)

	d := c.decide(ctx, s, userText, forced)
	s.Debugf("decision action=%s note=%s stage=%s", d.Action, d.Note, s.Stage)

	// Proceed from a stage-action button is rejected while unready.
	if fromAction && d.Action == extract.ActionProceed && !s.StageReady {
		return &models.Reply{Text: notReadyText(s.StageMissing)}
	}

	// Transition.
	stageMsg := userText
	switch d.Action {
	case extract.ActionCancel:
		s.Finish(session.ThreadCanceled)
		return &models.Reply{Text: "Canceled. Nothing was written to your calendar."}
	case extract.ActionBack:
		s.Stage = s.Stage.Prev()
		stageMsg = ""
	case extract.ActionProceed:
		s.Stage = s.Stage.Next()
		stageMsg = ""
	case extract.ActionAssist:
		return c.assist(ctx, s)
	case extract.ActionProvideInfo, extract.ActionRedo:
		// Review-stage detail reopens refinement.
		if s.Stage == models.StageReviewCommit && d.Action == extract.ActionProvideInfo && strings.TrimSpace(userText) != "" {
			s.Stage = models.StageRefine
			s.PendingSubmit = false
		}
	}

	gate := c.runStage(ctx, s, stageMsg)
	return c.present(s, gate)
}

// decide resolves the turn's action: forced controls and rerun flags
// first, deterministic fallbacks second, the decision extractor last.
// Extraction failures degrade to provide_info with a note.
func (c *Controller) decide(ctx context.Context, s *session.Session, userText string, forced *extract.Decision) extract.Decision {
	switch {
	case forced != nil:
		return *forced
	case s.ForceStageRerun:
		s.ForceStageRerun = false
		return extract.Decision{Action: extract.ActionRedo, Note: "force_stage_rerun"}
	case strings.TrimSpace(userText) == "":
		return extract.Decision{Action: extract.ActionProvideInfo, Note: "empty_text"}
	case !s.StageReady:
		return extract.Decision{Action: extract.ActionProvideInfo, Note: "stage_not_ready"}
	}

	msgs := c.prompts.BuildDecisionMessages(s.Stage, s.StageQuestion, userText)
	d, err := extract.Run[extract.Decision](ctx, c.gen, s.Key, "decision", msgs, c.cfg.DecisionTimeout)
	if err != nil {
		note := "stage_decision_error"
		if errors.Is(err, context.DeadlineExceeded) {
			note = "stage_decision_timeout"
		}
		c.logger.Info("Decision fallback", "session_key", s.Key, "note", note, "error", err)
		return extract.Decision{Action: extract.ActionProvideInfo, Note: note}
	}
	if !d.Valid() {
		return extract.Decision{Action: extract.ActionProvideInfo, Note: "stage_decision_invalid"}
	}
	return *d
}

// turnInitBackground fires the calendar prefetch, the current stage's
// durable prefetch, and (for substantive text) a constraint
// extraction. All fire-and-forget.
func (c *Controller) turnInitBackground(ctx context.Context, s *session.Session, userText string) {
	bg := context.WithoutCancel(ctx)

	if s.PlannedDate != "" {
		c.coord.QueueCalendarPrefetch(bg, s, s.PlannedDate, c.listDay(s.PlannedDate, s.Timezone))
	}

	pc := c.planningContext(s)
	c.coord.QueueStagePrefetch(bg, s, s.Stage, c.fetchStage(s.Stage, s.PlannedDate, pc))

	if substantive(userText) {
		c.queueConstraintExtraction(bg, s, userText)
	}
}

// substantive filters out greetings and one-word acks before paying
// for an extraction pass.
func substantive(text string) bool {
	return len(strings.Fields(text)) >= 3
}

// queueConstraintExtraction interprets the utterance in the
// background and, when it states a durable rule, extracts and upserts
// the full record.
func (c *Controller) queueConstraintExtraction(ctx context.Context, s *session.Session, utterance string) {
	handoff := prompt.Handoff{
		PlannedDate: s.PlannedDate,
		Timezone:    s.Timezone,
		Stage:       s.Stage,
		EventTypes:  c.fetcher.DeriveEventTypes(s.Stage, c.planningContext(s)),
	}
	label := fmt.Sprintf("constraints|%s", utterance)
	sessionKey := s.Key

	c.coord.QueueExtraction(ctx, sessionKey, label, func(ctx context.Context) {
		interp, err := extract.Run[extract.Interpretation](ctx, c.gen, sessionKey, "interpreter",
			c.prompts.BuildInterpreterMessages(utterance, handoff.PlannedDate, handoff.Timezone), c.cfg.ExtractorTimeout)
		if err != nil || !interp.ShouldExtract {
			return
		}

		rec, err := extract.Run[extract.ExtractedConstraintRecord](ctx, c.gen, sessionKey, "constraint",
			c.prompts.BuildConstraintExtractorMessages(utterance, handoff), c.cfg.ExtractorTimeout)
		if err != nil {
			c.logger.Info("Constraint extraction failed", "session_key", sessionKey, "error", err)
			return
		}

		record := rec.ToRecord()
		err = c.coord.WithUpsert(ctx, func(ctx context.Context) error {
			_, err := c.store.UpsertConstraint(ctx, record,
				&constraint.Event{SessionKey: sessionKey, Trigger: "turn_extraction"})
			return err
		})
		if err != nil {
			c.logger.Warn("Constraint upsert failed", "session_key", sessionKey, "error", err)
			if s.NoteStoreUnavailable() {
				s.AddNote("Saving preferences is unavailable right now; this one applies to today only.")
			}
			return
		}
		s.AddNote(fmt.Sprintf("Noted for the future: %s.", record.Name))
		s.Debugf("extraction: upserted constraint %q", record.Name)
	})
}

// assist short-circuits the stage and answers from the pending-task
// capability.
func (c *Controller) assist(ctx context.Context, s *session.Session) *models.Reply {
	if c.tasks == nil {
		return &models.Reply{Text: "Task lookup isn't connected for this workspace."}
	}
	tasks, err := c.tasks.PendingTasks(ctx, s.UserID)
	if err != nil {
		return &models.Reply{Text: "I couldn't reach your task list just now. Try again in a moment."}
	}
	s.SetPendingTasks(tasks)
	if len(tasks) == 0 {
		return &models.Reply{Text: "No pending tasks found."}
	}
	return &models.Reply{Text: "Your pending tasks:\n- " + strings.Join(tasks, "\n- ")}
}

func notReadyText(missing []string) string {
	if len(missing) == 0 {
		return "Not ready to move on yet - give me a bit more detail first."
	}
	return "Not ready to move on yet. Still missing:\n- " + strings.Join(missing, "\n- ")
}
