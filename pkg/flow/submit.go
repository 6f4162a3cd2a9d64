package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugocool/fateforger/pkg/calsync"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/reconcile"
	"github.com/hugocool/fateforger/pkg/session"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// confirmSubmit writes the plan to the calendar: refresh the remote
// baseline once, plan the sync, execute with halt-on-error. Callers
// hold the turn lock and have checked pending_submit.
func (c *Controller) confirmSubmit(ctx context.Context, s *session.Session) *models.Reply {
	date, tz := s.Plan.Date, s.Plan.Timezone

	snap, err := c.calendar.ListDayEvents(ctx, c.cfg.CalendarID, date, tz)
	if err != nil {
		c.logger.Warn("Baseline refresh failed", "session_key", s.Key, "error", err)
		// Stay armed; the user can confirm again.
		return &models.Reply{
			Text:    "The calendar is unreachable right now; nothing was submitted. Confirm again in a moment.",
			Buttons: armButtons(),
		}
	}
	s.SetSnapshot(date, snap)

	resolved, err := s.Plan.ResolveTimes(true)
	if err != nil {
		s.PendingSubmit = false
		return &models.Reply{Text: fmt.Sprintf(
			"The plan no longer validates and can't be submitted:\n%s\nSay \"redo\" to fix it in refine.",
			renderIssues(err))}
	}

	ops := calsync.PlanSync(resolved, snap.Events, s.EventIDMap, s.RemoteIDsByIndex, date, tz, c.cfg.FuzzyToleranceMinutes)
	if len(ops) == 0 {
		s.PendingSubmit = false
		return &models.Reply{Text: "Your calendar already matches the plan - nothing to change."}
	}

	tx, execErr := c.syncer.ExecuteSync(ctx, s.Key, c.cfg.CalendarID, date, ops, true)
	if tx != nil {
		// Even a halted transaction is kept for undo.
		s.LastSyncTx = tx
		c.recordSyncedIDs(s, tx)
	}
	s.PendingSubmit = false
	s.DropSnapshot(date)
	s.Touch()

	if execErr != nil {
		return &models.Reply{
			Text: fmt.Sprintf(
				"Sync stopped early: %v. Changes made before the failure are recorded and can be undone.", execErr),
			Buttons: []models.ActionButton{undoButton()},
		}
	}

	c.publishFinalUpdate(context.WithoutCancel(ctx), s)
	return &models.Reply{
		Text:    fmt.Sprintf("Done - %s for %s.", summarizeOps(ops), date),
		Buttons: []models.ActionButton{undoButton()},
	}
}

// undoSubmit reverses the last sync and rewinds the session to refine
// with the pre-edit plan restored.
func (c *Controller) undoSubmit(ctx context.Context, s *session.Session) *models.Reply {
	if s.LastSyncTx == nil {
		return &models.Reply{Text: "There's no submitted sync to undo."}
	}

	undoTx, err := c.syncer.UndoSync(ctx, s.LastSyncTx)
	if err != nil {
		if errors.Is(err, calsync.ErrUndoUnavailable) {
			return &models.Reply{Text: "This sync can't be undone automatically - it has no execution record. Check the calendar directly."}
		}
		c.logger.Warn("Undo failed", "session_key", s.Key, "error", err)
		return &models.Reply{Text: fmt.Sprintf("Undo ran into trouble: %v. Some changes may remain; check the calendar.", err)}
	}

	if s.BaseSnapshot != nil {
		s.Plan = s.BaseSnapshot.Clone()
	}
	s.Stage = models.StageRefine
	s.PendingSubmit = false
	s.LastSyncTx = nil
	s.RemoteIDsByIndex = nil
	// The restored plan was never presented in refine; rerun the stage
	// on the next turn instead of routing a stale-ready decision.
	s.ForceStageRerun = true
	if s.Plan != nil {
		s.DropSnapshot(s.Plan.Date)
	}
	s.Touch()

	return &models.Reply{Text: fmt.Sprintf(
		"Rolled back %d calendar changes. We're back in refine with your pre-edit plan.", len(undoTx.Ops))}
}

// recordSyncedIDs folds successful ops back into the session's match
// hints: creates enter the event-id map (keyed name|start), and every
// successful create or update pins its remote id at the op's plan
// index so a later re-sync matches positionally even after a rename
// or a move.
func (c *Controller) recordSyncedIDs(s *session.Session, tx *calsync.Transaction) {
	for i, res := range tx.Results {
		if !res.OK || i >= len(tx.Ops) {
			continue
		}
		op := tx.Ops[i]
		if op.Kind == calsync.OpDelete || op.PlanIndex < 0 {
			continue
		}

		for len(s.RemoteIDsByIndex) <= op.PlanIndex {
			s.RemoteIDsByIndex = append(s.RemoteIDsByIndex, "")
		}
		s.RemoteIDsByIndex[op.PlanIndex] = op.EventID

		if op.Kind != calsync.OpCreate || op.After == nil {
			continue
		}
		start, err := wallClockTimeOfDay(op.After.Start)
		if err != nil {
			continue
		}
		s.EventIDMap[reconcile.IDKey(op.After.Summary, start)] = op.EventID
	}
}

func wallClockTimeOfDay(wall string) (timebox.TimeOfDay, error) {
	t, err := time.Parse("2006-01-02T15:04:05", wall)
	if err != nil {
		return timebox.TimeOfDay{}, err
	}
	return timebox.TimeOfDayFrom(t), nil
}

func summarizeOps(ops []calsync.Op) string {
	var creates, updates, deletes int
	for _, op := range ops {
		switch op.Kind {
		case calsync.OpCreate:
			creates++
		case calsync.OpUpdate:
			updates++
		case calsync.OpDelete:
			deletes++
		}
	}
	parts := make([]string, 0, 3)
	if creates > 0 {
		parts = append(parts, fmt.Sprintf("%d created", creates))
	}
	if updates > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", updates))
	}
	if deletes > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", deletes))
	}
	return strings.Join(parts, ", ")
}
