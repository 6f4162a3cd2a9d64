package calsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hugocool/fateforger/ent"
	"github.com/hugocool/fateforger/ent/syncrecord"
	"github.com/hugocool/fateforger/pkg/calendar"
)

// ErrUndoUnavailable is returned when a transaction recorded no results
// at all. Undo never guesses which ops applied.
var ErrUndoUnavailable = errors.New("sync transaction recorded no results, undo unavailable")

// calendarAPI is the mutation surface the engine drives. The calendar
// capability satisfies it; tests substitute a fake remote.
type calendarAPI interface {
	CreateEvent(ctx context.Context, calendarID, eventID string, payload calendar.EventPayload) (string, error)
	UpdateEvent(ctx context.Context, calendarID, eventID string, payload calendar.EventPayload) (string, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) (string, error)
}

// Engine executes sync transactions and their compensations. When a
// database client is supplied, every transaction is persisted as an
// audit record (best-effort; persistence failures never fail the sync).
type Engine struct {
	api    calendarAPI
	db     *ent.Client
	logger *slog.Logger
}

// NewEngine creates a sync engine. db may be nil to skip the audit trail.
func NewEngine(api calendarAPI, db *ent.Client) *Engine {
	return &Engine{
		api:    api,
		db:     db,
		logger: slog.Default().With("component", "calsync.engine"),
	}
}

// ExecuteSync runs the ops in order against the remote calendar. With
// haltOnError, the first failure stops execution: its error is
// recorded, later ops get no results, and the transaction status is
// partial_halted. On full success the status is committed.
//
// The returned error is the first op failure (nil when committed); the
// transaction always carries whatever results were produced.
func (e *Engine) ExecuteSync(ctx context.Context, sessionKey, calendarID, plannedDate string, ops []Op, haltOnError bool) (*Transaction, error) {
	tx := &Transaction{
		ID:          "sync_" + uuid.New().String(),
		SessionKey:  sessionKey,
		CalendarID:  calendarID,
		PlannedDate: plannedDate,
		Status:      StatusPending,
		Ops:         ops,
	}
	e.persist(ctx, tx, true)

	firstErr := e.executeOps(ctx, tx, haltOnError)

	e.persist(ctx, tx, false)
	e.logger.Info("Sync transaction finished",
		"transaction_id", tx.ID, "status", tx.Status,
		"ops", len(tx.Ops), "results", len(tx.Results))
	return tx, firstErr
}

func (e *Engine) executeOps(ctx context.Context, tx *Transaction, haltOnError bool) error {
	var firstErr error
	for _, op := range tx.Ops {
		content, err := e.executeOp(ctx, tx.CalendarID, op)
		if err != nil {
			tx.Results = append(tx.Results, Result{
				OK:      false,
				EventID: op.EventID,
				Error:   err.Error(),
			})
			if firstErr == nil {
				firstErr = err
			}
			if haltOnError {
				tx.Status = StatusPartialHalted
				return firstErr
			}
			continue
		}
		tx.Results = append(tx.Results, Result{
			OK:      true,
			EventID: op.EventID,
			Content: content,
		})
	}

	if firstErr != nil {
		tx.Status = StatusPartial
		return firstErr
	}
	tx.Status = StatusCommitted
	return nil
}

func (e *Engine) executeOp(ctx context.Context, calendarID string, op Op) (string, error) {
	switch op.Kind {
	case OpCreate:
		if op.After == nil {
			return "", fmt.Errorf("create op %s has no forward payload", op.EventID)
		}
		return e.api.CreateEvent(ctx, calendarID, op.EventID, *op.After)
	case OpUpdate:
		if op.After == nil {
			return "", fmt.Errorf("update op %s has no forward payload", op.EventID)
		}
		return e.api.UpdateEvent(ctx, calendarID, op.EventID, *op.After)
	case OpDelete:
		return e.api.DeleteEvent(ctx, calendarID, op.EventID)
	default:
		return "", fmt.Errorf("unknown sync op kind %q", op.Kind)
	}
}

// UndoSync builds and executes the compensating transaction for a
// previously executed sync: over the reverse of the successfully
// executed ops, create becomes delete, update replays the before
// payload, delete recreates the before payload. A halted transaction
// has results only for its executed prefix; exactly that prefix is
// compensated. Only a transaction with no results at all (a crash
// before any result was recorded) is refused.
func (e *Engine) UndoSync(ctx context.Context, tx *Transaction) (*Transaction, error) {
	if len(tx.Results) == 0 {
		return nil, fmt.Errorf("transaction %s: %w", tx.ID, ErrUndoUnavailable)
	}

	executed := len(tx.Results)
	if executed > len(tx.Ops) {
		executed = len(tx.Ops)
	}

	var comp []Op
	for i := executed - 1; i >= 0; i-- {
		op, res := tx.Ops[i], tx.Results[i]
		if !res.OK {
			continue
		}
		rev, err := reverseOp(op)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
		comp = append(comp, rev)
	}

	undoTx := &Transaction{
		ID:          tx.ID + "_undo",
		SessionKey:  tx.SessionKey,
		CalendarID:  tx.CalendarID,
		PlannedDate: tx.PlannedDate,
		Status:      StatusPending,
		Ops:         comp,
	}
	e.persist(ctx, undoTx, true)

	firstErr := e.executeOps(ctx, undoTx, true)
	e.persist(ctx, undoTx, false)

	if undoTx.Status == StatusCommitted {
		tx.Status = StatusUndone
	} else {
		tx.Status = StatusUndoPartial
	}
	e.persist(ctx, tx, false)

	e.logger.Info("Undo transaction finished",
		"transaction_id", undoTx.ID, "status", undoTx.Status,
		"source_status", tx.Status)
	return undoTx, firstErr
}

func reverseOp(op Op) (Op, error) {
	switch op.Kind {
	case OpCreate:
		return Op{
			Kind:      OpDelete,
			EventID:   op.EventID,
			Tool:      calendar.ToolDeleteEvent,
			PlanIndex: -1,
			Before:    op.After,
		}, nil
	case OpUpdate:
		if op.Before == nil {
			return Op{}, fmt.Errorf("update op %s has no before payload", op.EventID)
		}
		return Op{
			Kind:      OpUpdate,
			EventID:   op.EventID,
			Tool:      calendar.ToolUpdateEvent,
			PlanIndex: op.PlanIndex,
			After:     op.Before,
			Before:    op.After,
		}, nil
	case OpDelete:
		if op.Before == nil {
			return Op{}, fmt.Errorf("delete op %s has no before payload", op.EventID)
		}
		return Op{
			Kind:      OpCreate,
			EventID:   op.EventID,
			Tool:      calendar.ToolCreateEvent,
			PlanIndex: op.PlanIndex,
			After:     op.Before,
		}, nil
	default:
		return Op{}, fmt.Errorf("unknown sync op kind %q", op.Kind)
	}
}

// persist writes the transaction to the audit trail. Failures are
// logged and swallowed: the live undo copy stays on the session.
func (e *Engine) persist(ctx context.Context, tx *Transaction, create bool) {
	if e.db == nil {
		return
	}

	var err error
	if create {
		err = e.db.SyncRecord.Create().
			SetID(tx.ID).
			SetSessionKey(tx.SessionKey).
			SetCalendarID(tx.CalendarID).
			SetPlannedDate(tx.PlannedDate).
			SetStatus(syncrecord.Status(tx.Status)).
			SetOps(toMaps(tx.Ops)).
			Exec(ctx)
	} else {
		err = e.db.SyncRecord.UpdateOneID(tx.ID).
			SetStatus(syncrecord.Status(tx.Status)).
			SetResults(toMaps(tx.Results)).
			Exec(ctx)
	}
	if err != nil {
		e.logger.Warn("Failed to persist sync record",
			"transaction_id", tx.ID, "error", err)
	}
}

// toMaps renders a typed slice as the generic JSON shape the audit
// columns store.
func toMaps[T any](items []T) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}
