package timebox

import (
	"encoding/json"
	"fmt"
)

// OpKind identifies a patch operation (wire discriminator "op").
type OpKind string

const (
	OpReplaceAll OpKind = "ra"
	OpAddEvents  OpKind = "ae"
	OpRemoveAt   OpKind = "re"
	OpUpdateAt   OpKind = "ue"
	OpMove       OpKind = "me"
)

// Op is the tagged union of plan patch operations.
type Op interface {
	opKind() OpKind
}

// ReplaceAll swaps the whole event list.
type ReplaceAll struct {
	Events []Event
}

// AddEvents inserts events, optionally after a given index; nil
// InsertAfter appends at the end.
type AddEvents struct {
	Events      []Event
	InsertAfter *int
}

// RemoveAt deletes the event at an index.
type RemoveAt struct {
	Index int
}

// UpdateAt merges only the explicitly set fields into the event at an
// index.
type UpdateAt struct {
	Index       int
	Name        *string
	Description *string
	Type        *EventType
	Timing      Timing // nil = unchanged
}

// Move relocates an event; the target index is clamped to valid bounds.
type Move struct {
	From int
	To   int
}

func (ReplaceAll) opKind() OpKind { return OpReplaceAll }
func (AddEvents) opKind() OpKind  { return OpAddEvents }
func (RemoveAt) opKind() OpKind   { return OpRemoveAt }
func (UpdateAt) opKind() OpKind   { return OpUpdateAt }
func (Move) opKind() OpKind       { return OpMove }

// Patch is an ordered sequence of operations.
type Patch struct {
	Ops []Op
}

type opJSON struct {
	Op          OpKind          `json:"op"`
	Events      []Event         `json:"events,omitempty"`
	InsertAfter *int            `json:"insert_after,omitempty"`
	Index       *int            `json:"index,omitempty"`
	From        *int            `json:"from,omitempty"`
	To          *int            `json:"to,omitempty"`
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	EventType   *EventType      `json:"event_type,omitempty"`
	Timing      json.RawMessage `json:"timing,omitempty"`
}

// MarshalJSON encodes the patch as a JSON array of tagged ops.
func (p Patch) MarshalJSON() ([]byte, error) {
	out := make([]opJSON, 0, len(p.Ops))
	for _, op := range p.Ops {
		env := opJSON{Op: op.opKind()}
		switch v := op.(type) {
		case ReplaceAll:
			env.Events = v.Events
		case AddEvents:
			env.Events = v.Events
			env.InsertAfter = v.InsertAfter
		case RemoveAt:
			idx := v.Index
			env.Index = &idx
		case UpdateAt:
			idx := v.Index
			env.Index = &idx
			env.Name = v.Name
			env.Description = v.Description
			env.EventType = v.Type
			if v.Timing != nil {
				raw, err := MarshalTiming(v.Timing)
				if err != nil {
					return nil, err
				}
				env.Timing = raw
			}
		case Move:
			from, to := v.From, v.To
			env.From = &from
			env.To = &to
		default:
			return nil, fmt.Errorf("unknown patch op %T", op)
		}
		out = append(out, env)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a JSON array of tagged ops.
func (p *Patch) UnmarshalJSON(data []byte) error {
	var raw []opJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("patch envelope: %w", err)
	}
	ops := make([]Op, 0, len(raw))
	for i, env := range raw {
		switch env.Op {
		case OpReplaceAll:
			ops = append(ops, ReplaceAll{Events: env.Events})
		case OpAddEvents:
			ops = append(ops, AddEvents{Events: env.Events, InsertAfter: env.InsertAfter})
		case OpRemoveAt:
			if env.Index == nil {
				return fmt.Errorf("patch[%d]: re op requires index", i)
			}
			ops = append(ops, RemoveAt{Index: *env.Index})
		case OpUpdateAt:
			if env.Index == nil {
				return fmt.Errorf("patch[%d]: ue op requires index", i)
			}
			up := UpdateAt{
				Index:       *env.Index,
				Name:        env.Name,
				Description: env.Description,
				Type:        env.EventType,
			}
			if len(env.Timing) > 0 {
				timing, err := UnmarshalTiming(env.Timing)
				if err != nil {
					return fmt.Errorf("patch[%d]: %w", i, err)
				}
				up.Timing = timing
			}
			ops = append(ops, up)
		case OpMove:
			if env.From == nil || env.To == nil {
				return fmt.Errorf("patch[%d]: me op requires from and to", i)
			}
			ops = append(ops, Move{From: *env.From, To: *env.To})
		default:
			return &UnknownEnumError{Kind: "patch_op", Value: string(env.Op)}
		}
	}
	p.Ops = ops
	return nil
}

// Apply runs the patch against a plan and returns a new, re-validated
// plan. The input plan is never mutated; validator errors propagate
// unchanged so the patch loop can turn them into retry feedback.
func Apply(plan *Plan, patch Patch) (*Plan, error) {
	next := plan.Clone()
	for _, op := range patch.Ops {
		var err error
		next.Events, err = applyOp(next.Events, op)
		if err != nil {
			return nil, err
		}
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return next, nil
}

func applyOp(events []Event, op Op) ([]Event, error) {
	switch v := op.(type) {
	case ReplaceAll:
		out := make([]Event, len(v.Events))
		copy(out, v.Events)
		return out, nil

	case AddEvents:
		at := len(events)
		if v.InsertAfter != nil {
			if *v.InsertAfter < 0 || *v.InsertAfter >= len(events) {
				return nil, &IndexError{Op: OpAddEvents, Index: *v.InsertAfter, Len: len(events)}
			}
			at = *v.InsertAfter + 1
		}
		out := make([]Event, 0, len(events)+len(v.Events))
		out = append(out, events[:at]...)
		out = append(out, v.Events...)
		out = append(out, events[at:]...)
		return out, nil

	case RemoveAt:
		if v.Index < 0 || v.Index >= len(events) {
			return nil, &IndexError{Op: OpRemoveAt, Index: v.Index, Len: len(events)}
		}
		out := make([]Event, 0, len(events)-1)
		out = append(out, events[:v.Index]...)
		out = append(out, events[v.Index+1:]...)
		return out, nil

	case UpdateAt:
		if v.Index < 0 || v.Index >= len(events) {
			return nil, &IndexError{Op: OpUpdateAt, Index: v.Index, Len: len(events)}
		}
		out := make([]Event, len(events))
		copy(out, events)
		ev := out[v.Index]
		if v.Name != nil {
			ev.Name = *v.Name
		}
		if v.Description != nil {
			ev.Description = *v.Description
		}
		if v.Type != nil {
			ev.Type = *v.Type
		}
		if v.Timing != nil {
			ev.Timing = v.Timing
		}
		out[v.Index] = ev
		return out, nil

	case Move:
		if v.From < 0 || v.From >= len(events) {
			return nil, &IndexError{Op: OpMove, Index: v.From, Len: len(events)}
		}
		to := v.To
		if to < 0 {
			to = 0
		}
		if to >= len(events) {
			to = len(events) - 1
		}
		out := make([]Event, 0, len(events))
		out = append(out, events[:v.From]...)
		out = append(out, events[v.From+1:]...)
		moved := events[v.From]
		out = append(out[:to], append([]Event{moved}, out[to:]...)...)
		return out, nil

	default:
		return nil, fmt.Errorf("unknown patch op %T", op)
	}
}
