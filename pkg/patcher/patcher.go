// Package patcher drives the plan-edit loop: prompt, patch extraction,
// apply, validate, and bounded retry with structured feedback.
package patcher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/extract"
	"github.com/hugocool/fateforger/pkg/llm"
	"github.com/hugocool/fateforger/pkg/prompt"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// Defaults for the edit loop.
const (
	DefaultMaxAttempts    = 5
	DefaultAttemptTimeout = 45 * time.Second
	// DefaultFeedbackBudget caps retry feedback in bytes so a noisy
	// validator cannot blow up the next prompt.
	DefaultFeedbackBudget = 2048
)

// Validator is an optional extra check run after apply; plan invariants
// are always enforced by apply itself.
type Validator func(*timebox.Plan) error

// Patcher orchestrates patch generation against a plan.
type Patcher struct {
	gen            extract.Generator
	prompts        *prompt.Builder
	maxAttempts    int
	attemptTimeout time.Duration
	feedbackBudget int
	logger         *slog.Logger
}

// New creates a patcher with default loop settings.
func New(gen extract.Generator, prompts *prompt.Builder) *Patcher {
	return &Patcher{
		gen:            gen,
		prompts:        prompts,
		maxAttempts:    DefaultMaxAttempts,
		attemptTimeout: DefaultAttemptTimeout,
		feedbackBudget: DefaultFeedbackBudget,
		logger:         slog.Default().With("component", "patcher"),
	}
}

// Request is one plan-edit ask.
type Request struct {
	SessionKey  string
	Plan        *timebox.Plan
	UserMessage string
	Constraints []*constraint.Record
	Actions     []string
	Validator   Validator
}

// ApplyPatch runs the edit loop and returns the new plan plus the
// patch that produced it. On exhaustion the last underlying error is
// returned.
func (p *Patcher) ApplyPatch(ctx context.Context, req Request) (*timebox.Plan, *timebox.Patch, error) {
	var lastErr error
	retryFeedback := ""

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		messages := p.prompts.BuildPatchMessages(req.Plan, req.UserMessage, req.Constraints, req.Actions, retryFeedback)

		newPlan, patch, err := p.attempt(ctx, req, messages)
		if err == nil {
			p.logger.Debug("Patch applied",
				"session_key", req.SessionKey, "attempt", attempt, "ops", len(patch.Ops))
			return newPlan, patch, nil
		}
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}

		lastErr = err
		retryFeedback = p.buildFeedback(err)
		p.logger.Info("Patch attempt failed",
			"session_key", req.SessionKey, "attempt", attempt, "error", err)
	}

	return nil, nil, fmt.Errorf("patch failed after %d attempts: %w", p.maxAttempts, lastErr)
}

func (p *Patcher) attempt(ctx context.Context, req Request, messages []llm.Message) (*timebox.Plan, *timebox.Patch, error) {
	patch, err := extract.Run[timebox.Patch](ctx, p.gen, req.SessionKey, "patch", messages, p.attemptTimeout)
	if err != nil {
		return nil, nil, err
	}

	newPlan, err := timebox.Apply(req.Plan, *patch)
	if err != nil {
		return nil, nil, err
	}

	if req.Validator != nil {
		if err := req.Validator(newPlan); err != nil {
			return nil, nil, err
		}
	}
	return newPlan, patch, nil
}

// buildFeedback renders an error as retry feedback: structured
// (location, type, message) tuples when the error carries them, the
// plain message otherwise, truncated to the byte budget.
func (p *Patcher) buildFeedback(err error) string {
	var sb strings.Builder
	for _, issue := range timebox.IssuesOf(err) {
		fmt.Fprintf(&sb, "- %s: %s: %s\n", issue.Location, issue.Type, issue.Message)
	}

	feedback := strings.TrimRight(sb.String(), "\n")
	if len(feedback) > p.feedbackBudget {
		feedback = feedback[:p.feedbackBudget]
	}
	return feedback
}
