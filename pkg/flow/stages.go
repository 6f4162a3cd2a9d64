package flow

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/extract"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/patcher"
	"github.com/hugocool/fateforger/pkg/prompt"
	"github.com/hugocool/fateforger/pkg/session"
	"github.com/hugocool/fateforger/pkg/timebox"
)

// runStage dispatches to the current stage node.
func (c *Controller) runStage(ctx context.Context, s *session.Session, userMsg string) *extract.StageGate {
	switch s.Stage {
	case models.StageCollectConstraints:
		return c.collectNode(ctx, s, userMsg)
	case models.StageCaptureInputs:
		return c.captureNode(ctx, s, userMsg)
	case models.StageSkeleton:
		return c.skeletonNode(ctx, s, userMsg)
	case models.StageRefine:
		return c.refineNode(ctx, s, userMsg)
	case models.StageReviewCommit:
		return c.reviewNode(ctx, s, userMsg)
	default:
		return fallbackGate(s.Stage, fmt.Errorf("unknown stage %q", s.Stage))
	}
}

// ensureStageConstraints queues the durable prefetch if missing and
// waits briefly; on timeout the stage proceeds with the cache.
func (c *Controller) ensureStageConstraints(ctx context.Context, s *session.Session, stage models.Stage) {
	pc := c.planningContext(s)
	c.coord.QueueStagePrefetch(context.WithoutCancel(ctx), s, stage, c.fetchStage(stage, s.PlannedDate, pc))
	c.coord.EnsureStage(ctx, s, stage, c.cfg.PrefetchWaitBudget)
}

// runGate calls the stage-gate extractor; failures degrade to a safe
// not-ready gate rather than an error.
func (c *Controller) runGate(ctx context.Context, s *session.Session, userMsg string, durable []*constraint.Record) *extract.StageGate {
	gc := prompt.GateContext{
		Stage:           s.Stage,
		PlannedDate:     s.PlannedDate,
		Timezone:        s.Timezone,
		FrameFacts:      s.FrameFacts,
		InputFacts:      s.InputFacts,
		Durable:         durable,
		LastUserMessage: userMsg,
	}
	gate, err := extract.Run[extract.StageGate](ctx, c.gen, s.Key, "stage_gate", c.prompts.BuildStageGateMessages(gc), c.cfg.GateTimeout)
	if err != nil {
		c.logger.Info("Stage gate fallback", "session_key", s.Key, "stage", s.Stage, "error", err)
		return fallbackGate(s.Stage, err)
	}
	if gate.Facts == nil {
		gate.Facts = make(map[string]any)
	}
	return gate
}

// fallbackGate is the safe gate output for an extractor failure.
func fallbackGate(stage models.Stage, err error) *extract.StageGate {
	missing := "stage gate error"
	class := "ParseError"
	var pe *extract.ParseError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		missing = "stage gate timeout"
		class = "BackendTimeout"
	case errors.As(err, &pe):
		// keep ParseError
	default:
		class = "BackendUnavailable"
	}
	return &extract.StageGate{
		StageID: string(stage),
		Ready:   false,
		Missing: []string{missing},
		Facts:   map[string]any{"_stage_gate_error": class},
		Question: "I had trouble processing that - could you say it once more, or click Redo?",
	}
}

// applyGate merges gate facts into the session cache and records the
// stage output. Internal keys (underscore-prefixed) stay out of the
// fact caches.
func (c *Controller) applyGate(s *session.Session, gate *extract.StageGate, facts map[string]any) {
	for k, v := range gate.Facts {
		if strings.HasPrefix(k, "_") || v == nil {
			continue
		}
		facts[k] = v
	}
	s.StageReady = gate.Ready
	s.StageMissing = gate.Missing
	s.StageQuestion = gate.Question
	s.GateCache[s.Stage] = gate
}

// durableFactKeys maps rule kinds to the collect-stage fact they can
// default.
var durableFactKeys = map[string]string{
	"sleep_window": "sleep_target",
	"sleep_target": "sleep_target",
	"work_window":  "work_window",
	"commute":      "commutes",
	"habit":        "habits",
}

// collectNode establishes the day frame. Durable defaults cover
// missing items; an explicit user override suppresses the default's
// identity for the rest of the session.
func (c *Controller) collectNode(ctx context.Context, s *session.Session, userMsg string) *extract.StageGate {
	c.ensureStageConstraints(ctx, s, models.StageCollectConstraints)
	durable := s.Durable(models.StageCollectConstraints)

	gate := c.runGate(ctx, s, userMsg, durable)

	defaults := durableDefaults(durable)

	// The user stating a value for a defaulted field overrides the
	// saved record from here on.
	if strings.TrimSpace(userMsg) != "" {
		for key, rec := range defaults {
			if v, ok := gate.Facts[key]; ok && v != nil {
				s.SuppressDurable(rec.UID)
				s.Debugf("collect: durable %s overridden by user", rec.UID)
				delete(defaults, key)
			}
		}
	}

	// Normalize: when defaults cover everything still missing, the
	// stage is ready with the defaults promoted into facts.
	if !gate.Ready && len(gate.Missing) > 0 && len(defaults) > 0 {
		if covered, used := missingCovered(gate.Missing, defaults); covered {
			names := make([]string, 0, len(used))
			for key, rec := range used {
				gate.Facts[key] = defaultFactValue(rec)
				names = append(names, rec.Name)
			}
			sort.Strings(names)
			gate.Ready = true
			gate.Missing = nil
			gate.Question = fmt.Sprintf(
				"Using your saved defaults: %s. Reply to override any of them, or proceed when ready.",
				strings.Join(names, "; "))
		}
	}

	c.applyGate(s, gate, s.FrameFacts)
	return gate
}

// durableDefaults indexes defaultable durable records by the fact key
// they cover. First record per key wins (records arrive sorted with
// locked first).
func durableDefaults(durable []*constraint.Record) map[string]*constraint.Record {
	defaults := make(map[string]*constraint.Record)
	for _, rec := range durable {
		key, ok := durableFactKeys[rec.RuleKind]
		if !ok {
			continue
		}
		if _, exists := defaults[key]; !exists {
			defaults[key] = rec
		}
	}
	return defaults
}

// missingCovered maps each missing item to a defaultable fact key;
// covered only when every item maps.
func missingCovered(missing []string, defaults map[string]*constraint.Record) (bool, map[string]*constraint.Record) {
	used := make(map[string]*constraint.Record)
	for _, item := range missing {
		key := factKeyForMissing(item)
		rec, ok := defaults[key]
		if !ok {
			return false, nil
		}
		used[key] = rec
	}
	return true, used
}

func factKeyForMissing(item string) string {
	lower := strings.ToLower(item)
	switch {
	case strings.Contains(lower, "sleep"):
		return "sleep_target"
	case strings.Contains(lower, "work"):
		return "work_window"
	case strings.Contains(lower, "commute"):
		return "commutes"
	case strings.Contains(lower, "habit"):
		return "habits"
	default:
		return ""
	}
}

func defaultFactValue(rec *constraint.Record) string {
	if len(rec.Windows) > 0 {
		w := rec.Windows[0]
		return fmt.Sprintf("%s-%s", w.Start, w.End)
	}
	return rec.Name
}

// captureNode collects tasks, the block plan, and the daily one-thing.
// Ready gates queue a fingerprinted skeleton pre-generation.
func (c *Controller) captureNode(ctx context.Context, s *session.Session, userMsg string) *extract.StageGate {
	c.ensureStageConstraints(ctx, s, models.StageCaptureInputs)
	durable := s.Durable(models.StageCaptureInputs)

	gate := c.runGate(ctx, s, userMsg, durable)

	if emptyFact(gate.Facts["tasks"]) {
		if tasks := s.PendingTasks(); len(tasks) > 0 {
			gate.Facts["tasks"] = tasks
			gate.Summary = append(gate.Summary,
				fmt.Sprintf("Pulled %d pending tasks from your task list.", len(tasks)))
		}
	}

	c.applyGate(s, gate, s.InputFacts)

	if gate.Ready {
		c.queueSkeletonPreGen(ctx, s)
	}
	return gate
}

func emptyFact(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	default:
		return false
	}
}

// queueSkeletonPreGen generates the skeleton in the background so the
// stage-3 entry can consume it without an LLM round trip.
func (c *Controller) queueSkeletonPreGen(ctx context.Context, s *session.Session) {
	fp := c.skeletonFingerprint(s)
	date, tz := s.PlannedDate, s.Timezone
	frame := copyFacts(s.FrameFacts)
	input := copyFacts(s.InputFacts)
	durable := s.Durable(models.StageSkeleton)
	sessionKey := s.Key

	c.coord.QueueExtraction(context.WithoutCancel(ctx), sessionKey, "skeleton_pregen|"+fp, func(ctx context.Context) {
		md, plan := c.generateSkeleton(ctx, sessionKey, date, tz, frame, input, durable)
		s.SetPreGenSkeleton(&session.SkeletonResult{Fingerprint: fp, Markdown: md, Plan: plan})
		s.Debugf("skeleton pre-generated (%d events)", len(plan.Events))
	})
}

func (c *Controller) skeletonFingerprint(s *session.Session) string {
	return session.SkeletonFingerprint(s.PlannedDate, s.Timezone, s.FrameFacts["immovables"], s.InputFacts["block_plan"])
}

func copyFacts(facts map[string]any) map[string]any {
	out := make(map[string]any, len(facts))
	for k, v := range facts {
		out[k] = v
	}
	return out
}

// skeletonNode produces the Markdown overview and the seed plan, and
// snapshots the pre-edit baseline. A fingerprint-matching pre-generated
// result skips the LLM.
func (c *Controller) skeletonNode(ctx context.Context, s *session.Session, _ string) *extract.StageGate {
	fp := c.skeletonFingerprint(s)

	var md string
	var plan *timebox.Plan
	if pre := s.TakePreGenSkeleton(fp); pre != nil {
		md, plan = pre.Markdown, pre.Plan
		s.Debugf("skeleton: consumed pre-generated result")
	} else {
		md, plan = c.generateSkeleton(ctx, s.Key, s.PlannedDate, s.Timezone, s.FrameFacts, s.InputFacts, s.Durable(models.StageSkeleton))
	}

	s.Plan = plan
	s.BaseSnapshot = plan.Clone()

	gate := &extract.StageGate{
		StageID:  string(s.Stage),
		Ready:    true,
		Summary:  []string{md},
		Question: "Does this skeleton look right? Tell me what to change, or proceed to refine.",
	}
	c.applyGate(s, gate, s.FrameFacts)
	return gate
}

// generateSkeleton asks for a patch against an empty plan plus a
// Markdown overview. Either call failing falls back to deterministic
// output so stage 3 always produces a plan.
func (c *Controller) generateSkeleton(ctx context.Context, sessionKey, date, tz string, frame, input map[string]any, durable []*constraint.Record) (string, *timebox.Plan) {
	empty := &timebox.Plan{Date: date, Timezone: tz}

	plan := empty
	msgs := c.prompts.BuildSkeletonMessages(date, tz, frame, input, durable)
	patch, err := extract.Run[timebox.Patch](ctx, c.gen, sessionKey, "skeleton", msgs, c.cfg.ExtractorTimeout)
	if err == nil {
		if applied, applyErr := timebox.Apply(empty, *patch); applyErr == nil {
			plan = applied
		} else {
			err = applyErr
		}
	}
	if err != nil || len(plan.Events) == 0 {
		c.logger.Info("Skeleton generation fell back to defaults", "session_key", sessionKey, "error", err)
		plan = c.fallbackSkeleton(date, tz)
	}

	md := c.renderOverview(ctx, sessionKey, plan)
	return md, plan
}

// fallbackSkeleton is the deterministic layout used when generation
// fails: two working blocks sized by the configured fallback minutes.
func (c *Controller) fallbackSkeleton(date, tz string) *timebox.Plan {
	block := time.Duration(c.cfg.FallbackBlockMinutes) * time.Minute
	return &timebox.Plan{
		Date:     date,
		Timezone: tz,
		Events: []timebox.Event{
			{
				Name:   "Deep work",
				Type:   timebox.EventDeepWork,
				Timing: timebox.FixedStart{Start: timebox.TimeOfDay{Hour: 9}, Duration: block},
			},
			{
				Name:   "Shallow work",
				Type:   timebox.EventShallowWork,
				Timing: timebox.FixedStart{Start: timebox.TimeOfDay{Hour: 14}, Duration: block},
			},
		},
	}
}

// renderOverview asks the assistant for a Markdown overview; failures
// fall back to the deterministic plan rendering.
func (c *Controller) renderOverview(ctx context.Context, sessionKey string, plan *timebox.Plan) string {
	msgs := c.prompts.BuildOverviewMessages(plan)
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ExtractorTimeout)
	defer cancel()
	md, err := c.gen.CollectText(ctx, sessionKey, msgs)
	if err != nil || strings.TrimSpace(md) == "" {
		return planSummary(plan)
	}
	return md
}

// refineNode runs the patch loop: repair-first preflight, then the
// user's refinement, then a refreshed summary.
func (c *Controller) refineNode(ctx context.Context, s *session.Session, userMsg string) *extract.StageGate {
	c.ensureStageConstraints(ctx, s, models.StageRefine)

	if s.Plan == nil {
		md, plan := c.generateSkeleton(ctx, s.Key, s.PlannedDate, s.Timezone, s.FrameFacts, s.InputFacts, s.Durable(models.StageSkeleton))
		s.Plan = plan
		s.BaseSnapshot = plan.Clone()
		_ = md
	}

	request := strings.TrimSpace(userMsg)
	if err := s.Plan.Validate(); err != nil {
		issues := renderIssues(err)
		if request == "" {
			request = "Repair the plan so it validates. Validation issues are:\n" + issues
		} else {
			request = fmt.Sprintf("Repair the plan first, then apply this refinement: %s\nValidation issues are:\n%s", userMsg, issues)
		}
	}

	if request == "" {
		gate := &extract.StageGate{
			StageID:  string(s.Stage),
			Ready:    true,
			Summary:  []string{planSummary(s.Plan)},
			Question: "What should we adjust? Or proceed to review and commit.",
		}
		c.applyGate(s, gate, s.InputFacts)
		return gate
	}

	newPlan, patch, err := c.patcher.ApplyPatch(ctx, patcher.Request{
		SessionKey:  s.Key,
		Plan:        s.Plan,
		UserMessage: request,
		Constraints: s.Durable(models.StageRefine),
	})
	if err != nil {
		gate := &extract.StageGate{
			StageID:  string(s.Stage),
			Ready:    false,
			Missing:  []string{"plan edit failed: " + err.Error()},
			Question: "I couldn't apply that change cleanly - try rephrasing it, or click Redo.",
		}
		c.applyGate(s, gate, s.InputFacts)
		return gate
	}

	s.Plan = newPlan
	s.PatchHistory = append(s.PatchHistory, *patch)

	gate := &extract.StageGate{
		StageID:  string(s.Stage),
		Ready:    true,
		Summary:  []string{planSummary(s.Plan)},
		Question: "Anything else to refine, or shall we review and commit?",
	}
	c.applyGate(s, gate, s.InputFacts)
	return gate
}

// reviewNode summarizes the final plan and arms submission. It never
// auto-submits.
func (c *Controller) reviewNode(ctx context.Context, s *session.Session, _ string) *extract.StageGate {
	if s.Plan == nil {
		gate := &extract.StageGate{
			StageID:  string(s.Stage),
			Ready:    false,
			Missing:  []string{"no plan to review"},
			Question: "There's no plan yet - go back and lay out the skeleton first.",
		}
		c.applyGate(s, gate, s.InputFacts)
		return gate
	}

	s.PendingSubmit = true
	gate := &extract.StageGate{
		StageID:  string(s.Stage),
		Ready:    true,
		Summary:  []string{"Final plan:", planSummary(s.Plan)},
		Question: "Confirm to write this to your calendar, or cancel to keep editing.",
	}
	c.applyGate(s, gate, s.InputFacts)
	return gate
}

// planSummary renders the resolved timeline, one line per event.
func planSummary(plan *timebox.Plan) string {
	resolved, err := plan.ResolveTimes(false)
	if err != nil {
		data, mErr := plan.MarshalIndent()
		if mErr != nil {
			return "(plan unavailable)"
		}
		return data
	}
	var sb strings.Builder
	for _, r := range resolved {
		fmt.Fprintf(&sb, "%s-%s  %s\n",
			timebox.TimeOfDayFrom(r.Start), timebox.TimeOfDayFrom(r.End), r.Event.Name)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderIssues flattens validation issues for the patch prompt.
func renderIssues(err error) string {
	var sb strings.Builder
	for _, issue := range timebox.IssuesOf(err) {
		fmt.Fprintf(&sb, "- %s: %s: %s\n", issue.Location, issue.Type, issue.Message)
	}
	return strings.TrimRight(sb.String(), "\n")
}
