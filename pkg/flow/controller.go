// Package flow is the session controller: it owns the per-thread
// graph turn (decision, transition, stage node, presenter) and the
// stage-5 submit/undo path.
package flow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hugocool/fateforger/pkg/calendar"
	"github.com/hugocool/fateforger/pkg/calsync"
	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/events"
	"github.com/hugocool/fateforger/pkg/extract"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/patcher"
	"github.com/hugocool/fateforger/pkg/prompt"
	"github.com/hugocool/fateforger/pkg/retriever"
	"github.com/hugocool/fateforger/pkg/session"
)

// Calendar is the remote-day listing the controller needs; the full
// capability implements it.
type Calendar interface {
	ListDayEvents(ctx context.Context, calendarID, localDay, timezone string) (*calendar.Snapshot, error)
}

// Syncer executes and reverses sync transactions.
type Syncer interface {
	ExecuteSync(ctx context.Context, sessionKey, calendarID, plannedDate string, ops []calsync.Op, haltOnError bool) (*calsync.Transaction, error)
	UndoSync(ctx context.Context, tx *calsync.Transaction) (*calsync.Transaction, error)
}

// TaskProvider looks up the user's pending tasks for the assist
// action and capture-stage injection.
type TaskProvider interface {
	PendingTasks(ctx context.Context, userID string) ([]string, error)
}

// Publisher delivers the final update record of a turn to observers.
type Publisher interface {
	PublishUpdate(ctx context.Context, record *events.UpdateRecord) error
}

// Config carries the controller's operational knobs.
type Config struct {
	CalendarID      string
	DefaultTimezone string

	GraphTurnTimeout   time.Duration
	DecisionTimeout    time.Duration
	GateTimeout        time.Duration
	ExtractorTimeout   time.Duration
	PrefetchWaitBudget time.Duration
	CalendarWaitBudget time.Duration

	FuzzyToleranceMinutes int
	FallbackBlockMinutes  int
	DebugLogDir           string
}

func (c Config) withDefaults() Config {
	if c.DefaultTimezone == "" {
		c.DefaultTimezone = "UTC"
	}
	if c.GraphTurnTimeout <= 0 {
		c.GraphTurnTimeout = 120 * time.Second
	}
	if c.DecisionTimeout <= 0 {
		c.DecisionTimeout = 10 * time.Second
	}
	if c.GateTimeout <= 0 {
		c.GateTimeout = 30 * time.Second
	}
	if c.ExtractorTimeout <= 0 {
		c.ExtractorTimeout = 30 * time.Second
	}
	if c.PrefetchWaitBudget <= 0 {
		c.PrefetchWaitBudget = 2 * time.Second
	}
	if c.CalendarWaitBudget <= 0 {
		c.CalendarWaitBudget = 5 * time.Second
	}
	if c.FuzzyToleranceMinutes <= 0 {
		c.FuzzyToleranceMinutes = 30
	}
	if c.FallbackBlockMinutes <= 0 {
		c.FallbackBlockMinutes = 90
	}
	return c
}

// processingTimeoutText is the deterministic reply when a graph turn
// exceeds its budget.
const processingTimeoutText = "That took longer than expected and I had to stop. Your plan is unchanged - say \"redo\" to retry the last step."

// Deps bundles the controller's collaborators.
type Deps struct {
	Sessions  *session.Manager
	Coord     *session.Coordinator
	Gen       extract.Generator
	Prompts   *prompt.Builder
	Store     constraint.Store
	Retriever *retriever.Retriever
	Patcher   *patcher.Patcher
	Calendar  Calendar
	Syncer    Syncer
	Tasks     TaskProvider // optional
	Publisher Publisher    // optional
}

// Controller drives planning sessions through the stage graph.
type Controller struct {
	sessions  *session.Manager
	coord     *session.Coordinator
	gen       extract.Generator
	prompts   *prompt.Builder
	store     constraint.Store
	fetcher   *retriever.Retriever
	patcher   *patcher.Patcher
	calendar  Calendar
	syncer    Syncer
	tasks     TaskProvider
	publisher Publisher
	cfg       Config
	logger    *slog.Logger
}

// NewController wires a controller from its dependencies.
func NewController(deps Deps, cfg Config) *Controller {
	return &Controller{
		sessions:  deps.Sessions,
		coord:     deps.Coord,
		gen:       deps.Gen,
		prompts:   deps.Prompts,
		store:     deps.Store,
		fetcher:   deps.Retriever,
		patcher:   deps.Patcher,
		calendar:  deps.Calendar,
		syncer:    deps.Syncer,
		tasks:     deps.Tasks,
		publisher: deps.Publisher,
		cfg:       cfg.withDefaults(),
		logger:    slog.Default().With("component", "flow"),
	}
}

// Start opens (or replaces) the thread's session, interprets the
// planned date, fires the initial prefetch, and renders the commit
// prompt.
func (c *Controller) Start(ctx context.Context, req models.StartRequest) *models.Reply {
	s := c.sessions.Replace(req.ChannelID, req.ThreadTS, req.UserID)
	if c.cfg.DebugLogDir != "" {
		if dl, err := session.OpenDebugLog(c.cfg.DebugLogDir, s.Key); err == nil {
			s.AttachDebugLog(dl)
		} else {
			c.logger.Warn("Debug log unavailable", "session_key", s.Key, "error", err)
		}
	}

	s.LockTurn()
	defer s.UnlockTurn()

	s.Timezone = c.cfg.DefaultTimezone
	s.LastUserMessage = req.UserInput
	c.interpretPlannedDate(ctx, s, req.UserInput)
	c.queueStartupPrefetch(context.WithoutCancel(ctx), s)
	s.Touch()

	if s.PlannedDate == "" {
		return &models.Reply{Text: "Which day are we planning? Give me a date and I'll set up the session."}
	}
	return &models.Reply{Text: fmt.Sprintf(
		"Let's plan %s (%s). Confirm the date to commit, or give me another one.",
		s.PlannedDate, s.Timezone)}
}

// CommitDate commits the session to a date and primes the prefetch:
// a brief blocking wait on the collect-stage constraints plus a
// bounded calendar ensure.
func (c *Controller) CommitDate(ctx context.Context, req models.CommitDateRequest) *models.Reply {
	s, _ := c.sessions.GetOrCreate(req.ChannelID, req.ThreadTS, req.UserID)
	s.LockTurn()
	defer s.UnlockTurn()

	if s.Completed {
		return sessionEndedReply()
	}

	s.PlannedDate = req.PlannedDate
	if req.Timezone != "" {
		s.Timezone = req.Timezone
	} else if s.Timezone == "" {
		s.Timezone = c.cfg.DefaultTimezone
	}
	c.commit(ctx, s)

	return &models.Reply{Text: fmt.Sprintf(
		"Committed to %s (%s). First, the day frame: what's your work window, and what fixed appointments are already on the books?",
		s.PlannedDate, s.Timezone)}
}

// UserReply runs one graph turn. An uncommitted session is implicitly
// committed from the reply text first.
func (c *Controller) UserReply(ctx context.Context, req models.UserReplyRequest) *models.Reply {
	s, _ := c.sessions.GetOrCreate(req.ChannelID, req.ThreadTS, req.UserID)
	return c.runTurn(ctx, s, req.Text, nil, false)
}

// StageAction applies a deterministic control. Proceed on an unready
// stage is rejected with the missing items.
func (c *Controller) StageAction(ctx context.Context, req models.StageActionRequest) *models.Reply {
	s, err := c.sessions.Get(req.ChannelID, req.ThreadTS)
	if err != nil {
		return noSessionReply()
	}
	forced := &extract.Decision{Action: string(req.Action), Note: "stage_action"}
	return c.runTurn(ctx, s, "", forced, true)
}

// ConfirmSubmit writes the armed plan to the calendar.
func (c *Controller) ConfirmSubmit(ctx context.Context, req models.SubmitRequest) *models.Reply {
	s, err := c.sessions.Get(req.ChannelID, req.ThreadTS)
	if err != nil {
		return noSessionReply()
	}
	s.LockTurn()
	defer s.UnlockTurn()

	if s.Completed {
		return sessionEndedReply()
	}
	if !s.PendingSubmit || s.Plan == nil {
		return &models.Reply{Text: "Nothing is armed for submission. Walk through review first."}
	}
	return c.confirmSubmit(ctx, s)
}

// CancelSubmit disarms a pending submission.
func (c *Controller) CancelSubmit(ctx context.Context, req models.SubmitRequest) *models.Reply {
	s, err := c.sessions.Get(req.ChannelID, req.ThreadTS)
	if err != nil {
		return noSessionReply()
	}
	s.LockTurn()
	defer s.UnlockTurn()

	s.PendingSubmit = false
	s.Touch()
	return &models.Reply{Text: "Submission canceled - nothing was written to your calendar. Say \"redo\" to review again."}
}

// UndoSubmit reverses the last committed sync and rewinds to refine.
func (c *Controller) UndoSubmit(ctx context.Context, req models.SubmitRequest) *models.Reply {
	s, err := c.sessions.Get(req.ChannelID, req.ThreadTS)
	if err != nil {
		return noSessionReply()
	}
	s.LockTurn()
	defer s.UnlockTurn()

	if s.Completed {
		return sessionEndedReply()
	}
	return c.undoSubmit(ctx, s)
}

// commit marks the session committed and primes the prefetch; callers
// hold the turn lock.
func (c *Controller) commit(ctx context.Context, s *session.Session) {
	s.Committed = true
	s.Touch()

	bg := context.WithoutCancel(ctx)
	c.queueStartupPrefetch(bg, s)
	c.coord.EnsureStage(ctx, s, models.StageCollectConstraints, c.cfg.PrefetchWaitBudget)
	c.coord.EnsureCalendar(ctx, s, s.PlannedDate, c.cfg.CalendarWaitBudget)
}

// interpretPlannedDate runs the planned-date extractor; failures leave
// the date empty so the reply asks for one.
func (c *Controller) interpretPlannedDate(ctx context.Context, s *session.Session, utterance string) {
	msgs := c.prompts.BuildPlannedDateMessages(utterance, time.Now(), s.Timezone)
	pd, err := extract.Run[extract.PlannedDate](ctx, c.gen, s.Key, "planned_date", msgs, c.cfg.ExtractorTimeout)
	if err != nil {
		c.logger.Info("Planned-date extraction failed", "session_key", s.Key, "error", err)
		return
	}
	if pd.PlannedDate != nil && *pd.PlannedDate != "" {
		s.PlannedDate = *pd.PlannedDate
	}
	if pd.Timezone != "" {
		s.Timezone = pd.Timezone
	}
}

func (c *Controller) queueStartupPrefetch(ctx context.Context, s *session.Session) {
	if s.PlannedDate != "" {
		c.coord.QueueCalendarPrefetch(ctx, s, s.PlannedDate, c.listDay(s.PlannedDate, s.Timezone))
	}
	pc := c.planningContext(s)
	c.coord.QueueStagePrefetch(ctx, s, models.StageCollectConstraints,
		c.fetchStage(models.StageCollectConstraints, s.PlannedDate, pc))

	if c.tasks != nil {
		userID := s.UserID
		c.coord.QueueExtraction(ctx, s.Key, "pending_tasks", func(ctx context.Context) {
			tasks, err := c.tasks.PendingTasks(ctx, userID)
			if err != nil {
				c.logger.Warn("Pending-task prefetch failed", "session_key", s.Key, "error", err)
				return
			}
			s.SetPendingTasks(tasks)
		})
	}
}

// listDay builds the calendar prefetch closure for a date.
func (c *Controller) listDay(date, timezone string) func(context.Context) (*calendar.Snapshot, error) {
	return func(ctx context.Context) (*calendar.Snapshot, error) {
		return c.calendar.ListDayEvents(ctx, c.cfg.CalendarID, date, timezone)
	}
}

// fetchStage builds the durable prefetch closure for a stage. The
// planning context is captured at queue time; background tasks never
// read turn-owned fields.
func (c *Controller) fetchStage(stage models.Stage, plannedDate string, pc retriever.PlanningContext) func(context.Context) ([]*constraint.Record, error) {
	return func(ctx context.Context) ([]*constraint.Record, error) {
		return c.fetcher.Fetch(ctx, stage, plannedDate, pc)
	}
}

func (c *Controller) planningContext(s *session.Session) retriever.PlanningContext {
	return retriever.PlanningContext{
		HasWorkWindow:  hasFact(s.FrameFacts, "work_window"),
		HasImmovables:  hasFact(s.FrameFacts, "immovables"),
		HasCommutes:    hasFact(s.FrameFacts, "commutes"),
		HasSleepTarget: hasFact(s.FrameFacts, "sleep_target"),
		HasHabits:      hasFact(s.FrameFacts, "habits"),
		HasBlocks:      hasFact(s.InputFacts, "block_plan"),
	}
}

func hasFact(facts map[string]any, key string) bool {
	v, ok := facts[key]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func noSessionReply() *models.Reply {
	return &models.Reply{Text: "No planning session is open in this thread. Send a start message to begin."}
}

func sessionEndedReply() *models.Reply {
	return &models.Reply{Text: "This session has ended. Start a new one to plan another day."}
}

// publishFinalUpdate sends the turn's update record to observers;
// best-effort.
func (c *Controller) publishFinalUpdate(ctx context.Context, s *session.Session) {
	if c.publisher == nil {
		return
	}
	rec := &events.UpdateRecord{
		ThreadTS:     s.ThreadTS,
		ChannelID:    s.Channel,
		UserID:       s.UserID,
		Stage:        string(s.Stage),
		UserMessage:  s.LastUserMessage,
		Constraints:  s.Durable(s.Stage),
		Plan:         s.Plan,
		PatchHistory: s.PatchHistory,
	}
	if err := c.publisher.PublishUpdate(ctx, rec); err != nil {
		c.logger.Warn("Update publish failed", "session_key", s.Key, "error", err)
	}
}
