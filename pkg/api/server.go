// Package api exposes the planning conversation over HTTP. The
// endpoints mirror the relay surface: one route per user-visible
// action, each returning the single reply for that turn.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugocool/fateforger/pkg/calendar"
	"github.com/hugocool/fateforger/pkg/database"
	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/session"
	"github.com/hugocool/fateforger/pkg/slack"
)

// Conversation is the controller surface the server fronts.
type Conversation interface {
	Start(ctx context.Context, req models.StartRequest) *models.Reply
	CommitDate(ctx context.Context, req models.CommitDateRequest) *models.Reply
	UserReply(ctx context.Context, req models.UserReplyRequest) *models.Reply
	StageAction(ctx context.Context, req models.StageActionRequest) *models.Reply
	ConfirmSubmit(ctx context.Context, req models.SubmitRequest) *models.Reply
	CancelSubmit(ctx context.Context, req models.SubmitRequest) *models.Reply
	UndoSubmit(ctx context.Context, req models.SubmitRequest) *models.Reply
}

// Server is the HTTP front for the planning controller.
type Server struct {
	conv      Conversation
	sessions  *session.Manager
	db        *database.Client
	calHealth *calendar.HealthMonitor
	slackSvc  *slack.Service

	httpSrv *http.Server
}

// NewServer creates the API server. db and the health monitor are
// optional; the health endpoint degrades to what is wired.
func NewServer(conv Conversation, sessions *session.Manager, db *database.Client) *Server {
	return &Server{
		conv:     conv,
		sessions: sessions,
		db:       db,
	}
}

// SetHealthMonitor attaches the calendar health monitor.
func (s *Server) SetHealthMonitor(m *calendar.HealthMonitor) {
	s.calHealth = m
}

// SetSlackDelivery attaches the Slack relay. When set, every reply is
// also posted into its thread; delivery failures never affect the
// HTTP response.
func (s *Server) SetSlackDelivery(svc *slack.Service) {
	s.slackSvc = svc
}

// deliver mirrors a reply into its Slack thread. slack.Service is
// nil-safe, so this is a no-op when delivery is not configured.
func (s *Server) deliver(c *gin.Context, ref models.ThreadRef, reply *models.Reply) {
	s.slackSvc.SendReply(c.Request.Context(), ref.ChannelID, ref.ThreadTS, reply)
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/sessions", s.StartSession)
		v1.POST("/sessions/commit-date", s.CommitDate)
		v1.POST("/sessions/reply", s.UserReply)
		v1.POST("/sessions/stage-action", s.StageAction)
		v1.POST("/sessions/submit/confirm", s.ConfirmSubmit)
		v1.POST("/sessions/submit/cancel", s.CancelSubmit)
		v1.POST("/sessions/submit/undo", s.UndoSubmit)
		v1.GET("/sessions/stats", s.SessionStats)
	}
	return r
}

// Start runs the HTTP server; blocks until Shutdown or failure.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
