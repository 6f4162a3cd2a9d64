package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugocool/fateforger/pkg/models"
)

// StartSession handles POST /api/v1/sessions.
func (s *Server) StartSession(c *gin.Context) {
	var req models.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply := s.conv.Start(c.Request.Context(), req)
	s.deliver(c, req.ThreadRef, reply)
	c.JSON(http.StatusOK, reply)
}

// CommitDate handles POST /api/v1/sessions/commit-date.
func (s *Server) CommitDate(c *gin.Context) {
	var req models.CommitDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply := s.conv.CommitDate(c.Request.Context(), req)
	s.deliver(c, req.ThreadRef, reply)
	c.JSON(http.StatusOK, reply)
}

// UserReply handles POST /api/v1/sessions/reply.
func (s *Server) UserReply(c *gin.Context) {
	var req models.UserReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply := s.conv.UserReply(c.Request.Context(), req)
	s.deliver(c, req.ThreadRef, reply)
	c.JSON(http.StatusOK, reply)
}

// StageAction handles POST /api/v1/sessions/stage-action.
func (s *Server) StageAction(c *gin.Context) {
	var req models.StageActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch req.Action {
	case models.StageActionProceed, models.StageActionBack, models.StageActionRedo, models.StageActionCancel:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown stage action"})
		return
	}
	reply := s.conv.StageAction(c.Request.Context(), req)
	s.deliver(c, req.ThreadRef, reply)
	c.JSON(http.StatusOK, reply)
}

// ConfirmSubmit handles POST /api/v1/sessions/submit/confirm.
func (s *Server) ConfirmSubmit(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply := s.conv.ConfirmSubmit(c.Request.Context(), req)
	s.deliver(c, req.ThreadRef, reply)
	c.JSON(http.StatusOK, reply)
}

// CancelSubmit handles POST /api/v1/sessions/submit/cancel.
func (s *Server) CancelSubmit(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply := s.conv.CancelSubmit(c.Request.Context(), req)
	s.deliver(c, req.ThreadRef, reply)
	c.JSON(http.StatusOK, reply)
}

// UndoSubmit handles POST /api/v1/sessions/submit/undo.
func (s *Server) UndoSubmit(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply := s.conv.UndoSubmit(c.Request.Context(), req)
	s.deliver(c, req.ThreadRef, reply)
	c.JSON(http.StatusOK, reply)
}

// SessionStats handles GET /api/v1/sessions/stats.
func (s *Server) SessionStats(c *gin.Context) {
	active := 0
	if s.sessions != nil {
		active = s.sessions.Len()
	}
	c.JSON(http.StatusOK, gin.H{"active_sessions": active})
}
