package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugocool/fateforger/pkg/models"
	"github.com/hugocool/fateforger/pkg/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// echoConv replies with the route name so tests can verify dispatch.
type echoConv struct {
	lastStart models.StartRequest
	lastReply models.UserReplyRequest
}

func (e *echoConv) Start(_ context.Context, req models.StartRequest) *models.Reply {
	e.lastStart = req
	return &models.Reply{Text: "start"}
}

func (e *echoConv) CommitDate(context.Context, models.CommitDateRequest) *models.Reply {
	return &models.Reply{Text: "commit-date"}
}

func (e *echoConv) UserReply(_ context.Context, req models.UserReplyRequest) *models.Reply {
	e.lastReply = req
	return &models.Reply{Text: "reply"}
}

func (e *echoConv) StageAction(context.Context, models.StageActionRequest) *models.Reply {
	return &models.Reply{Text: "stage-action"}
}

func (e *echoConv) ConfirmSubmit(context.Context, models.SubmitRequest) *models.Reply {
	return &models.Reply{Text: "confirm"}
}

func (e *echoConv) CancelSubmit(context.Context, models.SubmitRequest) *models.Reply {
	return &models.Reply{Text: "cancel"}
}

func (e *echoConv) UndoSubmit(context.Context, models.SubmitRequest) *models.Reply {
	return &models.Reply{Text: "undo"}
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func replyText(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var reply models.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	return reply.Text
}

const threadJSON = `"channel_id":"C1","thread_ts":"171.1","user_id":"U1"`

func TestStartSession_RoutesAndBinds(t *testing.T) {
	conv := &echoConv{}
	r := NewServer(conv, session.NewManager(), nil).Router()

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions",
		`{`+threadJSON+`,"user_input":"plan my friday"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "start", replyText(t, w))
	assert.Equal(t, "plan my friday", conv.lastStart.UserInput)
	assert.Equal(t, "C1", conv.lastStart.ChannelID)
}

func TestStartSession_MissingFieldsRejected(t *testing.T) {
	r := NewServer(&echoConv{}, session.NewManager(), nil).Router()

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions", `{"user_input":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserReply_Routes(t *testing.T) {
	conv := &echoConv{}
	r := NewServer(conv, session.NewManager(), nil).Router()

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/reply",
		`{`+threadJSON+`,"text":"wake at 7"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reply", replyText(t, w))
	assert.Equal(t, "wake at 7", conv.lastReply.Text)
}

func TestStageAction_UnknownActionRejected(t *testing.T) {
	r := NewServer(&echoConv{}, session.NewManager(), nil).Router()

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/stage-action",
		`{`+threadJSON+`,"action":"explode"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/sessions/stage-action",
		`{`+threadJSON+`,"action":"proceed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "stage-action", replyText(t, w))
}

func TestSubmitRoutes(t *testing.T) {
	r := NewServer(&echoConv{}, session.NewManager(), nil).Router()

	for path, want := range map[string]string{
		"/api/v1/sessions/submit/confirm": "confirm",
		"/api/v1/sessions/submit/cancel":  "cancel",
		"/api/v1/sessions/submit/undo":    "undo",
	} {
		w := doJSON(t, r, http.MethodPost, path, `{`+threadJSON+`}`)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, want, replyText(t, w), path)
	}
}

func TestSessionStats(t *testing.T) {
	mgr := session.NewManager()
	mgr.GetOrCreate("C1", "1.1", "U1")
	mgr.GetOrCreate("C1", "1.2", "U1")
	r := NewServer(&echoConv{}, mgr, nil).Router()

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body["active_sessions"])
}

func TestHealth_NoComponentsWired(t *testing.T) {
	r := NewServer(&echoConv{}, session.NewManager(), nil).Router()

	w := doJSON(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
