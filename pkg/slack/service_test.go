package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hugocool/fateforger/pkg/models"
)

func TestNilServiceIsNoOp(t *testing.T) {
	var s *Service
	// Must not panic.
	s.SendReply(context.Background(), "C1", "1.1", &models.Reply{Text: "hi"})
	assert.Empty(t, s.SendKickoff(context.Background(), "C1", "2026-02-13"))
}

func TestNewService_EmptyTokenDisables(t *testing.T) {
	assert.Nil(t, NewService(ServiceConfig{}))
}

func TestSendReply_PostsToThread(t *testing.T) {
	var posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/chat.postMessage" {
			posts.Add(1)
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "C1", r.Form.Get("channel"))
			assert.Equal(t, "171.1", r.Form.Get("thread_ts"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C1","ts":"171.2"}`))
	}))
	defer srv.Close()

	s := NewServiceWithClient(NewClientWithAPIURL("xoxb-test", srv.URL+"/"))
	s.SendReply(context.Background(), "C1", "171.1", &models.Reply{Text: "plan ready"})

	assert.Equal(t, int32(1), posts.Load())
}

func TestSendReply_FailOpenOnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer srv.Close()

	s := NewServiceWithClient(NewClientWithAPIURL("xoxb-test", srv.URL+"/"))
	// Must not panic or return anything; delivery failures are logged only.
	s.SendReply(context.Background(), "C-missing", "171.1", &models.Reply{Text: "plan ready"})
}
