package calendar

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	listErrs  []error // consumed per call; nil entry = success
	tools     []*mcpsdk.Tool
	reinitErr error

	listCalls   int
	reinitCalls int
}

func (f *fakeTarget) ListTools(context.Context) ([]*mcpsdk.Tool, error) {
	f.listCalls++
	if len(f.listErrs) > 0 {
		err := f.listErrs[0]
		f.listErrs = f.listErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.tools, nil
}

func (f *fakeTarget) recreateSession(context.Context) error {
	f.reinitCalls++
	return f.reinitErr
}

func newTestMonitor(target healthTarget) *HealthMonitor {
	return &HealthMonitor{
		target:        target,
		checkInterval: time.Hour,
		pingTimeout:   time.Second,
		logger:        slog.Default(),
	}
}

func TestHealthMonitor_HealthyProbe(t *testing.T) {
	target := &fakeTarget{tools: []*mcpsdk.Tool{{Name: "list-events"}, {Name: "create-event"}}}
	m := newTestMonitor(target)

	m.check(context.Background())

	require.True(t, m.IsHealthy())
	status := m.Status()
	assert.Equal(t, 2, status.ToolCount)
	assert.Empty(t, status.Error)
	assert.False(t, status.LastCheck.IsZero())
}

func TestHealthMonitor_ReinitRecoversProbe(t *testing.T) {
	target := &fakeTarget{
		listErrs: []error{errors.New("connection reset"), nil},
		tools:    []*mcpsdk.Tool{{Name: "list-events"}},
	}
	m := newTestMonitor(target)

	m.check(context.Background())

	assert.True(t, m.IsHealthy())
	assert.Equal(t, 1, target.reinitCalls)
	assert.Equal(t, 2, target.listCalls)
}

func TestHealthMonitor_UnhealthyAfterReinitFailure(t *testing.T) {
	target := &fakeTarget{
		listErrs: []error{errors.New("connection refused"), errors.New("connection refused")},
	}
	m := newTestMonitor(target)

	m.check(context.Background())

	require.False(t, m.IsHealthy())
	assert.Contains(t, m.Status().Error, "after reinit")
}

func TestHealthMonitor_UnhealthyBeforeFirstProbe(t *testing.T) {
	m := newTestMonitor(&fakeTarget{})
	assert.False(t, m.IsHealthy())
}

func TestHealthMonitor_StartStopClearsStatus(t *testing.T) {
	target := &fakeTarget{tools: []*mcpsdk.Tool{{Name: "list-events"}}}
	m := newTestMonitor(target)

	m.Start(context.Background())
	require.Eventually(t, m.IsHealthy, time.Second, 10*time.Millisecond)

	m.Stop()
	assert.False(t, m.IsHealthy())
	assert.True(t, m.Status().LastCheck.IsZero())

	// Restartable after Stop.
	m.Start(context.Background())
	require.Eventually(t, m.IsHealthy, time.Second, 10*time.Millisecond)
	m.Stop()
}
