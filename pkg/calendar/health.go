package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Health check configuration.
const (
	// HealthInterval is how often the monitor probes the server.
	HealthInterval = 60 * time.Second

	// HealthPingTimeout bounds one probe (ListTools round trip).
	HealthPingTimeout = 10 * time.Second
)

// HealthStatus captures the result of the latest probe.
type HealthStatus struct {
	Healthy   bool      `json:"healthy"`
	LastCheck time.Time `json:"last_check"`
	Error     string    `json:"error,omitempty"`
	ToolCount int       `json:"tool_count"`
}

// healthTarget is what the monitor needs from the client.
type healthTarget interface {
	ListTools(ctx context.Context) ([]*mcpsdk.Tool, error)
	recreateSession(ctx context.Context) error
}

// HealthMonitor periodically probes the calendar MCP server with
// ListTools. A failed probe gets one session-reinit retry before the
// server is marked unhealthy.
type HealthMonitor struct {
	target healthTarget

	checkInterval time.Duration
	pingTimeout   time.Duration

	mu     sync.RWMutex
	status HealthStatus

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewHealthMonitor creates a monitor for the given client.
func NewHealthMonitor(client *Client) *HealthMonitor {
	return &HealthMonitor{
		target:        client,
		checkInterval: HealthInterval,
		pingTimeout:   HealthPingTimeout,
		logger:        slog.Default().With("component", "calendar.health"),
	}
}

// Start launches the background probe loop. Calling Start on a running
// monitor is a no-op.
func (m *HealthMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.loop(ctx)
}

// Stop shuts the monitor down and clears stale status so a later Start
// begins clean.
func (m *HealthMonitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.done != nil {
		<-m.done
	}

	m.mu.Lock()
	m.status = HealthStatus{}
	m.mu.Unlock()

	m.cancel = nil
	m.done = nil
}

func (m *HealthMonitor) loop(ctx context.Context) {
	defer close(m.done)

	m.check(ctx)

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *HealthMonitor) check(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.pingTimeout)
	tools, err := m.target.ListTools(probeCtx)
	cancel()

	if err != nil {
		m.logger.Debug("Calendar probe failed, reinitializing session", "error", err)

		reinitCtx, reinitCancel := context.WithTimeout(ctx, m.pingTimeout)
		reinitErr := m.target.recreateSession(reinitCtx)
		reinitCancel()
		if reinitErr != nil {
			m.setStatus(false, fmt.Sprintf("health check failed: %s", err.Error()), 0)
			return
		}

		retryCtx, retryCancel := context.WithTimeout(ctx, m.pingTimeout)
		tools, err = m.target.ListTools(retryCtx)
		retryCancel()
		if err != nil {
			m.setStatus(false, fmt.Sprintf("health check failed after reinit: %s", err.Error()), 0)
			return
		}
	}

	m.setStatus(true, "", len(tools))
}

func (m *HealthMonitor) setStatus(healthy bool, errMsg string, toolCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if healthy != m.status.Healthy {
		m.logger.Info("Calendar server health changed", "healthy", healthy, "error", errMsg)
	}
	m.status = HealthStatus{
		Healthy:   healthy,
		LastCheck: time.Now(),
		Error:     errMsg,
		ToolCount: toolCount,
	}
}

// Status returns a copy of the latest probe result.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// IsHealthy reports the latest probe outcome; false before the first
// probe completes.
func (m *HealthMonitor) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Healthy
}
