package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DebugLog is a per-session trace file. It is owned by the session:
// created on first use, closed on completion. Writes after Close are
// dropped, which lets background tasks log without racing teardown.
type DebugLog struct {
	mu     sync.Mutex
	f      *os.File
	closed bool
}

// OpenDebugLog creates the trace file for a session key under dir.
func OpenDebugLog(dir, sessionKey string) (*DebugLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create debug log dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.log", sanitizeKey(sessionKey), time.Now().Format("20060102T150405"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("create debug log: %w", err)
	}
	return &DebugLog{f: f}, nil
}

// Path returns the log file path.
func (d *DebugLog) Path() string {
	return d.f.Name()
}

// Printf appends one timestamped line.
func (d *DebugLog) Printf(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	fmt.Fprintf(d.f, "%s %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
}

// Close flushes and closes the file. Idempotent.
func (d *DebugLog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	d.f.Close()
}

func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
}
