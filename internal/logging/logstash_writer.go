// Package logging mirrors the standard log output to a Logstash TCP input.
package logging

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	dialTimeout   = 2 * time.Second
	writeTimeout  = time.Second
	retryInterval = 5 * time.Second
)

// LogstashWriter streams log lines to a Logstash TCP input while keeping the
// standard log package non-blocking. It holds a single TCP connection and
// silently drops writes while Logstash is unreachable; a line that is not
// already JSON is wrapped in a JSON envelope so the pipeline only ever sees
// structured events.
type LogstashWriter struct {
	addr string
	app  string

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

// NewLogstashWriter returns a writer tagging every event with the given
// application name. The writer is safe for concurrent use.
func NewLogstashWriter(addr, app string) (*LogstashWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}
	return &LogstashWriter{addr: addr, app: app}, nil
}

// Write implements io.Writer. The caller never blocks on network hiccups:
// when Logstash is down, writes are dropped until the next retry window.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	data := w.envelope(p)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}

	if err := w.ensureConnLocked(); err != nil {
		return len(p), nil
	}

	_ = w.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if _, err := w.conn.Write(data); err != nil {
		w.closeConnLocked()
		w.nextRetry = time.Now().Add(retryInterval)
		return len(p), nil
	}

	return len(p), nil
}

// Close tears down the underlying TCP connection.
func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true
	return w.closeConnLocked()
}

// envelope returns the line as newline-terminated JSON, wrapping plain text
// in a {"app": ..., "message": ...} object.
func (w *LogstashWriter) envelope(p []byte) []byte {
	line := strings.TrimRight(string(p), "\n")

	if json.Valid([]byte(line)) && strings.HasPrefix(strings.TrimSpace(line), "{") {
		return append([]byte(line), '\n')
	}

	wrapped, err := json.Marshal(map[string]string{
		"app":     w.app,
		"message": line,
	})
	if err != nil {
		return append([]byte(line), '\n')
	}
	return append(wrapped, '\n')
}

func (w *LogstashWriter) ensureConnLocked() error {
	if w.conn != nil {
		return nil
	}

	now := time.Now()
	if !w.nextRetry.IsZero() && now.Before(w.nextRetry) {
		return errRetryCooldown
	}

	conn, err := net.DialTimeout("tcp", w.addr, dialTimeout)
	if err != nil {
		w.nextRetry = now.Add(retryInterval)
		return err
	}

	w.conn = conn
	w.nextRetry = time.Time{}
	return nil
}

func (w *LogstashWriter) closeConnLocked() error {
	if w.conn == nil {
		return nil
	}

	err := w.conn.Close()
	w.conn = nil
	return err
}

var errRetryCooldown = errors.New("logstash: retry cooldown in effect")
