package logging

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"
)

func TestLogstashWriter(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	lines := make(chan string, 4)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	w, err := NewLogstashWriter(ln.Addr().String(), "backoffice")
	if err != nil {
		t.Fatalf("NewLogstashWriter: %v", err)
	}
	defer w.Close()

	if _, err := w.Write([]byte(`{"event":"ready"}` + "\n")); err != nil {
		t.Fatalf("write json line: %v", err)
	}
	if _, err := w.Write([]byte("plain text line\n")); err != nil {
		t.Fatalf("write text line: %v", err)
	}

	first := receiveLine(t, lines)
	if first != `{"event":"ready"}` {
		t.Fatalf("json line altered: %q", first)
	}

	second := receiveLine(t, lines)
	var wrapped map[string]string
	if err := json.Unmarshal([]byte(second), &wrapped); err != nil {
		t.Fatalf("plain line not wrapped as json: %q", second)
	}
	if wrapped["app"] != "backoffice" || wrapped["message"] != "plain text line" {
		t.Fatalf("unexpected envelope: %v", wrapped)
	}
}

func TestLogstashWriterDropsWhenUnreachable(t *testing.T) {
	// Port from a just-closed listener: nothing is listening there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	w, err := NewLogstashWriter(addr, "backoffice")
	if err != nil {
		t.Fatalf("NewLogstashWriter: %v", err)
	}
	defer w.Close()

	n, err := w.Write([]byte("dropped line\n"))
	if err != nil {
		t.Fatalf("write must not surface network errors: %v", err)
	}
	if n != len("dropped line\n") {
		t.Fatalf("write must report full length, got %d", n)
	}
}

func TestLogstashWriterRejectsEmptyAddress(t *testing.T) {
	if _, err := NewLogstashWriter("  ", "backoffice"); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func receiveLine(t *testing.T, lines chan string) string {
	t.Helper()
	select {
	case line := <-lines:
		return line
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for line")
		return ""
	}
}
