package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestJSONLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, false)
	l.Info("info msg", map[string]any{"field": "name"})
	l.Warn("warn msg", nil)
	l.Error("error msg", nil)
	l.Debug("hidden", nil)

	entries := decodeLines(t, &buf)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries (debug suppressed), got %d", len(entries))
	}
	if entries[0]["level"] != "info" || entries[0]["msg"] != "info msg" || entries[0]["field"] != "name" {
		t.Errorf("unexpected info entry: %v", entries[0])
	}
	if entries[1]["level"] != "warn" || entries[2]["level"] != "error" {
		t.Errorf("unexpected levels: %v, %v", entries[1]["level"], entries[2]["level"])
	}
	if _, ok := entries[0]["time"]; !ok {
		t.Error("expected time field")
	}
}

func TestJSONLogger_VerboseDebug(t *testing.T) {
	var buf bytes.Buffer
	NewJSONLogger(&buf, true).Debug("shown", nil)
	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["level"] != "debug" {
		t.Fatalf("expected one debug entry, got %v", entries)
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	base := NewJSONLogger(&buf, false)
	l := base.With(map[string]any{"component": "plugin"})
	l.Info("hello", map[string]any{"field": "email"})
	base.Info("plain", nil)

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["component"] != "plugin" || entries[0]["field"] != "email" {
		t.Errorf("With fields missing: %v", entries[0])
	}
	if _, ok := entries[1]["component"]; ok {
		t.Error("With must not change the parent logger")
	}
}

func TestOrNop(t *testing.T) {
	if _, ok := OrNop(nil).(NopLogger); !ok {
		t.Error("OrNop(nil) should return NopLogger")
	}
	l := NewJSONLogger(&bytes.Buffer{}, false)
	if OrNop(l) != Logger(l) {
		t.Error("OrNop should return a non-nil logger unchanged")
	}
}
