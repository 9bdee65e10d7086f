package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewHandler(&buf, slog.LevelInfo, "json")
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}
	logger := slog.New(h)
	logger.Debug("hidden")
	logger.Info("Session created", "group_id", "ABC234")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "Session created" || entry["group_id"] != "ABC234" {
		t.Errorf("entry: %v", entry)
	}
}

func TestNewHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewHandler(&buf, slog.LevelDebug, "text")
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}
	slog.New(h).Debug("Member connected", "user_id", "u1")
	if !strings.Contains(buf.String(), "Member connected") || !strings.Contains(buf.String(), "u1") {
		t.Errorf("output: %q", buf.String())
	}
}

func TestNewHandler_UnknownFormat(t *testing.T) {
	if _, err := NewHandler(&bytes.Buffer{}, slog.LevelInfo, "xml"); err == nil {
		t.Error("expected error")
	}
}
