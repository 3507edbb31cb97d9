package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	logger.PrintInfo("server started", map[string]string{"addr": ":4000"})

	var entry struct {
		Level      string            `json:"level"`
		Message    string            `json:"message"`
		Properties map[string]string `json:"properties"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if entry.Level != "INFO" {
		t.Errorf("expected level INFO, got %q", entry.Level)
	}
	if entry.Message != "server started" {
		t.Errorf("unexpected message %q", entry.Message)
	}
	if entry.Properties["addr"] != ":4000" {
		t.Errorf("unexpected properties %v", entry.Properties)
	}
}

func TestMinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelError)

	logger.PrintInfo("should be dropped", nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output below min level, got %q", buf.String())
	}

	logger.PrintError(errors.New("boom"), nil)
	if buf.Len() == 0 {
		t.Error("expected error entry to be written")
	}
}
