package logging

import (
	"strings"
	"testing"
)

func TestGetLoggerInitializesOnDemand(t *testing.T) {
	logger := GetLogger()
	if logger == nil {
		t.Fatal("GetLogger returned nil without explicit InitLogger")
	}
	if logger != GetLogger() {
		t.Error("GetLogger returned different instances")
	}
}

func TestRecentLogsKeepsLatestLines(t *testing.T) {
	logger := GetLogger()

	logger.Info("checkout feed refreshed with %d rows", 42)
	logger.Warn("maintenance feed slow")

	recent := logger.RecentLogs()
	if len(recent) < 2 {
		t.Fatalf("expected at least 2 buffered lines, got %d", len(recent))
	}

	last := recent[len(recent)-1]
	if !strings.Contains(last, "[WARN]") || !strings.Contains(last, "maintenance feed slow") {
		t.Errorf("unexpected last buffered line: %q", last)
	}
}
