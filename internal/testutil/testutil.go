// Package testutil holds small file-system helpers shared by the reminder
// core's test suites, adapted from the teacher's crontab-file helpers of the
// same name to instead deal with reminder JSON snapshots.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTempReminderFile creates a temporary reminder-store JSON file with
// the given content and returns its path and a cleanup function.
func CreateTempReminderFile(t *testing.T, content string) (string, func()) {
	t.Helper()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "reminders.json")

	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp reminder file: %v", err)
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	return tmpFile, cleanup
}

// TestDataPath returns the path to a fixture under testdata/reminders,
// relative to internal/testutil.
func TestDataPath(name string) string {
	return filepath.Join("..", "..", "testdata", "reminders", name)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
