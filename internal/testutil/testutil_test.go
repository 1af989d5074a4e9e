package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateTempReminderFile(t *testing.T) {
	content := `[{"ID":1,"Description":"water plants"}]`

	file, cleanup := CreateTempReminderFile(t, content)
	defer cleanup()

	if !FileExists(file) {
		t.Fatal("temp reminder file should exist")
	}

	readContent, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read temp reminder file: %v", err)
	}
	if string(readContent) != content {
		t.Errorf("content mismatch: got %q, want %q", string(readContent), content)
	}
}

func TestTestDataPath(t *testing.T) {
	path := TestDataPath("sample.json")
	expected := filepath.Join("..", "..", "testdata", "reminders", "sample.json")
	if path != expected {
		t.Errorf("path mismatch: got %q, want %q", path, expected)
	}
}

func TestFileExists(t *testing.T) {
	file, cleanup := CreateTempReminderFile(t, "test content")
	defer cleanup()

	if !FileExists(file) {
		t.Error("FileExists should return true for existing file")
	}
	if FileExists("/nonexistent/file.json") {
		t.Error("FileExists should return false for non-existent file")
	}
}
