package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hzerrad/remindee/internal/reminder"
)

// LoadFile reads a JSON-encoded reminder snapshot from path into a fresh
// MemStore. A missing file is not an error — it yields an empty store, the
// way the teacher's crontab reader treats a user with no crontab as an empty
// job list rather than a failure.
func LoadFile(path string) (*MemStore, error) {
	ms := NewMemStore()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ms, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []*reminder.Reminder
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	ms.Restore(rows)
	return ms, nil
}

// SaveFile writes ms's current contents to path as indented JSON, creating
// its parent directory if necessary.
func SaveFile(path string, ms *MemStore) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(ms.Snapshot(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
