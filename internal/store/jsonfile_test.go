package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/hzerrad/remindee/internal/reminder"
	"github.com/hzerrad/remindee/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_MissingFileYieldsEmptyStore(t *testing.T) {
	ms, err := store.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	out, err := ms.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSaveFile_ThenLoadFile_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders.json")
	ms := store.NewMemStore()

	next := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	_, err := ms.Insert(context.Background(), &reminder.Reminder{
		UserID:      7,
		Description: "stand up",
		Active:      true,
		TZ:          "UTC",
		NextFire:    &next,
		Pattern:     reminder.PatternTree{Kind: reminder.KindOneTime, OneTime: &reminder.OneTimeBody{}},
	})
	require.NoError(t, err)

	require.NoError(t, store.SaveFile(path, ms))

	reloaded, err := store.LoadFile(path)
	require.NoError(t, err)

	rows, err := reloaded.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "stand up", rows[0].Description)
	assert.True(t, rows[0].NextFire.Equal(next))
}
