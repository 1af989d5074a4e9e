package cmd

import (
	"time"

	"github.com/hzerrad/remindee/internal/occurrence"
	"github.com/hzerrad/remindee/internal/store"
)

var engine = occurrence.NewEngine()

func openStore() (*store.MemStore, error) {
	return store.LoadFile(storePath)
}

func saveStore(ms *store.MemStore) error {
	return store.SaveFile(storePath, ms)
}

func location() *time.Location {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return time.UTC
	}
	return loc
}
