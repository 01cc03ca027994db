package testsupport

import (
	"context"
	"testing"
	"time"

	"mediavault/internal/config"
	"mediavault/internal/event"
	"mediavault/internal/eventstore"
)

// MustOpenStore opens an eventstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *eventstore.Store {
	t.Helper()

	store, err := eventstore.Open(cfg)
	if err != nil {
		t.Fatalf("eventstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedEvent persists a pending event with the given name and date.
func SeedEvent(t testing.TB, store *eventstore.Store, name string, eventDate time.Time) *event.Event {
	t.Helper()

	evt := event.New(name, eventDate, "/source/"+name)
	if err := store.Save(context.Background(), evt); err != nil {
		t.Fatalf("store.Save: %v", err)
	}
	return evt
}
