package eventstore_test

import (
	"context"
	"testing"
	"time"

	"mediavault/internal/event"
	"mediavault/internal/testsupport"
)

func TestSaveAndGetByID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	evt := event.New("Birthday", time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC), "/photos/birthday")
	evt.MarkAsImported("/vault/" + evt.ID.String())
	if err := store.Save(ctx, evt); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if evt.CreatedAt.IsZero() {
		t.Fatal("expected Save to assign CreatedAt")
	}

	fetched, err := store.GetByID(ctx, evt.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected event to be found")
	}
	if fetched.Name != "Birthday" || !fetched.ImportSuccess {
		t.Fatalf("unexpected fetched event: %+v", fetched)
	}
	if !fetched.EventDate.Equal(evt.EventDate) {
		t.Fatalf("event date mismatch: got %v, want %v", fetched.EventDate, evt.EventDate)
	}
	if fetched.VaultFolderPath != evt.VaultFolderPath {
		t.Fatalf("vault path mismatch: got %q", fetched.VaultFolderPath)
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	evt := event.New("Ghost", time.Now(), "/nowhere")
	fetched, err := store.GetByID(context.Background(), evt.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched != nil {
		t.Fatalf("expected nil for missing event, got %+v", fetched)
	}
}

func TestSaveUpsertPreservesImmutableFields(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	originalDate := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	evt := event.New("First Name", originalDate, "/photos/original")
	if err := store.Save(ctx, evt); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	firstCreated := evt.CreatedAt

	// Second save carries mutated provenance fields; the store must keep the
	// originals and update only the mutable columns.
	retry := *evt
	retry.Name = "Renamed"
	retry.EventDate = originalDate.AddDate(1, 0, 0)
	retry.ImportedFolderPath = "/photos/tampered"
	retry.MarkAsImported("/vault/" + evt.ID.String())
	if err := store.Save(ctx, &retry); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	fetched, err := store.GetByID(ctx, evt.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.Name != "Renamed" {
		t.Fatalf("expected name update, got %q", fetched.Name)
	}
	if !fetched.ImportSuccess || fetched.VaultFolderPath == "" {
		t.Fatalf("expected import state update, got %+v", fetched)
	}
	if fetched.ImportedFolderPath != "/photos/original" {
		t.Fatalf("imported folder path must be immutable, got %q", fetched.ImportedFolderPath)
	}
	if !fetched.EventDate.Equal(originalDate) {
		t.Fatalf("event date must be immutable, got %v", fetched.EventDate)
	}
	if !fetched.CreatedAt.Equal(firstCreated) {
		t.Fatalf("created_at must be immutable, got %v want %v", fetched.CreatedAt, firstCreated)
	}
}

func TestGetAllOrdersByEventDateDescending(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	// Insertion order deliberately differs from occasion order.
	middle := testsupport.SeedEvent(t, store, "middle", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	oldest := testsupport.SeedEvent(t, store, "oldest", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newest := testsupport.SeedEvent(t, store, "newest", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))

	events, err := store.GetAll(ctx, 100)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	wantOrder := []string{newest.Name, middle.Name, oldest.Name}
	for i, want := range wantOrder {
		if events[i].Name != want {
			t.Fatalf("position %d: got %q, want %q", i, events[i].Name, want)
		}
	}
}

func TestGetAllHonorsLimit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		testsupport.SeedEvent(t, store, "event", base.AddDate(0, 0, i))
	}

	events, err := store.GetAll(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected limit of 2 events, got %d", len(events))
	}
}

func TestCount(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	testsupport.SeedEvent(t, store, "one", time.Now())
	testsupport.SeedEvent(t, store, "two", time.Now())

	count, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 events, got %d", count)
	}
}

func TestCheckHealth(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedEvent(t, store, "one", time.Now())

	health, err := store.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth failed: %v", err)
	}
	if !health.DatabaseExists || !health.DatabaseReadable || !health.TableExists {
		t.Fatalf("unexpected health: %+v", health)
	}
	if !health.IntegrityCheck {
		t.Fatalf("expected integrity check to pass: %+v", health)
	}
	if health.TotalEvents != 1 {
		t.Fatalf("expected 1 event, got %d", health.TotalEvents)
	}
}
