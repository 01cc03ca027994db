package importer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediavault/internal/config"
	"mediavault/internal/eventstore"
	"mediavault/internal/faults"
	"mediavault/internal/importer"
	"mediavault/internal/testsupport"
	"mediavault/internal/vault"
)

func newService(t *testing.T) (*importer.Service, *eventstore.Store, *config.Config) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	vaultStore := vault.New(cfg.Paths.VaultDir, cfg.Gallery.ImageExtensions)
	return importer.New(cfg, store, vaultStore, nil), store, cfg
}

func TestCreateAndImport(t *testing.T) {
	svc, store, _ := newService(t)

	source := filepath.Join(t.TempDir(), "wedding")
	testsupport.WriteTree(t, source, "a.jpg", "nested/b.png", "notes.txt")

	evt, err := svc.CreateAndImport(context.Background(), "Wedding", time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC), source)
	if err != nil {
		t.Fatalf("CreateAndImport: %v", err)
	}
	if !evt.ImportSuccess {
		t.Fatal("expected import_success")
	}
	if evt.VaultFolderPath == "" {
		t.Fatal("expected vault folder path")
	}
	for _, name := range []string{"a.jpg", filepath.Join("nested", "b.png"), "notes.txt"} {
		if _, err := os.Stat(filepath.Join(evt.VaultFolderPath, name)); err != nil {
			t.Fatalf("vault copy missing %s: %v", name, err)
		}
	}

	stored, err := store.GetByID(context.Background(), evt.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored == nil || !stored.ImportSuccess || stored.VaultFolderPath != evt.VaultFolderPath {
		t.Fatalf("persisted event mismatch: %+v", stored)
	}
}

func TestCreateAndImportValidation(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		source string
	}{
		{"", "/tmp/somewhere"},
		{"   ", "/tmp/somewhere"},
		{"Picnic", ""},
	}
	for _, tc := range cases {
		if _, err := svc.CreateAndImport(ctx, tc.name, time.Now(), tc.source); !errors.Is(err, faults.ErrValidation) {
			t.Errorf("name=%q source=%q: expected validation error, got %v", tc.name, tc.source, err)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("validation failures must not persist events, found %d", count)
	}
}

func TestCreateAndImportFailedCopyPersistsNothing(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	missing := filepath.Join(t.TempDir(), "absent")
	if _, err := svc.CreateAndImport(ctx, "Ghost", time.Now(), missing); !errors.Is(err, faults.ErrImport) {
		t.Fatalf("expected import error, got %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("failed copy must not persist an event, found %d", count)
	}
}

func TestCreateAndImportFreeSpaceFloor(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMinFreeMiB(1<<40)) // absurd floor
	store := testsupport.MustOpenStore(t, cfg)
	vaultStore := vault.New(cfg.Paths.VaultDir, cfg.Gallery.ImageExtensions)
	svc := importer.New(cfg, store, vaultStore, nil)

	source := filepath.Join(t.TempDir(), "big")
	testsupport.WriteTree(t, source, "a.jpg")

	if _, err := svc.CreateAndImport(context.Background(), "Big", time.Now(), source); !errors.Is(err, faults.ErrImport) {
		t.Fatalf("expected import error from space preflight, got %v", err)
	}
}
