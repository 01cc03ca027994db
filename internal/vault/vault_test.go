package vault_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"mediavault/internal/faults"
	"mediavault/internal/testsupport"
	"mediavault/internal/vault"
)

func TestImportFolderCopiesTree(t *testing.T) {
	base := t.TempDir()
	source := filepath.Join(base, "source")
	testsupport.WriteTree(t, source, "a.jpg", "nested/b.png", "notes.txt")

	store := vault.New(filepath.Join(base, "vault"), []string{".jpg", ".png"})
	id := uuid.New()

	dest, err := store.ImportFolder(source, id)
	if err != nil {
		t.Fatalf("ImportFolder: %v", err)
	}
	if filepath.Base(dest) != id.String() {
		t.Fatalf("destination %q not named by event id", dest)
	}
	for _, name := range []string{"a.jpg", filepath.Join("nested", "b.png"), "notes.txt"} {
		if _, err := os.Stat(filepath.Join(dest, name)); err != nil {
			t.Fatalf("expected %s in vault folder: %v", name, err)
		}
	}
}

func TestImportFolderMissingSource(t *testing.T) {
	base := t.TempDir()
	store := vault.New(filepath.Join(base, "vault"), []string{".jpg"})

	_, err := store.ImportFolder(filepath.Join(base, "nope"), uuid.New())
	if !errors.Is(err, faults.ErrImport) {
		t.Fatalf("expected import error, got %v", err)
	}
}

func TestImportFolderSourceNotDirectory(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "single.jpg")
	testsupport.WriteFile(t, file, 10)

	store := vault.New(filepath.Join(base, "vault"), []string{".jpg"})
	_, err := store.ImportFolder(file, uuid.New())
	if !errors.Is(err, faults.ErrImport) {
		t.Fatalf("expected import error, got %v", err)
	}
}

func TestImportFolderDuplicateLeavesFirstCopyUntouched(t *testing.T) {
	base := t.TempDir()
	first := filepath.Join(base, "first")
	testsupport.WriteTree(t, first, "a.jpg")
	second := filepath.Join(base, "second")
	testsupport.WriteTree(t, second, "b.jpg")

	store := vault.New(filepath.Join(base, "vault"), []string{".jpg"})
	id := uuid.New()

	dest, err := store.ImportFolder(first, id)
	if err != nil {
		t.Fatalf("first import: %v", err)
	}
	if _, err := store.ImportFolder(second, id); !errors.Is(err, faults.ErrImport) {
		t.Fatalf("expected import error on duplicate, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "a.jpg")); err != nil {
		t.Fatalf("first copy disturbed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "b.jpg")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("duplicate import wrote into existing folder")
	}
}

func TestListMediaFiltersByExtension(t *testing.T) {
	base := t.TempDir()
	folder := filepath.Join(base, "event")
	testsupport.WriteTree(t, folder, "a.jpg", "B.PNG", "notes.txt", "clip.mp4")
	if err := os.Mkdir(filepath.Join(folder, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	store := vault.New(base, []string{".jpg", ".jpeg", ".png"})
	media, err := store.ListMedia(folder)
	if err != nil {
		t.Fatalf("ListMedia: %v", err)
	}
	if len(media) != 2 {
		t.Fatalf("expected 2 media files, got %d: %v", len(media), media)
	}
	for _, path := range media {
		base := filepath.Base(path)
		if base != "a.jpg" && base != "B.PNG" {
			t.Fatalf("unexpected media file %s", base)
		}
	}
}

func TestListMediaMissingPath(t *testing.T) {
	store := vault.New(t.TempDir(), []string{".jpg"})
	media, err := store.ListMedia(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("expected nil error on missing path, got %v", err)
	}
	if len(media) != 0 {
		t.Fatalf("expected empty result, got %v", media)
	}
}

func TestClassifyCountsKinds(t *testing.T) {
	base := t.TempDir()
	folder := filepath.Join(base, "event")
	testsupport.WriteTree(t, folder, "a.jpg", "b.png", "clip.mp4", "deck.pdf", "notes.txt", "weird.bin")

	store := vault.New(base, []string{".jpg", ".png"})
	summary, err := store.Classify(folder)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	want := map[string]int{"photo": 2, "video": 1, "pdf": 1, "transcript": 1, "other": 1}
	for kind, count := range want {
		if summary[kind] != count {
			t.Fatalf("kind %s: expected %d, got %d", kind, count, summary[kind])
		}
	}
}

func TestListFolders(t *testing.T) {
	base := t.TempDir()
	store := vault.New(filepath.Join(base, "vault"), []string{".jpg"})

	folders, err := store.ListFolders()
	if err != nil || len(folders) != 0 {
		t.Fatalf("expected empty result on missing root, got %v, %v", folders, err)
	}

	source := filepath.Join(base, "src")
	testsupport.WriteTree(t, source, "a.jpg")
	id := uuid.New()
	if _, err := store.ImportFolder(source, id); err != nil {
		t.Fatalf("ImportFolder: %v", err)
	}

	folders, err = store.ListFolders()
	if err != nil {
		t.Fatalf("ListFolders: %v", err)
	}
	if len(folders) != 1 || folders[0].Name != id.String() {
		t.Fatalf("unexpected folders %v", folders)
	}
	if folders[0].Size != 1 {
		t.Fatalf("expected size 1, got %d", folders[0].Size)
	}
}
