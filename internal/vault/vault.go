package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"mediavault/internal/event"
	"mediavault/internal/faults"
	"mediavault/internal/fileutil"
)

// Store manages the content vault: one folder per imported event, named by
// the event identifier so renames never move storage and no two events can
// collide.
type Store struct {
	root       string
	extensions map[string]struct{}
}

// New constructs a vault store rooted at root. Extensions is the image
// allow-list used by ListMedia, lowercase with leading dots.
func New(root string, extensions []string) *Store {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return &Store{root: root, extensions: set}
}

// Root returns the vault base directory.
func (s *Store) Root() string {
	return s.root
}

// FolderFor returns the vault path an event's media lives under.
func (s *Store) FolderFor(id uuid.UUID) string {
	return filepath.Join(s.root, id.String())
}

// ImportFolder recursively copies source into the vault folder derived from
// the event identifier and returns the absolute destination path. It fails
// when the source is missing or not a directory, and when the destination
// already exists; the destination create is atomic and doubles as the
// serialization point for concurrent imports of the same identifier. A copy
// interrupted midway leaves the partial destination in place for manual
// recovery.
func (s *Store) ImportFolder(source string, id uuid.UUID) (string, error) {
	info, err := os.Stat(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", faults.Wrap(faults.ErrImport, "vault", "import folder", fmt.Sprintf("source %q does not exist", source), nil)
		}
		return "", faults.Wrap(faults.ErrImport, "vault", "import folder", "stat source", err)
	}
	if !info.IsDir() {
		return "", faults.Wrap(faults.ErrImport, "vault", "import folder", fmt.Sprintf("source %q is not a directory", source), nil)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", faults.Wrap(faults.ErrImport, "vault", "import folder", "create vault root", err)
	}

	dest := s.FolderFor(id)
	if err := fileutil.CopyTree(source, dest); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", faults.Wrap(faults.ErrImport, "vault", "import folder", fmt.Sprintf("destination %q already exists", dest), nil)
		}
		return "", faults.Wrap(faults.ErrImport, "vault", "import folder", "copy tree", err)
	}

	abs, err := filepath.Abs(dest)
	if err != nil {
		return dest, nil
	}
	return abs, nil
}

// DirInfo describes one event folder inside the vault.
type DirInfo struct {
	Name    string
	Path    string
	ModTime time.Time
	Size    int64
}

// ListFolders enumerates the event folders directly under the vault root,
// newest first. A missing root yields an empty result.
func (s *Store) ListFolders() ([]DirInfo, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, faults.Wrap(faults.ErrImport, "vault", "list folders", "read vault root", err)
	}

	var folders []DirInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(s.root, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}
		size, err := fileutil.TreeSize(path)
		if err != nil {
			size = 0
		}
		folders = append(folders, DirInfo{
			Name:    entry.Name(),
			Path:    path,
			ModTime: info.ModTime(),
			Size:    size,
		})
	}
	sort.Slice(folders, func(i, j int) bool {
		return folders[i].ModTime.After(folders[j].ModTime)
	})
	return folders, nil
}

// ListMedia returns every file directly under vaultPath whose extension is
// in the image allow-list, case-insensitive. A missing path yields an empty
// result, never an error: browsing a not-yet-imported or externally-deleted
// event must degrade gracefully.
func (s *Store) ListMedia(vaultPath string) ([]string, error) {
	entries, err := os.ReadDir(vaultPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, faults.Wrap(faults.ErrImport, "vault", "list media", "read vault folder", err)
	}

	var media []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := s.extensions[ext]; !ok {
			continue
		}
		media = append(media, filepath.Join(vaultPath, entry.Name()))
	}
	return media, nil
}

// Classify counts the files directly under vaultPath by media kind. Files
// outside the known kinds are tallied under "other". A missing path yields
// an empty summary.
func (s *Store) Classify(vaultPath string) (map[string]int, error) {
	entries, err := os.ReadDir(vaultPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]int{}, nil
		}
		return nil, faults.Wrap(faults.ErrImport, "vault", "classify", "read vault folder", err)
	}

	summary := make(map[string]int)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		kind, ok := event.KindForPath(entry.Name())
		if !ok {
			summary["other"]++
			continue
		}
		summary[string(kind)]++
	}
	return summary, nil
}
