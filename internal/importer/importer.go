package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"mediavault/internal/config"
	"mediavault/internal/event"
	"mediavault/internal/eventstore"
	"mediavault/internal/faults"
	"mediavault/internal/fileutil"
	"mediavault/internal/logging"
	"mediavault/internal/vault"
)

const mib = 1024 * 1024

// Service orchestrates event creation: validate, copy the source folder into
// the vault, persist the event record. A failed copy never reaches
// persistence, so a stored event with import_success=false does not occur in
// the happy path.
type Service struct {
	cfg    *config.Config
	store  *eventstore.Store
	vault  *vault.Store
	logger *slog.Logger
}

// New constructs the import service. A nil logger disables logging.
func New(cfg *config.Config, store *eventstore.Store, vaultStore *vault.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{cfg: cfg, store: store, vault: vaultStore, logger: logger}
}

// CreateAndImport validates the request, copies sourceFolder into the vault
// under a fresh event identifier, and persists the imported event. Imports
// are serialized through a file lock; a second concurrent import fails
// immediately instead of racing the destination check.
func (s *Service) CreateAndImport(ctx context.Context, name string, eventDate time.Time, sourceFolder string) (*event.Event, error) {
	if err := validateRequest(name, sourceFolder); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	evt := event.New(name, eventDate, sourceFolder)

	lock := flock.New(s.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, faults.Wrap(faults.ErrImport, "importer", "lock", "acquire import lock", err)
	}
	if !locked {
		return nil, faults.Wrap(faults.ErrImport, "importer", "lock", "import already in progress", nil)
	}
	defer lock.Unlock()

	if err := s.checkFreeSpace(sourceFolder); err != nil {
		return nil, err
	}

	s.logger.Info("importing event",
		logging.String(logging.FieldComponent, "importer"),
		logging.String(logging.FieldEventID, evt.ID.String()),
		logging.String("name", evt.Name),
		logging.String(logging.FieldPath, sourceFolder))

	vaultPath, err := s.vault.ImportFolder(sourceFolder, evt.ID)
	if err != nil {
		return nil, err
	}

	evt.MarkAsImported(vaultPath)
	if err := s.store.Save(ctx, evt); err != nil {
		// The vault copy already succeeded; the folder stays on disk for
		// manual recovery.
		return nil, err
	}

	s.logger.Info("event imported",
		logging.String(logging.FieldComponent, "importer"),
		logging.String(logging.FieldEventID, evt.ID.String()),
		logging.String(logging.FieldPath, vaultPath))
	return evt, nil
}

func validateRequest(name, sourceFolder string) error {
	if strings.TrimSpace(name) == "" {
		return faults.Wrap(faults.ErrValidation, "importer", "validate", "event name is empty", nil)
	}
	if strings.TrimSpace(sourceFolder) == "" {
		return faults.Wrap(faults.ErrValidation, "importer", "validate", "source folder is empty", nil)
	}
	return nil
}

// checkFreeSpace refuses an import that would leave the vault filesystem
// below the configured floor. Disabled when the floor is zero.
func (s *Service) checkFreeSpace(sourceFolder string) error {
	floor := s.cfg.Import.MinFreeMiB
	if floor <= 0 {
		return nil
	}

	needed, err := fileutil.TreeSize(sourceFolder)
	if err != nil {
		return faults.Wrap(faults.ErrImport, "importer", "preflight", "measure source folder", err)
	}
	free, err := freeBytes(s.cfg.Paths.VaultDir)
	if err != nil {
		return faults.Wrap(faults.ErrImport, "importer", "preflight", "query free space", err)
	}
	if free < needed+floor*mib {
		return faults.Wrap(faults.ErrImport, "importer", "preflight",
			fmt.Sprintf("insufficient space: need %d MiB plus %d MiB floor, have %d MiB free",
				needed/mib, floor, free/mib), nil)
	}
	return nil
}
