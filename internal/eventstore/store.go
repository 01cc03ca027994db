package eventstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"mediavault/internal/config"
	"mediavault/internal/event"
	"mediavault/internal/faults"
)

// Store manages event persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the events database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.DatabasePath())
}

// OpenPath connects to the events database at an explicit location. The
// caller owns directory creation.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk location of the database.
func (s *Store) Path() string {
	return s.path
}

// Save upserts an event by identifier. Inserts assign CreatedAt; updates
// touch only name, vault_folder_path, and import_success, so the identifier,
// original source path, event date, and creation time are never rewritten.
// Safe to call repeatedly for the same event.
func (s *Store) Save(ctx context.Context, evt *event.Event) error {
	if evt == nil {
		return faults.Wrap(faults.ErrPersistence, "eventstore", "save", "event is nil", nil)
	}
	if evt.CreatedAt.IsZero() {
		evt.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO events (
            id, name, event_date, imported_folder_path,
            vault_folder_path, import_success, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (id) DO UPDATE SET
            name = excluded.name,
            vault_folder_path = excluded.vault_folder_path,
            import_success = excluded.import_success`,
		evt.ID.String(),
		evt.Name,
		evt.EventDate.UTC().Format(time.RFC3339Nano),
		evt.ImportedFolderPath,
		evt.VaultFolderPath,
		boolToInt(evt.ImportSuccess),
		evt.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return faults.Wrap(faults.ErrPersistence, "eventstore", "save", "upsert event", err)
	}
	return nil
}

// GetByID fetches an event by identifier. Returns (nil, nil) when absent.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id.String())
	evt, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, faults.Wrap(faults.ErrPersistence, "eventstore", "get by id", "", err)
	}
	return evt, nil
}

// GetAll returns up to limit events ordered by event date descending, most
// recent occasion first regardless of insertion order. A non-positive limit
// falls back to 100.
func (s *Store) GetAll(ctx context.Context, limit int) ([]*event.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY event_date DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, faults.Wrap(faults.ErrPersistence, "eventstore", "get all", "query events", err)
	}
	defer rows.Close()

	var events []*event.Event
	for rows.Next() {
		evt, err := scanEvent(rows)
		if err != nil {
			return nil, faults.Wrap(faults.ErrPersistence, "eventstore", "get all", "scan event", err)
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, faults.Wrap(faults.ErrPersistence, "eventstore", "get all", "iterate events", err)
	}
	return events, nil
}

// Count returns the total number of persisted events.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`)
	if err := row.Scan(&count); err != nil {
		return 0, faults.Wrap(faults.ErrPersistence, "eventstore", "count", "", err)
	}
	return count, nil
}

const eventColumns = "id, name, event_date, imported_folder_path, vault_folder_path, import_success, created_at"

func scanEvent(scanner interface{ Scan(dest ...any) error }) (*event.Event, error) {
	var (
		idRaw         string
		name          string
		eventDateRaw  string
		importedPath  string
		vaultPath     sql.NullString
		importSuccess sql.NullInt64
		createdRaw    sql.NullString
	)

	if err := scanner.Scan(
		&idRaw,
		&name,
		&eventDateRaw,
		&importedPath,
		&vaultPath,
		&importSuccess,
		&createdRaw,
	); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idRaw)
	if err != nil {
		return nil, fmt.Errorf("parse event id %q: %w", idRaw, err)
	}

	evt := &event.Event{
		ID:                 id,
		Name:               name,
		ImportedFolderPath: importedPath,
		VaultFolderPath:    vaultPath.String,
	}
	if importSuccess.Valid {
		evt.ImportSuccess = importSuccess.Int64 != 0
	}
	if eventDate, err := parseTimeString(eventDateRaw); err == nil {
		evt.EventDate = eventDate
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		evt.CreatedAt = created
	}
	return evt, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
