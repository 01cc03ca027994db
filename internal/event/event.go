package event

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is a user-defined occasion that a folder of media is imported under.
//
// An event is either pending (ImportSuccess false, VaultFolderPath empty) or
// imported (both set); no intermediate state is ever observable. The
// identifier, original source path, and event date are fixed at creation and
// never change afterwards.
type Event struct {
	ID                 uuid.UUID
	Name               string
	EventDate          time.Time
	ImportedFolderPath string
	VaultFolderPath    string
	ImportSuccess      bool
	CreatedAt          time.Time
}

// New constructs a pending event with a fresh identifier. EventDate records
// when the occasion happened, independent of import time.
func New(name string, eventDate time.Time, sourceFolder string) *Event {
	return &Event{
		ID:                 uuid.New(),
		Name:               strings.TrimSpace(name),
		EventDate:          eventDate,
		ImportedFolderPath: sourceFolder,
	}
}

// MarkAsImported transitions the event to its terminal imported state.
// Called exactly once, after the vault copy has succeeded.
func (e *Event) MarkAsImported(vaultPath string) {
	e.VaultFolderPath = vaultPath
	e.ImportSuccess = true
}

// ReadyForProcessing reports whether the event's media is available in the
// vault.
func (e *Event) ReadyForProcessing() bool {
	return e.ImportSuccess && e.VaultFolderPath != ""
}
