package gallery

import (
	"log/slog"

	"mediavault/internal/logging"
	"mediavault/internal/metadata"
	"mediavault/internal/vault"
)

// Item is one displayable media file: its resolved title plus the metadata
// backing it.
type Item struct {
	Title      string
	SourcePath string
	EXIF       map[string]string
	IPTC       map[string]string
}

// Browser assembles gallery items for an event's vault folder.
type Browser struct {
	vault     *vault.Store
	extractor *metadata.Extractor
	logger    *slog.Logger
}

// New constructs a Browser. A nil logger disables logging.
func New(vaultStore *vault.Store, extractor *metadata.Extractor, logger *slog.Logger) *Browser {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Browser{vault: vaultStore, extractor: extractor, logger: logger}
}

// Items lists the media under vaultPath and extracts each file's metadata.
// A missing folder yields an empty gallery; a file whose metadata fails to
// parse still appears, titled by its base name.
func (b *Browser) Items(vaultPath string) ([]Item, error) {
	media, err := b.vault.ListMedia(vaultPath)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(media))
	for _, path := range media {
		meta := b.extractor.Extract(path)
		items = append(items, Item{
			Title:      meta.Caption,
			SourcePath: path,
			EXIF:       meta.EXIF,
			IPTC:       meta.IPTC,
		})
	}
	b.logger.Debug("gallery assembled",
		logging.String(logging.FieldPath, vaultPath),
		logging.Int("items", len(items)))
	return items, nil
}
