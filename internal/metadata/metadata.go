package metadata

import (
	"log/slog"
	"path/filepath"

	"mediavault/internal/logging"
)

// Metadata is the normalized result of extracting a single file. EXIF and
// IPTC are keyed by display name; Caption is derived from the EXIF fields or
// falls back to the file's base name.
type Metadata struct {
	EXIF    map[string]string
	IPTC    map[string]string
	Caption string
}

// Extractor reads embedded metadata from media files.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor constructs an Extractor. A nil logger disables logging.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Extractor{logger: logger}
}

// Extract parses the EXIF and IPTC blocks of the file at path. It never
// returns an error: missing files, unsupported containers, and corrupt
// metadata all degrade to empty maps, and the two blocks are parsed
// independently so one failing does not affect the other.
func (e *Extractor) Extract(path string) Metadata {
	meta := Metadata{
		EXIF: map[string]string{},
		IPTC: map[string]string{},
	}

	if fields, err := extractEXIF(path); err != nil {
		e.logger.Debug("exif parse failed",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
	} else {
		meta.EXIF = fields
	}

	if fields, err := extractIPTC(path); err != nil {
		e.logger.Debug("iptc parse failed",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
	} else {
		meta.IPTC = fields
	}

	meta.Caption = buildCaption(meta.EXIF, filepath.Base(path))
	return meta
}
