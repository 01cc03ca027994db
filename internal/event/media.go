package event

import (
	"path/filepath"
	"strings"
)

// Kind classifies a vault file by media type. Kinds are type tags only;
// nothing beyond photos is ever parsed.
type Kind string

const (
	KindPhoto      Kind = "photo"
	KindVideo      Kind = "video"
	KindPDF        Kind = "pdf"
	KindTranscript Kind = "transcript"
)

var kindByExtension = map[string]Kind{
	".jpg":  KindPhoto,
	".jpeg": KindPhoto,
	".png":  KindPhoto,
	".mp4":  KindVideo,
	".mov":  KindVideo,
	".mkv":  KindVideo,
	".avi":  KindVideo,
	".pdf":  KindPDF,
	".txt":  KindTranscript,
	".md":   KindTranscript,
	".srt":  KindTranscript,
}

// KindForPath classifies a file by extension, case-insensitive. The second
// return value is false for files outside the known media kinds.
func KindForPath(path string) (Kind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	kind, ok := kindByExtension[ext]
	return kind, ok
}
