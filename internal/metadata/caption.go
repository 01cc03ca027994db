package metadata

import (
	"fmt"
	"strings"
)

// captionFields lists the EXIF display names that contribute to the caption,
// in priority order.
var captionFields = []string{"Title", "Subject", "Rating", "Tags", "Comments"}

// buildCaption concatenates the present caption fields as "Name: value"
// lines. With none present the caption is the file's base name.
func buildCaption(exifFields map[string]string, basename string) string {
	var parts []string
	for _, field := range captionFields {
		if value, ok := exifFields[field]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", field, value))
		}
	}
	if len(parts) == 0 {
		return basename
	}
	return strings.Join(parts, "\n")
}
