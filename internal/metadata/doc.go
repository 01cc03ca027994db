// Package metadata parses embedded EXIF and IPTC metadata from media files
// into a normalized field map plus a display caption. Extraction never fails
// the caller: metadata is an enrichment, and a corrupt or metadata-free file
// degrades to an empty map with the file's base name as caption.
package metadata
