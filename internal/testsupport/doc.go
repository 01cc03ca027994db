// Package testsupport provides shared helpers for package tests: per-test
// configuration with temp directories, store setup, file tree fixtures, and
// a JPEG builder that assembles genuine EXIF and IPTC binary segments so
// extractor tests exercise real wire formats without checked-in binaries.
package testsupport
