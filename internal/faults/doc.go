// Package faults defines the error taxonomy shared by the import pipeline
// and the metadata extractor.
//
// Errors are tagged with sentinel markers so callers can classify failures
// with errors.Is without parsing messages: validation errors reject bad
// input before I/O, import errors abort the vault copy, persistence errors
// surface repository failures, and metadata errors are always recovered
// inside the extractor.
package faults
