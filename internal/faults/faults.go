package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks input rejected before any I/O was attempted.
	ErrValidation = errors.New("validation error")
	// ErrImport marks a failed vault copy: missing source, source not a
	// directory, or a destination that already exists.
	ErrImport = errors.New("import error")
	// ErrPersistence marks a repository failure surfaced to the caller.
	ErrPersistence = errors.New("persistence error")
	// ErrMetadata marks a metadata parse failure. It never escapes the
	// extractor; it exists so field-level failures can be classified in logs.
	ErrMetadata = errors.New("metadata parse error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification via errors.Is. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrPersistence
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether an error should abort the current operation.
// Metadata parse errors are recoverable by contract; everything else is not.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrMetadata)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "core failure"
	}
	return strings.Join(parts, ": ")
}
