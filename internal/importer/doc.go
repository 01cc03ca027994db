// Package importer implements the event import workflow: validation, vault
// copy, persistence, in that order, with a file lock serializing concurrent
// imports.
package importer
