// Package logging wires log/slog for the application: level and format
// selection from config, duplicated output to the log directory, shared
// attribute helpers, and context plumbing so components log with a
// consistent field vocabulary.
package logging
