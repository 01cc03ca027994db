// Package config loads, normalizes, and validates mediavault configuration.
//
// Configuration lives in a TOML file resolved from an explicit --config
// path, ~/.config/mediavault/config.toml, or ./mediavault.toml, in that
// order. Missing files fall back to repository defaults so the tool works
// out of the box. Path fields are tilde-expanded and made absolute during
// normalization; Validate rejects configurations the core cannot run with.
package config
