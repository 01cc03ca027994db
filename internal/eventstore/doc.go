// Package eventstore persists event records in SQLite.
//
// Save is an idempotent upsert keyed by the event identifier: updates touch
// the mutable columns only, so provenance fields (id, source path, event
// date, created_at) survive retries unchanged. Listings order by event date
// descending because callers browse by occasion, not by insertion order.
//
// The schema is applied through embedded migrations on Open; timestamps are
// stored as RFC3339Nano UTC strings.
package eventstore
