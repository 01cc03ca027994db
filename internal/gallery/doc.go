// Package gallery builds the read model for browsing an event's media:
// allow-listed image files paired with their extracted metadata and caption.
package gallery
