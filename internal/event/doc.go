// Package event defines the Event entity and the media kind tagged union.
//
// Events own their media by vault folder containment rather than by a loaded
// collection; the relationship is resolved by directory enumeration at
// browse time.
package event
