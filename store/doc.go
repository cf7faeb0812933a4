// Package store exports built day archives to SQLite for ad-hoc querying.
// The gob archive remains the canonical persisted form; the store is a
// convenience projection of the same data.
package store
