// Package catalog persists reference names in SQLite.
//
// Entries are scraped elsewhere and imported as JSON; each carries a kind
// (artist, group, album, track), a name, and its alternate versions stored as
// child rows. The store applies WAL pragmas, verifies an embedded schema
// version on open, and retries writes that hit SQLITE_BUSY. WithLock provides
// an advisory file lock so concurrent imports do not interleave.
package catalog
