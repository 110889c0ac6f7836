// Package repositories implements the persistence backends behind [tasks.Store].
//
// Both backends persist the whole store as one [models.Snapshot] and fully overwrite it on every save.
//
// Key Implementations:
//   - [JSONStore] : Default backend. One indented JSON document, replaced atomically through a temp file and rename
//   - [SQLiteStore] : Alternate backend. Lists, tasks and next-id counters in SQLite tables created by the embedded migrations
//
// Ordering is part of the stored data. The JSON document keeps slice order, and SQLite rows carry a position column
// that Load sorts by.
package repositories
