// Package jsondb provides a generic, single-file, JSON-backed record store.
//
// # Overview
//
// The package centers around [Store], a generic container that keeps every
// record of one entity type in memory and persists the whole set as a single
// JSON array. Records must implement [Entity]: an integer identifier plus a
// [Cloner] so that reads never hand out references to internal state.
//
// # Results
//
// Every operation except [Open] returns a [Result]. Expected failures (unknown
// identifier, nil entity, I/O failure on save) are reported through the
// Result's Success flag and Err field, never as a returned Go error. [Open] is
// the exception: when the backing file is malformed there is no store to carry
// a Result, so it returns an error matching [ErrMalformedStore].
//
// # Persistence
//
// The file is read once by [Open] and written only by [Store.Save], which
// replaces it atomically (temp file + rename). Identifiers are assigned as one
// plus the largest identifier the store has loaded or assigned, so a Store
// never reuses an identifier after a delete. Only the records are persisted:
// a new Store resumes from the largest identifier present in the file.
//
// # Concurrency
//
// A Store is not safe for concurrent use. It assumes one goroutine and one
// process owning the file.
package jsondb
