// Package models defines domain entities and persistence interfaces for the Caddyy CLI.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): structs mirroring the Caddyy backend JSON
//   - [ScannedShow] / [ScannedSeason] : directories discovered by a library scan
//   - [CandidateMatch] : TMDB search hits for a scanned item
//   - [ImportMatch] : the reconciliation unit pairing a scanned item with candidates
//   - [SessionStatus] / [ImportPreview] : import session lifecycle payloads
//   - [Library] / [LibraryFolder] / [MediaDirectory] : library and disk configuration
//   - [CollectionShow] : a TV show already in the collection
//   - [Settings] : global application settings, including the auto-match threshold
//
// 2. Persistent Entities: local database-backed models
//   - [ViewPreference] : per-screen UI preferences keyed by a fixed string identifier
//
// Persistent entities implement the Model interface providing ID generation,
// timestamps and validation. The Repository[T] interface defines standard CRUD
// operations for database access.
package models
