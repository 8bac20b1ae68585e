// Package repositories provides persistence layer implementations for local
// models.
//
// The only durable client-side state is [models.ViewPreference]: per-screen
// UI preferences (column visibility, default filter and sort) keyed by a
// fixed screen identifier. Everything else the CLI shows is owned by the
// backend and fetched fresh.
package repositories
