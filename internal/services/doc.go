// Package services implements the HTTP client for the Caddyy backend.
//
// # Client Interface
//
// All backend interaction goes through the [Client] interface so workflow code
// in tasks and the TUI can be exercised against mocks. [CaddyyService] is the
// production implementation, built on [APIService] for raw request plumbing.
//
// # API Mappings
//
// Endpoint methods mirror the backend routers one to one:
//   - /api/config/{tv,movies}/library-paths : configured scan roots
//   - /api/import/... : import session lifecycle (start, status, preview,
//     manual-match, execute, cancel, rename-operations, sessions)
//   - /api/libraries/... : library and folder CRUD plus usage
//   - /api/collection/tv/... : collection listing, monitoring, removal
//   - /api/settings/ : global settings, including the auto-match threshold
//   - /api/search/... and /api/filesystem/... : metadata search and path browsing
//
// Responses decode into the structs in [models]; failures wrap
// [shared.ErrAPIRequest] (transport) or carry the backend status code and body
// (non-2xx), so callers can surface them without retry logic.
package services
