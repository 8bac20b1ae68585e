// Package tasks implements the import reconciliation workflow and related
// long-running operations against the Caddyy backend.
//
// The core abstractions are [SessionController], which starts a scan session
// and polls its status until terminal, and [Reconciler], which projects the
// preview payload into selection state, filtered and sorted views, and the
// final import summary. [LibrarySyncer] diffs and synchronizes library folder
// lists, and [CollectionExporter] walks the read endpoints for a local dump.
//
// Operations emit progress updates via channels for non-blocking status
// reporting to CLI/UI layers.
package tasks
