package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// API and backend errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrSessionNotFound    = fmt.Errorf("import session not found")
	ErrSessionNotReady    = fmt.Errorf("import session not ready")
	ErrLibraryNotFound    = fmt.Errorf("library not found")
	ErrItemNotFound       = fmt.Errorf("collection item not found")

	// Workflow errors
	ErrNoLibraryPaths  = fmt.Errorf("no library paths selected")
	ErrNothingSelected = fmt.Errorf("no items selected for import")
	ErrStaleResponse   = fmt.Errorf("stale response discarded")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
