package tasks

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/kylejschultz/caddyy-sub000/internal/services"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	"golang.org/x/time/rate"
)

// EndpointResult records a failed endpoint fetch during an export.
type EndpointResult struct {
	Endpoint string `json:"endpoint"`
	Error    string `json:"error"`
}

// ExportResult contains a local snapshot of the backend's read endpoints.
type ExportResult struct {
	Settings   any              `json:"settings,omitempty"`
	Libraries  any              `json:"libraries,omitempty"`
	Collection any              `json:"collection,omitempty"`
	TVPaths    any              `json:"tv_paths,omitempty"`
	MoviePaths any              `json:"movie_paths,omitempty"`
	Sessions   any              `json:"sessions,omitempty"`
	Errors     []EndpointResult `json:"errors,omitempty"`
}

// CollectionExporter walks the backend's read endpoints sequentially,
// rate-limited, accumulating per-endpoint errors instead of aborting.
type CollectionExporter struct {
	client  services.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

// NewCollectionExporter creates an exporter. ratePerSecond <= 0 disables pacing.
func NewCollectionExporter(client services.Client, ratePerSecond float64, logger *log.Logger) *CollectionExporter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	var limiter *rate.Limiter
	if ratePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSecond), 1)
	}
	return &CollectionExporter{client: client, limiter: limiter, logger: logger}
}

// Export fetches settings, libraries, collection, configured paths and
// sessions. Failed endpoints land in the result's Errors list.
func (e *CollectionExporter) Export(ctx context.Context, progress chan<- ProgressUpdate) (*ExportResult, error) {
	result := &ExportResult{Errors: []EndpointResult{}}

	steps := []struct {
		endpoint string
		fetch    func() (any, error)
		assign   func(any)
	}{
		{"settings", func() (any, error) { return e.client.Settings(ctx) }, func(v any) { result.Settings = v }},
		{"libraries", func() (any, error) { return e.client.Libraries(ctx) }, func(v any) { result.Libraries = v }},
		{"collection", func() (any, error) { return e.client.Collection(ctx) }, func(v any) { result.Collection = v }},
		{"tv paths", func() (any, error) { return e.client.LibraryPaths(ctx, "tv") }, func(v any) { result.TVPaths = v }},
		{"movie paths", func() (any, error) { return e.client.LibraryPaths(ctx, "movies") }, func(v any) { result.MoviePaths = v }},
		{"sessions", func() (any, error) { return e.client.Sessions(ctx) }, func(v any) { result.Sessions = v }},
	}

	for i, step := range steps {
		if progress != nil {
			select {
			case progress <- exportUpdate(i+1, len(steps), step.endpoint):
			default:
			}
		}
		if e.limiter != nil {
			if err := e.limiter.Wait(ctx); err != nil {
				return result, err
			}
		}
		data, err := step.fetch()
		if err != nil {
			e.logger.Warn("export fetch failed", "endpoint", step.endpoint, "error", err)
			result.Errors = append(result.Errors, EndpointResult{Endpoint: step.endpoint, Error: err.Error()})
			continue
		}
		step.assign(data)
	}

	return result, nil
}
