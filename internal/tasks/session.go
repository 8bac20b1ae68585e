package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/services"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
)

// DefaultPollInterval is the fixed interval between session status polls.
const DefaultPollInterval = 2 * time.Second

// SessionController owns the lifecycle of one import session: it starts the
// scan, polls status until terminal, and fetches the preview payload once the
// backend reaches preview or complete.
//
// Every status and preview fetch carries a sequence number taken before the
// request is issued; a response whose sequence is older than the last applied
// one is discarded, so an overlapping slow poll can never overwrite newer
// state.
type SessionController struct {
	client   services.Client
	logger   *log.Logger
	interval time.Duration

	mu             sync.Mutex
	sessionID      string
	nextSeq        uint64
	appliedStatus  uint64
	appliedPreview uint64
	status         *models.SessionStatus
	preview        *models.ImportPreview
}

// NewSessionController creates a controller polling at the given interval.
// A non-positive interval falls back to [DefaultPollInterval].
func NewSessionController(client services.Client, logger *log.Logger, interval time.Duration) *SessionController {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &SessionController{
		client:   client,
		logger:   logger,
		interval: interval,
	}
}

// SessionID returns the active session id, or "" when idle.
func (c *SessionController) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Status returns the last applied session status.
func (c *SessionController) Status() *models.SessionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Preview returns the last applied preview payload.
func (c *SessionController) Preview() *models.ImportPreview {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preview
}

// Start begins a new scan session over the given library paths. An empty path
// list fails client side without issuing a request. Any previous non-terminal
// session is cancelled server side before the new one starts.
func (c *SessionController) Start(ctx context.Context, mediaType string, libraryPaths []string) (*models.SessionStatus, error) {
	if len(libraryPaths) == 0 {
		return nil, shared.ErrNoLibraryPaths
	}

	c.mu.Lock()
	previous := c.sessionID
	previousTerminal := c.status != nil && c.status.Status.Terminal()
	c.mu.Unlock()

	if previous != "" && !previousTerminal {
		if err := c.client.CancelSession(ctx, previous); err != nil {
			c.logger.Warn("failed to cancel previous session", "session_id", previous, "error", err)
		}
	}

	status, err := c.client.StartSession(ctx, mediaType, libraryPaths)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.sessionID = status.SessionID
	c.status = status
	c.preview = nil
	c.nextSeq = 0
	c.appliedStatus = 0
	c.appliedPreview = 0
	c.mu.Unlock()

	c.logger.Info("import session started", "session_id", status.SessionID, "media_type", mediaType, "paths", len(libraryPaths))
	return status, nil
}

// Attach points the controller at an existing session without starting a scan.
func (c *SessionController) Attach(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = sessionID
	c.status = nil
	c.preview = nil
	c.nextSeq = 0
	c.appliedStatus = 0
	c.appliedPreview = 0
}

// Cancel deletes the active session server side and returns the controller to
// the idle state.
func (c *SessionController) Cancel(ctx context.Context) error {
	c.mu.Lock()
	id := c.sessionID
	c.mu.Unlock()
	if id == "" {
		return shared.ErrSessionNotFound
	}
	if err := c.client.CancelSession(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	c.sessionID = ""
	c.status = nil
	c.preview = nil
	c.mu.Unlock()
	return nil
}

func (c *SessionController) takeSeq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextSeq++
	return c.nextSeq
}

// applyStatus records a status response unless a newer one already landed.
func (c *SessionController) applyStatus(seq uint64, status *models.SessionStatus) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq <= c.appliedStatus {
		return false
	}
	c.appliedStatus = seq
	c.status = status
	return true
}

// applyPreview records a preview response unless a newer one already landed.
func (c *SessionController) applyPreview(seq uint64, preview *models.ImportPreview) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq <= c.appliedPreview {
		return false
	}
	c.appliedPreview = seq
	c.preview = preview
	return true
}

// Refresh performs a single status poll, fetching the preview as well once the
// session is in preview or complete. Stale responses are discarded and
// reported as [shared.ErrStaleResponse].
func (c *SessionController) Refresh(ctx context.Context) (*models.SessionStatus, error) {
	c.mu.Lock()
	id := c.sessionID
	c.mu.Unlock()
	if id == "" {
		return nil, shared.ErrSessionNotFound
	}

	seq := c.takeSeq()
	status, err := c.client.SessionStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.applyStatus(seq, status) {
		return nil, shared.ErrStaleResponse
	}

	if status.Status == models.SessionPreview || status.Status == models.SessionComplete {
		pseq := c.takeSeq()
		preview, err := c.client.SessionPreview(ctx, id)
		if err != nil {
			return status, fmt.Errorf("failed to fetch preview: %w", err)
		}
		if !c.applyPreview(pseq, preview) {
			c.logger.Debug("discarded stale preview", "session_id", id, "seq", pseq)
		}
	}

	return status, nil
}

// RefetchPreview re-requests the authoritative preview, e.g. after a manual
// match or a collection removal. The result is applied through the same
// sequence-guarded reducer as poll-driven fetches.
func (c *SessionController) RefetchPreview(ctx context.Context) (*models.ImportPreview, error) {
	c.mu.Lock()
	id := c.sessionID
	c.mu.Unlock()
	if id == "" {
		return nil, shared.ErrSessionNotFound
	}
	seq := c.takeSeq()
	preview, err := c.client.SessionPreview(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.applyPreview(seq, preview) {
		return c.Preview(), shared.ErrStaleResponse
	}
	return preview, nil
}

// sendProgress sends a progress update through the channel without blocking.
func (c *SessionController) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Watch polls the session at the configured interval until it reaches a
// terminal state or ctx is cancelled, emitting a progress update per applied
// status. Returns the final status.
func (c *SessionController) Watch(ctx context.Context, progress chan<- ProgressUpdate) (*models.SessionStatus, error) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		status, err := c.Refresh(ctx)
		if err == nil {
			c.sendProgress(progress, statusUpdate(status))
			if p := c.Preview(); p != nil && status.Status == models.SessionPreview {
				c.sendProgress(progress, previewUpdate(p))
			}
			if status.Status.Terminal() {
				return status, nil
			}
		} else if err != shared.ErrStaleResponse {
			c.logger.Warn("session poll failed", "session_id", c.SessionID(), "error", err)
		}

		select {
		case <-ctx.Done():
			return c.Status(), ctx.Err()
		case <-ticker.C:
		}
	}
}

// ManualMatch commits one candidate for an item, refetches the preview, and
// applies it. On success the caller should add the item to its selection.
func (c *SessionController) ManualMatch(ctx context.Context, itemIndex, tmdbID int) error {
	c.mu.Lock()
	id := c.sessionID
	c.mu.Unlock()
	if id == "" {
		return shared.ErrSessionNotFound
	}
	if err := c.client.ManualMatch(ctx, id, itemIndex, tmdbID); err != nil {
		return err
	}
	if _, err := c.RefetchPreview(ctx); err != nil && err != shared.ErrStaleResponse {
		return err
	}
	return nil
}

// CustomSearch re-requests candidates for one item from a free-text query and
// refetches the preview so the replaced candidate list is visible.
func (c *SessionController) CustomSearch(ctx context.Context, itemIndex int, query string) error {
	c.mu.Lock()
	id := c.sessionID
	c.mu.Unlock()
	if id == "" {
		return shared.ErrSessionNotFound
	}
	if err := c.client.CustomSearch(ctx, id, itemIndex, query); err != nil {
		return err
	}
	if _, err := c.RefetchPreview(ctx); err != nil && err != shared.ErrStaleResponse {
		return err
	}
	return nil
}
