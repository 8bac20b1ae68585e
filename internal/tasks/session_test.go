package tasks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	tu "github.com/kylejschultz/caddyy-sub000/internal/testing"
)

// scriptedClient serves a fixed sequence of statuses then repeats the last.
type scriptedClient struct {
	tu.MockClient

	mu        sync.Mutex
	statuses  []models.SessionState
	polls     int
	cancelled []string
	preview   *models.ImportPreview
}

func (s *scriptedClient) StartSession(ctx context.Context, mediaType string, paths []string) (*models.SessionStatus, error) {
	return &models.SessionStatus{SessionID: "sess-1", Status: models.SessionScanning}, nil
}

func (s *scriptedClient) SessionStatus(ctx context.Context, sessionID string) (*models.SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.polls
	if i >= len(s.statuses) {
		i = len(s.statuses) - 1
	}
	s.polls++
	return &models.SessionStatus{SessionID: sessionID, Status: s.statuses[i], Progress: float64(i) / float64(len(s.statuses))}, nil
}

func (s *scriptedClient) SessionPreview(ctx context.Context, sessionID string) (*models.ImportPreview, error) {
	if s.preview == nil {
		return &models.ImportPreview{}, nil
	}
	return s.preview, nil
}

func (s *scriptedClient) CancelSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = append(s.cancelled, sessionID)
	return nil
}

func TestSessionController_Start(t *testing.T) {
	t.Run("empty paths fail client side", func(t *testing.T) {
		called := false
		client := &tu.MockClient{
			StartSessionFunc: func(ctx context.Context, mediaType string, paths []string) (*models.SessionStatus, error) {
				called = true
				return nil, nil
			},
		}
		c := NewSessionController(client, nil, time.Millisecond)

		_, err := c.Start(context.Background(), "tv", nil)
		if !errors.Is(err, shared.ErrNoLibraryPaths) {
			t.Errorf("err = %v, want ErrNoLibraryPaths", err)
		}
		if called {
			t.Error("expected no request issued for empty paths")
		}
	})

	t.Run("starting again cancels a non-terminal session", func(t *testing.T) {
		client := &scriptedClient{statuses: []models.SessionState{models.SessionScanning}}
		c := NewSessionController(client, nil, time.Millisecond)

		if _, err := c.Start(context.Background(), "tv", []string{"/media/tv"}); err != nil {
			t.Fatalf("first start: %v", err)
		}
		if _, err := c.Start(context.Background(), "tv", []string{"/media/tv"}); err != nil {
			t.Fatalf("second start: %v", err)
		}

		client.mu.Lock()
		defer client.mu.Unlock()
		if len(client.cancelled) != 1 || client.cancelled[0] != "sess-1" {
			t.Errorf("cancelled = %v, want the previous session", client.cancelled)
		}
	})
}

func TestSessionController_Refresh(t *testing.T) {
	t.Run("without a session", func(t *testing.T) {
		c := NewSessionController(&tu.MockClient{}, nil, time.Millisecond)
		if _, err := c.Refresh(context.Background()); !errors.Is(err, shared.ErrSessionNotFound) {
			t.Errorf("err = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("fetches preview once status reaches preview", func(t *testing.T) {
		client := &scriptedClient{
			statuses: []models.SessionState{models.SessionPreview},
			preview: &models.ImportPreview{
				Matches: []models.ImportMatch{match("a", 0.9, models.StatusMatched, nil, 3)},
			},
		}
		c := NewSessionController(client, nil, time.Millisecond)

		if _, err := c.Start(context.Background(), "tv", []string{"/media/tv"}); err != nil {
			t.Fatal(err)
		}
		status, err := c.Refresh(context.Background())
		if err != nil {
			t.Fatalf("refresh: %v", err)
		}
		if status.Status != models.SessionPreview {
			t.Errorf("status = %s, want preview", status.Status)
		}
		if c.Preview() == nil || len(c.Preview().Matches) != 1 {
			t.Error("expected preview applied after refresh")
		}
	})
}

func TestSessionController_SequenceGuard(t *testing.T) {
	c := NewSessionController(&tu.MockClient{}, nil, time.Millisecond)

	early := c.takeSeq()
	late := c.takeSeq()

	if !c.applyStatus(late, &models.SessionStatus{Status: models.SessionMatching}) {
		t.Fatal("expected newer response to apply")
	}
	if c.applyStatus(early, &models.SessionStatus{Status: models.SessionScanning}) {
		t.Error("expected older response to be discarded")
	}
	if got := c.Status().Status; got != models.SessionMatching {
		t.Errorf("status = %s, want the newer matching state", got)
	}

	pEarly := c.takeSeq()
	pLate := c.takeSeq()
	newer := &models.ImportPreview{Summary: models.PreviewSummary{TotalScanned: 2}}
	if !c.applyPreview(pLate, newer) {
		t.Fatal("expected newer preview to apply")
	}
	if c.applyPreview(pEarly, &models.ImportPreview{}) {
		t.Error("expected stale preview to be discarded")
	}
	if c.Preview().Summary.TotalScanned != 2 {
		t.Error("expected the newer preview retained")
	}
}

func TestSessionController_Watch(t *testing.T) {
	client := &scriptedClient{
		statuses: []models.SessionState{models.SessionScanning, models.SessionMatching, models.SessionComplete},
	}
	c := NewSessionController(client, nil, time.Millisecond)

	if _, err := c.Start(context.Background(), "tv", []string{"/media/tv"}); err != nil {
		t.Fatal(err)
	}

	progress := make(chan ProgressUpdate, 50)
	status, err := c.Watch(context.Background(), progress)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if status == nil || !status.Status.Terminal() {
		t.Errorf("final status = %+v, want terminal", status)
	}
	if len(progress) == 0 {
		t.Error("expected progress updates emitted")
	}
}

func TestSessionController_Watch_ContextCancel(t *testing.T) {
	client := &scriptedClient{statuses: []models.SessionState{models.SessionScanning}}
	c := NewSessionController(client, nil, time.Millisecond)

	if _, err := c.Start(context.Background(), "tv", []string{"/media/tv"}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := c.Watch(ctx, nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestSessionController_ManualMatch(t *testing.T) {
	var gotIndex, gotTMDB int
	client := &scriptedClient{statuses: []models.SessionState{models.SessionPreview}}
	client.ManualMatchFunc = func(ctx context.Context, sessionID string, itemIndex, tmdbID int) error {
		gotIndex, gotTMDB = itemIndex, tmdbID
		return nil
	}
	client.preview = &models.ImportPreview{
		Matches: []models.ImportMatch{match("a", 0.9, models.StatusManual, candidate(55, "A"), 3)},
	}

	c := NewSessionController(client, nil, time.Millisecond)
	if _, err := c.Start(context.Background(), "tv", []string{"/media/tv"}); err != nil {
		t.Fatal(err)
	}

	if err := c.ManualMatch(context.Background(), 0, 55); err != nil {
		t.Fatalf("manual match: %v", err)
	}
	if gotIndex != 0 || gotTMDB != 55 {
		t.Errorf("manual match payload = (%d, %d), want (0, 55)", gotIndex, gotTMDB)
	}
	if c.Preview() == nil {
		t.Error("expected preview refetched after manual match")
	}
}

func TestSessionController_Cancel(t *testing.T) {
	t.Run("idle controller", func(t *testing.T) {
		c := NewSessionController(&tu.MockClient{}, nil, time.Millisecond)
		if err := c.Cancel(context.Background()); !errors.Is(err, shared.ErrSessionNotFound) {
			t.Errorf("err = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("active session", func(t *testing.T) {
		client := &scriptedClient{statuses: []models.SessionState{models.SessionScanning}}
		c := NewSessionController(client, nil, time.Millisecond)
		if _, err := c.Start(context.Background(), "tv", []string{"/media/tv"}); err != nil {
			t.Fatal(err)
		}
		if err := c.Cancel(context.Background()); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if c.SessionID() != "" {
			t.Error("expected controller idle after cancel")
		}
	})
}
