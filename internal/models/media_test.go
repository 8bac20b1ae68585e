package models

import "testing"

func TestMatchStatus_Canonical(t *testing.T) {
	tests := []struct {
		in   MatchStatus
		want MatchStatus
	}{
		{StatusPending, StatusPending},
		{StatusMatched, StatusMatched},
		{StatusManual, StatusManual},
		{StatusSkipped, StatusSkipped},
		{StatusAlreadyInCollection, StatusAlreadyInCollection},
		{"needs_review", StatusManual},
		{"duplicate", StatusAlreadyInCollection},
		{"existing", StatusAlreadyInCollection},
		{"garbage", StatusPending},
		{"", StatusPending},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := tt.in.Canonical(); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatchStatus_Selectable(t *testing.T) {
	tests := []struct {
		in   MatchStatus
		want bool
	}{
		{StatusPending, true},
		{StatusMatched, true},
		{StatusManual, true},
		{StatusSkipped, false},
		{StatusAlreadyInCollection, false},
		{"duplicate", false},
		{"existing", false},
		{"needs_review", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := tt.in.Selectable(); got != tt.want {
				t.Errorf("Selectable(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSessionState_Terminal(t *testing.T) {
	terminal := map[SessionState]bool{
		SessionScanning:  false,
		SessionMatching:  false,
		SessionPreview:   false,
		SessionImporting: false,
		SessionComplete:  true,
		SessionError:     true,
	}

	for state, want := range terminal {
		if got := state.Terminal(); got != want {
			t.Errorf("Terminal(%s) = %v, want %v", state, got, want)
		}
	}
}

func TestLibrary_PrimaryFolder(t *testing.T) {
	t.Run("lowest priority enabled folder wins", func(t *testing.T) {
		lib := Library{Folders: []LibraryFolder{
			{ID: 1, Priority: 2, Enabled: true},
			{ID: 2, Priority: 0, Enabled: false},
			{ID: 3, Priority: 1, Enabled: true},
		}}
		primary := lib.PrimaryFolder()
		if primary == nil || primary.ID != 3 {
			t.Errorf("primary = %+v, want folder 3", primary)
		}
	})

	t.Run("no enabled folders", func(t *testing.T) {
		lib := Library{Folders: []LibraryFolder{{ID: 1, Enabled: false}}}
		if lib.PrimaryFolder() != nil {
			t.Error("expected nil for a library with no enabled folders")
		}
	})

	t.Run("empty library", func(t *testing.T) {
		if (Library{}).PrimaryFolder() != nil {
			t.Error("expected nil for an empty library")
		}
	})
}
