package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/services"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
	tu "github.com/kylejschultz/caddyy-sub000/internal/testing"
	"github.com/urfave/cli/v3"
)

func newTestRunner(client *tu.MockClient, output *bytes.Buffer) *Runner {
	logger := shared.NewLogger(&bytes.Buffer{})
	return NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Client: client,
		Logger: logger,
		Output: output,
	})
}

func runCLI(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	cmd := &cli.Command{Name: "caddyy", Commands: r.register()}
	return cmd.Run(context.Background(), append([]string{"caddyy"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			client := &tu.MockClient{}
			api := &services.APIService{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Client:     client,
				API:        api,
				HTTPClient: httpClient,
				Logger:     logger,
				Output:     output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
			if runner.client != services.Client(client) {
				t.Error("expected client to be set")
			}
			if runner.api != api {
				t.Error("expected api to be set")
			}
			if runner.controller == nil {
				t.Error("expected controller to be built")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()
		if len(commands) != 10 {
			t.Errorf("registered %d commands, want 10", len(commands))
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("writeJSON: %v", err)
			}
			if !strings.Contains(output.String(), "\"key\": \"value\"") {
				t.Errorf("output = %q", output.String())
			}
		})

		t.Run("writes compact JSON", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(output.String(), `{"key":"value"}`) {
				t.Errorf("output = %q", output.String())
			}
		})

		t.Run("handles marshal error", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
			if err := runner.writeJSON(make(chan int), true); err == nil {
				t.Error("expected marshal error")
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
			if err := runner.writeJSON("data", false); err == nil {
				t.Error("expected write error")
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limited := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limited})
			if err := runner.writeJSON("data", false); err == nil {
				t.Error("expected newline write error")
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("hello %s\n", "world"); err != nil {
			t.Fatal(err)
		}
		if output.String() != "hello world\n" {
			t.Errorf("output = %q", output.String())
		}

		runner.output = &tu.FWriter{}
		if err := runner.writePlain("x"); err == nil {
			t.Error("expected write error")
		}
	})

	t.Run("writePlainln", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlainln("line"); err != nil {
			t.Fatal(err)
		}
		if output.String() != "\nline\n" {
			t.Errorf("output = %q", output.String())
		}
	})
}

func TestCollectionRemove(t *testing.T) {
	t.Run("requires an explicit file choice", func(t *testing.T) {
		r := newTestRunner(&tu.MockClient{}, &bytes.Buffer{})
		err := runCLI(t, r, "collection", "remove", "5")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("err = %v, want ErrInvalidFlag", err)
		}
	})

	t.Run("rejects both flags", func(t *testing.T) {
		r := newTestRunner(&tu.MockClient{}, &bytes.Buffer{})
		err := runCLI(t, r, "collection", "remove", "5", "--keep-files", "--delete-files")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("err = %v, want ErrInvalidFlag", err)
		}
	})

	t.Run("keep files", func(t *testing.T) {
		var gotID int
		var gotDelete bool
		client := &tu.MockClient{
			RemoveCollectionFunc: func(ctx context.Context, id int, deleteFromDisk bool) error {
				gotID, gotDelete = id, deleteFromDisk
				return nil
			},
		}
		r := newTestRunner(client, &bytes.Buffer{})

		if err := runCLI(t, r, "collection", "remove", "5", "--keep-files"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if gotID != 5 || gotDelete {
			t.Errorf("removed (%d, delete=%v), want (5, false)", gotID, gotDelete)
		}
	})

	t.Run("delete files", func(t *testing.T) {
		var gotDelete bool
		client := &tu.MockClient{
			RemoveCollectionFunc: func(ctx context.Context, id int, deleteFromDisk bool) error {
				gotDelete = deleteFromDisk
				return nil
			},
		}
		r := newTestRunner(client, &bytes.Buffer{})

		if err := runCLI(t, r, "collection", "remove", "5", "--delete-files"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if !gotDelete {
			t.Error("expected delete_from_disk true")
		}
	})

	t.Run("non-integer id", func(t *testing.T) {
		r := newTestRunner(&tu.MockClient{}, &bytes.Buffer{})
		err := runCLI(t, r, "collection", "remove", "abc", "--keep-files")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("err = %v, want ErrInvalidArgument", err)
		}
	})
}

func TestPathsList(t *testing.T) {
	client := &tu.MockClient{
		LibraryPathsFunc: func(ctx context.Context, mediaType string) ([]models.MediaDirectory, error) {
			if mediaType != "tv" {
				t.Errorf("mediaType = %s, want tv default", mediaType)
			}
			return []models.MediaDirectory{{Name: "Main", Path: "/media/tv", Enabled: true}}, nil
		},
	}
	output := &bytes.Buffer{}
	r := newTestRunner(client, output)

	if err := runCLI(t, r, "config", "paths", "list"); err != nil {
		t.Fatalf("paths list: %v", err)
	}
	if !strings.Contains(output.String(), "/media/tv") {
		t.Errorf("output = %q", output.String())
	}
}

func TestSettingsSet(t *testing.T) {
	t.Run("threshold above one rejected", func(t *testing.T) {
		r := newTestRunner(&tu.MockClient{}, &bytes.Buffer{})
		err := runCLI(t, r, "settings", "set", "--threshold", "1.5")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("err = %v, want ErrInvalidFlag", err)
		}
	})

	t.Run("no fields rejected", func(t *testing.T) {
		r := newTestRunner(&tu.MockClient{}, &bytes.Buffer{})
		err := runCLI(t, r, "settings", "set")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("err = %v, want ErrMissingArgument", err)
		}
	})

	t.Run("valid threshold forwarded", func(t *testing.T) {
		var updates map[string]any
		client := &tu.MockClient{
			UpdateSettingsFunc: func(ctx context.Context, u map[string]any) (*models.Settings, error) {
				updates = u
				return &models.Settings{AutoMatchThreshold: 0.9}, nil
			},
		}
		r := newTestRunner(client, &bytes.Buffer{})

		if err := runCLI(t, r, "settings", "set", "--threshold", "0.9"); err != nil {
			t.Fatalf("settings set: %v", err)
		}
		if updates["auto_match_threshold"] != 0.9 {
			t.Errorf("updates = %v", updates)
		}
	})
}

func TestSearchCommand(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		r := newTestRunner(&tu.MockClient{}, &bytes.Buffer{})
		err := runCLI(t, r, "search")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("err = %v, want ErrMissingArgument", err)
		}
	})

	t.Run("renders candidates", func(t *testing.T) {
		client := &tu.MockClient{
			SearchFunc: func(ctx context.Context, query, mediaType string) ([]models.CandidateMatch, error) {
				return []models.CandidateMatch{{ID: 100, Title: "Andor"}}, nil
			},
		}
		output := &bytes.Buffer{}
		r := newTestRunner(client, output)

		if err := runCLI(t, r, "search", "andor"); err != nil {
			t.Fatalf("search: %v", err)
		}
		if !strings.Contains(output.String(), "Andor") {
			t.Errorf("output = %q", output.String())
		}
	})
}

func TestImportSessions(t *testing.T) {
	client := &tu.MockClient{
		SessionsFunc: func(ctx context.Context) ([]models.SessionInfo, error) {
			return []models.SessionInfo{{SessionID: "sess-1", MediaType: "tv", Status: models.SessionPreview}}, nil
		},
	}
	output := &bytes.Buffer{}
	r := newTestRunner(client, output)

	if err := runCLI(t, r, "import", "sessions"); err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if !strings.Contains(output.String(), "sess-1") {
		t.Errorf("output = %q", output.String())
	}
}

func TestLibraryCreate(t *testing.T) {
	t.Run("folder specs become prioritized folders", func(t *testing.T) {
		var created []models.LibraryFolder
		client := &tu.MockClient{
			CreateFolderFunc: func(ctx context.Context, libraryID int, f models.LibraryFolder) (*models.LibraryFolder, error) {
				created = append(created, f)
				out := f
				out.ID = len(created)
				return &out, nil
			},
		}
		r := newTestRunner(client, &bytes.Buffer{})

		err := runCLI(t, r, "libraries", "create", "TV",
			"--folder", "Main=/media/tv",
			"--folder", "Overflow=/mnt/tv2")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if len(created) != 2 {
			t.Fatalf("created %d folders, want 2", len(created))
		}
		if created[0].Name != "Main" || created[0].Priority != 0 {
			t.Errorf("first folder = %+v, want Main at priority 0", created[0])
		}
		if created[1].Name != "Overflow" || created[1].Priority != 1 {
			t.Errorf("second folder = %+v", created[1])
		}
	})

	t.Run("malformed folder spec", func(t *testing.T) {
		r := newTestRunner(&tu.MockClient{}, &bytes.Buffer{})
		err := runCLI(t, r, "libraries", "create", "TV", "--folder", "no-equals-sign")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("err = %v, want ErrInvalidArgument", err)
		}
	})
}

func TestFSRoots(t *testing.T) {
	t.Run("renders the reported roots", func(t *testing.T) {
		client := &tu.MockClient{
			RootsFunc: func(ctx context.Context) ([]models.FilesystemRoot, error) {
				return []models.FilesystemRoot{
					{Name: "Root (/)", Path: "/"},
					{Name: "media", Path: "/mnt/media"},
				}, nil
			},
		}
		output := &bytes.Buffer{}
		r := newTestRunner(client, output)

		if err := runCLI(t, r, "fs", "roots"); err != nil {
			t.Fatalf("fs roots: %v", err)
		}
		if !strings.Contains(output.String(), "/mnt/media") {
			t.Errorf("output = %q, want the root paths listed", output.String())
		}
	})

	t.Run("no roots reported", func(t *testing.T) {
		output := &bytes.Buffer{}
		r := newTestRunner(&tu.MockClient{}, output)

		if err := runCLI(t, r, "fs", "roots"); err != nil {
			t.Fatalf("fs roots: %v", err)
		}
		if !strings.Contains(output.String(), "No filesystem roots") {
			t.Errorf("output = %q", output.String())
		}
	})
}
