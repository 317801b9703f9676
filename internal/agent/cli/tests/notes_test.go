package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/config"
	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

func TestNewNoteListCmd_PrintsNotes(t *testing.T) {
	now := time.Now()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer token-1" {
			t.Fatalf("unexpected Authorization: %q", auth)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]sharedModels.Note{
			{ID: "id-1", Title: "groceries", Content: "milk", CreatedAt: now, UpdatedAt: now},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(tmpDir, "creds.json"),
		Creds:     config.Credentials{Token: "token-1"},
	}

	cmd := cli.NewNoteListCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "groceries") || !strings.Contains(got, "id-1") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewNoteListCmd_WithoutToken_Fails(t *testing.T) {
	app := &cli.App{
		ServerURL: "https://127.0.0.1:1",
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
	}

	cmd := cli.NewNoteListCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "notekeeper login") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// 401 от сервера сбрасывает сохранённый токен
func TestNewNoteListCmd_Unauthorized_ClearsSavedToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	if err := config.Save(credsPath, config.Credentials{Token: "stale-token"}); err != nil {
		t.Fatalf("save creds: %v", err)
	}

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     config.Credentials{Token: "stale-token"},
	}

	cmd := cli.NewNoteListCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	// локальный файл с токеном должен быть удалён
	if _, statErr := os.Stat(credsPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected creds file to be removed after 401, stat err=%v", statErr)
	}
	if app.Creds.Token != "" {
		t.Fatalf("expected in-memory token cleared, got %q", app.Creds.Token)
	}
}

func TestNewNoteCreateCmd_PrintsCreatedID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		var req sharedModels.CreateNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Title != "groceries" || req.Content != "milk" {
			t.Fatalf("unexpected request: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sharedModels.Note{ID: "id-1", Title: req.Title, Content: req.Content})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     config.Credentials{Token: "token-1"},
	}

	cmd := cli.NewNoteCreateCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--title", "groceries",
		"--content", "milk",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "created note id-1") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewNoteDeleteCmd_PrintsServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/notes/id-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "note deleted"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     config.Credentials{Token: "token-1"},
	}

	cmd := cli.NewNoteDeleteCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--id", "id-1"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "note deleted") {
		t.Fatalf("unexpected output: %q", got)
	}
}
