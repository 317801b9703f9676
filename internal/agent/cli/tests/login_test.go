package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/config"
)

func TestNewLoginCmd_Success_SavesTokenAndPrintsMessage(t *testing.T) {
	// HTTPS тестовый сервер
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "test@example.com" {
			t.Fatalf("expected email test@example.com, got %q", req.Email)
		}
		if req.Password != "StrongPass123" {
			t.Fatalf("expected password StrongPass123, got %q", req.Password)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": "token-1",
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	// временный путь под креды
	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
	}

	cmd := cli.NewLoginCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{
		"--email", "test@example.com",
		"--password", "StrongPass123",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "login ok (token saved)") {
		t.Fatalf("unexpected output: %q", got)
	}

	// проверим, что токен реально сохранился в файл
	loaded, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if loaded.Token != "token-1" {
		t.Fatalf("expected Token=token-1, got %q", loaded.Token)
	}
}

func TestNewLoginCmd_InvalidCredentials_ReturnsServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(tmpDir, "creds.json"),
	}

	cmd := cli.NewLoginCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--email", "test@example.com",
		"--password", "WrongPass123",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid credentials") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Пароль читается из STDIN при --password-stdin
func TestNewLoginCmd_PasswordFromStdin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "FromStdin123" {
			t.Fatalf("expected password FromStdin123, got %q", req.Password)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": "token-1"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(tmpDir, "creds.json"),
	}

	cmd := cli.NewLoginCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("FromStdin123\n"))
	cmd.SetArgs([]string{
		"--email", "test@example.com",
		"--password-stdin",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
