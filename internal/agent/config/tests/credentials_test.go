package tests

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/config"
)

func TestDefaultPath_ReturnsPathInHomeDir(t *testing.T) {
	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath returned error: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir returned error: %v", err)
	}

	want := filepath.Join(home, ".notekeeper", "credentials.json")
	if p != want {
		t.Fatalf("expected %q, got %q", want, p)
	}
}

func TestLoad_FileNotExists_ReturnsEmptyCredentials(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "no-such-file.json")

	creds, err := config.Load(p)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if creds.Token != "" {
		t.Fatalf("expected empty creds, got %+v", creds)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "a", "credentials.json") // вложенная директория

	want := config.Credentials{
		Token: "token-1",
	}

	if err := config.Save(p, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := config.Load(p)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got.Token != want.Token {
		t.Fatalf("expected Token=%q, got %q", want.Token, got.Token)
	}

	// проверим права файла только на linux, на винде он гарантирует эти права.
	if runtime.GOOS != "windows" {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Stat returned error: %v", err)
		}
		perm := st.Mode().Perm()

		// ожидаем, что группа/остальные не имеют доступа
		if perm&0o077 != 0 {
			t.Fatalf("expected no group/other permissions, got %o", perm)
		}
	}
}

func TestLoad_BadJSON_ReturnsError(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "credentials.json")

	if err := os.WriteFile(p, []byte("{bad-json"), 0o600); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	_, err := config.Load(p)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestClear_FileNotExists_NoError(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "no-such-file.json")

	if err := config.Clear(p); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
}

func TestClear_RemovesFile(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "credentials.json")

	if err := config.Save(p, config.Credentials{Token: "token-1"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := config.Clear(p); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("expected file to be removed, stat err=%v", err)
	}
}
