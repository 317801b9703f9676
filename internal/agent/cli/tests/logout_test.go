package tests

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/config"
)

func TestNewLogoutCmd_RemovesCredentialsFile(t *testing.T) {
	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	if err := config.Save(credsPath, config.Credentials{Token: "token-1"}); err != nil {
		t.Fatalf("save creds: %v", err)
	}

	app := &cli.App{
		CredsPath: credsPath,
		Creds:     config.Credentials{Token: "token-1"},
	}

	cmd := cli.NewLogoutCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "logged out") {
		t.Fatalf("unexpected output: %q", got)
	}

	if _, err := os.Stat(credsPath); !os.IsNotExist(err) {
		t.Fatalf("expected creds file to be removed, stat err=%v", err)
	}
	if app.Creds.Token != "" {
		t.Fatalf("expected in-memory token to be cleared, got %q", app.Creds.Token)
	}
}

func TestNewLogoutCmd_NoCredentialsFile_NoError(t *testing.T) {
	tmpDir := t.TempDir()

	app := &cli.App{
		CredsPath: filepath.Join(tmpDir, "no-such-file.json"),
	}

	cmd := cli.NewLogoutCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
