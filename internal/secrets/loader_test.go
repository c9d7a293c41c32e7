package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  s3cret\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := Load(Source{Name: "api key", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "s3cret" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadFilePrecedesValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("from-file"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := Load(Source{File: path, Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RESUMATCH_TEST_SECRET", "from-env")

	got, err := Load(Source{Name: "test secret", Env: "RESUMATCH_TEST_SECRET"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(Source{Name: "absent"}); err == nil {
		t.Fatal("expected error for unconfigured secret")
	}

	if _, err := Load(Source{Name: "absent", File: "/nonexistent/secret"}); err == nil {
		t.Fatal("expected error for missing file")
	}
}
