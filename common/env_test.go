package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env must be ignored: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PLATFORMER_TEST_KEY=hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLATFORMER_TEST_KEY", "")
	os.Unsetenv("PLATFORMER_TEST_KEY")
	if err := LoadEnv(path); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if got := EnvString("PLATFORMER_TEST_KEY", "x"); got != "hello" {
		t.Fatalf("expected value from file, got %q", got)
	}
}

func TestEnvValues(t *testing.T) {
	t.Setenv(EnvAssets, "  ")
	if got := EnvString(EnvAssets, "def"); got != "def" {
		t.Fatalf("blank value should fall back, got %q", got)
	}

	t.Setenv(EnvSeed, "42")
	if n, err := EnvInt64(EnvSeed, 0); err != nil || n != 42 {
		t.Fatalf("expected 42, got %d err=%v", n, err)
	}
	t.Setenv(EnvSeed, "abc")
	if n, err := EnvInt64(EnvSeed, 7); err == nil || n != 7 {
		t.Fatalf("expected error and default, got %d err=%v", n, err)
	}
}
