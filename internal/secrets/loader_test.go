package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "key")

	if err := os.WriteFile(file, []byte("  file-secret \n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	secret, err := Load(Source{Name: "api key", File: file, Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "file-secret" {
		t.Fatalf("expected file to take precedence, got %q", secret)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(Source{Name: "api key", File: filepath.Join(dir, "missing")}); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Load(Source{Name: "api key", File: empty})
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected an empty file error, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CV_SUMMARY_TEST_PRIMARY", "")
	t.Setenv("CV_SUMMARY_TEST_FALLBACK", " env-secret ")

	secret, err := Load(Source{
		Name: "api key",
		Env:  []string{"CV_SUMMARY_TEST_PRIMARY", "CV_SUMMARY_TEST_FALLBACK"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "env-secret" {
		t.Fatalf("expected the fallback env value, got %q", secret)
	}
}

func TestLoadEnvOrder(t *testing.T) {
	t.Setenv("CV_SUMMARY_TEST_PRIMARY", "primary")
	t.Setenv("CV_SUMMARY_TEST_FALLBACK", "fallback")

	secret, err := Load(Source{
		Name: "api key",
		Env:  []string{"CV_SUMMARY_TEST_PRIMARY", "CV_SUMMARY_TEST_FALLBACK"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "primary" {
		t.Fatalf("expected the first env name to win, got %q", secret)
	}
}

func TestLoadFromValue(t *testing.T) {
	secret, err := Load(Source{Name: "api key", Value: " inline-secret "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "inline-secret" {
		t.Fatalf("expected trimmed inline value, got %q", secret)
	}
}

func TestLoadNotConfigured(t *testing.T) {
	_, err := Load(Source{Name: "gemini api key"})
	if err == nil || !strings.Contains(err.Error(), "gemini api key is not configured") {
		t.Fatalf("expected a not-configured error, got %v", err)
	}
}
