package config

import (
	"strings"
	"testing"

	"github.com/LocoDelAssembly/taxonpages/internal/config"
)

func TestGet_Output_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "output")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_Output_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{Output: "json"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "--key", "output")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if strings.TrimSpace(stdout) != "json" {
		t.Errorf("expected 'json', got: %s", stdout)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestGet_NoKeyNonInteractive_ListsAll(t *testing.T) {
	path := setupTestConfig(t)
	setTerminal(t, false)

	cfg := &config.Config{Width: 72}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "output: (not set)") {
		t.Errorf("expected unset output key, got: %s", stdout)
	}
	if !strings.Contains(stdout, "width: 72") {
		t.Errorf("expected width value, got: %s", stdout)
	}
}
