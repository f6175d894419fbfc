package config

import (
	"strings"
	"testing"
)

func TestLookup_Exists(t *testing.T) {
	spec := Lookup("output")
	if spec == nil {
		t.Fatal("expected to find key 'output', got nil")
	}
	if spec.Name != "output" {
		t.Errorf("expected Name %q, got %q", "output", spec.Name)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	spec := Lookup("  WIDTH ")
	if spec == nil {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if spec.Name != "width" {
		t.Errorf("expected Name %q, got %q", "width", spec.Name)
	}
}

func TestLookup_NotFound(t *testing.T) {
	spec := Lookup("nonexistent-key")
	if spec != nil {
		t.Errorf("expected nil for unknown key, got %+v", spec)
	}
}

func TestKeys_AllHaveGetAndSet(t *testing.T) {
	for _, k := range Keys {
		if k.Get == nil {
			t.Errorf("key %q has nil Get function", k.Name)
		}
		if k.Set == nil {
			t.Errorf("key %q has nil Set function", k.Name)
		}
		if k.Description == "" {
			t.Errorf("key %q has empty Description", k.Name)
		}
	}
}

func TestKeys_GetSetRoundtrip(t *testing.T) {
	values := map[string]string{
		"output": "json",
		"width":  "72",
	}
	for _, k := range Keys {
		value, ok := values[k.Name]
		if !ok {
			t.Fatalf("no roundtrip value for key %q", k.Name)
		}
		cfg := &Config{}
		if err := k.Set(cfg, value); err != nil {
			t.Fatalf("key %q: Set(%q) failed: %v", k.Name, value, err)
		}
		if got := k.Get(cfg); got != value {
			t.Errorf("key %q: Set then Get = %q, want %q", k.Name, got, value)
		}
	}
}

func TestKeys_SetEmptyClears(t *testing.T) {
	cfg := &Config{Output: "json", Width: 80}
	for _, k := range Keys {
		if err := k.Set(cfg, ""); err != nil {
			t.Fatalf("key %q: Set(\"\") failed: %v", k.Name, err)
		}
		if got := k.Get(cfg); got != "" {
			t.Errorf("key %q: expected cleared value, got %q", k.Name, got)
		}
	}
}

func TestKeys_SetRejectsInvalid(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantMsg string
	}{
		{"output", "yaml", "unsupported output format"},
		{"width", "wide", "must be an integer"},
		{"width", "5", "at least"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &Config{}
			err := Lookup(tt.key).Set(cfg, tt.value)
			if err == nil {
				t.Fatalf("expected error for %s=%q, got nil", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
			if *cfg != (Config{}) {
				t.Errorf("config modified on invalid value: %+v", cfg)
			}
		})
	}
}

func TestKeys_OutputNormalized(t *testing.T) {
	cfg := &Config{}
	if err := Lookup("output").Set(cfg, " JSON "); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if cfg.Output != "json" {
		t.Errorf("expected normalized %q, got %q", "json", cfg.Output)
	}
}

func TestKeyNames(t *testing.T) {
	names := KeyNames()
	if len(names) != len(Keys) {
		t.Fatalf("expected %d names, got %d", len(Keys), len(names))
	}
	for i, name := range names {
		if name != Keys[i].Name {
			t.Errorf("index %d: expected %q, got %q", i, Keys[i].Name, name)
		}
	}
}

func TestKeysHelp_ContainsAllKeys(t *testing.T) {
	help := KeysHelp()
	if !strings.Contains(help, "Available keys:") {
		t.Error("expected 'Available keys:' header in help output")
	}
	for _, k := range Keys {
		if !strings.Contains(help, k.Name) {
			t.Errorf("expected key %q in help output", k.Name)
		}
		if !strings.Contains(help, k.Description) {
			t.Errorf("expected description %q in help output", k.Description)
		}
	}
}
