package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LocoDelAssembly/taxonpages/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "output").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set validates value and applies it to the given Config (in memory
	// only; the caller is responsible for calling Save). An empty value
	// clears the key.
	Set func(cfg *Config, value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "output",
		Description: "Output format for legend commands when --output is not specified (table, json)",
		Get:         func(cfg *Config) string { return cfg.Output },
		Set: func(cfg *Config, v string) error {
			v = util.NormalizeKey(v)
			if v != "" {
				if err := util.ValidateOutputFormat(v); err != nil {
					return err
				}
			}
			cfg.Output = v
			return nil
		},
	},
	{
		Name:        "width",
		Description: "Column width for rendered legends",
		Get: func(cfg *Config) string {
			if cfg.Width == 0 {
				return ""
			}
			return strconv.Itoa(cfg.Width)
		},
		Set: func(cfg *Config, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				cfg.Width = 0
				return nil
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("width must be an integer, got %q", v)
			}
			if err := util.ValidateWidth(n); err != nil {
				return err
			}
			cfg.Width = n
			return nil
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
