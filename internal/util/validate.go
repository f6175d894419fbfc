package util

import (
	"fmt"
	"strings"
)

// MinWidth is the narrowest legend that still fits a swatch and a label.
const MinWidth = 20

// OutputFormats lists the formats accepted by --output and the "output"
// config key.
var OutputFormats = []string{"table", "json"}

// ValidateOutputFormat checks that format is one of OutputFormats.
func ValidateOutputFormat(format string) error {
	for _, f := range OutputFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (valid: %s)", format, strings.Join(OutputFormats, ", "))
}

// ValidateWidth checks that a render width leaves room for the legend.
func ValidateWidth(width int) error {
	if width < MinWidth {
		return fmt.Errorf("width must be at least %d, got %d", MinWidth, width)
	}
	return nil
}
