package legend

import "errors"

// Sentinel errors for legend lookups. Callers wrap or match these with
// errors.Is so a record category added upstream without a legend entry
// surfaces as an error instead of a silently defaulted swatch.
//
//	if errors.Is(err, legend.ErrUnknownKey) { ... }
var (
	// ErrUnknownKey indicates a lookup with a key outside the closed
	// set of record categories.
	ErrUnknownKey = errors.New("unknown category")
)
