package legend

import "fmt"

// Entry is how a category appears in the legend.
type Entry struct {
	// Label is the display text next to the swatch.
	Label string `json:"label"`

	// Background is an opaque style token resolved by the styling layer
	// (e.g. "bg-map-georeference").
	Background string `json:"background"`
}

// Item pairs a category with its entry.
type Item struct {
	Category Category `json:"key"`
	Entry
}

var entries = map[Category]Entry{
	Aggregate: {
		Label:      "Aggregate (Asserted distribution & Georeference)",
		Background: "bg-map-aggregate",
	},
	AssertedDistribution: {
		Label:      "Asserted distribution",
		Background: "bg-map-asserted",
	},
	Georeference: {
		Label:      "Georeference",
		Background: "bg-map-georeference",
	},
	CollectionObject: {
		Label:      "Collection object",
		Background: "bg-map-collection-object",
	},
	TypeMaterial: {
		Label:      "Type material",
		Background: "bg-map-type-material",
	},
}

// Get returns the legend entry for c. Categories outside the known set
// return an error wrapping ErrUnknownKey; there is no fallback entry.
func Get(c Category) (Entry, error) {
	e, ok := entries[c]
	if !ok {
		return Entry{}, fmt.Errorf("legend: %w %q", ErrUnknownKey, string(c))
	}
	return e, nil
}

// Lookup is Get for a raw key. The key must match a category exactly.
func Lookup(key string) (Entry, error) {
	return Get(Category(key))
}

// All returns every category with its entry, in canonical order.
func All() []Item {
	items := make([]Item, len(order))
	for i, c := range order {
		items[i] = Item{Category: c, Entry: entries[c]}
	}
	return items
}
