// Package legend holds the map legend: the fixed set of biological record
// categories and the label and background style token each one is drawn
// with.
//
// The table is built once at package initialisation and never changes.
// All accessors return copies, so it is safe for concurrent reads without
// locking.
package legend

import (
	"fmt"
	"strings"
)

// Category identifies a record type shown on the distribution map.
type Category string

const (
	Aggregate            Category = "Aggregate"
	AssertedDistribution Category = "AssertedDistribution"
	Georeference         Category = "Georeference"
	CollectionObject     Category = "CollectionObject"
	TypeMaterial         Category = "TypeMaterial"
)

// order is the canonical legend order.
var order = [...]Category{
	Aggregate,
	AssertedDistribution,
	Georeference,
	CollectionObject,
	TypeMaterial,
}

// Categories returns every category in canonical order.
func Categories() []Category {
	out := make([]Category, len(order))
	copy(out, order[:])
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := entries[c]
	return ok
}

func (c Category) String() string { return string(c) }

// ParseCategory resolves user input to a Category. Surrounding whitespace
// is ignored and the match is case-insensitive, so "georeference" and
// " Georeference " both resolve.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range order {
		if strings.EqualFold(string(c), trimmed) {
			return c, nil
		}
	}
	return "", fmt.Errorf("legend: %w %q", ErrUnknownKey, s)
}

// Names returns the category keys as plain strings, in canonical order.
func Names() []string {
	names := make([]string, len(order))
	for i, c := range order {
		names[i] = string(c)
	}
	return names
}
