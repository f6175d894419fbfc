// Package dataset reads the GeoJSON feature collections drawn on the
// distribution map and tallies which legend categories they contain.
//
// Each feature names its record category in properties.type. Parsing
// fails on the first feature whose type is missing or outside the legend,
// so a category added upstream without a legend entry is caught instead
// of being drawn with no swatch.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/LocoDelAssembly/taxonpages/internal/legend"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON indicates the input is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotFeatureCollection indicates the document has no features array.
	ErrNotFeatureCollection = errors.New("not a feature collection")

	// ErrMissingType indicates a feature without a string properties.type.
	ErrMissingType = errors.New("feature has no type")
)

// Summary counts the features of each category in a dataset.
type Summary struct {
	counts map[legend.Category]int
	total  int
}

// Parse reads a GeoJSON FeatureCollection and counts features per category.
func Parse(data []byte) (*Summary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("dataset: %w", ErrInvalidJSON)
	}

	features := gjson.GetBytes(data, "features")
	if !features.IsArray() {
		return nil, fmt.Errorf("dataset: %w", ErrNotFeatureCollection)
	}

	s := &Summary{counts: make(map[legend.Category]int)}

	var parseErr error
	i := 0
	features.ForEach(func(_, feature gjson.Result) bool {
		typ := feature.Get("properties.type")
		if typ.Type != gjson.String || typ.Str == "" {
			parseErr = fmt.Errorf("dataset: feature %d: %w", i, ErrMissingType)
			return false
		}

		c := legend.Category(typ.Str)
		if !c.Valid() {
			parseErr = fmt.Errorf("dataset: feature %d: %w %q", i, legend.ErrUnknownKey, typ.Str)
			return false
		}

		s.counts[c]++
		s.total++
		i++
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return s, nil
}

// LoadReader reads all of r and parses it.
func LoadReader(r io.Reader) (*Summary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: failed to read input: %w", err)
	}
	return Parse(data)
}

// Load parses the file at path. A path of "-" reads standard input.
func Load(path string) (*Summary, error) {
	if path == "-" {
		return LoadReader(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Count returns the number of features of category c.
func (s *Summary) Count(c legend.Category) int {
	if s == nil {
		return 0
	}
	return s.counts[c]
}

// Total returns the number of features in the dataset.
func (s *Summary) Total() int {
	if s == nil {
		return 0
	}
	return s.total
}

// Present returns the categories with at least one feature, in legend order.
func (s *Summary) Present() []legend.Category {
	var out []legend.Category
	for _, c := range legend.Categories() {
		if s.Count(c) > 0 {
			out = append(out, c)
		}
	}
	return out
}
