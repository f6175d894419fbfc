package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LocoDelAssembly/taxonpages/internal/legend"

	"github.com/google/go-cmp/cmp"
)

const sample = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [-88.2, 40.1]}, "properties": {"type": "Georeference"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [-87.6, 41.8]}, "properties": {"type": "Georeference"}},
    {"type": "Feature", "geometry": null, "properties": {"type": "TypeMaterial"}},
    {"type": "Feature", "geometry": null, "properties": {"type": "AssertedDistribution"}}
  ]
}`

func TestParse_CountsCategories(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Total() != 4 {
		t.Errorf("Total() = %d, want 4", s.Total())
	}
	if got := s.Count(legend.Georeference); got != 2 {
		t.Errorf("Count(Georeference) = %d, want 2", got)
	}
	if got := s.Count(legend.CollectionObject); got != 0 {
		t.Errorf("Count(CollectionObject) = %d, want 0", got)
	}
}

func TestParse_PresentInLegendOrder(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []legend.Category{legend.AssertedDistribution, legend.Georeference, legend.TypeMaterial}
	if diff := cmp.Diff(want, s.Present()); diff != "" {
		t.Errorf("Present() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyCollection(t *testing.T) {
	s, err := Parse([]byte(`{"type":"FeatureCollection","features":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total() != 0 {
		t.Errorf("Total() = %d, want 0", s.Total())
	}
	if len(s.Present()) != 0 {
		t.Errorf("Present() = %v, want empty", s.Present())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{"invalid json", `{"features": [`, ErrInvalidJSON, "invalid JSON"},
		{"no features", `{"type":"Feature"}`, ErrNotFeatureCollection, "not a feature collection"},
		{"features not array", `{"features": {}}`, ErrNotFeatureCollection, "not a feature collection"},
		{"missing type", `{"features":[{"properties":{}}]}`, ErrMissingType, "feature 0"},
		{"numeric type", `{"features":[{"properties":{"type":3}}]}`, ErrMissingType, "feature 0"},
		{
			"unknown category",
			`{"features":[{"properties":{"type":"Georeference"}},{"properties":{"type":"Otu"}}]}`,
			legend.ErrUnknownKey,
			`feature 1: unknown category "Otu"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if s != nil {
				t.Errorf("expected nil summary on error, got %+v", s)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otu.geojson")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Total() != 4 {
		t.Errorf("Total() = %d, want 4", s.Total())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.geojson"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadReader(t *testing.T) {
	s, err := LoadReader(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if s.Count(legend.TypeMaterial) != 1 {
		t.Errorf("Count(TypeMaterial) = %d, want 1", s.Count(legend.TypeMaterial))
	}
}

func TestSummary_NilSafe(t *testing.T) {
	var s *Summary
	if s.Total() != 0 || s.Count(legend.Aggregate) != 0 || len(s.Present()) != 0 {
		t.Error("nil Summary should report zero counts")
	}
}
