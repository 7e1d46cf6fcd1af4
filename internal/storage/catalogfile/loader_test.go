package catalogfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trip_planner/internal/domain"
	"trip_planner/internal/storage/catalogfile"
)

const lisbon = `
destinations:
  - name: Lisbon
    activities: [Tram 28, Belem Tower]
    restaurants: [Time Out Market]
  - name: Porto
    activities:
      - Ribeira
    restaurants:
      - Majestic
      - Cantinho do Avillez
`

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.yaml")
	if err := os.WriteFile(path, []byte(lisbon), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := catalogfile.Load(path)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if names := c.Names(); len(names) != 2 || names[0] != "Lisbon" || names[1] != "Porto" {
		t.Fatalf("names: %v", names)
	}
	d, ok := c.Lookup("Porto")
	if !ok || len(d.Restaurants) != 2 || d.Restaurants[0] != "Majestic" {
		t.Fatalf("porto: %+v", d)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalogfile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"unknown field": "destinations:\n  - name: X\n    activities: [a]\n    restaurants: [r]\n    hotels: [h]\n",
		"no items":      "destinations:\n  - name: X\n    activities: []\n    restaurants: [r]\n",
		"duplicate":     "destinations:\n  - {name: X, activities: [a], restaurants: [r]}\n  - {name: X, activities: [b], restaurants: [s]}\n",
		"not yaml":      "destinations: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalogfile.Parse(strings.NewReader(doc))
			if !errors.Is(err, domain.ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}
