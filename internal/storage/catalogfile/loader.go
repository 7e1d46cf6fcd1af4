package catalogfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"trip_planner/internal/domain"
)

// File layout:
//
//	destinations:
//	  - name: Lisbon
//	    activities: [Tram 28, Belem Tower]
//	    restaurants: [Time Out Market]
type document struct {
	Destinations []destinationDoc `yaml:"destinations"`
}

type destinationDoc struct {
	Name        string   `yaml:"name"`
	Activities  []string `yaml:"activities"`
	Restaurants []string `yaml:"restaurants"`
}

func Load(path string) (*domain.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document. Unknown keys are rejected so typos
// do not silently drop data.
func Parse(r io.Reader) (*domain.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	dests := make([]domain.Destination, 0, len(doc.Destinations))
	for _, d := range doc.Destinations {
		dests = append(dests, domain.Destination{
			Name:        d.Name,
			Activities:  d.Activities,
			Restaurants: d.Restaurants,
		})
	}
	return domain.NewCatalog(dests...)
}
