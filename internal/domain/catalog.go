package domain

import (
	"fmt"
	"slices"
	"strings"
)

type Destination struct {
	Name        string
	Activities  []string
	Restaurants []string
}

// Catalog maps destination names to what can be done there. It is
// read-only after construction; accessors hand out copies.
type Catalog struct {
	order  []string
	byName map[string]Destination
}

// NewCatalog validates and freezes the given destinations. Names must be
// unique and every destination needs at least one activity and one
// restaurant, with no repeated entries in either list.
func NewCatalog(dests ...Destination) (*Catalog, error) {
	if len(dests) == 0 {
		return nil, fmt.Errorf("%w: no destinations", ErrInvalidCatalog)
	}
	c := &Catalog{
		order:  make([]string, 0, len(dests)),
		byName: make(map[string]Destination, len(dests)),
	}
	for i, d := range dests {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: destination #%d has no name", ErrInvalidCatalog, i+1)
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate destination %q", ErrInvalidCatalog, name)
		}
		if err := checkItems(name, "activities", d.Activities); err != nil {
			return nil, err
		}
		if err := checkItems(name, "restaurants", d.Restaurants); err != nil {
			return nil, err
		}
		c.order = append(c.order, name)
		c.byName[name] = Destination{
			Name:        name,
			Activities:  slices.Clone(d.Activities),
			Restaurants: slices.Clone(d.Restaurants),
		}
	}
	return c, nil
}

// MustNewCatalog is NewCatalog for compiled-in data.
func MustNewCatalog(dests ...Destination) *Catalog {
	c, err := NewCatalog(dests...)
	if err != nil {
		panic(err)
	}
	return c
}

func checkItems(dest, kind string, items []string) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: %s has no %s", ErrInvalidCatalog, dest, kind)
	}
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			return fmt.Errorf("%w: %s has a blank entry in %s", ErrInvalidCatalog, dest, kind)
		}
		if _, ok := seen[it]; ok {
			return fmt.Errorf("%w: %s lists %q twice in %s", ErrInvalidCatalog, dest, it, kind)
		}
		seen[it] = struct{}{}
	}
	return nil
}

// Lookup is an exact, case-sensitive match on the destination name.
func (c *Catalog) Lookup(name string) (Destination, bool) {
	d, ok := c.byName[name]
	if !ok {
		return Destination{}, false
	}
	return Destination{
		Name:        d.Name,
		Activities:  slices.Clone(d.Activities),
		Restaurants: slices.Clone(d.Restaurants),
	}, true
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names returns destination names in catalog order.
func (c *Catalog) Names() []string { return slices.Clone(c.order) }

func (c *Catalog) Len() int { return len(c.order) }

// Destinations returns every destination in catalog order.
func (c *Catalog) Destinations() []Destination {
	out := make([]Destination, 0, len(c.order))
	for _, n := range c.order {
		d, _ := c.Lookup(n)
		out = append(out, d)
	}
	return out
}

// ListChoices joins names for prose: "A", "A or B", "A, B, or C".
func ListChoices(names []string, conj string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " " + conj + " " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", " + conj + " " + names[len(names)-1]
}
