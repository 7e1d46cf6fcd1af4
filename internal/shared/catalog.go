package shared

import "trip_planner/internal/domain"

// DefaultCatalog is the built-in set of destinations.
func DefaultCatalog() *domain.Catalog {
	return domain.MustNewCatalog(
		domain.Destination{
			Name:        "New York",
			Activities:  []string{"Statue of Liberty", "Broadway Show", "Central Park"},
			Restaurants: []string{"Joe's Pizza", "Shake Shack", "Balthazar"},
		},
		domain.Destination{
			Name:        "Paris",
			Activities:  []string{"Eiffel Tower", "Louvre Museum", "Seine River Cruise"},
			Restaurants: []string{"Le Meurice", "Cafe de Flore", "L'Astrance"},
		},
		domain.Destination{
			Name:        "Tokyo",
			Activities:  []string{"Shinjuku Gyoen", "Senso-ji Temple", "Akihabara"},
			Restaurants: []string{"Sushi Saito", "Ichiran Ramen", "Gonpachi"},
		},
	)
}
