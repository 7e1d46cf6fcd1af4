package domain

// Preferences is the validated input for one planning run.
type Preferences struct {
	Name        string
	Budget      float64 // USD
	Duration    int     // days; zero or negative yields an empty itinerary
	Destination string  // always a catalog key
}

type Itinerary struct {
	Destination string
	Activities  []string
	Restaurants []string
}
