package console

import (
	"fmt"
	"io"
	"strings"

	"trip_planner/internal/domain"
)

// Presenter renders results as plain text.
type Presenter struct{ out io.Writer }

func NewPresenter(out io.Writer) *Presenter { return &Presenter{out: out} }

func (p *Presenter) Itinerary(prefs domain.Preferences, it *domain.Itinerary) error {
	if it == nil {
		return p.Notice("No itinerary available.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nHello %s! Here is your trip itinerary to %s:\n\n", prefs.Name, it.Destination)
	b.WriteString("Activities:\n")
	for _, a := range it.Activities {
		b.WriteString("- " + a + "\n")
	}
	b.WriteString("\nRestaurants:\n")
	for _, r := range it.Restaurants {
		b.WriteString("- " + r + "\n")
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

func (p *Presenter) InvalidInput(reason string) error {
	return p.Notice("Invalid input: " + reason)
}

func (p *Presenter) Notice(msg string) error {
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

// Destinations lists the catalog with item counts.
func (p *Presenter) Destinations(c *domain.Catalog) error {
	var b strings.Builder
	for _, d := range c.Destinations() {
		fmt.Fprintf(&b, "%s (%d activities, %d restaurants)\n", d.Name, len(d.Activities), len(d.Restaurants))
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}
