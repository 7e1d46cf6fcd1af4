package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"trip_planner/internal/domain"
)

// Answers are the raw replies collected from the traveler.
type Answers struct {
	Name        string
	Budget      string
	Duration    string
	Destination string
}

// Field names used in ValidationError and metrics.
const (
	FieldName        = "name"
	FieldBudget      = "budget"
	FieldDuration    = "duration"
	FieldDestination = "destination"
)

func ParseBudget(s string) (float64, error) {
	t := strings.TrimSpace(s)
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &domain.ValidationError{
			Field:  FieldBudget,
			Reason: fmt.Sprintf("budget must be a number, got %q", t),
		}
	}
	return f, nil
}

func ParseDuration(s string) (int, error) {
	t := strings.TrimSpace(s)
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, &domain.ValidationError{
			Field:  FieldDuration,
			Reason: fmt.Sprintf("duration must be a whole number of days, got %q", t),
		}
	}
	return n, nil
}

// ResolveDestination returns the catalog key matching s exactly, ignoring
// surrounding whitespace.
func ResolveDestination(c *domain.Catalog, s string) (string, error) {
	name := strings.TrimSpace(s)
	if !c.Has(name) {
		return "", &domain.ValidationError{
			Field:  FieldDestination,
			Reason: fmt.Sprintf("Destination not available. Please choose from %s.", domain.ListChoices(c.Names(), "or")),
			Err:    domain.ErrUnknownDestination,
		}
	}
	return name, nil
}

// ValidatePreferences turns raw answers into Preferences. The first
// rejected field is reported.
func ValidatePreferences(c *domain.Catalog, a Answers) (domain.Preferences, error) {
	budget, err := ParseBudget(a.Budget)
	if err != nil {
		return domain.Preferences{}, err
	}
	days, err := ParseDuration(a.Duration)
	if err != nil {
		return domain.Preferences{}, err
	}
	dest, err := ResolveDestination(c, a.Destination)
	if err != nil {
		return domain.Preferences{}, err
	}
	return domain.Preferences{
		Name:        a.Name,
		Budget:      budget,
		Duration:    days,
		Destination: dest,
	}, nil
}
