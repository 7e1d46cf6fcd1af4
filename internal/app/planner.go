package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"trip_planner/internal/domain"
)

type PlanService struct {
	catalog *domain.Catalog
	rng     domain.Rand
	rec     domain.Recorder
}

// NewPlanService wires the planner. rec may be nil.
func NewPlanService(c *domain.Catalog, r domain.Rand, rec domain.Recorder) *PlanService {
	return &PlanService{catalog: c, rng: r, rec: rec}
}

func (s *PlanService) Catalog() *domain.Catalog { return s.catalog }

// Plan samples at most p.Duration activities and restaurants for the
// destination.
func (s *PlanService) Plan(ctx context.Context, p domain.Preferences) (domain.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return domain.Itinerary{}, err
	}

	dest, ok := s.catalog.Lookup(p.Destination)
	if !ok {
		s.observeLookup("miss")
		s.observePlan("unknown_destination")
		return domain.Itinerary{}, fmt.Errorf("%w: %q", domain.ErrUnknownDestination, p.Destination)
	}
	s.observeLookup("hit")

	acts, err := sampleN(s.rng, dest.Activities, clampCount(len(dest.Activities), p.Duration))
	if err != nil {
		s.observePlan("sampling_error")
		return domain.Itinerary{}, fmt.Errorf("activities for %s: %w", dest.Name, err)
	}
	rests, err := sampleN(s.rng, dest.Restaurants, clampCount(len(dest.Restaurants), p.Duration))
	if err != nil {
		s.observePlan("sampling_error")
		return domain.Itinerary{}, fmt.Errorf("restaurants for %s: %w", dest.Name, err)
	}

	if s.rec != nil {
		s.rec.ObserveSampled("activities", len(acts))
		s.rec.ObserveSampled("restaurants", len(rests))
	}
	s.observePlan("ok")

	log.Debug().
		Str("destination", dest.Name).
		Int("duration", p.Duration).
		Int("activities", len(acts)).
		Int("restaurants", len(rests)).
		Msg("itinerary planned")

	return domain.Itinerary{
		Destination: dest.Name,
		Activities:  acts,
		Restaurants: rests,
	}, nil
}

func (s *PlanService) observePlan(outcome string) {
	if s.rec != nil {
		s.rec.ObservePlan(outcome)
	}
}

func (s *PlanService) observeLookup(result string) {
	if s.rec != nil {
		s.rec.ObserveLookup(result)
	}
}
