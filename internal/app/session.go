package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"trip_planner/internal/domain"
)

// Session runs one prompt, plan, display cycle.
type Session struct {
	planner *PlanService
	prompt  domain.Prompter
	out     domain.Presenter
	rec     domain.Recorder
}

func NewSession(p *PlanService, in domain.Prompter, out domain.Presenter, rec domain.Recorder) *Session {
	return &Session{planner: p, prompt: in, out: out, rec: rec}
}

// Run returns nil only when an itinerary was shown. Problems the traveler
// caused, or that the planner reported, are shown to them first and then
// returned; IsHandled tells those apart from I/O failures.
func (s *Session) Run(ctx context.Context) error {
	prefs, err := s.collect(ctx)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			if s.rec != nil {
				s.rec.ObserveInputError(ve.Field)
			}
			log.Info().Str("field", ve.Field).Msg("input rejected")
			if werr := s.out.InvalidInput(ve.Reason); werr != nil {
				return werr
			}
		}
		return err
	}

	it, err := s.planner.Plan(ctx, prefs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownDestination):
			if werr := s.out.Notice(fmt.Sprintf("Sorry, %s is not available.", prefs.Destination)); werr != nil {
				return werr
			}
		case errors.Is(err, domain.ErrSampling):
			if werr := s.out.Notice("Error in generating itinerary: " + err.Error()); werr != nil {
				return werr
			}
		default:
			return err
		}
		if werr := s.out.Itinerary(prefs, nil); werr != nil {
			return werr
		}
		return err
	}
	return s.out.Itinerary(prefs, &it)
}

// collect asks the four questions in order, rejecting each numeric
// answer as soon as it is read.
func (s *Session) collect(ctx context.Context) (domain.Preferences, error) {
	cat := s.planner.Catalog()

	name, err := s.ask(ctx, FieldName, "Hi, what's your name? ")
	if err != nil {
		return domain.Preferences{}, err
	}
	raw, err := s.ask(ctx, FieldBudget, "What is your budget for the trip (in USD)? ")
	if err != nil {
		return domain.Preferences{}, err
	}
	budget, err := ParseBudget(raw)
	if err != nil {
		return domain.Preferences{}, err
	}
	raw, err = s.ask(ctx, FieldDuration, "How many days do you plan to travel? ")
	if err != nil {
		return domain.Preferences{}, err
	}
	days, err := ParseDuration(raw)
	if err != nil {
		return domain.Preferences{}, err
	}
	q := fmt.Sprintf("Which city would you like to visit (%s)? ", strings.Join(cat.Names(), ", "))
	raw, err = s.ask(ctx, FieldDestination, q)
	if err != nil {
		return domain.Preferences{}, err
	}
	dest, err := ResolveDestination(cat, raw)
	if err != nil {
		return domain.Preferences{}, err
	}

	return domain.Preferences{Name: name, Budget: budget, Duration: days, Destination: dest}, nil
}

func (s *Session) ask(ctx context.Context, field, question string) (string, error) {
	ans, err := s.prompt.Ask(ctx, question)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", &domain.ValidationError{
				Field:  field,
				Reason: "no answer given for " + field,
				Err:    io.ErrUnexpectedEOF,
			}
		}
		return "", fmt.Errorf("read %s: %w", field, err)
	}
	return ans, nil
}

// IsHandled reports whether err was already explained to the traveler.
func IsHandled(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrUnknownDestination) ||
		errors.Is(err, domain.ErrSampling)
}
