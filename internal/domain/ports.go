package domain

import "context"

// Rand is the slice of math/rand/v2.Rand the sampler needs.
type Rand interface {
	IntN(n int) int
}

type Prompter interface {
	// Ask shows question and returns the answer without its line ending.
	Ask(ctx context.Context, question string) (string, error)
}

type Presenter interface {
	// Itinerary renders a plan; a nil itinerary means none could be made.
	Itinerary(p Preferences, it *Itinerary) error
	InvalidInput(reason string) error
	Notice(msg string) error
}

type Recorder interface {
	ObservePlan(outcome string)        // ok|unknown_destination|sampling_error
	ObserveSampled(kind string, n int) // kind: activities|restaurants
	ObserveLookup(result string)       // hit|miss
	ObserveInputError(field string)
}
