package console_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"trip_planner/internal/adapters/console"
	"trip_planner/internal/domain"
	"trip_planner/internal/shared"
)

var (
	_ domain.Prompter  = (*console.Prompter)(nil)
	_ domain.Presenter = (*console.Presenter)(nil)
)

func TestPrompter_ReadsLinesAndEchoesQuestions(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader("Ana\r\n  120.5 \nParis"), &out)
	ctx := context.Background()

	got := []string{}
	for _, q := range []string{"a? ", "b? ", "c? "} {
		ans, err := p.Ask(ctx, q)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		got = append(got, ans)
	}
	if got[0] != "Ana" || got[1] != "  120.5 " || got[2] != "Paris" {
		t.Fatalf("answers: %q", got)
	}
	if out.String() != "a? b? c? " {
		t.Fatalf("prompts: %q", out.String())
	}

	if _, err := p.Ask(ctx, "d? "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestPrompter_CanceledContext(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader("x\n"), &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Ask(ctx, "q? "); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed: %q", out.String())
	}
}

func TestPresenter_Itinerary(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPresenter(&out)
	err := p.Itinerary(
		domain.Preferences{Name: "Ana", Destination: "Paris"},
		&domain.Itinerary{
			Destination: "Paris",
			Activities:  []string{"Louvre Museum", "Eiffel Tower"},
			Restaurants: []string{"Le Meurice"},
		},
	)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := "\nHello Ana! Here is your trip itinerary to Paris:\n\n" +
		"Activities:\n- Louvre Museum\n- Eiffel Tower\n" +
		"\nRestaurants:\n- Le Meurice\n"
	if out.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestPresenter_EmptyAndMissing(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPresenter(&out)

	_ = p.Itinerary(domain.Preferences{Name: "Bo"}, &domain.Itinerary{Destination: "Tokyo"})
	want := "\nHello Bo! Here is your trip itinerary to Tokyo:\n\nActivities:\n\nRestaurants:\n"
	if out.String() != want {
		t.Fatalf("empty itinerary: %q", out.String())
	}

	out.Reset()
	_ = p.Itinerary(domain.Preferences{Name: "Bo"}, nil)
	if out.String() != "No itinerary available.\n" {
		t.Fatalf("missing itinerary: %q", out.String())
	}
}

func TestPresenter_InvalidInput(t *testing.T) {
	var out bytes.Buffer
	_ = console.NewPresenter(&out).InvalidInput("budget must be a number")
	if out.String() != "Invalid input: budget must be a number\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestPresenter_Destinations(t *testing.T) {
	var out bytes.Buffer
	if err := console.NewPresenter(&out).Destinations(shared.DefaultCatalog()); err != nil {
		t.Fatalf("err: %v", err)
	}
	want := "New York (3 activities, 3 restaurants)\n" +
		"Paris (3 activities, 3 restaurants)\n" +
		"Tokyo (3 activities, 3 restaurants)\n"
	if out.String() != want {
		t.Fatalf("got %q", out.String())
	}
}
