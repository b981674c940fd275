package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/astroview/apod-viewer/internal/model"
)

// stubSource returns a canned record or error after an optional delay
type stubSource struct {
	picture model.Picture
	err     error
	delay   time.Duration
}

func (s *stubSource) PictureOfTheDay(ctx context.Context) (model.Picture, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.picture, s.err
}

func collectStates(f *Fetcher) (<-chan model.Resource[model.Picture], func()) {
	states := make(chan model.Resource[model.Picture], 8)
	f.SetUpdateCallback(func(state model.Resource[model.Picture]) {
		states <- state
	})
	return states, func() { close(states) }
}

func waitForState(t *testing.T, states <-chan model.Resource[model.Picture], phase model.Phase) model.Resource[model.Picture] {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case state := <-states:
			if state.Phase() == phase {
				return state
			}
		case <-deadline:
			t.Fatalf("Timed out waiting for phase %s", phase)
		}
	}
}

func TestFetcher_EmitsLoadingThenSuccess(t *testing.T) {
	source := &stubSource{picture: model.Picture{Title: "Pillars of Creation", Date: "2026-08-25"}}
	fetcher := NewFetcher(source)

	states, done := collectStates(fetcher)
	defer done()

	fetcher.Start(context.Background())

	first := <-states
	if !first.IsLoading() {
		t.Errorf("Expected first emission to be Loading, got %s", first.Phase())
	}

	final := waitForState(t, states, model.PhaseSuccess)
	picture, ok := final.Value()
	if !ok {
		t.Fatal("Expected success state to carry a value")
	}
	if picture.Title != "Pillars of Creation" {
		t.Errorf("Expected title 'Pillars of Creation', got '%s'", picture.Title)
	}
}

func TestFetcher_EmitsLoadingThenError(t *testing.T) {
	cause := errors.New("network timeout")
	fetcher := NewFetcher(&stubSource{err: cause})

	states, done := collectStates(fetcher)
	defer done()

	fetcher.Start(context.Background())

	first := <-states
	if !first.IsLoading() {
		t.Errorf("Expected first emission to be Loading, got %s", first.Phase())
	}

	final := waitForState(t, states, model.PhaseError)
	if !errors.Is(final.Err(), cause) {
		t.Errorf("Expected opaque cause to be preserved, got %v", final.Err())
	}
}

func TestFetcher_StartIsOneShot(t *testing.T) {
	fetcher := NewFetcher(&stubSource{picture: model.Picture{Title: "Once"}})

	states, done := collectStates(fetcher)
	defer done()

	fetcher.Start(context.Background())
	waitForState(t, states, model.PhaseSuccess)

	// Second start must not emit anything new
	fetcher.Start(context.Background())

	select {
	case state := <-states:
		t.Errorf("Expected no further emissions, got %s", state.Phase())
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFetcher_LatestTracksLastEmission(t *testing.T) {
	fetcher := NewFetcher(&stubSource{picture: model.Picture{Title: "Latest"}})

	if !fetcher.Latest().IsLoading() {
		t.Error("Expected initial latest state to be Loading")
	}

	states, done := collectStates(fetcher)
	defer done()

	fetcher.Start(context.Background())
	waitForState(t, states, model.PhaseSuccess)

	if !fetcher.Latest().IsSuccess() {
		t.Errorf("Expected latest state to be Success, got %s", fetcher.Latest().Phase())
	}
}
