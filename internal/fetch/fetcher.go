package fetch

import (
	"context"
	"log"
	"sync"

	"github.com/astroview/apod-viewer/internal/model"
)

// PictureSource fetches one picture-of-the-day record
type PictureSource interface {
	PictureOfTheDay(ctx context.Context) (model.Picture, error)
}

// Fetcher runs one asynchronous fetch per screen activation and exposes its
// lifecycle as a single observable Resource value. The observer sees the
// latest value only; intermediate values are not queued.
type Fetcher struct {
	source PictureSource

	mutex    sync.Mutex
	latest   model.Resource[model.Picture]
	started  bool
	onUpdate func(model.Resource[model.Picture])
}

// NewFetcher creates a fetcher over the given record source
func NewFetcher(source PictureSource) *Fetcher {
	return &Fetcher{
		source: source,
		latest: model.Loading[model.Picture](),
	}
}

// SetUpdateCallback sets the callback invoked on every state emission.
// The callback may run on a background goroutine; UI observers must hop to
// the UI thread themselves.
func (f *Fetcher) SetUpdateCallback(callback func(model.Resource[model.Picture])) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.onUpdate = callback
}

// Latest returns the most recently emitted state
func (f *Fetcher) Latest() model.Resource[model.Picture] {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.latest
}

// Start begins the fetch. It emits Loading immediately, then exactly one of
// Success or Error. Calling Start more than once is a no-op; there is no
// retry and no refresh.
func (f *Fetcher) Start(ctx context.Context) {
	f.mutex.Lock()
	if f.started {
		f.mutex.Unlock()
		log.Printf("Fetcher already started, ignoring")
		return
	}
	f.started = true
	f.mutex.Unlock()

	f.emit(model.Loading[model.Picture]())

	go func() {
		picture, err := f.source.PictureOfTheDay(ctx)
		if err != nil {
			log.Printf("APOD fetch failed: %v", err)
			f.emit(model.Failed[model.Picture](err))
			return
		}

		log.Printf("APOD fetch succeeded: date=%s media=%s title=%q",
			picture.Date, picture.MediaType, picture.Title)
		f.emit(model.Success(picture))
	}()
}

// emit records the latest state and notifies the observer if one is set
func (f *Fetcher) emit(state model.Resource[model.Picture]) {
	f.mutex.Lock()
	f.latest = state
	callback := f.onUpdate
	f.mutex.Unlock()

	if callback != nil {
		callback(state)
	}
}
