// Package state holds the gallery's view state.
//
// # Overview
//
// The Store tracks exactly one ViewState, a tagged variant with three phases:
//
//	Loading ──Resolve(ok)──> Ready{Images}
//	   │
//	   └──Resolve(err)─────> Failed{Message}
//
// The only way back to Loading is Begin, which starts a new fetch generation.
//
// # Generations
//
// Every fetch is tagged with the Generation returned by Begin. Resolve applies
// a result only when its generation is still current and the store has not
// been closed, so a reload issued while a request is in flight, or a result
// that lands after the UI has shut down, cannot overwrite newer state:
//
//	gen := store.Begin()
//	images, err := client.FetchImages(ctx)
//	if !store.Resolve(gen, images, err) {
//		// stale result, dropped
//	}
//
// # Concurrency Model
//
// The Bubble Tea event loop is the only writer in practice, but Close may be
// called from the signal-handling goroutine during shutdown, so all access goes
// through a sync.RWMutex. Snapshot returns copies; callers never share the
// stored image slice.
package state
