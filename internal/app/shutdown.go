package app

import (
	"context"

	"github.com/five82/doggallery/internal/logger"
	"github.com/five82/doggallery/internal/state"
)

// watchShutdown closes store once ctx is cancelled so fetches that complete
// after a signal are discarded. It returns immediately.
func watchShutdown(ctx context.Context, store *state.Store, log *logger.Logger) {
	go func() {
		<-ctx.Done()
		if store.Closed() {
			return
		}
		store.Close()
		log.WithError(ctx.Err()).Info("shutdown requested, closing gallery")
	}()
}
