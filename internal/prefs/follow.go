package prefs

import (
	"context"

	"litedata/internal/log"
	"litedata/internal/watch"
)

// Follow reloads store whenever the file at path changes. The returned
// channel is closed once ctx is done and the watcher has stopped.
func Follow(ctx context.Context, store *Store, path string) (<-chan struct{}, error) {
	w, err := watch.New()
	if err != nil {
		return nil, err
	}
	if err := w.AddFile(path); err != nil {
		w.Stop()
		return nil, err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer w.Stop()
		events := w.FileChannel()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if err := store.Reload(); err != nil {
					log.LogWithError(err).With(log.F("file", ev.Path)).Warn("cannot reload preferences")
				}
			}
		}
	}()
	return done, nil
}
