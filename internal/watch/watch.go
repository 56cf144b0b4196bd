// Package watch re-renders domains when their data directories change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
)

// Handler is called once per changed domain after the debounce period.
type Handler func(ctx context.Context, domain types.Domain)

// Watcher watches the data directory of every domain.
type Watcher struct {
	fs       *fsnotify.Watcher
	dirs     map[string]types.Domain
	debounce time.Duration
	logger   *zap.Logger
}

// New starts watching dirs. Every directory must exist.
func New(dirs map[types.Domain]string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fs:       fsw,
		dirs:     make(map[string]types.Domain, len(dirs)),
		debounce: debounce,
		logger:   logger,
	}

	for domain, dir := range dirs {
		clean := filepath.Clean(dir)
		if err := fsw.Add(clean); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", clean, err)
		}
		w.dirs[clean] = domain
		logger.Debug("Watching", zap.String("domain", string(domain)), zap.String("dir", clean))
	}

	return w, nil
}

// Run blocks until ctx is done, calling handle for domains whose data changed.
// The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	defer func() {
		if err := w.fs.Close(); err != nil {
			w.logger.Warn("Failed to close watcher", zap.Error(err))
		}
	}()

	pending := make(map[types.Domain]struct{})
	// fire is nil while nothing is pending.
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			domain, relevant := w.classify(event)
			if !relevant {
				continue
			}
			w.logger.Debug("Change detected", zap.String("domain", string(domain)), zap.String("event", event.String()))
			pending[domain] = struct{}{}
			fire = time.After(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			for _, domain := range types.Domains() {
				if _, ok := pending[domain]; ok {
					handle(ctx, domain)
				}
			}
			clear(pending)
		}
	}
}

// classify maps an event to the domain owning the changed file.
// Chmod-only events are ignored.
func (w *Watcher) classify(event fsnotify.Event) (types.Domain, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	domain, ok := w.dirs[filepath.Dir(event.Name)]
	return domain, ok
}
