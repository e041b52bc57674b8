// Package feed loads the scheme feed from disk and keeps an in-memory
// snapshot that survives bad rewrites: a reload that fails to parse leaves
// the previous snapshot serving.
package feed

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/lohum/schemetrack/internal/domain/scheme"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/logging"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/metrics"
	"github.com/lohum/schemetrack/pkg/errors"
)

// Store owns the current feed snapshot.
type Store struct {
	path    string
	logger  logging.Logger
	metrics *metrics.Metrics

	mu       sync.RWMutex
	snapshot *scheme.Feed
}

// NewStore creates a Store for the given JSON file. Nothing is loaded until
// Load is called.
func NewStore(path string, logger logging.Logger, m *metrics.Metrics) *Store {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Store{path: path, logger: logger.Named("feed"), metrics: m}
}

// Load reads and parses the feed file, replacing the current snapshot on
// success. On any failure the previous snapshot, if any, stays in place.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.recordReload(false)
		return errors.Wrap(err, errors.CodeFeedUnavailable, "read feed file")
	}

	var feed scheme.Feed
	if err := json.Unmarshal(raw, &feed); err != nil {
		s.recordReload(false)
		return errors.Wrap(err, errors.CodeFeedUnavailable, "parse feed file")
	}

	s.mu.Lock()
	s.snapshot = &feed
	s.mu.Unlock()

	s.recordReload(true)
	s.logger.Info("feed loaded",
		logging.String("path", s.path),
		logging.Int("records", len(feed.Records)),
		logging.String("last_modified", feed.LastModified),
	)
	return nil
}

// Current returns the latest snapshot. Before the first successful Load it
// returns a CodeFeedUnavailable error.
func (s *Store) Current() (*scheme.Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, errors.New(errors.CodeFeedUnavailable, "feed not loaded")
	}
	return s.snapshot, nil
}

// Restore installs a snapshot obtained elsewhere, typically the cache,
// without touching the file. A nil snapshot is ignored.
func (s *Store) Restore(snapshot *scheme.Feed) {
	if snapshot == nil {
		return
	}
	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
}

// Loaded reports whether at least one snapshot has been taken. The readiness
// probe uses this.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot != nil
}

// Watch reloads the feed whenever its file changes, until ctx is cancelled.
// Editors and atomic writers replace the file via rename, so the watch is on
// the parent directory and events are filtered by name.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "create feed watcher")
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return errors.Wrap(err, errors.CodeInternal, "watch feed directory")
	}

	go s.watchLoop(ctx, watcher)
	return nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := s.Load(); err != nil {
				s.logger.Warn("feed reload failed, keeping previous snapshot",
					logging.String("path", s.path),
					logging.Err(err),
				)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("feed watcher error", logging.Err(err))
		}
	}
}

func (s *Store) recordReload(ok bool) {
	if s.metrics != nil {
		s.metrics.FeedReload(ok)
	}
}
