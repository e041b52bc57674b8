package sheets

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/lohum/schemetrack/internal/domain/scheme"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/logging"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/metrics"
	"github.com/lohum/schemetrack/pkg/errors"
)

// SnapshotCache mirrors a synced feed, typically into Redis.
type SnapshotCache interface {
	SetSnapshot(ctx context.Context, feed *scheme.Feed) error
}

// Syncer pulls the worksheet and rewrites the feed file. The file write is
// atomic (temp file then rename) so a watching server never reads a partial
// feed.
type Syncer struct {
	client  *Client
	path    string
	cache   SnapshotCache
	logger  logging.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewSyncer builds a Syncer writing to path. cache and m may be nil.
func NewSyncer(client *Client, path string, cache SnapshotCache, logger logging.Logger, m *metrics.Metrics) *Syncer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Syncer{
		client:  client,
		path:    path,
		cache:   cache,
		logger:  logger.Named("sheets"),
		metrics: m,
		now:     time.Now,
	}
}

// Run performs one full sync: token exchange, worksheet fetch, normalization,
// timestamping, atomic write. Returns the number of records written.
func (s *Syncer) Run(ctx context.Context) (int, error) {
	count, err := s.run(ctx)
	if s.metrics != nil {
		s.metrics.SheetSync(err == nil)
	}
	return count, err
}

func (s *Syncer) run(ctx context.Context) (int, error) {
	token, err := s.client.AccessToken(ctx)
	if err != nil {
		return 0, err
	}

	payload, err := s.client.FetchRecords(ctx, token)
	if err != nil {
		return 0, err
	}
	if err := NormalizePayload(payload); err != nil {
		return 0, err
	}
	payload["last_modified"] = s.now().UTC().Format(time.RFC3339)

	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeInternal, "encode feed payload")
	}
	if err := atomicWrite(s.path, raw); err != nil {
		return 0, err
	}

	var feed scheme.Feed
	if err := json.Unmarshal(raw, &feed); err != nil {
		return 0, errors.Wrap(err, errors.CodeInternal, "decode synced feed")
	}
	if s.cache != nil {
		if err := s.cache.SetSnapshot(ctx, &feed); err != nil {
			// The file is the source of truth; a cache miss is survivable.
			s.logger.Warn("failed to mirror feed snapshot to cache", logging.Err(err))
		}
	}

	s.logger.Info("feed synced",
		logging.String("path", s.path),
		logging.Int("records", len(feed.Records)),
	)
	return len(feed.Records), nil
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "create temp feed file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, errors.CodeInternal, "write temp feed file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.CodeInternal, "close temp feed file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.CodeInternal, "replace feed file")
	}
	return nil
}
