package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/talkfeed"
)

// Ensure LoggingArtifactStore implements talkfeed.ArtifactStore.
var _ talkfeed.ArtifactStore = (*LoggingArtifactStore)(nil)

// LoggingArtifactStore wraps an ArtifactStore with logging.
type LoggingArtifactStore struct {
	next   talkfeed.ArtifactStore
	logger *slog.Logger
}

// NewLoggingArtifactStore creates a new LoggingArtifactStore.
func NewLoggingArtifactStore(next talkfeed.ArtifactStore, logger *slog.Logger) *LoggingArtifactStore {
	return &LoggingArtifactStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs at debug level.
func (s *LoggingArtifactStore) Save(ctx context.Context, a *talkfeed.Artifact) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save artifact",
			"name", a.Name,
			"bytes", len(a.Data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, a)
}

// Commit delegates to the wrapped store and logs the operation.
func (s *LoggingArtifactStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("commit artifacts",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store and logs the operation.
func (s *LoggingArtifactStore) Abort() (err error) {
	defer func() {
		s.logger.Warn("abort artifacts", "err", err)
	}()
	return s.next.Abort()
}
