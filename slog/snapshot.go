package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/talkfeed"
)

// Ensure LoggingSnapshotService implements talkfeed.SnapshotService.
var _ talkfeed.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with logging.
type LoggingSnapshotService struct {
	next   talkfeed.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next talkfeed.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

// CreateSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) CreateSnapshot(ctx context.Context, snap *talkfeed.Snapshot, c *talkfeed.Catalog) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create snapshot",
			"source", snap.SourceURL,
			"id", snap.ID,
			"hash", snap.ContentHash,
			"talks", snap.TalkCount,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSnapshot(ctx, snap, c)
}

// FindLatestSnapshot delegates to the wrapped service and logs at debug level.
func (s *LoggingSnapshotService) FindLatestSnapshot(ctx context.Context, sourceURL string) (snap *talkfeed.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find latest snapshot",
			"source", sourceURL,
			"found", snap != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLatestSnapshot(ctx, sourceURL)
}

// FindSnapshots delegates to the wrapped service and logs at debug level.
func (s *LoggingSnapshotService) FindSnapshots(ctx context.Context, filter talkfeed.SnapshotFilter) (snaps []*talkfeed.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find snapshots",
			"count", len(snaps),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSnapshots(ctx, filter)
}

// FindTalks delegates to the wrapped service and logs at debug level.
func (s *LoggingSnapshotService) FindTalks(ctx context.Context, filter talkfeed.TalkFilter) (talks []*talkfeed.ArchivedTalk, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find talks",
			"count", len(talks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTalks(ctx, filter)
}
