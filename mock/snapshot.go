package mock

import (
	"context"

	"github.com/fwojciec/talkfeed"
)

var _ talkfeed.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of talkfeed.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn     func(ctx context.Context, snap *talkfeed.Snapshot, c *talkfeed.Catalog) error
	FindLatestSnapshotFn func(ctx context.Context, sourceURL string) (*talkfeed.Snapshot, error)
	FindSnapshotsFn      func(ctx context.Context, filter talkfeed.SnapshotFilter) ([]*talkfeed.Snapshot, error)
	FindTalksFn          func(ctx context.Context, filter talkfeed.TalkFilter) ([]*talkfeed.ArchivedTalk, error)
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *talkfeed.Snapshot, c *talkfeed.Catalog) error {
	return s.CreateSnapshotFn(ctx, snap, c)
}

func (s *SnapshotService) FindLatestSnapshot(ctx context.Context, sourceURL string) (*talkfeed.Snapshot, error) {
	return s.FindLatestSnapshotFn(ctx, sourceURL)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter talkfeed.SnapshotFilter) ([]*talkfeed.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) FindTalks(ctx context.Context, filter talkfeed.TalkFilter) ([]*talkfeed.ArchivedTalk, error) {
	return s.FindTalksFn(ctx, filter)
}
