package mock

import (
	"context"

	"github.com/fwojciec/talkfeed"
)

var _ talkfeed.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of talkfeed.ArtifactStore.
type ArtifactStore struct {
	SaveFn   func(ctx context.Context, a *talkfeed.Artifact) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ArtifactStore) Save(ctx context.Context, a *talkfeed.Artifact) error {
	return s.SaveFn(ctx, a)
}

func (s *ArtifactStore) Commit() error {
	return s.CommitFn()
}

func (s *ArtifactStore) Abort() error {
	return s.AbortFn()
}
