package talkfeed

import "context"

// Artifact is a named file produced by publishing a catalog.
type Artifact struct {
	Name string
	Data []byte
}

// ArtifactStore persists artifacts with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes. Nothing saved is visible before Commit.
type ArtifactStore interface {
	Save(ctx context.Context, a *Artifact) error
	Commit() error
	Abort() error
}
