package talkfeed

import (
	"context"
	"time"
)

// Snapshot records one successful parse of an archive page.
type Snapshot struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	ContentHash string    `json:"contentHash"`
	TalkCount   int       `json:"talkCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "snapshot source URL required")
	}
	return nil
}

// ArchivedTalk is a talk as remembered across snapshots.
type ArchivedTalk struct {
	Talk
	FirstSeenAt time.Time `json:"firstSeenAt"`
	LastSeenAt  time.Time `json:"lastSeenAt"`
}

// SnapshotService represents a service for recording catalog history.
type SnapshotService interface {
	// CreateSnapshot records c as the latest state of snap.SourceURL and
	// upserts every talk into the archive. ID, ContentHash, TalkCount and
	// CreatedAt are set by the service.
	CreateSnapshot(ctx context.Context, snap *Snapshot, c *Catalog) error

	// FindLatestSnapshot returns the most recent snapshot of a source.
	// Returns ENOTFOUND if the source has never been recorded.
	FindLatestSnapshot(ctx context.Context, sourceURL string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// FindTalks retrieves archived talks, newest broadcast first.
	FindTalks(ctx context.Context, filter TalkFilter) ([]*ArchivedTalk, error)
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// TalkFilter represents a filter for FindTalks.
type TalkFilter struct {
	// Since restricts results to talks broadcast at or after the time.
	Since *time.Time `json:"since"`

	// WithTranscript restricts results to talks that link a transcript.
	WithTranscript bool `json:"withTranscript"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
