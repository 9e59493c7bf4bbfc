package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/talkfeed"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ talkfeed.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements talkfeed.SnapshotService using SQLite.
type SnapshotService struct {
	db  *DB
	now func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db, now: time.Now}
}

// CreateSnapshot records the catalog and upserts its talks in one transaction.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *talkfeed.Snapshot, c *talkfeed.Catalog) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	snap.ContentHash = HashCatalog(c)
	snap.TalkCount = len(c.Talks)
	snap.CreatedAt = s.now().UTC().Truncate(time.Second)
	createdAt := formatTime(snap.CreatedAt)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, source_url, content_hash, talk_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, snap.ID, snap.SourceURL, snap.ContentHash, snap.TalkCount, createdAt); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO talks (mp3, title, transcript, date, first_snapshot_id, first_seen_at, last_seen_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(mp3) DO UPDATE SET
			title = excluded.title,
			transcript = excluded.transcript,
			date = excluded.date,
			last_seen_at = excluded.last_seen_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range c.Talks {
		if _, err := stmt.ExecContext(ctx, t.MP3, t.Title, t.Transcript, formatTime(t.Date),
			snap.ID, createdAt, createdAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindLatestSnapshot returns the most recent snapshot of sourceURL.
func (s *SnapshotService) FindLatestSnapshot(ctx context.Context, sourceURL string) (*talkfeed.Snapshot, error) {
	snaps, err := s.FindSnapshots(ctx, talkfeed.SnapshotFilter{SourceURL: &sourceURL, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, talkfeed.Errorf(talkfeed.ENOTFOUND, "no snapshot of %s", sourceURL)
	}
	return snaps[0], nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter talkfeed.SnapshotFilter) ([]*talkfeed.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, content_hash, talk_count, created_at FROM snapshots WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snaps := make([]*talkfeed.Snapshot, 0)
	for rows.Next() {
		var snap talkfeed.Snapshot
		var createdAt string

		if err := rows.Scan(&snap.ID, &snap.SourceURL, &snap.ContentHash, &snap.TalkCount, &createdAt); err != nil {
			return nil, err
		}

		snap.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		snaps = append(snaps, &snap)
	}

	return snaps, rows.Err()
}

// FindTalks retrieves archived talks, newest broadcast first.
func (s *SnapshotService) FindTalks(ctx context.Context, filter talkfeed.TalkFilter) ([]*talkfeed.ArchivedTalk, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT mp3, title, transcript, date, first_seen_at, last_seen_at FROM talks WHERE 1=1")

	if filter.Since != nil {
		query.WriteString(" AND date >= ?")
		args = append(args, formatTime(*filter.Since))
	}
	if filter.WithTranscript {
		query.WriteString(" AND transcript != ''")
	}

	query.WriteString(" ORDER BY date DESC, mp3 DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	talks := make([]*talkfeed.ArchivedTalk, 0)
	for rows.Next() {
		var t talkfeed.ArchivedTalk
		var date, firstSeen, lastSeen string

		if err := rows.Scan(&t.MP3, &t.Title, &t.Transcript, &date, &firstSeen, &lastSeen); err != nil {
			return nil, err
		}

		if t.Date, err = parseRFC3339(date, "date"); err != nil {
			return nil, err
		}
		t.Date = t.Date.In(talkfeed.BroadcastZone)
		if t.FirstSeenAt, err = parseRFC3339(firstSeen, "first_seen_at"); err != nil {
			return nil, err
		}
		if t.LastSeenAt, err = parseRFC3339(lastSeen, "last_seen_at"); err != nil {
			return nil, err
		}

		talks = append(talks, &t)
	}

	return talks, rows.Err()
}
