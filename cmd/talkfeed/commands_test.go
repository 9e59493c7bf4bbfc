package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/talkfeed"
	main "github.com/fwojciec/talkfeed/cmd/talkfeed"
	"github.com/fwojciec/talkfeed/goquery"
	"github.com/fwojciec/talkfeed/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Source: talkfeed.DefaultSourceURL,
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return archivePage, nil
			},
		},
		Parser: goquery.NewParser(),
	}
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints JSON catalog", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.ListCmd{JSON: true, Limit: 1}

		err := cmd.Run(testDeps(stdout, stderr))

		require.NoError(t, err)
		var c talkfeed.Catalog
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &c))
		assert.Equal(t, "Evening Dhamma talks.", c.Description)
		require.Len(t, c.Talks, 1)
		assert.Equal(t, "/Archive/y2020/200115_Mindfulness.pdf", c.Talks[0].Transcript)
	})

	t.Run("reports fetch failure", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", talkfeed.Errorf(talkfeed.ENOTFOUND, "HTTP 404 for %s", url)
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "HTTP 404")
		assert.Empty(t, stdout.String())
	})
}

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("warns but succeeds when snapshot recording fails", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Snapshots = &mock.SnapshotService{
			CreateSnapshotFn: func(ctx context.Context, snap *talkfeed.Snapshot, c *talkfeed.Catalog) error {
				return errors.New("database is locked")
			},
		}
		cmd := &main.BuildCmd{Out: t.TempDir(), FeedRoot: "https://feed.example.com/", MediaRoot: talkfeed.DefaultMediaRoot}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Published 2 talks")
		assert.NotContains(t, stdout.String(), "Recorded snapshot")
		assert.Contains(t, stderr.String(), "warning: published, but recording snapshot: database is locked")
	})
}

func TestDateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports every path and fails on bad ones", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		cmd := &main.DateCmd{MP3: []string{
			"/Music/y2020/200115_talk.mp3",
			"/Archive/y2019/191231_talk.mp3",
		}}

		err := cmd.Run(testDeps(stdout, stderr))

		require.Error(t, err)
		assert.Equal(t, talkfeed.EPATH, talkfeed.ErrorCode(err))
		assert.Contains(t, stderr.String(), `base directory is not "Archive"`)
		assert.Contains(t, stdout.String(), "2019-12-31T18:00:00-08:00")
	})
}

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists snapshots", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		var gotFilter talkfeed.SnapshotFilter
		deps.Snapshots = &mock.SnapshotService{
			FindSnapshotsFn: func(ctx context.Context, filter talkfeed.SnapshotFilter) ([]*talkfeed.Snapshot, error) {
				gotFilter = filter
				return []*talkfeed.Snapshot{{
					ID:          "snap-1",
					SourceURL:   talkfeed.DefaultSourceURL,
					ContentHash: "0123456789abcdef",
					TalkCount:   42,
					CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
				}}, nil
			},
		}

		err := (&main.HistoryCmd{Limit: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, gotFilter.Limit)
		assert.Contains(t, stdout.String(), "2026-01-02T03:04:05Z")
		assert.Contains(t, stdout.String(), "snap-1")
		assert.Contains(t, stdout.String(), "42 talks")
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Snapshots = &mock.SnapshotService{
			FindSnapshotsFn: func(ctx context.Context, filter talkfeed.SnapshotFilter) ([]*talkfeed.Snapshot, error) {
				return []*talkfeed.Snapshot{}, nil
			},
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "talkfeed build")
	})
}

func TestTalksCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes filter to service", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		var gotFilter talkfeed.TalkFilter
		deps.Snapshots = &mock.SnapshotService{
			FindTalksFn: func(ctx context.Context, filter talkfeed.TalkFilter) ([]*talkfeed.ArchivedTalk, error) {
				gotFilter = filter
				return []*talkfeed.ArchivedTalk{{
					Talk: talkfeed.Talk{
						Date:  time.Date(2020, 1, 15, 18, 0, 0, 0, talkfeed.BroadcastZone),
						Title: "Mindfulness",
						MP3:   "/Archive/y2020/200115_Mindfulness.mp3",
					},
					FirstSeenAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
				}}, nil
			},
		}

		err := (&main.TalksCmd{Since: "2020-01-01", Transcripts: true, Limit: 3}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Since)
		assert.True(t, gotFilter.Since.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, talkfeed.BroadcastZone)))
		assert.True(t, gotFilter.WithTranscript)
		assert.Equal(t, 3, gotFilter.Limit)
		assert.Contains(t, stdout.String(), "2020-01-15  Mindfulness")
		assert.Contains(t, stdout.String(), "first seen 2026-01-02")
	})

	t.Run("rejects malformed since", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		err := (&main.TalksCmd{Since: "January"}).Run(testDeps(stdout, stderr))

		require.Error(t, err)
		assert.Equal(t, talkfeed.EINVALID, talkfeed.ErrorCode(err))
	})

	t.Run("reports service errors", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Snapshots = &mock.SnapshotService{
			FindTalksFn: func(ctx context.Context, filter talkfeed.TalkFilter) ([]*talkfeed.ArchivedTalk, error) {
				return nil, errors.New("database is locked")
			},
		}

		err := (&main.TalksCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
