package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/talkfeed"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, talkfeed.SnapshotFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", talkfeed.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots recorded. Use 'talkfeed build' to create one.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %4d talks  %s  %s\n",
			s.CreatedAt.Format(time.RFC3339), s.ID, s.TalkCount, s.ContentHash, s.SourceURL)
	}

	return nil
}
