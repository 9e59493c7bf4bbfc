package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/talkfeed"
)

// Run executes the talks command.
func (c *TalksCmd) Run(deps *Dependencies) error {
	filter := talkfeed.TalkFilter{
		WithTranscript: c.Transcripts,
		Limit:          c.Limit,
	}
	if c.Since != "" {
		since, err := time.ParseInLocation(time.DateOnly, c.Since, talkfeed.BroadcastZone)
		if err != nil {
			return talkfeed.Errorf(talkfeed.EINVALID, "invalid --since date %q, want YYYY-MM-DD", c.Since)
		}
		filter.Since = &since
	}

	talks, err := deps.Snapshots.FindTalks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", talkfeed.ErrorMessage(err))
		return err
	}

	if len(talks) == 0 {
		fmt.Fprintln(deps.Stdout, "No talks recorded. Use 'talkfeed build' to record some.")
		return nil
	}

	for _, t := range talks {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  (first seen %s)\n",
			t.Date.Format(time.DateOnly), t.Title, t.MP3, t.FirstSeenAt.Format(time.DateOnly))
	}

	return nil
}
