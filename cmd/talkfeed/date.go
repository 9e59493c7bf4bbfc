package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/talkfeed"
)

// Run executes the date command. Every path is reported; the command fails
// if any of them could not be dated.
func (c *DateCmd) Run(deps *Dependencies) error {
	var errs []error
	for _, mp3 := range c.MP3 {
		date, err := talkfeed.ParseTalkDate(mp3)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", mp3, talkfeed.ErrorMessage(err))
			errs = append(errs, fmt.Errorf("%s: %w", mp3, err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", date.Format(time.RFC3339), mp3)
	}
	return errors.Join(errs...)
}
