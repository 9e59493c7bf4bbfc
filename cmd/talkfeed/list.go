package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/talkfeed"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	catalog, err := deps.scrape()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", talkfeed.ErrorMessage(err))
		return err
	}

	if c.Limit > 0 {
		catalog.Talks = catalog.Recent(c.Limit)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	}

	fmt.Fprintln(deps.Stdout, catalog.Description)
	fmt.Fprintln(deps.Stdout)
	for _, t := range catalog.Talks {
		marker := " "
		if t.HasTranscript() {
			marker = "T"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s  %s\n", t.Date.Format(time.DateOnly), marker, t.Title, t.MP3)
	}

	return nil
}
