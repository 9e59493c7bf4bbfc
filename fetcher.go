package talkfeed

import "context"

// DefaultSourceURL is the archive page listing every evening talk.
const DefaultSourceURL = "https://www.dhammatalks.org/mp3_index.html"

// Fetcher retrieves the HTML of the archive page.
type Fetcher interface {
	// Fetch returns the HTML body served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
