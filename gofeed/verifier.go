// Package gofeed reads generated feeds back with mmcdole/gofeed to make sure
// podcast clients will see what the catalog contains.
package gofeed

import (
	"io"

	"github.com/fwojciec/talkfeed"
	"github.com/mmcdole/gofeed"
)

// Ensure Verifier implements talkfeed.FeedVerifier at compile time.
var _ talkfeed.FeedVerifier = (*Verifier)(nil)

// Verifier checks serialized feeds with a universal feed parser.
type Verifier struct {
	config talkfeed.FeedConfig
	parser *gofeed.Parser
}

// NewVerifier creates a new Verifier. The config must match the one the feed
// was written with so enclosure URLs can be compared.
func NewVerifier(config talkfeed.FeedConfig) *Verifier {
	return &Verifier{
		config: config,
		parser: gofeed.NewParser(),
	}
}

// VerifyFeed parses the feed and compares its items with the catalog talks,
// in order.
func (v *Verifier) VerifyFeed(r io.Reader, c *talkfeed.Catalog) error {
	feed, err := v.parser.Parse(r)
	if err != nil {
		return talkfeed.Errorf(talkfeed.EINVALID, "unreadable feed: %v", err)
	}

	if feed.FeedType != "rss" {
		return talkfeed.Errorf(talkfeed.EINVALID, "feed type is %q, want rss", feed.FeedType)
	}
	if feed.Description != c.Description {
		return talkfeed.Errorf(talkfeed.EINVALID, "feed description %q does not match catalog", feed.Description)
	}
	if len(feed.Items) != len(c.Talks) {
		return talkfeed.Errorf(talkfeed.EINVALID, "feed has %d items, catalog has %d talks", len(feed.Items), len(c.Talks))
	}

	for i, item := range feed.Items {
		talk := &c.Talks[i]
		want := v.config.MediaURL(talk.MP3)

		if item.Title != talk.Title {
			return talkfeed.Errorf(talkfeed.EINVALID, "item %d: title %q, want %q", i+1, item.Title, talk.Title)
		}
		if len(item.Enclosures) != 1 || item.Enclosures[0].URL != want {
			return talkfeed.Errorf(talkfeed.EINVALID, "item %d: missing enclosure %s", i+1, want)
		}
		if item.PublishedParsed == nil || !item.PublishedParsed.Equal(talk.Date) {
			return talkfeed.Errorf(talkfeed.EINVALID, "item %d: publication date does not match %s", i+1, talk.Date)
		}
	}

	return nil
}
