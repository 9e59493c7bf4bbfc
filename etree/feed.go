// Package etree writes catalogs as RSS 2.0 podcast feeds using beevik/etree.
package etree

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/talkfeed"
)

// ITunesNamespace is the podcast extension namespace understood by Apple
// Podcasts and most other podcast clients.
const ITunesNamespace = "http://www.itunes.com/dtds/podcast-1.0.dtd"

// Category of the feed in the iTunes directory.
const (
	itunesCategory    = "Religion & Spirituality"
	itunesSubcategory = "Buddhism"
)

// Ensure FeedWriter implements talkfeed.FeedWriter at compile time.
var _ talkfeed.FeedWriter = (*FeedWriter)(nil)

// FeedWriter serializes catalogs as RSS 2.0 documents with the iTunes
// extension.
type FeedWriter struct {
	config talkfeed.FeedConfig

	// Now returns the channel publication date. Defaults to time.Now.
	Now func() time.Time
}

// NewFeedWriter creates a new FeedWriter for the given channel configuration.
func NewFeedWriter(config talkfeed.FeedConfig) *FeedWriter {
	return &FeedWriter{config: config, Now: time.Now}
}

// WriteFeed writes the catalog as an indented RSS document.
func (f *FeedWriter) WriteFeed(w io.Writer, c *talkfeed.Catalog) error {
	if err := f.config.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	doc := f.buildDocument(c)
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing feed out: %w", err)
	}
	return nil
}

func (f *FeedWriter) buildDocument(c *talkfeed.Catalog) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	rss.CreateAttr("xmlns:itunes", ITunesNamespace)

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(f.config.Title)
	channel.CreateElement("link").SetText(f.config.Link)
	channel.CreateElement("description").SetText(c.Description)
	if f.config.Language != "" {
		channel.CreateElement("language").SetText(f.config.Language)
	}
	if f.config.WebMaster != "" {
		channel.CreateElement("webMaster").SetText(f.config.WebMaster)
	}
	if f.config.Category != "" {
		category := channel.CreateElement("category")
		if f.config.CategoryDomain != "" {
			category.CreateAttr("domain", f.config.CategoryDomain)
		}
		category.SetText(f.config.Category)
	}
	channel.CreateElement("pubDate").SetText(f.now().Format(time.RFC1123Z))

	f.addITunes(channel)

	for i := range c.Talks {
		f.addItem(channel, &c.Talks[i])
	}
	return doc
}

func (f *FeedWriter) addITunes(channel *etree.Element) {
	if f.config.Author != "" {
		channel.CreateElement("itunes:author").SetText(f.config.Author)
	}
	if f.config.ImageURL != "" {
		channel.CreateElement("itunes:image").CreateAttr("href", f.config.ImageURL)
	}
	category := channel.CreateElement("itunes:category")
	category.CreateAttr("text", itunesCategory)
	category.CreateElement("itunes:category").CreateAttr("text", itunesSubcategory)
}

func (f *FeedWriter) addItem(channel *etree.Element, talk *talkfeed.Talk) {
	url := f.config.MediaURL(talk.MP3)

	item := channel.CreateElement("item")
	item.CreateElement("title").SetText(talk.Title)
	item.CreateElement("link").SetText(url)
	item.CreateElement("description").SetText(f.itemDescription(talk))

	enclosure := item.CreateElement("enclosure")
	enclosure.CreateAttr("url", url)
	enclosure.CreateAttr("length", "0")
	enclosure.CreateAttr("type", "audio/mpeg")

	guid := item.CreateElement("guid")
	guid.CreateAttr("isPermaLink", "true")
	guid.SetText(url)

	item.CreateElement("pubDate").SetText(talk.Date.Format(time.RFC1123Z))
}

// itemDescription names the talk and, when there is one, its transcript.
func (f *FeedWriter) itemDescription(talk *talkfeed.Talk) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A talk by %s entitled \"%s\"", f.config.Author, talk.Title)
	if talk.HasTranscript() {
		fmt.Fprintf(&b, "\n\nTranscript available at: %s\n", f.config.MediaURL(talk.Transcript))
	}
	return b.String()
}

func (f *FeedWriter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}
