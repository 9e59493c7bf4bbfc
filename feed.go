package talkfeed

import (
	"io"
	"strings"
)

// Defaults describing the evening talks feed.
const (
	DefaultFeedTitle      = "Dhammatalks.org Evening Talks"
	DefaultFeedLink       = "http://dhammatalks.org"
	DefaultFeedLanguage   = "en-us"
	DefaultWebMaster      = "dhammatalks.feedback@gmail.com"
	DefaultCategory       = "Society/Religion and Spirituality/Buddhism"
	DefaultCategoryDomain = "https://dmoz-odp.org"
	DefaultAuthor         = "Thanissaro Bhikkhu"
	DefaultMediaRoot      = "https://www.dhammatalks.org"

	// FeedFile and PageFile are the artifact names of a published site.
	FeedFile     = "dhammatalks-evening.xml"
	PageFile     = "index.html"
	MarkdownFile = "index.md"
	ArtFile      = "dt_art.jpeg"
)

// FeedConfig describes the podcast channel wrapped around a catalog.
type FeedConfig struct {
	Title          string
	Link           string
	Language       string
	WebMaster      string
	Category       string
	CategoryDomain string
	Author         string

	// ImageURL is the absolute URL of the podcast artwork.
	ImageURL string

	// MediaRoot is prefixed to talk mp3 and transcript paths.
	MediaRoot string
}

// DefaultFeedConfig returns the configuration of the evening talks feed
// published under feedRoot.
func DefaultFeedConfig(feedRoot string) FeedConfig {
	return FeedConfig{
		Title:          DefaultFeedTitle,
		Link:           DefaultFeedLink,
		Language:       DefaultFeedLanguage,
		WebMaster:      DefaultWebMaster,
		Category:       DefaultCategory,
		CategoryDomain: DefaultCategoryDomain,
		Author:         DefaultAuthor,
		ImageURL:       JoinURL(feedRoot, ArtFile),
		MediaRoot:      DefaultMediaRoot,
	}
}

// MediaURL returns the absolute URL of a site-relative path.
func (c FeedConfig) MediaURL(path string) string {
	return JoinURL(c.MediaRoot, path)
}

// Validate returns an error if the configuration is unusable.
func (c FeedConfig) Validate() error {
	if c.Title == "" {
		return Errorf(EINVALID, "feed title required")
	}
	if c.MediaRoot == "" {
		return Errorf(EINVALID, "feed media root required")
	}
	return nil
}

// JoinURL joins a root URL and a path with exactly one slash between them.
func JoinURL(root, path string) string {
	if path == "" {
		return root
	}
	if root == "" {
		return path
	}
	return strings.TrimSuffix(root, "/") + "/" + strings.TrimPrefix(path, "/")
}

// FeedWriter serializes a catalog as a podcast feed.
type FeedWriter interface {
	WriteFeed(w io.Writer, c *Catalog) error
}

// FeedVerifier checks a serialized feed against the catalog it was
// generated from.
type FeedVerifier interface {
	// VerifyFeed returns EINVALID if the feed cannot be read back or does
	// not list exactly the catalog's talks.
	VerifyFeed(r io.Reader, c *Catalog) error
}

// PageRenderer renders the HTML landing page of a catalog.
type PageRenderer interface {
	RenderPage(w io.Writer, c *Catalog) error
}
