package mock

import (
	"io"

	"github.com/fwojciec/talkfeed"
)

// Compile-time interface verification.
var (
	_ talkfeed.FeedWriter   = (*FeedWriter)(nil)
	_ talkfeed.FeedVerifier = (*FeedVerifier)(nil)
	_ talkfeed.PageRenderer = (*PageRenderer)(nil)
)

// FeedWriter is a mock implementation of talkfeed.FeedWriter.
type FeedWriter struct {
	WriteFeedFn func(w io.Writer, c *talkfeed.Catalog) error
}

func (f *FeedWriter) WriteFeed(w io.Writer, c *talkfeed.Catalog) error {
	return f.WriteFeedFn(w, c)
}

// FeedVerifier is a mock implementation of talkfeed.FeedVerifier.
type FeedVerifier struct {
	VerifyFeedFn func(r io.Reader, c *talkfeed.Catalog) error
}

func (v *FeedVerifier) VerifyFeed(r io.Reader, c *talkfeed.Catalog) error {
	return v.VerifyFeedFn(r, c)
}

// PageRenderer is a mock implementation of talkfeed.PageRenderer.
type PageRenderer struct {
	RenderPageFn func(w io.Writer, c *talkfeed.Catalog) error
}

func (r *PageRenderer) RenderPage(w io.Writer, c *talkfeed.Catalog) error {
	return r.RenderPageFn(w, c)
}
