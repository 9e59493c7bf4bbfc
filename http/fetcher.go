// Package http provides an HTTP-based implementation of talkfeed.Fetcher
// for the static archive page.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/talkfeed"
)

// DefaultFetchTimeout is the default timeout for a single HTTP request.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies the fetcher to the archive server.
const DefaultUserAgent = "talkfeed/1.0 (+https://github.com/fwojciec/talkfeed)"

// DefaultMaxBytes caps the size of a fetched page. The archive index is a few
// hundred kilobytes.
const DefaultMaxBytes = 16 << 20

// Ensure Fetcher implements talkfeed.Fetcher at compile time.
var _ talkfeed.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content using plain HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	maxBytes  int64
	delays    []time.Duration
	logger    *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each HTTP request.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBytes limits the accepted response body size.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithRetryDelays enables retries of transient failures, waiting the given
// delays between attempts. No retries happen by default.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// WithLogger sets the logger used to report retry attempts.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		maxBytes:  DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, retrying transient
// failures when retry delays are configured.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return fetchWithRetry(ctx, url, f.fetch, f.delays, f.logger)
}

func (f *Fetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", talkfeed.Errorf(talkfeed.EINVALID, "invalid source URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &transientError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
		if resp.StatusCode == http.StatusNotFound {
			return "", talkfeed.Errorf(talkfeed.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
		}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return "", &transientError{err: err}
		}
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return "", &transientError{err: err}
	}
	if int64(len(body)) > f.maxBytes {
		return "", talkfeed.Errorf(talkfeed.EINVALID, "response from %s exceeds %d bytes", url, f.maxBytes)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
