package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/talkfeed"
	tfhttp "github.com/fwojciec/talkfeed/http"
	"github.com/fwojciec/talkfeed/publish"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Source is the archive page URL.
	Source string

	Fetcher   talkfeed.Fetcher
	Parser    talkfeed.Parser
	Snapshots talkfeed.SnapshotService

	// HashCatalog is the content hash used with Snapshots.
	HashCatalog func(c *talkfeed.Catalog) string
}

// scrape fetches and assembles the catalog of deps.Source.
func (deps *Dependencies) scrape() (*talkfeed.Catalog, error) {
	p := &publish.Publisher{Fetcher: deps.Fetcher, Parser: deps.Parser}
	return p.Scrape(deps.Ctx, deps.Source)
}

// logger returns deps.Logger or a logger that discards everything.
func (deps *Dependencies) logger() *slog.Logger {
	if deps.Logger != nil {
		return deps.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Log every step to stderr"`
	Source    string        `default:"${source}" env:"TALKFEED_SOURCE" help:"Archive page URL"`
	Timeout   time.Duration `default:"30s" env:"TALKFEED_TIMEOUT" help:"HTTP request timeout"`
	Retries   int           `default:"3" help:"Retries of transient fetch failures (max 3)"`
	UserAgent string        `name:"user-agent" default:"${user_agent}" help:"User-Agent header for requests"`

	Build   BuildCmd   `cmd:"" help:"Publish the feed, landing page and static files"`
	List    ListCmd    `cmd:"" help:"Print the talks currently on the archive page"`
	Date    DateCmd    `cmd:"" help:"Print the broadcast date inferred from mp3 paths"`
	History HistoryCmd `cmd:"" help:"List recorded snapshots of the archive page"`
	Talks   TalksCmd   `cmd:"" help:"List every talk ever recorded"`
}

// Vars returns the kong variables interpolated into CLI defaults.
func Vars() map[string]string {
	return map[string]string{
		"source":     talkfeed.DefaultSourceURL,
		"user_agent": tfhttp.DefaultUserAgent,
		"media_root": talkfeed.DefaultMediaRoot,
	}
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Out           string `short:"o" default:"public" env:"TALKFEED_OUT" help:"Output directory"`
	FeedRoot      string `name:"feed-root" required:"" env:"TALKFEED_FEED_ROOT" help:"Public URL the output directory is served from"`
	MediaRoot     string `name:"media-root" default:"${media_root}" help:"URL prefix of talk mp3 and transcript paths"`
	Static        string `type:"existingdir" help:"Directory of static files to publish instead of the built-in stylesheet and cover art"`
	NoHistory     bool   `name:"no-history" help:"Do not record a snapshot"`
	SkipUnchanged bool   `name:"skip-unchanged" help:"Publish nothing when the catalog matches the latest snapshot"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	JSON  bool `help:"Print the catalog as JSON"`
	Limit int  `short:"n" help:"Print at most this many talks (0 for all)"`
}

// DateCmd is the "date" subcommand.
type DateCmd struct {
	MP3 []string `arg:"" name:"mp3" help:"Archive mp3 paths such as /Archive/y2020/200115_talk.mp3"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Number of snapshots to show (0 for all)"`
}

// TalksCmd is the "talks" subcommand.
type TalksCmd struct {
	Since       string `help:"Only talks broadcast on or after this date (YYYY-MM-DD)"`
	Transcripts bool   `help:"Only talks with a transcript"`
	Limit       int    `short:"n" default:"20" help:"Number of talks to show (0 for all)"`
}
