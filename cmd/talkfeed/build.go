package main

import (
	"fmt"
	iofs "io/fs"
	"net/url"
	"os"

	"github.com/fwojciec/talkfeed"
	"github.com/fwojciec/talkfeed/assets"
	"github.com/fwojciec/talkfeed/etree"
	"github.com/fwojciec/talkfeed/fs"
	"github.com/fwojciec/talkfeed/gofeed"
	"github.com/fwojciec/talkfeed/html"
	"github.com/fwojciec/talkfeed/htmltomarkdown"
	"github.com/fwojciec/talkfeed/publish"
	tfslog "github.com/fwojciec/talkfeed/slog"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	root, err := url.Parse(c.FeedRoot)
	if err != nil || root.Scheme == "" || root.Host == "" {
		return talkfeed.Errorf(talkfeed.EINVALID, "feed root must be an absolute URL, got %q", c.FeedRoot)
	}

	config := talkfeed.DefaultFeedConfig(c.FeedRoot)
	config.MediaRoot = c.MediaRoot

	var static iofs.FS = assets.FS()
	if c.Static != "" {
		static = os.DirFS(c.Static)
	}

	logger := deps.logger()
	p := &publish.Publisher{
		Fetcher:   deps.Fetcher,
		Parser:    deps.Parser,
		Feeds:     etree.NewFeedWriter(config),
		Verifier:  gofeed.NewVerifier(config),
		Pages:     html.NewPageRenderer(config, deps.Source),
		Converter: htmltomarkdown.NewConverter(root.Host),
		Store:     tfslog.NewLoggingArtifactStore(fs.NewArtifactStore(c.Out), logger),
		Static:    static,
	}
	if !c.NoHistory {
		p.Snapshots = deps.Snapshots
		p.HashCatalog = deps.HashCatalog
		p.SkipUnchanged = c.SkipUnchanged
	}

	result, err := p.Publish(deps.Ctx, deps.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", talkfeed.ErrorMessage(err))
		return err
	}

	if result.Skipped {
		fmt.Fprintf(deps.Stdout, "Catalog unchanged (%d talks); nothing published.\n", len(result.Catalog.Talks))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Published %d talks to %s\n", len(result.Catalog.Talks), c.Out)
	for _, name := range result.Artifacts {
		fmt.Fprintf(deps.Stdout, "  %s\n", name)
	}
	if result.SnapshotErr != nil {
		logger.Warn("snapshot not recorded", "source", deps.Source, "error", result.SnapshotErr)
		fmt.Fprintf(deps.Stderr, "warning: published, but %v\n", result.SnapshotErr)
	}
	if result.Snapshot != nil {
		fmt.Fprintf(deps.Stdout, "Recorded snapshot %s\n", result.Snapshot.ID)
	}

	return nil
}
