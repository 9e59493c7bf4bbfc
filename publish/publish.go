// Package publish provides the feed publishing pipeline. It coordinates
// fetching the archive page, assembling the catalog, rendering the feed and
// landing page, and storing the results.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/fwojciec/talkfeed"
	"golang.org/x/sync/errgroup"
)

// Publisher orchestrates one publishing run.
type Publisher struct {
	Fetcher   talkfeed.Fetcher
	Parser    talkfeed.Parser
	Feeds     talkfeed.FeedWriter
	Verifier  talkfeed.FeedVerifier
	Pages     talkfeed.PageRenderer
	Converter talkfeed.Converter
	Store     talkfeed.ArtifactStore

	// Snapshots, when set, records every published catalog.
	Snapshots talkfeed.SnapshotService

	// HashCatalog computes the content hash compared against the latest
	// snapshot when SkipUnchanged is set.
	HashCatalog   func(c *talkfeed.Catalog) string
	SkipUnchanged bool

	// Static holds extra files copied into the output, such as the
	// stylesheet and cover art.
	Static fs.FS
}

// Result holds the outcome of a publishing run.
type Result struct {
	Catalog   *talkfeed.Catalog
	Artifacts []string
	Snapshot  *talkfeed.Snapshot

	// Skipped is true when the catalog matched the latest snapshot and
	// nothing was written.
	Skipped bool

	// SnapshotErr is set when the artifacts were committed but recording
	// the snapshot failed.
	SnapshotErr error
}

// Scrape fetches the archive page at sourceURL and assembles its catalog.
func (p *Publisher) Scrape(ctx context.Context, sourceURL string) (*talkfeed.Catalog, error) {
	html, err := p.Fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", sourceURL, err)
	}

	doc, err := p.Parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", sourceURL, err)
	}

	c, err := talkfeed.ParseCatalog(doc)
	if err != nil {
		return nil, fmt.Errorf("reading catalog from %s: %w", sourceURL, err)
	}

	return c, nil
}

// Publish scrapes sourceURL and publishes the feed, landing page and static
// files. Nothing is committed unless every artifact was produced; on failure
// the store is aborted. A snapshot failure after commit is reported in
// Result.SnapshotErr rather than as an error.
func (p *Publisher) Publish(ctx context.Context, sourceURL string) (*Result, error) {
	c, err := p.Scrape(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	result := &Result{Catalog: c}

	if p.SkipUnchanged {
		unchanged, err := p.unchanged(ctx, sourceURL, c)
		if err != nil {
			return nil, err
		}
		if unchanged {
			result.Skipped = true
			return result, nil
		}
	}

	artifacts, err := p.render(c)
	if err != nil {
		return nil, err
	}

	if err := p.store(ctx, artifacts); err != nil {
		return nil, err
	}
	for _, a := range artifacts {
		result.Artifacts = append(result.Artifacts, a.Name)
	}

	if p.Snapshots != nil {
		snap := &talkfeed.Snapshot{SourceURL: sourceURL}
		if err := p.Snapshots.CreateSnapshot(ctx, snap, c); err != nil {
			result.SnapshotErr = fmt.Errorf("recording snapshot: %w", err)
			return result, nil
		}
		result.Snapshot = snap
	}

	return result, nil
}

// unchanged reports whether c matches the latest recorded snapshot.
func (p *Publisher) unchanged(ctx context.Context, sourceURL string, c *talkfeed.Catalog) (bool, error) {
	if p.Snapshots == nil || p.HashCatalog == nil {
		return false, nil
	}

	latest, err := p.Snapshots.FindLatestSnapshot(ctx, sourceURL)
	if talkfeed.ErrorCode(err) == talkfeed.ENOTFOUND {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("finding latest snapshot: %w", err)
	}

	return latest.ContentHash == p.HashCatalog(c), nil
}

// render produces the feed and landing page concurrently, verifies the feed
// and converts the page to Markdown. Static files come first so that
// generated artifacts take precedence over files of the same name.
func (p *Publisher) render(c *talkfeed.Catalog) ([]*talkfeed.Artifact, error) {
	var feed, page bytes.Buffer

	var g errgroup.Group
	g.Go(func() error {
		if err := p.Feeds.WriteFeed(&feed, c); err != nil {
			return fmt.Errorf("writing feed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := p.Pages.RenderPage(&page, c); err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if p.Verifier != nil {
		if err := p.Verifier.VerifyFeed(bytes.NewReader(feed.Bytes()), c); err != nil {
			return nil, fmt.Errorf("verifying feed: %w", err)
		}
	}

	artifacts, err := p.staticArtifacts()
	if err != nil {
		return nil, err
	}

	artifacts = append(artifacts,
		&talkfeed.Artifact{Name: talkfeed.FeedFile, Data: feed.Bytes()},
		&talkfeed.Artifact{Name: talkfeed.PageFile, Data: page.Bytes()},
	)

	if p.Converter != nil {
		md, err := p.Converter.Convert(page.String())
		if err != nil {
			return nil, fmt.Errorf("converting page: %w", err)
		}
		artifacts = append(artifacts, &talkfeed.Artifact{Name: talkfeed.MarkdownFile, Data: []byte(md)})
	}

	return artifacts, nil
}

// staticArtifacts reads every regular file of p.Static.
func (p *Publisher) staticArtifacts() ([]*talkfeed.Artifact, error) {
	if p.Static == nil {
		return nil, nil
	}

	var artifacts []*talkfeed.Artifact
	err := fs.WalkDir(p.Static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(p.Static, path)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, &talkfeed.Artifact{Name: path, Data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading static files: %w", err)
	}

	return artifacts, nil
}

// store saves every artifact and commits, aborting on the first failure.
func (p *Publisher) store(ctx context.Context, artifacts []*talkfeed.Artifact) error {
	for _, a := range artifacts {
		if err := p.Store.Save(ctx, a); err != nil {
			return p.abort(fmt.Errorf("saving %s: %w", a.Name, err))
		}
	}

	if err := p.Store.Commit(); err != nil {
		return p.abort(fmt.Errorf("committing artifacts: %w", err))
	}

	return nil
}

func (p *Publisher) abort(err error) error {
	if abortErr := p.Store.Abort(); abortErr != nil {
		return errors.Join(err, fmt.Errorf("aborting: %w", abortErr))
	}
	return err
}
