// Package html renders the landing page of a published feed.
package html

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/fwojciec/talkfeed"
)

// RecentCount is the number of entries in each list of the landing page.
const RecentCount = 5

// Ensure PageRenderer implements talkfeed.PageRenderer at compile time.
var _ talkfeed.PageRenderer = (*PageRenderer)(nil)

var pageTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"date":  FormatDate,
	"media": func(path string) string { return path },
}).Parse(`<html>
    <head>
        <meta charset="UTF-8">
        <title>{{.Title}}</title>
        <link rel="stylesheet" href="main.css" />
    </head>
    <body>
        <h1>{{.Title}}</h1>
        <p>
            An alternative/backup feed of the <a href="{{.SourceURL}}">evening talks</a>
            from <a href="{{.Config.Link}}">{{.Config.Link}}</a>.
        </p>
        <p>{{.Description}}</p>
        <p>
            <a href="{{.FeedFile}}">Evening Talks Podcast Feed</a>
        </p>
        <img src="{{.ArtFile}}" />
        <h2>Recent Talks</h2>
        <ul>
{{- range .Talks}}
            <li>{{date .Date}} — <a href="{{media .MP3}}">{{.Title}}</a></li>
{{- end}}
        </ul>
        <h2>Recent Transcripts</h2>
        <ul>
{{- range .Transcripts}}
            <li>{{date .Date}} — <a href="{{media .Transcript}}">{{.Title}}</a></li>
{{- end}}
        </ul>
    </body>
</html>
`))

// PageRenderer renders the landing page with the newest talks and
// transcripts.
type PageRenderer struct {
	config talkfeed.FeedConfig

	// SourceURL is the archive page the feed mirrors.
	SourceURL string
}

// NewPageRenderer creates a new PageRenderer.
func NewPageRenderer(config talkfeed.FeedConfig, sourceURL string) *PageRenderer {
	return &PageRenderer{config: config, SourceURL: sourceURL}
}

// pageData is the template input.
type pageData struct {
	Title       string
	Description string
	SourceURL   string
	FeedFile    string
	ArtFile     string
	Config      talkfeed.FeedConfig
	Talks       []talkfeed.Talk
	Transcripts []talkfeed.Talk
}

// RenderPage writes the landing page. Nothing is written if rendering fails.
func (r *PageRenderer) RenderPage(w io.Writer, c *talkfeed.Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}

	tmpl, err := pageTemplate.Clone()
	if err != nil {
		return err
	}
	tmpl.Funcs(template.FuncMap{"media": r.config.MediaURL})

	data := pageData{
		Title:       r.config.Title + " Backup Podcast Feed",
		Description: c.Description,
		SourceURL:   r.SourceURL,
		FeedFile:    talkfeed.FeedFile,
		ArtFile:     talkfeed.ArtFile,
		Config:      r.config,
		Talks:       c.Recent(RecentCount),
		Transcripts: c.RecentTranscripts(RecentCount),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering landing page: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// FormatDate formats a talk date the way the landing page lists it,
// e.g. "January  5, 2020".
func FormatDate(t time.Time) string {
	return t.Format("January _2, 2006")
}
