package html_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/talkfeed"
	"github.com/fwojciec/talkfeed/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogWith(n int, transcriptEvery int) *talkfeed.Catalog {
	c := &talkfeed.Catalog{Description: "Evening Dhamma talks"}
	start := time.Date(2020, time.January, 20, 18, 0, 0, 0, talkfeed.BroadcastZone)
	for i := 0; i < n; i++ {
		date := start.AddDate(0, 0, -i)
		talk := talkfeed.Talk{
			Date:  date,
			Title: fmt.Sprintf("Talk %d", i+1),
			MP3:   fmt.Sprintf("/Archive/y2020/%s_talk.mp3", date.Format("060102")),
		}
		if transcriptEvery > 0 && i%transcriptEvery == 0 {
			talk.Transcript = strings.TrimSuffix(talk.MP3, ".mp3") + ".pdf"
		}
		c.Talks = append(c.Talks, talk)
	}
	return c
}

func render(t *testing.T, c *talkfeed.Catalog) string {
	t.Helper()

	r := html.NewPageRenderer(talkfeed.DefaultFeedConfig("https://feed.example.com/"), talkfeed.DefaultSourceURL)
	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, c))
	return buf.String()
}

func TestPageRenderer_RenderPage(t *testing.T) {
	t.Parallel()

	t.Run("links feed, source and artwork", func(t *testing.T) {
		t.Parallel()

		page := render(t, catalogWith(1, 0))

		assert.Contains(t, page, "<title>Dhammatalks.org Evening Talks Backup Podcast Feed</title>")
		assert.Contains(t, page, `<a href="dhammatalks-evening.xml">`)
		assert.Contains(t, page, `<a href="https://www.dhammatalks.org/mp3_index.html">evening talks</a>`)
		assert.Contains(t, page, `<img src="dt_art.jpeg" />`)
		assert.Contains(t, page, "<p>Evening Dhamma talks</p>")
	})

	t.Run("lists the five newest talks", func(t *testing.T) {
		t.Parallel()

		page := render(t, catalogWith(8, 0))

		talks := page[strings.Index(page, "Recent Talks"):strings.Index(page, "Recent Transcripts")]
		assert.Equal(t, 5, strings.Count(talks, "<li>"))
		assert.Contains(t, talks, `<li>January 20, 2020 — <a href="https://www.dhammatalks.org/Archive/y2020/200120_talk.mp3">Talk 1</a></li>`)
		assert.Contains(t, talks, "Talk 5")
		assert.NotContains(t, talks, "Talk 6")
	})

	t.Run("lists the five newest transcripts", func(t *testing.T) {
		t.Parallel()

		page := render(t, catalogWith(20, 2))

		transcripts := page[strings.Index(page, "Recent Transcripts"):]
		assert.Equal(t, 5, strings.Count(transcripts, "<li>"))
		assert.Contains(t, transcripts, `href="https://www.dhammatalks.org/Archive/y2020/200120_talk.pdf">Talk 1</a>`)
		assert.Contains(t, transcripts, ">Talk 9</a>")
		assert.NotContains(t, transcripts, ">Talk 2</a>")
		assert.NotContains(t, transcripts, ">Talk 11</a>")
	})

	t.Run("escapes titles", func(t *testing.T) {
		t.Parallel()

		c := catalogWith(1, 0)
		c.Talks[0].Title = "<Right> & Wrong"

		page := render(t, c)

		assert.Contains(t, page, "&lt;Right&gt; &amp; Wrong")
	})

	t.Run("renders empty lists for a catalog without talks", func(t *testing.T) {
		t.Parallel()

		page := render(t, &talkfeed.Catalog{Description: "Nothing yet"})

		assert.Equal(t, 0, strings.Count(page, "<li>"))
	})

	t.Run("rejects invalid catalog", func(t *testing.T) {
		t.Parallel()

		r := html.NewPageRenderer(talkfeed.DefaultFeedConfig(""), talkfeed.DefaultSourceURL)
		var buf bytes.Buffer

		err := r.RenderPage(&buf, &talkfeed.Catalog{})

		require.Error(t, err)
		assert.Zero(t, buf.Len())
	})
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "January  5, 2020", html.FormatDate(time.Date(2020, time.January, 5, 18, 0, 0, 0, talkfeed.BroadcastZone)))
	assert.Equal(t, "March 15, 2005", html.FormatDate(time.Date(2005, time.March, 15, 18, 0, 0, 0, talkfeed.BroadcastZone)))
}
