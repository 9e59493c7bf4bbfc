package goquery_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/talkfeed"
	"github.com/fwojciec/talkfeed/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readArchive(t *testing.T) string {
	t.Helper()

	b, err := os.ReadFile("testdata/mp3_index.html")
	require.NoError(t, err)
	return string(b)
}

func TestDocument_Descend(t *testing.T) {
	t.Parallel()

	t.Run("follows nested containers", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(readArchive(t))
		require.NoError(t, err)

		node, ok := doc.Descend("div#content", "div.archive", "div.full")

		require.True(t, ok)
		texts := node.Texts()
		require.NotEmpty(t, texts)
		assert.Contains(t, texts[0], "Evening Dhamma talks")
	})

	t.Run("returns false when an intermediate step is missing", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<div id="content"><div class="full">orphan</div></div>`)
		require.NoError(t, err)

		_, ok := doc.Descend("div#content", "div.archive", "div.full")

		assert.False(t, ok)
	})

	t.Run("returns false without selectors", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<p>text</p>`)
		require.NoError(t, err)

		_, ok := doc.Descend()

		assert.False(t, ok)
	})
}

func TestDocument_SelectAll(t *testing.T) {
	t.Parallel()

	t.Run("returns matches in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<a class="audio" href="1"></a><p><a class="audio" href="2"></a></p><a href="x"></a><a class="audio" href="3"></a>`)
		require.NoError(t, err)

		nodes := doc.SelectAll("a.audio")

		require.Len(t, nodes, 3)
		for i, want := range []string{"1", "2", "3"} {
			href, ok := nodes[i].Attr("href")
			require.True(t, ok)
			assert.Equal(t, want, href)
		}
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<p>nothing here</p>`)
		require.NoError(t, err)

		nodes := doc.SelectAll("a.audio")

		assert.NotNil(t, nodes)
		assert.Empty(t, nodes)
	})
}

func TestNode_Texts(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<a class="audio" href="x"><span>Jan 1</span> Title <b>bold</b><!-- comment --></a>`)
	require.NoError(t, err)

	nodes := doc.SelectAll("a.audio")
	require.Len(t, nodes, 1)

	assert.Equal(t, []string{"Jan 1", " Title ", "bold"}, nodes[0].Texts())
}

func TestNode_Attr(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<a class="audio">no href</a>`)
	require.NoError(t, err)

	nodes := doc.SelectAll("a.audio")
	require.Len(t, nodes, 1)

	_, ok := nodes[0].Attr("href")
	assert.False(t, ok)
	class, ok := nodes[0].Attr("class")
	assert.True(t, ok)
	assert.Equal(t, "audio", class)
}

func TestNode_NextElement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		wantOK   bool
		wantHref string
	}{
		{
			name:     "adjacent element",
			html:     `<p><a class="audio" href="a.mp3">x</a><a href="a.pdf">pdf</a></p>`,
			wantOK:   true,
			wantHref: "a.pdf",
		},
		{
			name:   "whitespace text in between",
			html:   `<p><a class="audio" href="a.mp3">x</a> <a href="a.pdf">pdf</a></p>`,
			wantOK: false,
		},
		{
			name:   "last child",
			html:   `<p><a class="audio" href="a.mp3">x</a></p>`,
			wantOK: false,
		},
		{
			name:   "adjacent element without href",
			html:   `<p><a class="audio" href="a.mp3">x</a><span>new</span></p>`,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := goquery.Parse(tt.html)
			require.NoError(t, err)
			nodes := doc.SelectAll("a.audio")
			require.Len(t, nodes, 1)

			next, ok := nodes[0].NextElement()

			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			href, _ := next.Attr("href")
			assert.Equal(t, tt.wantHref, href)
		})
	}
}

func TestParseCatalog_ArchivePage(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewParser().Parse(readArchive(t))
	require.NoError(t, err)

	catalog, err := talkfeed.ParseCatalog(doc)

	require.NoError(t, err)
	assert.Equal(t, "Evening Dhamma talks given by Thanissaro Bhikkhu at Metta Forest Monastery.", catalog.Description)
	require.Len(t, catalog.Talks, 3)

	assert.Equal(t, talkfeed.Talk{
		Date:       time.Date(2020, time.January, 15, 18, 0, 0, 0, talkfeed.BroadcastZone),
		Title:      "Mindfulness Immersed in the Body",
		MP3:        "/Archive/y2020/200115_Mindfulness_Immersed_in_the_Body.mp3",
		Transcript: "/Archive/y2020/200115_Mindfulness_Immersed_in_the_Body.pdf",
	}, catalog.Talks[0])

	assert.Equal(t, "Right Effort", catalog.Talks[1].Title)
	assert.Empty(t, catalog.Talks[1].Transcript)

	// Whitespace separates the third talk from its transcript link.
	assert.Equal(t, "Stillness & Insight", catalog.Talks[2].Title)
	assert.Empty(t, catalog.Talks[2].Transcript)
	assert.True(t, catalog.Talks[2].Date.Equal(time.Date(2005, time.March, 1, 18, 0, 0, 0, talkfeed.BroadcastZone)))
}

func TestParseCatalog_Concurrent(t *testing.T) {
	t.Parallel()

	raw := readArchive(t)

	var wg sync.WaitGroup
	catalogs := make([]*talkfeed.Catalog, 8)
	for i := range catalogs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := goquery.Parse(raw)
			if err != nil {
				return
			}
			catalogs[i], _ = talkfeed.ParseCatalog(doc)
		}(i)
	}
	wg.Wait()

	for _, c := range catalogs {
		require.NotNil(t, c)
		assert.Equal(t, catalogs[0], c)
	}
}
