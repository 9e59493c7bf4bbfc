package talkfeed

import (
	"fmt"
	"strings"
	"time"
)

// Selectors for the archive page layout.
const (
	ContentSelector     = "div#content"
	ArchiveSelector     = "div.archive"
	DescriptionSelector = "div.full"
	AudioLinkSelector   = "a.audio"
)

// Talk represents a single recorded evening talk.
type Talk struct {
	// Date is inferred from MP3 and is always 18:00 in BroadcastZone.
	Date  time.Time `json:"date"`
	Title string    `json:"title"`

	// MP3 is the site-relative path to the audio file.
	MP3 string `json:"mp3"`

	// Transcript is the site-relative path to the transcript PDF.
	// Empty when the talk has no transcript.
	Transcript string `json:"transcript,omitempty"`
}

// HasTranscript reports whether the talk links a transcript.
func (t *Talk) HasTranscript() bool {
	return t.Transcript != ""
}

// ParseTalk builds a Talk from an audio link node.
//
// The first text fragment of the link is a date label and is skipped; the
// second is the title. The transcript link, if any, is the element directly
// after the audio link.
func ParseTalk(n Node) (Talk, error) {
	mp3, ok := n.Attr("href")
	if !ok {
		return Talk{}, Errorf(ESTRUCTURE, "missing link to talk mp3")
	}

	texts := n.Texts()
	if len(texts) < 2 {
		return Talk{}, Errorf(ESTRUCTURE, "no talk title after date text node")
	}
	title := strings.TrimSpace(texts[1])
	if title == "" {
		return Talk{}, Errorf(ESTRUCTURE, "empty talk title")
	}

	date, err := ParseTalkDate(mp3)
	if err != nil {
		return Talk{}, fmt.Errorf("getting date from %q: %w", mp3, err)
	}

	var transcript string
	if next, ok := n.NextElement(); ok {
		transcript, _ = next.Attr("href")
	}

	return Talk{
		Date:       date,
		Title:      title,
		MP3:        mp3,
		Transcript: transcript,
	}, nil
}

// ParseTalks parses every audio link on the page, in document order.
// The first talk that fails to parse aborts the whole page.
// A page without audio links yields an empty slice.
func ParseTalks(doc DocumentView) ([]Talk, error) {
	nodes := doc.SelectAll(AudioLinkSelector)

	talks := make([]Talk, 0, len(nodes))
	for i, n := range nodes {
		talk, err := ParseTalk(n)
		if err != nil {
			return nil, fmt.Errorf("talk %d: %w", i+1, err)
		}
		talks = append(talks, talk)
	}
	return talks, nil
}
