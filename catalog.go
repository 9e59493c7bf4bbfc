package talkfeed

import (
	"fmt"
	"strings"
)

// Catalog is the structured form of the archive page.
type Catalog struct {
	Description string `json:"description"`

	// Talks are in page order, newest first.
	Talks []Talk `json:"talks"`
}

// Validate returns an error if the catalog contains invalid fields.
func (c *Catalog) Validate() error {
	if c.Description == "" {
		return Errorf(EINVALID, "catalog description required")
	}
	for i := range c.Talks {
		if c.Talks[i].MP3 == "" {
			return Errorf(EINVALID, "talk %d: mp3 required", i+1)
		}
		if c.Talks[i].Title == "" {
			return Errorf(EINVALID, "talk %d: title required", i+1)
		}
	}
	return nil
}

// Recent returns up to n talks from the top of the catalog.
func (c *Catalog) Recent(n int) []Talk {
	if n > len(c.Talks) {
		n = len(c.Talks)
	}
	return c.Talks[:n]
}

// RecentTranscripts returns up to n of the newest talks that have a
// transcript.
func (c *Catalog) RecentTranscripts(n int) []Talk {
	var talks []Talk
	for _, t := range c.Talks {
		if len(talks) == n {
			break
		}
		if t.HasTranscript() {
			talks = append(talks, t)
		}
	}
	return talks
}

// ParseCatalog extracts the description and every talk from the archive
// page. It fails when the description is missing or any talk is malformed;
// it never returns a partial catalog.
func ParseCatalog(doc DocumentView) (*Catalog, error) {
	description, ok := FindDescription(doc)
	if !ok {
		return nil, Errorf(ESTRUCTURE, "couldn't find description")
	}

	talks, err := ParseTalks(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing talks: %w", err)
	}

	return &Catalog{Description: description, Talks: talks}, nil
}

// FindDescription returns the first text of the archive's full description
// block, trimmed. Whitespace-only fragments between tags are skipped.
func FindDescription(doc DocumentView) (string, bool) {
	n, ok := doc.Descend(ContentSelector, ArchiveSelector, DescriptionSelector)
	if !ok {
		return "", false
	}
	for _, text := range n.Texts() {
		if text = strings.TrimSpace(text); text != "" {
			return text, true
		}
	}
	return "", false
}
