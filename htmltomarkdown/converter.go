// Package htmltomarkdown renders the landing page as Markdown, for hosts
// that display a README instead of serving HTML.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/talkfeed"
)

// Ensure Converter implements talkfeed.Converter at compile time.
var _ talkfeed.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert the landing page.
type Converter struct {
	conv *converter.Converter

	// domain resolves relative links; empty leaves them untouched.
	domain string
}

// NewConverter creates a new Converter. Relative links in the page are
// resolved against domain, so the Markdown stays valid when it is displayed
// away from the published site.
func NewConverter(domain string) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv, domain: domain}
}

// Convert transforms the landing page into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", talkfeed.Errorf(talkfeed.EINVALID, "empty HTML input")
	}

	var result string
	var err error
	if c.domain != "" {
		result, err = c.conv.ConvertString(html, converter.WithDomain(c.domain))
	} else {
		result, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result) + "\n", nil
}
