package talkfeed

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms a rendered landing page into Markdown.
	Convert(html string) (string, error)
}
