package mock

import "github.com/fwojciec/talkfeed"

var _ talkfeed.Converter = (*Converter)(nil)

// Converter is a mock implementation of talkfeed.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
