package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/talkfeed"
)

// Ensure LoggingParser implements talkfeed.Parser.
var _ talkfeed.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   talkfeed.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next talkfeed.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(html string) (doc talkfeed.DocumentView, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("parse document",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html)
}
