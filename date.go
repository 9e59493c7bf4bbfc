package talkfeed

import (
	"strconv"
	"strings"
	"time"
)

// ArchiveDir is the first path segment of every talk mp3 reference.
const ArchiveDir = "Archive"

// Broadcast slot of the evening talks. The publisher uses a fixed offset
// with no daylight-saving adjustment.
const (
	broadcastHour   = 18
	broadcastOffset = -8 * 60 * 60
)

// BroadcastZone is the fixed UTC-8 zone every talk date is expressed in.
var BroadcastZone = time.FixedZone("UTC-8", broadcastOffset)

// ParseTalkDate infers a talk's broadcast date from its mp3 path.
//
// The path looks like /Archive/<year dir>/YYMMDD_title.mp3; the leading
// slash is optional. The year directory must be present but is otherwise
// ignored. The file name encodes a two-digit year after 2000, a month and a
// day. Some early talks carry no real day; those fall back to the first of
// the month, which is how the publisher's own feed listed them.
func ParseTalkDate(mp3 string) (time.Time, error) {
	path := strings.TrimPrefix(mp3, "/")
	if path == "" {
		return time.Time{}, Errorf(EPATH, "missing archive directory")
	}
	segments := strings.Split(path, "/")
	if len(segments) < 2 {
		return time.Time{}, Errorf(EPATH, "missing year directory")
	}
	if len(segments) < 3 {
		return time.Time{}, Errorf(EPATH, "missing mp3 file name")
	}
	base, filename := segments[0], segments[2]

	if base != ArchiveDir {
		return time.Time{}, Errorf(EPATH, "base directory is not %q", ArchiveDir)
	}

	year, err := strconv.Atoi(slice(filename, 0, 2))
	if err != nil {
		return time.Time{}, Errorf(ENUMERIC, "parsing year: %v", err)
	}
	year += 2000

	month, err := strconv.ParseUint(slice(filename, 2, 4), 10, 32)
	if err != nil {
		return time.Time{}, Errorf(ENUMERIC, "parsing month: %v", err)
	}
	if month < 1 || month > 12 {
		return time.Time{}, Errorf(ENUMERIC, "parsing month: %d out of range", month)
	}

	day := 1
	if text := slice(filename, 4, 6); len(text) == 2 {
		if d, err := strconv.ParseUint(text, 10, 32); err == nil && validDay(year, time.Month(month), int(d)) {
			day = int(d)
		}
	}

	return time.Date(year, time.Month(month), day, broadcastHour, 0, 0, 0, BroadcastZone), nil
}

// slice returns s[from:to] clamped to the length of s.
func slice(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// validDay reports whether day exists in the given month.
func validDay(year int, month time.Month, day int) bool {
	if day < 1 {
		return false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Day() == day
}
