package sqlite

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/talkfeed"
)

// HashCatalog returns a stable xxHash of the catalog content as a hex string.
// Two catalogs hash equally when their description and talks, in order,
// are identical.
func HashCatalog(c *talkfeed.Catalog) string {
	d := xxhash.New()
	writeField(d, c.Description)
	for _, t := range c.Talks {
		writeField(d, t.MP3)
		writeField(d, t.Title)
		writeField(d, t.Transcript)
	}

	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, d.Sum64())
	return hex.EncodeToString(b)
}

// writeField writes s followed by a NUL separator so that adjacent fields
// cannot run together.
func writeField(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	_, _ = d.Write([]byte{0})
}
