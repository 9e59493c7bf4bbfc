// Package assets embeds the default static files published next to the feed.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed main.css dt_art.jpeg
var files embed.FS

// FS returns the embedded static files.
func FS() fs.FS {
	return files
}
