// apps/solver/assets/embed.go
//
// Embedded default word list so the solver runs with zero configuration.
// Production deployments point WORDS_FILE at the full list instead.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// DefaultWords opens the embedded fixed-width word list.
func DefaultWords() (fs.File, error) {
	return FS.Open("words.txt")
}
