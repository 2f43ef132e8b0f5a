// assets/embed.go
//
// Embedded built-in word list.
// Used by the words package when neither --dict nor UNSCRAMBLE_DICT names a
// dictionary file, so the game runs out of the box.

package assets

import (
	"embed"
	"io/fs"
)

// WordListName is the name of the embedded word list.
const WordListName = "words.txt"

//go:embed words.txt
var FS embed.FS

// OpenWordList opens the embedded word list for reading.
// The caller must close the returned file.
func OpenWordList() (fs.File, error) {
	return FS.Open(WordListName)
}
