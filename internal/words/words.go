// internal/words/words.go
//
// Dictionary loading for the game engine.
//
// Responsibilities:
//   - Read a line-oriented word list from a file, a reader, or the embedded default.
//   - Normalize each line (strip terminator, uppercase) and skip non-alphabetic lines.
//   - Keep the words in source order plus a set for O(1) membership tests.
//
// Constraints:
//   • Words are uppercase A–Z only; every entry has at least one letter.
//   • Lines starting with '#' are comments.
//   • Duplicates in the source are kept (the solution report dedupes them).
//   • A Dictionary is immutable once built.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/unscramble/assets"
)

const (
	maxLineBytes  = 1 << 20 // bounds a single dictionary line
	commentPrefix = "#"     // lines starting with this are comments
)

// Dictionary is an ordered, read-only list of uppercase words.
type Dictionary struct {
	words []string // source order, duplicates kept
	set   Set      // distinct words
}

// New builds a Dictionary from raw lines, applying the same normalization
// as Load. Invalid entries are skipped.
func New(lines ...string) *Dictionary {
	d := &Dictionary{set: make(Set, len(lines))}
	for _, line := range lines {
		d.add(line)
	}
	return d
}

// Load reads the dictionary file at path.
// The file is closed before Load returns, whatever the outcome.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", d.Len()).Int("distinct", d.set.Len()).Msg("dictionary loaded")
	return d, nil
}

// Builtin loads the embedded default word list.
func Builtin() (*Dictionary, error) {
	f, err := assets.OpenWordList()
	if err != nil {
		return nil, fmt.Errorf("words: open builtin list: %w", err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("words: read builtin list: %w", err)
	}
	log.Debug().Str("path", assets.WordListName).Int("words", d.Len()).Msg("builtin dictionary loaded")
	return d, nil
}

// Read consumes one word per line from r.
func Read(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{set: make(Set)}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		d.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) add(line string) {
	if strings.HasPrefix(line, commentPrefix) {
		return
	}
	w, ok := Normalize(line)
	if !ok {
		return
	}
	d.words = append(d.words, w)
	d.set.Add(w)
}

// Normalize strips the line terminator and uppercases line.
// It reports false for empty lines and lines with any non-letter.
func Normalize(line string) (string, bool) {
	w := Upper(strings.TrimRight(line, "\r\n"))
	if w == "" || !IsAlpha(w) {
		return "", false
	}
	return w, true
}

// Upper uppercases ASCII letters only. Other characters are left alone, so
// runes such as 'ſ' do not turn into ASCII letters.
func Upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// IsAlpha reports whether s is all uppercase ASCII letters.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Words returns the words in source order, duplicates included.
// The returned slice is a copy.
func (d *Dictionary) Words() []string { return slices.Clone(d.words) }

// Contains reports whether w (any case) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	return d.set.Contains(Upper(w))
}

// Len returns the number of entries, duplicates included.
func (d *Dictionary) Len() int { return len(d.words) }
