package game

import (
	"cmp"
	"slices"

	"github.com/robalobadob/unscramble/internal/words"
)

// Solve lists every distinct dictionary word that is formable from p.Pool and
// at least p.LenMin long, and sums their scores.
//
// Words are filtered first and then deduplicated. The result is sorted by
// length, then alphabetically. dict is not modified.
func Solve(dict []string, p Params) Solutions {
	seen := make(words.Set)
	var out []string
	for _, raw := range dict {
		w := Normalize(raw)
		if len(w) < p.LenMin || !IsFormable(w, p.Pool) {
			continue
		}
		if seen.Add(w) {
			out = append(out, w)
		}
	}

	slices.SortFunc(out, func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	total := 0
	for _, w := range out {
		total += Score(len(w), p.LenMax)
	}
	return Solutions{Words: out, MaxScore: total}
}
