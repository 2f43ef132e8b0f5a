package game

import (
	"strings"

	"github.com/robalobadob/unscramble/internal/words"
)

// Normalize prepares raw player input for validation:
// trailing newline and whitespace are dropped and letters uppercased.
func Normalize(input string) string {
	return words.Upper(strings.TrimRight(input, " \t\r\n"))
}

// Validate applies the acceptance rules to candidate in order and returns the
// first one it breaks, or ReasonAccepted.
//
// Rules:
//  1. letters only
//  2. at least p.LenMin long
//  3. at most p.LenMax long
//  4. formable from p.Pool
//  5. not in guessed
//  6. in dict
//
// Validate has no side effects; recording the guess is the caller's job.
func Validate(candidate string, p Params, guessed, dict WordLookup) Reason {
	w := Normalize(candidate)
	switch {
	case !words.IsAlpha(w):
		return ReasonNonAlphabetic
	case len(w) < p.LenMin:
		return ReasonTooShort
	case len(w) > p.LenMax:
		return ReasonTooLong
	case !IsFormable(w, p.Pool):
		return ReasonNotFormable
	case guessed.Contains(w):
		return ReasonAlreadyGuessed
	case !dict.Contains(w):
		return ReasonNotInDictionary
	}
	return ReasonAccepted
}
