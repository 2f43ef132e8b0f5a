// internal/game/types.go
//
// Core type definitions for the unscramble engine.
// Defines:
//   - Reason: outcome of validating one guess (accepted or why not).
//   - State/Outcome: session lifecycle and terminal result.
//   - Params: letter pool and word length bounds for a session.
//   - Verdict/Solutions: values handed back to the console layer.

package game

import (
	"errors"

	"github.com/robalobadob/unscramble/internal/words"
)

// Bonus is added to the score of a word that uses every letter of the pool.
const Bonus = 10

// ErrSessionEnded is returned when a guess or quit arrives after the session ended.
var ErrSessionEnded = errors.New("session ended")

// Reason is the result of validating a guess.
// Exactly one reason is reported: the first rule the guess breaks.
type Reason string

const (
	ReasonAccepted        Reason = "accepted"
	ReasonNonAlphabetic   Reason = "non_alphabetic"
	ReasonTooShort        Reason = "too_short"
	ReasonTooLong         Reason = "too_long"
	ReasonNotFormable     Reason = "not_formable"
	ReasonAlreadyGuessed  Reason = "already_guessed"
	ReasonNotInDictionary Reason = "not_in_dictionary"
)

// State is the lifecycle state of a Session.
type State string

const (
	StatePlaying State = "playing"
	StateEnded   State = "ended"
)

// Outcome is how a session finished.
type Outcome string

const (
	OutcomeWon     Outcome = "won"      // at least one word scored
	OutcomeNoWords Outcome = "no_words" // score still zero
)

// Params are the fixed rules of a session.
type Params struct {
	Pool   string // uppercase letters, duplicates significant
	LenMin int    // shortest acceptable word
	LenMax int    // longest acceptable word, always len(Pool)
}

// NewParams normalizes pool and derives the maximum length from it.
func NewParams(pool string, lenMin int) Params {
	p := words.Upper(pool)
	return Params{Pool: p, LenMin: lenMin, LenMax: len(p)}
}

// Verdict reports what happened to one guess.
type Verdict struct {
	Word   string // normalized guess
	Reason Reason
	Points int // points earned by this guess (0 unless accepted)
	Score  int // running score after this guess
}

// Accepted reports whether the guess scored.
func (v Verdict) Accepted() bool { return v.Reason == ReasonAccepted }

// Solutions is the quit-time report.
type Solutions struct {
	Words    []string // distinct qualifying words, shortest first, then A–Z
	MaxScore int
}

// WordLookup is anything that can answer membership for an uppercase word.
type WordLookup interface {
	Contains(word string) bool
}

// Lexicon is the dictionary as seen by a session.
type Lexicon interface {
	WordLookup
	Words() []string
}
