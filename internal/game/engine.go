// internal/game/engine.go
//
// Game session engine for a single unscramble game.
// Responsibilities:
//   - Hold the words guessed so far and the running score.
//   - Validate and apply guesses (via Validate), scoring accepted ones.
//   - Track state transitions: playing → ended (quit or end of input).
//   - Produce the solution report when the player quits.
//
// Notes:
//   - A Session is not safe for concurrent use; the game is single-threaded.
//   - The dictionary and params are shared read-only inputs.
//   - ID is a random UUID used to correlate log events.
package game

import (
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/unscramble/internal/words"
)

// Session is the state of one game.
type Session struct {
	ID     string
	Params Params

	dict    Lexicon
	guessed words.Set
	found   []string // accepted words in guess order
	score   int
	state   State
}

// NewSession starts a game over dict with the rules in p.
func NewSession(dict Lexicon, p Params) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Params:  p,
		dict:    dict,
		guessed: make(words.Set),
		state:   StatePlaying,
	}
}

// Guess validates input and, if it is accepted, records it and adds its
// points to the score. Rejected guesses leave the session unchanged.
//
// Guess returns ErrSessionEnded once the session has ended.
func (s *Session) Guess(input string) (Verdict, error) {
	if s.state == StateEnded {
		return Verdict{}, ErrSessionEnded
	}
	w := Normalize(input)
	v := Verdict{Word: w, Reason: Validate(w, s.Params, s.guessed, s.dict), Score: s.score}
	if v.Accepted() {
		s.guessed.Add(w)
		s.found = append(s.found, w)
		v.Points = Score(len(w), s.Params.LenMax)
		s.score += v.Points
		v.Score = s.score
	}

	log.Debug().
		Str("session", s.ID).
		Str("word", w).
		Str("reason", string(v.Reason)).
		Int("score", v.Score).
		Msg("guess")
	return v, nil
}

// Quit ends the session and reports every word the player could have found.
func (s *Session) Quit() (Solutions, error) {
	if s.state == StateEnded {
		return Solutions{}, ErrSessionEnded
	}
	s.state = StateEnded
	sol := Solve(s.dict.Words(), s.Params)

	log.Debug().
		Str("session", s.ID).
		Int("score", s.score).
		Int("solutions", len(sol.Words)).
		Int("maxScore", sol.MaxScore).
		Msg("quit")
	return sol, nil
}

// Abandon ends the session without a solution report, as when input runs out.
func (s *Session) Abandon() {
	if s.state == StateEnded {
		return
	}
	s.state = StateEnded
	log.Debug().Str("session", s.ID).Int("score", s.score).Msg("input ended")
}

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Found returns the accepted words in the order they were guessed.
func (s *Session) Found() []string { return slices.Clone(s.found) }

// Outcome reports OutcomeWon if any word scored, else OutcomeNoWords.
func (s *Session) Outcome() Outcome {
	if s.score > 0 {
		return OutcomeWon
	}
	return OutcomeNoWords
}
