// internal/console/console.go
//
// Line-oriented console front end for a game session.
// Responsibilities:
//   - Print the welcome banner with the length bounds and letters.
//   - Read one guess per line and print the verdict message.
//   - On "q", print every solution and the maximum possible score.
//   - On end of input, stop without the solution report.
//   - Print the final score line.
//
// Notes:
//   - Reads block without a timeout; end of input is a normal way to finish.
//   - Only the exact line "q" quits. "Q" is treated as a guess.
//   - A final "q" without a line terminator still quits.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/unscramble/internal/game"
)

// QuitCommand ends guessing and shows the solutions.
const QuitCommand = "q"

// Run plays s to completion, reading guesses from in and writing to out.
// letters is the pool as shown to the player.
// Run returns an error only if reading input fails.
func Run(s *game.Session, letters string, in io.Reader, out io.Writer) error {
	p := s.Params
	fmt.Fprintln(out, "Welcome to unscramble!")
	fmt.Fprintf(out, "Enter words of length %d to %d made from the letters %q\n", p.LenMin, p.LenMax, letters)

	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			s.Abandon()
			return fmt.Errorf("console: read guess: %w", err)
		}
		if line == "" && err != nil {
			s.Abandon()
			break
		}

		if strings.TrimRight(line, "\r\n") == QuitCommand {
			sol, qerr := s.Quit()
			if qerr != nil {
				return qerr
			}
			for _, w := range sol.Words {
				fmt.Fprintln(out, w)
			}
			fmt.Fprintf(out, "Maximum possible score was %d\n", sol.MaxScore)
			break
		}

		v, gerr := s.Guess(line)
		if gerr != nil {
			return gerr
		}
		fmt.Fprintln(out, Message(v, p))

		if err != nil {
			// Last line had no terminator.
			s.Abandon()
			break
		}
	}

	fmt.Fprintln(out, Farewell(s))
	return nil
}

// Message renders the player-facing text for a verdict.
func Message(v game.Verdict, p game.Params) string {
	switch v.Reason {
	case game.ReasonAccepted:
		return fmt.Sprintf("Good! Score so far is %d", v.Score)
	case game.ReasonNonAlphabetic:
		return "Your word must contain only letters"
	case game.ReasonTooShort:
		return fmt.Sprintf("Word too short - it must have at least %d characters", p.LenMin)
	case game.ReasonTooLong:
		return fmt.Sprintf("Word must have a length of no more than %d characters", p.LenMax)
	case game.ReasonNotFormable:
		return "Word can't be formed from available letters"
	case game.ReasonAlreadyGuessed:
		return "Word has already been guessed"
	case game.ReasonNotInDictionary:
		return "Word can't be found in dictionary file"
	}
	return "Unrecognised guess result: " + string(v.Reason)
}

// Farewell is the last line of a session.
func Farewell(s *game.Session) string {
	if s.Outcome() == game.OutcomeWon {
		return fmt.Sprintf("Game over. You scored %d", s.Score())
	}
	return "No words guessed!"
}
