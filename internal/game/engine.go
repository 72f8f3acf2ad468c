// internal/game/engine.go
//
// Turn loop for a single terminal Wordle game.
// Responsibilities:
//   - Create a game around a fixed target (6 turns x 5 letters).
//   - Apply guesses: score, record history, transition in_progress → won/exhausted.
//   - Drive the loop against a GuessSource and a Display until the game ends.
//
// Notes:
//   - A winning result is displayed on its own and never enters History.
//   - Non-winning turns redisplay the whole History, oldest first.
//   - There is no loss message; callers read Status() if they care.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// MaxTurns bounds the number of guesses in one game.
const MaxTurns = 6

// ErrFinished is returned by Apply once the game has reached a terminal state.
var ErrFinished = errors.New("game finished")

// GuessSource supplies validated guesses, one per call. Implementations
// handle re-prompting themselves and only return a conforming Word or an error.
type GuessSource interface {
	NextGuess() (Word, error)
}

// Display shows one Result to the player.
type Display interface {
	Show(r Result) error
}

// Game holds the state of one game. The zero value is not usable; call New.
type Game struct {
	target  Word
	turns   int
	status  Status
	history []Result
}

// New starts a game in progress with no turns taken.
func New(target Word) *Game {
	return &Game{target: target, status: StatusInProgress}
}

// Target returns the hidden word.
func (g *Game) Target() Word { return g.target }

// Turns returns the number of completed turns (winning turn included).
func (g *Game) Turns() int { return g.turns }

// Status returns the current state.
func (g *Game) Status() Status { return g.status }

// History returns a copy of the non-winning results in submission order.
func (g *Game) History() []Result {
	out := make([]Result, len(g.history))
	copy(out, g.history)
	return out
}

// Apply scores guess and advances the state machine by one turn.
// Returns the result of this guess, or ErrFinished if the game is over.
//
// State transitions:
//   - all letters Exact → StatusWon (result not added to History)
//   - else result appended; once turns reach MaxTurns → StatusExhausted
func (g *Game) Apply(guess Word) (Result, error) {
	if g.status.Finished() {
		return Result{}, ErrFinished
	}
	res := Evaluate(g.target, guess)
	if res.Solved() {
		g.status = StatusWon
	} else {
		g.history = append(g.history, res)
	}
	g.turns++
	if g.status == StatusInProgress && g.turns >= MaxTurns {
		g.status = StatusExhausted
	}
	log.Debug().Int("turn", g.turns).Stringer("status", g.status).Msg("turn applied")
	return res, nil
}

// Run plays g to completion, pulling guesses from src and writing to out.
// After a win only the winning result is shown; after any other turn the
// whole History is shown again.
// Errors come only from src or out; the returned Status is the final state.
func Run(g *Game, src GuessSource, out Display) (Status, error) {
	log.Trace().Stringer("target", g.target).Msg("game started")
	for !g.status.Finished() {
		guess, err := src.NextGuess()
		if err != nil {
			return g.status, fmt.Errorf("next guess: %w", err)
		}
		res, err := g.Apply(guess)
		if err != nil {
			return g.status, err
		}
		if g.status == StatusWon {
			if err := out.Show(res); err != nil {
				return g.status, fmt.Errorf("show result: %w", err)
			}
			break
		}
		for _, h := range g.history {
			if err := out.Show(h); err != nil {
				return g.status, fmt.Errorf("show history: %w", err)
			}
		}
	}
	log.Info().Stringer("status", g.status).Int("turns", g.turns).Msg("game over")
	return g.status, nil
}
