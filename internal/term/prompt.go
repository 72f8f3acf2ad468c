// internal/term/prompt.go
//
// Line-oriented guess input for the terminal client.
// Responsibilities:
//   - Print the prompt marker and flush before blocking on input.
//   - Trim the line terminator and re-prompt until the text is five characters.
//   - Surface read errors (closed stdin etc.) to the turn loop.

package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

const (
	// Prompt is written before every read.
	Prompt = "> "
	// LengthWarning is written after a guess of the wrong length.
	LengthWarning = "< Make sure your guess has exactly 5 letters!\n\n"
)

// Prompter reads guesses from a line-based reader. It implements game.GuessSource.
type Prompter struct {
	in  *bufio.Reader
	out *bufio.Writer
	eof bool
}

// NewPrompter reads from r and writes prompts and warnings to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: bufio.NewWriter(w)}
}

// NextGuess blocks until a five-character line is read.
// Invalid lines are answered with LengthWarning and a fresh prompt.
// A final unterminated line is still accepted; after that io.EOF is returned.
func (p *Prompter) NextGuess() (game.Word, error) {
	for {
		if p.eof {
			return game.Word{}, fmt.Errorf("read guess: %w", io.EOF)
		}
		if _, err := p.out.WriteString(Prompt); err != nil {
			return game.Word{}, fmt.Errorf("write prompt: %w", err)
		}
		if err := p.out.Flush(); err != nil {
			return game.Word{}, fmt.Errorf("flush prompt: %w", err)
		}

		line, err := p.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return game.Word{}, fmt.Errorf("read guess: %w", err)
			}
			if line == "" {
				return game.Word{}, fmt.Errorf("read guess: %w", io.EOF)
			}
			p.eof = true
		}

		w, err := game.ParseWord(strings.TrimRight(line, "\r\n"))
		if err == nil {
			return w, nil
		}
		log.Debug().Err(err).Msg("rejected guess")
		if _, err := p.out.WriteString(LengthWarning); err != nil {
			return game.Word{}, fmt.Errorf("write warning: %w", err)
		}
		if err := p.out.Flush(); err != nil {
			return game.Word{}, fmt.Errorf("flush warning: %w", err)
		}
	}
}
