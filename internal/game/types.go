// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Word: a validated five-character word (target or guess).
//   - Mark / LetterResult / Result: per-letter feedback for one guess.
//   - Status: the state of a single game (in progress / won / exhausted).

package game

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// WordLen is the number of characters in every target and guess.
const WordLen = 5

// ErrWordLength is returned by ParseWord for input that is not WordLen characters.
var ErrWordLength = errors.New("word must be exactly 5 letters")

// ErrWordEncoding is returned by ParseWord for input that is not valid UTF-8.
var ErrWordEncoding = errors.New("word is not valid UTF-8")

// Word is a fixed-length word. Construct it with ParseWord.
type Word [WordLen]rune

// ParseWord validates s and converts it into a Word.
// Characters are kept as typed; no case folding is applied.
func ParseWord(s string) (Word, error) {
	var w Word
	if !utf8.ValidString(s) {
		return w, fmt.Errorf("%q: %w", s, ErrWordEncoding)
	}
	if n := utf8.RuneCountInString(s); n != WordLen {
		return w, fmt.Errorf("%q has %d letters: %w", s, n, ErrWordLength)
	}
	i := 0
	for _, r := range s {
		w[i] = r
		i++
	}
	return w, nil
}

// MustParseWord is like ParseWord but panics on invalid input.
// Intended for constants and tests.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// String returns the word as text.
func (w Word) String() string { return string(w[:]) }

// contains reports whether r appears at any position of w.
func (w Word) contains(r rune) bool {
	for _, c := range w {
		if c == r {
			return true
		}
	}
	return false
}

// Mark is the classification of a single guessed letter.
//   - MarkExact:   letter is in the target at the same position.
//   - MarkPartial: letter is in the target at some other position.
//   - MarkMissing: letter does not appear in the target.
type Mark int

const (
	MarkMissing Mark = iota
	MarkPartial
	MarkExact
)

func (m Mark) String() string {
	switch m {
	case MarkExact:
		return "exact"
	case MarkPartial:
		return "partial"
	case MarkMissing:
		return "missing"
	}
	return fmt.Sprintf("Mark(%d)", int(m))
}

// LetterResult pairs a Mark with the letter the player typed at that position.
type LetterResult struct {
	Mark   Mark
	Letter rune
}

func (lr LetterResult) String() string {
	return fmt.Sprintf("%s(%c)", lr.Mark, lr.Letter)
}

// Result is the feedback for one guess, one entry per position.
type Result [WordLen]LetterResult

// Solved reports whether every letter is MarkExact.
func (r Result) Solved() bool {
	for _, lr := range r {
		if lr.Mark != MarkExact {
			return false
		}
	}
	return true
}

// Guess reconstructs the guessed word from the carried letters.
func (r Result) Guess() Word {
	var w Word
	for i, lr := range r {
		w[i] = lr.Letter
	}
	return w
}

// Status is the coarse state of a game.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Finished reports whether s is terminal.
func (s Status) Finished() bool { return s != StatusInProgress }
