// internal/words/words.go
//
// Provides the candidate target word pool for the game engine.
//
// Responsibilities:
//   - Load the candidate list from a file or fall back to the embedded default.
//   - Keep only entries that are exactly five letters.
//   - Pick a target uniformly at random (crypto/rand unless a source is injected).
//
// Word list:
//   - One word per line; blank lines and "#" comments are ignored.
//   - Duplicates are kept. Each entry is an independent draw, so a word that
//     appears twice is twice as likely.
//   - Case is preserved; evaluation is case-sensitive.
//
// Environment variables (read by the config package):
//   WORDS_FILE=/path/to/words.txt

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/assets"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// ErrEmptyPool is returned when no valid five-letter entries were loaded.
var ErrEmptyPool = errors.New("words: pool is empty")

// Source returns an integer in [0, n). n is always > 0.
type Source func(n int) int

// Pool is an immutable list of candidate targets.
type Pool struct {
	words []game.Word
	intn  Source
}

// Option customises a Pool.
type Option func(*Pool)

// WithSource replaces the crypto/rand picker (useful for tests).
func WithSource(src Source) Option {
	return func(p *Pool) { p.intn = src }
}

// New builds a pool from list, dropping entries that are not five letters.
// Returns ErrEmptyPool if nothing survives.
func New(list []string, opts ...Option) (*Pool, error) {
	p := &Pool{intn: cryptoIntn}
	for _, o := range opts {
		o(p)
	}
	for _, s := range list {
		s = strings.TrimSpace(s)
		if !isAlpha(s) {
			log.Debug().Str("word", s).Msg("skipping non-alphabetic entry")
			continue
		}
		w, err := game.ParseWord(s)
		if err != nil {
			log.Debug().Str("word", s).Msg("skipping entry of wrong length")
			continue
		}
		p.words = append(p.words, w)
	}
	if len(p.words) == 0 {
		return nil, ErrEmptyPool
	}
	return p, nil
}

// Load builds a pool from path, or from the embedded list if path is empty.
func Load(path string, opts ...Option) (*Pool, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = assets.WordList()
	} else {
		list, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	p, err := New(list, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("words", p.Len()).Str("file", path).Msg("word pool loaded")
	return p, nil
}

// readWordFile loads one word per line from a file, skipping blanks and comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is made only of letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// randReader is the entropy source for cryptoIntn.
var randReader io.Reader = rand.Reader

// cryptoIntn picks uniformly from [0, n) using crypto/rand.
// On entropy failure it falls back to index 0 and logs a warning.
func cryptoIntn(n int) int {
	nBig, err := rand.Int(randReader, big.NewInt(int64(n)))
	if err != nil {
		log.Warn().Err(err).Int("n", n).Msg("crypto/rand failed; picking first word")
		return 0
	}
	return int(nBig.Int64())
}

// Pick returns a uniformly random entry.
func (p *Pool) Pick() game.Word {
	return p.words[p.intn(len(p.words))]
}

// At returns entry i modulo the pool size; used for deterministic selection.
func (p *Pool) At(i int) game.Word {
	n := len(p.words)
	return p.words[((i%n)+n)%n]
}

// Len returns the number of entries, duplicates included.
func (p *Pool) Len() int { return len(p.words) }

// Words returns a copy of the entries in load order.
func (p *Pool) Words() []game.Word {
	out := make([]game.Word, len(p.words))
	copy(out, p.words)
	return out
}
