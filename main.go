package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/config"
	"github.com/robalobadob/wordle/apps/cli/internal/daily"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/term"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg, err = config.ParseFlags(cfg, os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("invalid arguments")
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	target, err := chooseTarget(cfg, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to choose target word")
	}

	color := cfg.Color.Enabled(os.Stdout)
	stdout := term.Stdout(color)
	g := game.New(target)
	// Won and exhausted both exit 0.
	if _, err := game.Run(g, term.NewPrompter(os.Stdin, stdout), term.NewScreen(stdout, term.NewRenderer(stdout, color))); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// chooseTarget resolves the target word: -answer first, then the daily word,
// then a random pick from the pool.
func chooseTarget(cfg config.Config, now time.Time) (game.Word, error) {
	if cfg.Answer != "" {
		w, err := game.ParseWord(cfg.Answer)
		if err != nil {
			return game.Word{}, fmt.Errorf("-answer: %w", err)
		}
		return w, nil
	}

	pool, err := words.Load(cfg.WordsFile)
	if err != nil {
		return game.Word{}, err
	}
	if cfg.Daily {
		idx := daily.WordIndex(now, cfg.DailySalt, pool.Len())
		log.Debug().Str("date", daily.DateKey(now)).Int("index", idx).Msg("daily word selected")
		return pool.At(idx), nil
	}
	return pool.Pick(), nil
}
