// internal/config/config.go
//
// Runtime configuration for the terminal client.
// Values come from the environment (optionally seeded from .env by main via
// godotenv) and can be overridden on the command line.
//
// Environment variables:
//   LOG_LEVEL     zerolog level, default "warn" so logs stay off the board
//   WORDS_FILE    word list path; empty → embedded list
//   WORDLE_COLOR  auto | always | never (default auto)
//   NO_COLOR      any non-empty value forces never
//   DAILY_SALT    key for daily word selection (default "local_dev_salt")
//
// Flags:
//   -daily          pick today's word instead of a random one
//   -color MODE     overrides WORDLE_COLOR
//   -answer WORD    fix the target (testing)
//   -words PATH     overrides WORDS_FILE

package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/cli/internal/term"
)

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel  zerolog.Level
	WordsFile string
	Color     term.ColorMode
	DailySalt string
	Daily     bool
	Answer    string
}

// FromEnv reads configuration from environment variables.
func FromEnv() (Config, error) {
	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	color, err := term.ParseColorMode(getEnv("WORDLE_COLOR", string(term.ColorAuto)))
	if err != nil {
		return Config{}, fmt.Errorf("WORDLE_COLOR: %w", err)
	}
	if os.Getenv("NO_COLOR") != "" {
		color = term.ColorNever
	}
	return Config{
		LogLevel:  lvl,
		WordsFile: os.Getenv("WORDS_FILE"),
		Color:     color,
		DailySalt: getEnv("DAILY_SALT", "local_dev_salt"),
	}, nil
}

// ParseFlags applies command-line overrides on top of cfg.
// Usage and parse errors are written to stderr.
func ParseFlags(cfg Config, args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("wordle", flag.ContinueOnError)
	fs.SetOutput(stderr)

	color := string(cfg.Color)
	fs.BoolVar(&cfg.Daily, "daily", cfg.Daily, "play today's word (same for everyone sharing DAILY_SALT)")
	fs.StringVar(&color, "color", color, "colorize output: auto, always or never")
	fs.StringVar(&cfg.Answer, "answer", cfg.Answer, "fixed five-letter target (testing)")
	fs.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "word list file (one word per line)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	mode, err := term.ParseColorMode(color)
	if err != nil {
		err = fmt.Errorf("-color: %w", err)
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return cfg, err
	}
	cfg.Color = mode
	return cfg, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
