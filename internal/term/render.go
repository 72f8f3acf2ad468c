package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// Letter styles: exact → green, partial → yellow, missing → plain.
var (
	exactColor   = lipgloss.Color("2")
	partialColor = lipgloss.Color("3")
)

// Renderer turns a game.Result into one line of text.
// The zero value renders plain letters.
type Renderer struct {
	styled  bool
	exact   lipgloss.Style
	partial lipgloss.Style
}

// NewRenderer builds a Renderer for output written to w. With color on the
// lipgloss profile is forced to ANSI (16 colors); with color off it is Ascii,
// so no escape sequences are produced whatever w is.
func NewRenderer(w io.Writer, color bool) Renderer {
	lr := lipgloss.NewRenderer(w)
	if color {
		lr.SetColorProfile(termenv.ANSI)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	return Renderer{
		styled:  true,
		exact:   lr.NewStyle().Foreground(exactColor),
		partial: lr.NewStyle().Foreground(partialColor),
	}
}

// Render styles each letter and concatenates them with no separator.
func (r Renderer) Render(res game.Result) string {
	var b strings.Builder
	for _, lr := range res {
		letter := string(lr.Letter)
		if !r.styled {
			b.WriteString(letter)
			continue
		}
		switch lr.Mark {
		case game.MarkExact:
			b.WriteString(r.exact.Render(letter))
		case game.MarkPartial:
			b.WriteString(r.partial.Render(letter))
		default:
			b.WriteString(letter)
		}
	}
	return b.String()
}

// ColorMode selects when letters are colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto/always/never (case-insensitive, empty → auto).
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Enabled resolves the mode against f; auto means "f is a terminal".
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Stdout returns a writer for game output. On Windows consoles the colorable
// wrapper translates ANSI sequences; elsewhere it is os.Stdout. With color
// off, escape sequences are stripped.
func Stdout(color bool) io.Writer {
	if color {
		return colorable.NewColorableStdout()
	}
	return colorable.NewNonColorable(os.Stdout)
}
