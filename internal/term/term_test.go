package term

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

func TestPrompterAcceptsValidLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("crane\n"), &out)

	w, err := p.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, "crane", w.String())
	assert.Equal(t, Prompt, out.String())
}

func TestPrompterRepromptsOnBadLength(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("cat\ngoblin\n\ntrace\n"), &out)

	w, err := p.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, "trace", w.String())

	want := strings.Repeat(Prompt+LengthWarning, 3) + Prompt
	assert.Equal(t, want, out.String())
}

func TestPrompterRepromptsOnInvalidUTF8(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("ab\xffcd\ncrane\n"), &out)

	w, err := p.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, "crane", w.String())
	assert.Equal(t, Prompt+LengthWarning+Prompt, out.String())
}

func TestPrompterTrimsCRLF(t *testing.T) {
	p := NewPrompter(strings.NewReader("crane\r\n"), io.Discard)
	w, err := p.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, "crane", w.String())
}

func TestPrompterKeepsCaseAndSpaces(t *testing.T) {
	p := NewPrompter(strings.NewReader("CrAnE\n ab c\n"), io.Discard)

	w, err := p.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, "CrAnE", w.String())

	w, err = p.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, " ab c", w.String())
}

func TestPrompterEOF(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		p := NewPrompter(strings.NewReader(""), io.Discard)
		_, err := p.NextGuess()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("unterminated final line is used", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("crane"), io.Discard)
		w, err := p.NextGuess()
		require.NoError(t, err)
		assert.Equal(t, "crane", w.String())

		_, err = p.NextGuess()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("invalid final line", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader("cra"), &out)
		_, err := p.NextGuess()
		assert.ErrorIs(t, err, io.EOF)
		assert.Contains(t, out.String(), LengthWarning)
	})
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestPrompterReadError(t *testing.T) {
	boom := errors.New("tty gone")
	p := NewPrompter(failingReader{boom}, io.Discard)
	_, err := p.NextGuess()
	assert.ErrorIs(t, err, boom)
}

func TestRenderPlain(t *testing.T) {
	res := game.Evaluate(game.MustParseWord("crane"), game.MustParseWord("trace"))
	assert.Equal(t, "trace", Renderer{}.Render(res))
}

func TestRenderColor(t *testing.T) {
	res := game.Evaluate(game.MustParseWord("crane"), game.MustParseWord("trace"))

	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.ANSI)
	green := lr.NewStyle().Foreground(lipgloss.Color("2"))
	yellow := lr.NewStyle().Foreground(lipgloss.Color("3"))

	want := "t" + green.Render("r") + yellow.Render("a") + yellow.Render("c") + green.Render("e")
	got := NewRenderer(io.Discard, true).Render(res)
	assert.Equal(t, want, got)
	assert.Equal(t, "t\x1b[32mr\x1b[0m\x1b[33ma\x1b[0m\x1b[33mc\x1b[0m\x1b[32me\x1b[0m", got)
}

func TestRenderColorOff(t *testing.T) {
	res := game.Evaluate(game.MustParseWord("crane"), game.MustParseWord("trace"))
	got := NewRenderer(io.Discard, false).Render(res)
	assert.Equal(t, "trace", got)
	assert.NotContains(t, got, "\x1b[")
}

func TestScreenWritesOneLinePerResult(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, Renderer{})
	target := game.MustParseWord("crane")

	require.NoError(t, s.Show(game.Evaluate(target, game.MustParseWord("study"))))
	require.NoError(t, s.Show(game.Evaluate(target, game.MustParseWord("crane"))))
	assert.Equal(t, "study\ncrane\n", out.String())
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{
		"":        ColorAuto,
		"auto":    ColorAuto,
		"ALWAYS":  ColorAlways,
		" never ": ColorNever,
	} {
		got, err := ParseColorMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestColorModeEnabled(t *testing.T) {
	assert.True(t, ColorAlways.Enabled(nil))
	assert.False(t, ColorNever.Enabled(nil))
	assert.False(t, ColorAuto.Enabled(nil))
}

// End-to-end: prompter + screen driving the real turn loop.
func TestPlayThroughTerminal(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("trace\nnope\ncrane\n")
	g := game.New(game.MustParseWord("crane"))

	status, err := game.Run(g, NewPrompter(in, &out), NewScreen(&out, Renderer{}))
	require.NoError(t, err)
	assert.Equal(t, game.StatusWon, status)

	want := Prompt + "trace\n" +
		Prompt + LengthWarning + Prompt + "crane\n"
	assert.Equal(t, want, out.String())
}
