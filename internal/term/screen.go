package term

import (
	"bufio"
	"io"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// Screen writes rendered results, one per line. It implements game.Display.
type Screen struct {
	out *bufio.Writer
	r   Renderer
}

// NewScreen writes to w using r.
func NewScreen(w io.Writer, r Renderer) *Screen {
	return &Screen{out: bufio.NewWriter(w), r: r}
}

// Show writes res and flushes so output never trails the next prompt.
func (s *Screen) Show(res game.Result) error {
	if _, err := s.out.WriteString(s.r.Render(res) + "\n"); err != nil {
		return err
	}
	return s.out.Flush()
}
