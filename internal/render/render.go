// Package render draws boards for terminals. Colors follow the
// capabilities of the output; tests use the ASCII profile.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/ChizhovVadim/CounterReversi/pkg/common"
)

const (
	blackColor = "#e0e0e0"
	whiteColor = "#ff8700"
	hintColor  = "#5fafff"
	lastColor  = "#ffd700"
	gridColor  = "#6c6c6c"
)

type Renderer struct {
	out *termenv.Output
}

func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Board draws b with coordinates. Squares in hints are marked as legal
// moves; last, unless MoveEmpty, is highlighted.
func (r *Renderer) Board(b *common.Board, hints []common.Move, last common.Move) string {
	var sb = &strings.Builder{}
	sb.WriteString(r.grid("  a b c d e f g h"))
	sb.WriteString("\n")
	for row := 0; row < common.BoardSize; row++ {
		sb.WriteString(r.grid(fmt.Sprint(row + 1)))
		for col := 0; col < common.BoardSize; col++ {
			var m = common.MakeMove(row, col)
			sb.WriteString(" ")
			sb.WriteString(r.square(b.At(m), common.ContainsMove(hints, m), m == last))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *Renderer) square(side common.Side, hint, last bool) string {
	switch side {
	case common.Black:
		return r.disc("X", blackColor, last)
	case common.White:
		return r.disc("O", whiteColor, last)
	}
	if hint {
		return r.out.String("*").Foreground(r.out.Color(hintColor)).String()
	}
	return r.grid(".")
}

func (r *Renderer) disc(s, color string, last bool) string {
	var style = r.out.String(s).Bold()
	if last {
		return style.Foreground(r.out.Color(lastColor)).Underline().String()
	}
	return style.Foreground(r.out.Color(color)).String()
}

func (r *Renderer) grid(s string) string {
	return r.out.String(s).Foreground(r.out.Color(gridColor)).String()
}

// Status is a one line summary: disc counts and whose turn it is.
func (r *Renderer) Status(g *common.Game) string {
	var black, white = g.Score()
	var counts = fmt.Sprintf("X %d - %d O", black, white)
	if g.IsOver() {
		var result = "draw"
		switch g.Winner() {
		case common.Black:
			result = "X wins"
		case common.White:
			result = "O wins"
		}
		return counts + "  game over, " + r.out.String(result).Bold().String()
	}
	return fmt.Sprintf("%v  %v to move", counts, g.Side)
}

// Game draws the board of g with the legal moves of the side to move.
func (r *Renderer) Game(g *common.Game) string {
	var last = common.MoveEmpty
	if len(g.Moves) != 0 {
		last = g.Moves[len(g.Moves)-1]
	}
	return r.Board(&g.Board, g.LegalMoves(), last) + r.Status(g) + "\n"
}

// Fprint writes the rendering of g to w.
func (r *Renderer) Fprint(w io.Writer, g *common.Game) error {
	var _, err = io.WriteString(w, r.Game(g))
	return err
}
