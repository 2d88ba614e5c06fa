package game

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// Kind classifies a narration line for colouring
type Kind int

const (
	KindRoom Kind = iota
	KindWall
	KindDoor
)

// Narrator writes one line per message
type Narrator struct {
	w       io.Writer
	colored bool
	styles  map[Kind]color.Style
}

// NewNarrator creates a narrator writing to w. When colored is set each
// line is styled by its kind.
func NewNarrator(w io.Writer, colored bool) *Narrator {
	return &Narrator{
		w:       w,
		colored: colored,
		styles: map[Kind]color.Style{
			KindRoom: {color.FgBlue, color.OpBold},
			KindWall: {color.FgRed},
			KindDoor: {color.FgGreen},
		},
	}
}

// Say writes msg followed by a newline
func (n *Narrator) Say(kind Kind, msg string) {
	if n.colored {
		if style, ok := n.styles[kind]; ok {
			msg = style.Sprint(msg)
		}
	}
	fmt.Fprintln(n.w, msg)
}
