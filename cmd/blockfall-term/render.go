package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

var (
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	solidStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	pieceStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle  = tcell.StyleDefault
)

// RenderSystem draws the visible playfield with the active piece overlaid,
// followed by a status line. Drawing is deferred until the frame's actions
// have been applied.
type RenderSystem struct {
	Screen tcell.Screen
	Glyphs tetris.Glyphs
}

func (r *RenderSystem) Execute(frame *engine.UpdateFrame) {
	frame.Commands.Defer(func() {
		r.draw(frame.Session)
	})
}

func (r *RenderSystem) draw(session *tetris.Session) {
	r.Screen.Clear()

	grid := session.Grid()
	composite := session.Composite()
	for y := tetris.HiddenRows; y < tetris.Height-1; y++ {
		for x := 1; x < tetris.Width-1; x++ {
			glyph, style := r.Glyphs.Empty, emptyStyle
			switch {
			case grid.At(x, y) == tetris.Solid:
				glyph, style = r.Glyphs.Solid, solidStyle
			case composite.At(x, y) == tetris.Solid:
				glyph, style = r.Glyphs.Solid, pieceStyle
			}
			r.Screen.SetContent(x-1, y-tetris.HiddenRows, glyph, nil, style)
		}
	}

	stats := session.Stats()
	status := fmt.Sprintf("lines %d  locks %d", stats.LinesCleared, stats.Locks)
	for i, ch := range status {
		r.Screen.SetContent(i, tetris.Height-tetris.HiddenRows, ch, nil, textStyle)
	}

	r.Screen.Show()
}
