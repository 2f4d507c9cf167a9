package tetris_test

import (
	"fmt"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

// This example drops an O piece from the spawn anchor until it locks on the
// floor and a new piece spawns.
func ExampleSession() {
	session := tetris.NewSession(
		tetris.WithPiece(tetris.Piece{Shape: tetris.ShapeO, Position: tetris.SpawnAnchor}),
		tetris.WithRandom(tetris.FixedDraws(0.0)),
		tetris.WithLockObserver(func(ev tetris.LockEvent) {
			fmt.Printf("locked %s at %s\n", ev.Piece.Shape, ev.Piece.Position)
		}),
	)

	for session.Stats().Locks == 0 {
		session.Tick()
	}

	frame := session.RenderWith(tetris.Glyphs{Empty: '.', Solid: '#'})
	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	fmt.Println(lines[0])
	fmt.Println(lines[len(lines)-2])
	fmt.Println(lines[len(lines)-1])
	fmt.Println(session.Piece().Shape)
	// Output:
	// locked O at (4, 19)
	// ....#.....
	// ....##....
	// ....##....
	// I
}
