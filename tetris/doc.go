// Package tetris implements the rules of a falling-block puzzle: a walled grid,
// the seven canonical piece shapes, a generic 4x4 rotation transform, collision
// testing, and the tick-driven fall/lock/clear/respawn lifecycle.
//
// A Session owns one Grid and one active Piece. Hosts drive it by calling Tick,
// MoveLeft, MoveRight, RotateLeft and RotateRight and query it with Render.
// Blocked moves and rotations are silently rejected. There is no scoring, no
// preview, no hold and no wall kicks.
//
// Broken internal invariants (indexing outside the grid, an orientation outside
// its four values) panic rather than return errors.
package tetris
