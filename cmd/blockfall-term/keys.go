package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/tetris"
)

type command int

const (
	commandNone command = iota
	commandAction
	commandQuit
)

// translateKey maps a key press to a session action or to quit. Terminals
// report no key releases, so Down ticks once per press (and per repeat).
func translateKey(key tcell.Key, r rune) (command, tetris.Action) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return commandQuit, 0
	case tcell.KeyLeft:
		return commandAction, tetris.ActionMoveLeft
	case tcell.KeyRight:
		return commandAction, tetris.ActionMoveRight
	case tcell.KeyDown:
		return commandAction, tetris.ActionTick
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return commandQuit, 0
		case 'z', 'Z':
			return commandAction, tetris.ActionRotateLeft
		case 'x', 'X':
			return commandAction, tetris.ActionRotateRight
		}
	}
	return commandNone, 0
}
