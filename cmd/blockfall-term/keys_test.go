package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/tetris"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		r      rune
		cmd    command
		action tetris.Action
	}{
		{"left", tcell.KeyLeft, 0, commandAction, tetris.ActionMoveLeft},
		{"right", tcell.KeyRight, 0, commandAction, tetris.ActionMoveRight},
		{"down ticks", tcell.KeyDown, 0, commandAction, tetris.ActionTick},
		{"z rotates left", tcell.KeyRune, 'z', commandAction, tetris.ActionRotateLeft},
		{"x rotates right", tcell.KeyRune, 'X', commandAction, tetris.ActionRotateRight},
		{"q quits", tcell.KeyRune, 'q', commandQuit, 0},
		{"escape quits", tcell.KeyEscape, 0, commandQuit, 0},
		{"ctrl-c quits", tcell.KeyCtrlC, 0, commandQuit, 0},
		{"up ignored", tcell.KeyUp, 0, commandNone, 0},
		{"other rune ignored", tcell.KeyRune, 'a', commandNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, action := translateKey(tt.key, tt.r)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.action, action)
		})
	}
}
