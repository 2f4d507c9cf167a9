package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

const softDropKey = ebiten.KeyDown

type binding struct {
	key    ebiten.Key
	action tetris.Action
}

var bindings = []binding{
	{ebiten.KeyLeft, tetris.ActionMoveLeft},
	{ebiten.KeyRight, tetris.ActionMoveRight},
	{ebiten.KeyZ, tetris.ActionRotateLeft},
	{ebiten.KeyX, tetris.ActionRotateRight},
}

// Keys reports keyboard state for the current tick.
type Keys interface {
	JustPressed(key ebiten.Key) bool
	Pressed(key ebiten.Key) bool
}

// EbitenKeys reads the live ebiten keyboard.
type EbitenKeys struct{}

func (EbitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }
func (EbitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }

// KeyboardSystem queues one action per key press and holds soft drop on the
// gravity system while Down is pressed. Keys are ignored, and soft drop
// released, while an ImGui window has keyboard focus.
type KeyboardSystem struct {
	Keys       Keys
	Gravity    *engine.GravitySystem
	InputState *debugui.ImguiInputState
}

func (k *KeyboardSystem) Execute(frame *engine.UpdateFrame) {
	if k.InputState != nil && k.InputState.WantCaptureKeyboard {
		k.Gravity.SetSoftDrop(false)
		return
	}

	for _, b := range bindings {
		if k.Keys.JustPressed(b.key) {
			frame.Commands.Push(b.action)
		}
	}
	k.Gravity.SetSoftDrop(k.Keys.Pressed(softDropKey))
}
