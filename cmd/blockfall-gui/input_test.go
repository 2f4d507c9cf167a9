package main

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

type fakeKeys struct {
	justPressed map[ebiten.Key]bool
	pressed     map[ebiten.Key]bool
}

func (f *fakeKeys) JustPressed(key ebiten.Key) bool { return f.justPressed[key] }
func (f *fakeKeys) Pressed(key ebiten.Key) bool     { return f.pressed[key] }

func newKeyboardScheduler(keys *fakeKeys, inputState *debugui.ImguiInputState) (*engine.Scheduler, *engine.GravitySystem) {
	session := tetris.NewSession(tetris.WithPiece(tetris.Piece{
		Shape:    tetris.ShapeO,
		Position: tetris.Point{X: 4, Y: 2},
	}))
	gravity := &engine.GravitySystem{Interval: time.Second, SoftDropInterval: 200 * time.Millisecond}

	scheduler := engine.NewScheduler(session)
	scheduler.Register(&KeyboardSystem{Keys: keys, Gravity: gravity, InputState: inputState})
	scheduler.Register(gravity)
	return scheduler, gravity
}

func TestKeyboardSystem(t *testing.T) {
	keys := &fakeKeys{justPressed: map[ebiten.Key]bool{}, pressed: map[ebiten.Key]bool{}}
	scheduler, gravity := newKeyboardScheduler(keys, &debugui.ImguiInputState{})
	session := scheduler.Session()

	t.Run("just pressed keys queue their actions", func(t *testing.T) {
		keys.justPressed[ebiten.KeyLeft] = true
		scheduler.Once(0.016)
		keys.justPressed[ebiten.KeyLeft] = false

		assert.Equal(t, tetris.Point{X: 3, Y: 2}, session.Piece().Position)
		assert.False(t, gravity.SoftDrop())
	})

	t.Run("holding down ticks on press and repeats", func(t *testing.T) {
		keys.pressed[softDropKey] = true
		scheduler.Once(0.016)
		assert.True(t, gravity.SoftDrop())
		assert.Equal(t, 3, session.Piece().Position.Y)

		scheduler.Once(0.1)
		assert.Equal(t, 3, session.Piece().Position.Y)
		scheduler.Once(0.15)
		assert.Equal(t, 4, session.Piece().Position.Y)
	})

	t.Run("release restores gravity", func(t *testing.T) {
		keys.pressed[softDropKey] = false
		scheduler.Once(0.016)
		assert.False(t, gravity.SoftDrop())
		assert.Equal(t, 4, session.Piece().Position.Y)
	})
}

func TestKeyboardSystemYieldsToImgui(t *testing.T) {
	keys := &fakeKeys{
		justPressed: map[ebiten.Key]bool{ebiten.KeyRight: true, ebiten.KeyZ: true},
		pressed:     map[ebiten.Key]bool{softDropKey: true},
	}
	inputState := &debugui.ImguiInputState{}
	scheduler, gravity := newKeyboardScheduler(keys, inputState)
	session := scheduler.Session()

	scheduler.Once(0.016)
	assert.True(t, gravity.SoftDrop())
	assert.Equal(t, tetris.Point{X: 5, Y: 3}, session.Piece().Position)

	inputState.WantCaptureKeyboard = true
	scheduler.Once(0.016)
	assert.False(t, gravity.SoftDrop(), "focus in an ImGui window releases soft drop")
	assert.Equal(t, tetris.Point{X: 5, Y: 3}, session.Piece().Position)
	assert.Equal(t, uint64(1), session.Stats().Ticks)
}
