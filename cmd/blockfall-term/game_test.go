package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func TestRenderSystemDrawsPlayfield(t *testing.T) {
	screen := newSimulationScreen(t)
	session := tetris.NewSession(tetris.WithPiece(tetris.Piece{
		Shape:    tetris.ShapeO,
		Position: tetris.Point{X: 0, Y: 2},
	}))

	scheduler := engine.NewScheduler(session)
	scheduler.Register(&RenderSystem{Screen: screen, Glyphs: tetris.Glyphs{Empty: '.', Solid: '#'}})
	scheduler.Once(0.016)

	at := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}

	// The O piece covers grid cells (1..2, 3..4), screen cells (0..1, 1..2).
	assert.Equal(t, '.', at(0, 0))
	assert.Equal(t, '#', at(0, 1))
	assert.Equal(t, '#', at(1, 2))
	assert.Equal(t, '.', at(2, 1))
	assert.Equal(t, '.', at(9, 19))
	assert.Equal(t, 'l', at(0, 21))
}

func TestGameHandleEvent(t *testing.T) {
	screen := newSimulationScreen(t)
	cfg := config.Default()
	game := NewGame(cfg, screen, NewSound(cfg.Sound), nil)

	assert.True(t, game.handleEvent(tcell.NewEventResize(50, 30)))
	assert.Empty(t, game.input.Drain())

	game.input.Push(tetris.ActionTick)
	before := game.scheduler.Session().Stats().Ticks
	game.scheduler.Once(0.016)
	assert.Equal(t, before+1, game.scheduler.Session().Stats().Ticks)
	assert.Equal(t, 3, game.scheduler.GetStats().SystemCount)
}

func TestPumpEventsStopsAfterFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	go func() {
		pumpEvents(screen, events)
		close(done)
	}()

	screen.Fini()

	// Drain anything queued before Fini; the channel must then be closed.
	timeout := time.After(2 * time.Second)
	for open := true; open; {
		select {
		case _, open = <-events:
		case <-timeout:
			t.Fatal("event pump did not stop after Fini")
		}
	}

	select {
	case <-done:
	case <-timeout:
		t.Fatal("event pump goroutine did not exit")
	}
}
