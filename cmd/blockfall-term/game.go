package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/tetris"
)

// Game drives one session on a terminal screen.
type Game struct {
	screen    tcell.Screen
	scheduler *engine.Scheduler
	input     *engine.InputQueue
	sound     *Sound
	frame     time.Duration
}

// NewGame wires a session, its systems and the sound cue to an initialised
// screen.
func NewGame(cfg *config.Config, screen tcell.Screen, sound *Sound, logger *log.Logger) *Game {
	opts := cfg.SessionOptions(0, logger)
	opts = append(opts, tetris.WithLockObserver(sound.OnLock))
	session := tetris.NewSession(opts...)

	g := &Game{
		screen:    screen,
		scheduler: engine.NewScheduler(session),
		input:     &engine.InputQueue{},
		sound:     sound,
		frame:     cfg.Timing.Frame,
	}

	g.scheduler.Register(&engine.InputSystem{Queue: g.input})
	g.scheduler.Register(&engine.GravitySystem{
		Interval:         cfg.Timing.Fall,
		SoftDropInterval: cfg.Timing.SoftDrop,
	})
	g.scheduler.Register(&RenderSystem{Screen: screen, Glyphs: cfg.TetrisGlyphs()})
	return g
}

// handleEvent queues input and reports whether the game should keep running.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, action := translateKey(ev.Key(), ev.Rune())
		switch cmd {
		case commandQuit:
			return false
		case commandAction:
			g.input.Push(action)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// pumpEvents forwards screen events until the screen is finalized, then
// closes events.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go pumpEvents(g.screen, eventChan)

	lastTime := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			g.scheduler.Once(dt)
		}
	}
}

func (g *Game) cleanup() {
	g.sound.Close()
	g.screen.Fini()
}
