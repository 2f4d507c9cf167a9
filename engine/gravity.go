package engine

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// GravitySystem queues a tick every Interval. While soft drop is held it
// ticks once immediately on press and then every SoftDropInterval instead.
type GravitySystem struct {
	Interval         time.Duration
	SoftDropInterval time.Duration

	accumulator float64
	softDrop    bool
	pressed     bool
}

// SetSoftDrop records whether the soft-drop control is held.
func (g *GravitySystem) SetSoftDrop(held bool) {
	if held && !g.softDrop {
		g.pressed = true
	}
	g.softDrop = held
}

// SoftDrop reports whether soft drop is held.
func (g *GravitySystem) SoftDrop() bool {
	return g.softDrop
}

func (g *GravitySystem) Execute(frame *UpdateFrame) {
	if g.pressed {
		g.pressed = false
		g.accumulator = 0
		frame.Commands.Push(tetris.ActionTick)
		return
	}

	interval := g.Interval
	if g.softDrop {
		interval = g.SoftDropInterval
	}
	if interval <= 0 {
		return
	}

	g.accumulator += frame.DeltaTime
	if g.accumulator >= interval.Seconds() {
		g.accumulator = 0
		frame.Commands.Push(tetris.ActionTick)
	}
}
