package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
)

func TestSoundFrequency(t *testing.T) {
	s := NewSound(config.Sound{Frequency: 440, Length: 50 * time.Millisecond})

	assert.InDelta(t, 440.0, s.Frequency(1), 1e-9)
	assert.InDelta(t, 660.0, s.Frequency(2), 1e-9)
	assert.InDelta(t, 1485.0, s.Frequency(4), 1e-9)
}

func TestDisabledSoundIsSilent(t *testing.T) {
	s := NewSound(config.Sound{Enabled: false, Frequency: 440, Length: time.Millisecond})
	assert.False(t, s.enabled)

	assert.NotPanics(t, func() {
		s.OnLock(tetris.LockEvent{ClearedRows: []int{20, 21}})
		s.Close()
	})
}
