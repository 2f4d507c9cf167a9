package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
)

var sampleRate = beep.SampleRate(44100)

// Sound plays a short tone whenever a lock clears rows. Each extra row in the
// same lock raises the pitch by a fifth.
type Sound struct {
	enabled   bool
	frequency float64
	length    time.Duration
}

// NewSound initialises the speaker when sound is enabled. Failure is not
// fatal: the game runs silently.
func NewSound(cfg config.Sound) *Sound {
	s := &Sound{
		frequency: cfg.Frequency,
		length:    cfg.Length,
	}
	if !cfg.Enabled {
		return s
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return s
	}
	s.enabled = true
	return s
}

// Frequency returns the tone played for a lock clearing rows rows.
func (s *Sound) Frequency(rows int) float64 {
	f := s.frequency
	for i := 1; i < rows; i++ {
		f *= 1.5
	}
	return f
}

// OnLock is a tetris lock observer.
func (s *Sound) OnLock(event tetris.LockEvent) {
	if !s.enabled || len(event.ClearedRows) == 0 {
		return
	}

	sine, err := generators.SineTone(sampleRate, s.Frequency(len(event.ClearedRows)))
	if err != nil {
		log.Printf("Audio tone failed: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(s.length), sine))
}

func (s *Sound) Close() {
	if s.enabled {
		speaker.Close()
	}
}
