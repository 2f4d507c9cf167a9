// Package config loads host settings for the blockfall binaries from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"
	"unicode/utf8"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/tetris"
)

// AddrEnv overrides Server.Addr when set.
const AddrEnv = "BLOCKFALL_ADDR"

// Config holds all host configuration.
type Config struct {
	Timing Timing `yaml:"timing"`
	Glyphs Glyphs `yaml:"glyphs"`
	Server Server `yaml:"server"`
	Sound  Sound  `yaml:"sound"`

	// Seed fixes the random source for spawns. Zero means time-based.
	Seed uint64 `yaml:"seed"`

	// Verbose routes session diagnostics to the host log.
	Verbose bool `yaml:"verbose"`
}

// Timing holds the gravity and frame intervals.
type Timing struct {
	Fall     time.Duration `yaml:"fall"`
	SoftDrop time.Duration `yaml:"soft_drop"`
	Frame    time.Duration `yaml:"frame"`
}

// Glyphs holds the single-character glyphs for rendered cells.
type Glyphs struct {
	Empty string `yaml:"empty"`
	Solid string `yaml:"solid"`
}

// Server holds HTTP host settings.
type Server struct {
	Addr        string `yaml:"addr"`
	MaxSessions int    `yaml:"max_sessions"`
}

// Sound holds the line-clear audio cue settings.
type Sound struct {
	Enabled   bool          `yaml:"enabled"`
	Frequency float64       `yaml:"frequency"`
	Length    time.Duration `yaml:"length"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Timing: Timing{
			Fall:     time.Second,
			SoftDrop: 200 * time.Millisecond,
			Frame:    time.Second / 60,
		},
		Glyphs: Glyphs{
			Empty: string(tetris.DefaultGlyphs.Empty),
			Solid: string(tetris.DefaultGlyphs.Solid),
		},
		Server: Server{
			Addr:        ":8080",
			MaxSessions: 1024,
		},
		Sound: Sound{
			Frequency: 880,
			Length:    80 * time.Millisecond,
		},
	}
}

// Load reads the YAML file at path over the defaults, applies the environment
// override, and validates the result. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if addr := os.Getenv(AddrEnv); addr != "" {
		cfg.Server.Addr = addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if c.Timing.Fall <= 0 {
		err = multierr.Append(err, fmt.Errorf("config: timing.fall must be positive, got %s", c.Timing.Fall))
	}
	if c.Timing.SoftDrop <= 0 {
		err = multierr.Append(err, fmt.Errorf("config: timing.soft_drop must be positive, got %s", c.Timing.SoftDrop))
	}
	if c.Timing.Frame <= 0 {
		err = multierr.Append(err, fmt.Errorf("config: timing.frame must be positive, got %s", c.Timing.Frame))
	}
	if utf8.RuneCountInString(c.Glyphs.Empty) != 1 {
		err = multierr.Append(err, fmt.Errorf("config: glyphs.empty must be one character, got %q", c.Glyphs.Empty))
	}
	if utf8.RuneCountInString(c.Glyphs.Solid) != 1 {
		err = multierr.Append(err, fmt.Errorf("config: glyphs.solid must be one character, got %q", c.Glyphs.Solid))
	}
	if c.Glyphs.Empty == c.Glyphs.Solid {
		err = multierr.Append(err, fmt.Errorf("config: glyphs.empty and glyphs.solid must differ"))
	}
	if c.Server.Addr == "" {
		err = multierr.Append(err, fmt.Errorf("config: server.addr must not be empty"))
	}
	if c.Server.MaxSessions <= 0 {
		err = multierr.Append(err, fmt.Errorf("config: server.max_sessions must be positive, got %d", c.Server.MaxSessions))
	}
	if c.Sound.Enabled {
		if c.Sound.Frequency <= 0 {
			err = multierr.Append(err, fmt.Errorf("config: sound.frequency must be positive, got %v", c.Sound.Frequency))
		}
		if c.Sound.Length <= 0 {
			err = multierr.Append(err, fmt.Errorf("config: sound.length must be positive, got %s", c.Sound.Length))
		}
	}
	return err
}

// TetrisGlyphs converts the configured glyph strings to tetris.Glyphs. It
// assumes Validate has passed.
func (c *Config) TetrisGlyphs() tetris.Glyphs {
	empty, _ := utf8.DecodeRuneInString(c.Glyphs.Empty)
	solid, _ := utf8.DecodeRuneInString(c.Glyphs.Solid)
	return tetris.Glyphs{Empty: empty, Solid: solid}
}

// Random returns the spawn random source for one session stream: a seeded
// PCG when Seed is set, otherwise nil so sessions use the global generator.
func (c *Config) Random(stream uint64) tetris.RandomSource {
	if c.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(c.Seed, stream))
}

// SessionOptions returns the tetris options implied by the configuration for
// the given session stream. Session diagnostics go to logger when Verbose is
// set.
func (c *Config) SessionOptions(stream uint64, logger *log.Logger) []tetris.Option {
	var opts []tetris.Option
	if r := c.Random(stream); r != nil {
		opts = append(opts, tetris.WithRandom(r))
	}
	if c.Verbose && logger != nil {
		opts = append(opts, tetris.WithLogger(logger))
	}
	return opts
}
