// Package sim holds the single shared Game of Life world served to clients.
package sim

import (
	"errors"
	"fmt"
	"sync"

	"github.com/apex/log"

	"life-web/pkg/core"
	"life-web/pkg/life"
)

// ErrInvalidVelocity reports a velocity outside the configured range.
var ErrInvalidVelocity = errors.New("invalid velocity")

// Limits bounds the world shapes and velocities accepted by Initialize.
type Limits struct {
	MinSize     int
	MaxSize     int
	MinVelocity float64
	MaxVelocity float64
}

// AcceptsVelocity reports whether v lies inside the velocity range. NaN is
// never accepted.
func (l Limits) AcceptsVelocity(v float64) bool {
	return v >= l.MinVelocity && v <= l.MaxVelocity
}

// Config controls how a State creates worlds.
type Config struct {
	Limits          Limits
	DefaultVelocity float64
	// Seed feeds the random source. Zero picks a time-based seed.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Limits:          Limits{MinSize: 4, MaxSize: 30, MinVelocity: 0.1, MaxVelocity: 5},
		DefaultVelocity: 1,
	}
}

// Snapshot is a consistent view of the world at one generation.
type Snapshot struct {
	Generation int       `json:"life_count"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Velocity   float64   `json:"velocity"`
	World      life.Grid `json:"world"`
	Previous   life.Grid `json:"previous_world"`
}

// State owns the current and previous generations of the world. All methods
// are safe for concurrent use.
type State struct {
	cfg Config
	rng *core.RNG

	mu         sync.RWMutex
	ready      bool
	width      int
	height     int
	velocity   float64
	generation int
	current    life.Grid
	previous   life.Grid
}

// New returns an uninitialized State.
func New(cfg Config) *State {
	if cfg.DefaultVelocity <= 0 {
		cfg.DefaultVelocity = DefaultConfig().DefaultVelocity
	}
	return &State{cfg: cfg, rng: core.NewRNG(cfg.Seed)}
}

// Limits returns the accepted ranges for Initialize.
func (s *State) Limits() Limits { return s.cfg.Limits }

// DefaultVelocity returns the velocity used when Initialize gets zero.
func (s *State) DefaultVelocity() float64 { return s.cfg.DefaultVelocity }

// Initialize replaces the world with a random width*height grid. A zero
// velocity selects the default. On error the previous world is kept.
func (s *State) Initialize(width, height int, velocity float64) error {
	lim := s.cfg.Limits
	if width < lim.MinSize || width > lim.MaxSize || height < lim.MinSize || height > lim.MaxSize {
		return fmt.Errorf("%w: %dx%d outside %d..%d", life.ErrInvalidDimensions, width, height, lim.MinSize, lim.MaxSize)
	}
	if velocity == 0 {
		velocity = s.cfg.DefaultVelocity
	}
	if !lim.AcceptsVelocity(velocity) {
		return fmt.Errorf("%w: %g outside %g..%g", ErrInvalidVelocity, velocity, lim.MinVelocity, lim.MaxVelocity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grid, err := life.RandomGrid(s.rng, width, height)
	if err != nil {
		return err
	}
	s.ready = true
	s.width, s.height, s.velocity = width, height, velocity
	s.generation = 0
	s.current = grid
	s.previous = grid
	log.WithFields(log.Fields{
		"width":    width,
		"height":   height,
		"velocity": velocity,
	}).Debug("world generated")
	return nil
}

// Advance moves the world forward by one generation and returns the result.
func (s *State) Advance() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return Snapshot{}, life.ErrNotInitialized
	}
	s.previous = s.current
	s.current = life.NextGeneration(s.current)
	s.generation++
	log.WithFields(log.Fields{
		"generation": s.generation,
		"population": s.current.Population(),
	}).Debug("world updated")
	return s.snapshotLocked(), nil
}

// Snapshot returns the current world without advancing it.
func (s *State) Snapshot() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return Snapshot{}, life.ErrNotInitialized
	}
	return s.snapshotLocked(), nil
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		Generation: s.generation,
		Width:      s.width,
		Height:     s.height,
		Velocity:   s.velocity,
		World:      s.current,
		Previous:   s.previous,
	}
}

// Ready reports whether a world has been created.
func (s *State) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Generation returns the number of advances since the world was created.
func (s *State) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Width returns the world width in cells.
func (s *State) Width() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width
}

// Height returns the world height in cells.
func (s *State) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.height
}

// Velocity returns the seconds between generations requested for the world.
func (s *State) Velocity() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.velocity
}

// Current returns the current generation.
func (s *State) Current() life.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Previous returns the generation before Current. It equals Current until the
// first advance.
func (s *State) Previous() life.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.previous
}

func (s *State) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("World[width:%d, height:%d, life_count:%d]", s.width, s.height, s.generation)
}
