// Package game holds the simulation state of a single mini-golf game and
// advances it one tick at a time.
//
// A State is owned by one goroutine (the loop that calls Tick and feeds it
// drag events); it does no locking.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/minigolf/internal/config"
	"github.com/tomz197/minigolf/internal/course"
	"github.com/tomz197/minigolf/internal/object"
	"github.com/tomz197/minigolf/internal/physics"
)

// State is one game: the ball, the course layout, the drag in progress and
// the score counters.
type State struct {
	params config.Params
	gen    *course.Generator
	logger *log.Logger

	ball   *object.Ball
	spawn  physics.Vec2
	layout *course.Layout

	// Broad-phase index over layout.Bunkers, rebuilt when the layout changes.
	bunkerGrid *physics.SpatialGrid

	shot  Shot
	tries int // Shots taken on the current hole
	holes int // Holes completed this game
}

// New creates a game with a freshly generated course. A nil logger discards
// output.
func New(params config.Params, rng *rand.Rand, logger *log.Logger) (*State, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	gen := course.New(params, rng, logger)
	s, err := newState(params, gen, logger)
	if err != nil {
		return nil, err
	}
	if err := s.NewCourse(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithLayout creates a game on a fixed course. The generator is still
// used to move the hole after it is reached.
func NewWithLayout(params config.Params, rng *rand.Rand, layout *course.Layout, logger *log.Logger) (*State, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s, err := newState(params, course.New(params, rng, logger), logger)
	if err != nil {
		return nil, err
	}
	s.setLayout(layout)
	return s, nil
}

func newState(params config.Params, gen *course.Generator, logger *log.Logger) (*State, error) {
	sx, sy := params.Spawn()
	ball, err := object.NewBall(sx, sy, params.BallRadius)
	if err != nil {
		return nil, err
	}
	return &State{
		params: params,
		gen:    gen,
		logger: logger,
		ball:   ball,
		spawn:  physics.Vec2{X: sx, Y: sy},
	}, nil
}

// NewCourse starts a new game: it generates walls, bunkers and a hole,
// puts the ball on the spawn point and clears the counters. Walls and
// bunkers are otherwise never regenerated; reaching the hole only moves it.
func (s *State) NewCourse() error {
	layout, err := s.gen.Generate(s.spawn, s.ball.Radius)
	if err != nil {
		return fmt.Errorf("generate course: %w", err)
	}
	s.setLayout(layout)
	s.ball.Reset(s.spawn.X, s.spawn.Y)
	s.shot = Shot{}
	s.tries = 0
	s.holes = 0
	return nil
}

func (s *State) setLayout(layout *course.Layout) {
	s.layout = layout

	// An item can interact with the ball from up to its radius plus the rim.
	cell := max(float64(s.params.BunkerMaxRadius)+s.params.BunkerRim, 1)
	for _, b := range layout.Bunkers {
		cell = max(cell, b.Radius+s.params.BunkerRim)
	}
	s.bunkerGrid = physics.NewSpatialGrid(float64(s.params.ScreenWidth), float64(s.params.ScreenHeight), cell)
	for i, b := range layout.Bunkers {
		s.bunkerGrid.Insert(b.X, b.Y, i)
	}
}

// Ball returns a copy of the ball.
func (s *State) Ball() object.Ball {
	return *s.ball
}

// Layout returns the current course. Callers must not modify it.
func (s *State) Layout() *course.Layout {
	return s.layout
}

// Tries returns the number of shots taken on the current hole.
func (s *State) Tries() int {
	return s.tries
}

// Holes returns the number of holes completed this game.
func (s *State) Holes() int {
	return s.holes
}

// Spawn returns the point the ball starts each hole from.
func (s *State) Spawn() physics.Vec2 {
	return s.spawn
}
