package game

import (
	"fmt"
	"math"
)

// Report describes what happened during one tick.
type Report struct {
	Holed       bool // Ball reached the hole; a new hole was placed
	Strokes     int  // Shots the completed hole took, set when Holed
	EdgeBounces int  // Screen edges hit (0-2)
	WallBounces int  // Wall axes hit, a corner hit counts twice
	InSand      bool // At least one bunker slowed the ball
}

// Tick advances the simulation by one fixed step:
//
//  1. move by the velocity
//  2. apply friction per axis
//  3. bounce off the screen edges
//  4. apply bunker drag
//  5. bounce off walls
//  6. check for the hole
//
// The error is non-nil only if a new hole could not be placed.
func (s *State) Tick() (Report, error) {
	var rep Report
	b := s.ball

	b.Pos = b.Pos.Add(b.Vel)
	b.Vel.X = s.friction(b.Vel.X)
	b.Vel.Y = s.friction(b.Vel.Y)

	// Edge and wall tests share the box computed after the move.
	box := b.Bounds()

	rep.EdgeBounces = s.bounceEdges(box)
	rep.InSand = s.bunkerDrag()
	rep.WallBounces = s.bounceWalls(box)

	if s.inHole() {
		strokes := s.tries
		if err := s.completeHole(); err != nil {
			return rep, err
		}
		rep.Holed = true
		rep.Strokes = strokes
	}
	return rep, nil
}

// friction snaps slow components to exactly zero so the ball comes to rest,
// and decays the rest exponentially.
func (s *State) friction(v float64) float64 {
	if math.Abs(v) < s.params.FrictionFloor {
		return 0
	}
	return v * s.params.Friction
}

// inHole compares signed velocities, so a ball moving fast towards negative
// x or y still counts as slow enough to drop.
func (s *State) inHole() bool {
	p := s.params
	b := s.ball
	h := s.layout.Hole
	return math.Abs(b.Pos.X-h.X) <= p.HoleCatchRange &&
		math.Abs(b.Pos.Y-h.Y) <= p.HoleCatchRange &&
		b.Vel.X < p.HoleMaxVelocity &&
		b.Vel.Y < p.HoleMaxVelocity
}

// completeHole moves the hole, resets the tries counter and returns the ball
// to the spawn point.
func (s *State) completeHole() error {
	hole, err := s.gen.Hole(s.layout.Walls)
	if err != nil {
		return fmt.Errorf("place next hole: %w", err)
	}

	s.logger.Debug("hole completed", "tries", s.tries, "holes", s.holes+1)

	s.layout.Hole = hole
	s.tries = 0
	s.holes++
	s.ball.Reset(s.spawn.X, s.spawn.Y)
	return nil
}
