package game

import (
	"math"

	"github.com/tomz197/minigolf/internal/physics"
)

// Shot is the drag gesture in progress.
type Shot struct {
	DragStart physics.Vec2
	Dragging  bool
}

// Strength grades how hard the current drag would hit the ball.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthLow
	StrengthMedium
	StrengthHigh
)

func (st Strength) String() string {
	switch st {
	case StrengthLow:
		return "low"
	case StrengthMedium:
		return "medium"
	case StrengthHigh:
		return "high"
	default:
		return "none"
	}
}

// BeginDrag starts a shot if the cursor is within GrabRadius of the ball.
// It reports whether the drag started.
func (s *State) BeginDrag(cursor physics.Vec2) bool {
	b := s.ball
	if !physics.PointInCircle(cursor.X, cursor.Y, b.Pos.X, b.Pos.Y, s.params.GrabRadius) {
		return false
	}
	s.shot = Shot{DragStart: b.Pos, Dragging: true}
	return true
}

// EndDrag releases the shot: the ball gets a velocity pointing from the
// cursor back through the ball, proportional to the drag length. Without a
// drag in progress it does nothing and returns false.
func (s *State) EndDrag(cursor physics.Vec2) bool {
	if !s.shot.Dragging {
		return false
	}
	drag := s.ball.Pos.Sub(cursor)
	s.ball.Vel = physics.Vec2{X: drag.X / s.params.DragDivisor, Y: drag.Y / s.params.DragDivisor}
	s.tries++
	s.shot.Dragging = false
	return true
}

// CancelDrag drops a drag without shooting.
func (s *State) CancelDrag() {
	s.shot.Dragging = false
}

// Dragging reports whether a shot is being aimed.
func (s *State) Dragging() bool {
	return s.shot.Dragging
}

// Shot returns the drag in progress.
func (s *State) Shot() Shot {
	return s.shot
}

// Strength grades the drag from the ball to the cursor by its per-axis
// offsets.
func (s *State) Strength(cursor physics.Vec2) Strength {
	dx := math.Abs(s.ball.Pos.X - cursor.X)
	dy := math.Abs(s.ball.Pos.Y - cursor.Y)
	switch {
	case dx > 150 || dy > 200:
		return StrengthHigh
	case dx > 80 || dy > 80:
		return StrengthMedium
	case dx > 5 || dy > 5:
		return StrengthLow
	default:
		return StrengthNone
	}
}
