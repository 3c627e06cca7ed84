package object

import (
	"fmt"

	"github.com/tomz197/minigolf/internal/draw"
	"github.com/tomz197/minigolf/internal/physics"
)

// Ball is the single simulated body. Velocity is in logical units per tick.
type Ball struct {
	Pos    physics.Vec2
	Vel    physics.Vec2
	Radius float64
}

// NewBall creates a ball at rest at (x, y).
func NewBall(x, y, radius float64) (*Ball, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("ball radius must be positive, got %v", radius)
	}
	return &Ball{Pos: physics.Vec2{X: x, Y: y}, Radius: radius}, nil
}

// Bounds returns the axis-aligned square enclosing the ball.
func (b Ball) Bounds() physics.Rect {
	return physics.RectAround(b.Pos.X, b.Pos.Y, b.Radius)
}

// AtRest reports whether the ball has stopped. Friction snaps each velocity
// component to exactly zero, so no tolerance is needed.
func (b Ball) AtRest() bool {
	return b.Vel.IsZero()
}

// Reset moves the ball to (x, y) and stops it.
func (b *Ball) Reset(x, y float64) {
	b.Pos = physics.Vec2{X: x, Y: y}
	b.Vel = physics.Vec2{}
}

func (b Ball) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(b.Pos.X, b.Pos.Y, b.Radius, draw.InkBall)
}
