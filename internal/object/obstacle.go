package object

import (
	"github.com/tomz197/minigolf/internal/draw"
	"github.com/tomz197/minigolf/internal/physics"
)

// HoleDrawRadius is the radius the cup is drawn with. It is cosmetic; the
// catch test uses the hole's catch range.
const HoleDrawRadius = 12

// Wall is an immutable axis-aligned obstacle the ball bounces off.
type Wall struct {
	physics.Rect
}

// NewWall creates a wall with its top-left corner at (x, y).
func NewWall(x, y, w, h float64) Wall {
	return Wall{Rect: physics.Rect{X: x, Y: y, W: w, H: h}}
}

func (w Wall) Draw(ctx DrawContext) {
	ctx.Canvas.FillRect(w.X, w.Y, w.W, w.H, draw.InkWall)
}

// Bunker is a circular sand trap that slows the ball.
type Bunker struct {
	X, Y   float64 // Center
	Radius float64
}

// RimDistance returns how far (x, y) is from the bunker's rim; negative
// values are inside the sand.
func (b Bunker) RimDistance(x, y float64) float64 {
	return physics.CircleDistance(x, y, b.X, b.Y) - b.Radius
}

func (b Bunker) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(b.X, b.Y, b.Radius, draw.InkSand)
}

// Hole is the cup the ball must reach.
type Hole struct {
	X, Y float64
}

// Box returns the square of the given side centered on the hole, used to
// keep holes clear of walls.
func (h Hole) Box(size float64) physics.Rect {
	return physics.RectAround(h.X, h.Y, size/2)
}

func (h Hole) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(h.X, h.Y, HoleDrawRadius, draw.InkHole)
}
