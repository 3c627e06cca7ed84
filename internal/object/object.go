// Package object defines the course entities and how they are drawn.
package object

import "github.com/tomz197/minigolf/internal/draw"

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas
}

// Drawable is anything the loop paints onto the canvas each frame.
type Drawable interface {
	Draw(ctx DrawContext)
}
