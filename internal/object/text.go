package object

import (
	"fmt"
	"io"
)

// Text is a simple text overlay written after the canvas.
// Coordinates are 1-based terminal positions.
type Text struct {
	X     int
	Y     int
	Value string
}

// Render writes the text at its position using ANSI cursor movement.
func (t Text) Render(w io.Writer) error {
	if t.Value == "" {
		return nil
	}
	x := max(t.X, 1)
	y := max(t.Y, 1)
	if _, err := fmt.Fprintf(w, "\033[%d;%dH%s", y, x, t.Value); err != nil {
		return err
	}
	return nil
}
