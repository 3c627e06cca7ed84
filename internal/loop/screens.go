package loop

import (
	"fmt"
	"io"

	"github.com/tomz197/minigolf/internal/draw"
	"github.com/tomz197/minigolf/internal/game"
	"github.com/tomz197/minigolf/internal/object"
)

const helpLine = "drag the ball to aim, release to shoot | right click: cancel | n: new course | q: quit"

// aimInks colours the aim line by shot strength.
var aimInks = map[game.Strength]draw.Ink{
	game.StrengthNone:   draw.InkAim,
	game.StrengthLow:    draw.InkAimLow,
	game.StrengthMedium: draw.InkAimMedium,
	game.StrengthHigh:   draw.InkAimHigh,
}

// drawCourse paints the layout, the aim line and the ball onto the canvas.
func (s *session) drawCourse() {
	ctx := object.DrawContext{Canvas: s.canvas}
	layout := s.game.Layout()

	s.canvas.Clear()
	drawAll(ctx, layout.Bunkers)
	drawAll(ctx, layout.Walls)
	layout.Hole.Draw(ctx)

	ball := s.game.Ball()
	if s.game.Dragging() && s.hasCursor {
		ink := aimInks[s.game.Strength(s.cursor)]
		s.canvas.DrawLine(
			draw.Point{X: ball.Pos.X, Y: ball.Pos.Y},
			draw.Point{X: s.cursor.X, Y: s.cursor.Y},
			ink,
		)
	}
	ball.Draw(ctx)
	drawAll(ctx, s.particles)
}

// drawAll paints items in order; later items cover earlier ones.
func drawAll[T object.Drawable](ctx object.DrawContext, items []T) {
	for _, it := range items {
		it.Draw(ctx)
	}
}

// drawUI writes the text overlay on top of the rendered canvas.
func (s *session) drawUI(w io.Writer) error {
	left, top := s.canvas.LogicalToTerminal(0, 0)
	bottom := s.canvas.OffsetRow() + s.canvas.TerminalHeight()

	texts := []object.Text{
		{X: left + 1, Y: top, Value: fmt.Sprintf("Tries: %d  Holes: %d", s.game.Tries(), s.game.Holes())},
		{X: left + 1, Y: bottom, Value: helpLine},
	}
	if s.banner != "" {
		col := left + (s.canvas.TerminalWidth()-len(s.banner))/2
		texts = append(texts, object.Text{X: col, Y: top, Value: s.banner})
	}

	for _, t := range texts {
		if err := t.Render(w); err != nil {
			return err
		}
	}
	return nil
}

func holeBanner(strokes int) string {
	return fmt.Sprintf("Holed in %d!", strokes)
}
