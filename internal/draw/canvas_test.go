package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestResizeKeepsAspectAndCenters(t *testing.T) {
	c := NewScaledCanvas(200, 40, 1200, 800)

	// 40 rows give 80 sub-pixel rows, so height limits the scale to 0.1.
	if c.TerminalWidth() != 120 || c.TerminalHeight() != 40 {
		t.Fatalf("canvas = %dx%d, want 120x40", c.TerminalWidth(), c.TerminalHeight())
	}
	if c.OffsetCol() != 40 || c.OffsetRow() != 0 {
		t.Errorf("offset = (%d,%d), want (40,0)", c.OffsetCol(), c.OffsetRow())
	}
}

func TestTerminalToLogicalRoundTrip(t *testing.T) {
	c := NewScaledCanvas(200, 40, 1200, 800)

	for _, p := range []Point{{75, 725}, {600, 400}, {1185, 5}} {
		col, row := c.LogicalToTerminal(p.X, p.Y)
		x, y, ok := c.TerminalToLogical(col, row)
		if !ok {
			t.Fatalf("TerminalToLogical(%d,%d) reported outside", col, row)
		}
		// One terminal cell is 10x20 logical units at this scale.
		if math.Abs(x-p.X) > 10.5 || math.Abs(y-p.Y) > 20.5 {
			t.Errorf("round trip %v -> (%d,%d) -> (%v,%v)", p, col, row, x, y)
		}
	}

	if _, _, ok := c.TerminalToLogical(1, 1); ok {
		t.Error("cell in the left margin should be outside the course")
	}
}

func TestRenderSkipsEmptyCells(t *testing.T) {
	c := NewScaledCanvas(12, 4, 12, 8)
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty canvas rendered %q", buf.String())
	}

	c.FillRect(0, 0, 1, 2, InkWall)
	c.SetFloat(5, 0, InkBall)
	buf.Reset()
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, string(BlockFull)) {
		t.Errorf("wall cell should render as a full block: %q", out)
	}
	if !strings.Contains(out, string(BlockUpperHalf)) {
		t.Errorf("ball pixel should render as an upper half block: %q", out)
	}
}

func TestFillCircleTinyRadiusSetsCenter(t *testing.T) {
	c := NewScaledCanvas(12, 4, 12, 8)
	c.FillCircle(6, 4, 0.1, InkHole)
	if c.pixels[4*c.termWidth+6] != InkHole {
		t.Error("center pixel not set")
	}
}
