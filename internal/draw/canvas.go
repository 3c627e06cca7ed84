package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Ink identifies what occupies a canvas pixel. The zero value is empty grass.
type Ink uint8

const (
	InkNone Ink = iota
	InkWall
	InkSand
	InkHole
	InkBall
	InkAim
	InkAimLow
	InkAimMedium
	InkAimHigh
)

// inkColors are 256-color palette indexes used for each ink.
var inkColors = [...]int{
	InkWall:      130,
	InkSand:      222,
	InkHole:      238,
	InkBall:      231,
	InkAim:       252,
	InkAimLow:    33,
	InkAimMedium: 208,
	InkAimHigh:   196,
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Game objects draw in logical coordinates; the canvas applies a
// uniform scale so circles stay round, and centers the course in the terminal.
type Canvas struct {
	termWidth      int   // Columns used by the course
	termHeight     int   // Rows used by the course
	subPixelHeight int   // termHeight * 2
	pixels         []Ink // Flat slice: [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scale         float64 // pixels per logical unit, same on both axes

	// 0-based terminal offsets for centering
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

// NewScaledCanvas creates a canvas that fits a logicalWidth x logicalHeight
// course into a terminal of termWidth x termHeight cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize refits the canvas to new terminal dimensions.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)

	scale := math.Min(float64(termWidth)/c.logicalWidth, float64(termHeight*2)/c.logicalHeight)
	cols := max(int(math.Floor(c.logicalWidth*scale)), 1)
	rows := max(int(math.Ceil(c.logicalHeight*scale/2)), 1)

	if cols != c.termWidth || rows != c.termHeight {
		c.termWidth = cols
		c.termHeight = rows
		c.subPixelHeight = rows * 2
		c.pixels = make([]Ink, c.subPixelHeight*cols)
	}
	c.scale = scale
	c.offsetCol = (termWidth - cols) / 2
	c.offsetRow = (termHeight - rows) / 2
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, ink Ink) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = ink
	}
}

// SetFloat sets a pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64, ink Ink) {
	c.setPixel(int(math.Round(x*c.scale)), int(math.Round(y*c.scale)), ink)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, ink Ink) {
	x1 := int(math.Round(p1.X * c.scale))
	y1 := int(math.Round(p1.Y * c.scale))
	x2 := int(math.Round(p2.X * c.scale))
	y2 := int(math.Round(p2.Y * c.scale))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, ink)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
func (c *Canvas) FillRect(x, y, w, h float64, ink Ink) {
	x0 := int(math.Floor(x * c.scale))
	y0 := int(math.Floor(y * c.scale))
	x1 := int(math.Ceil((x + w) * c.scale))
	y1 := int(math.Ceil((y + h) * c.scale))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, ink)
		}
	}
}

// FillCircle fills a circle given in logical coordinates. Circles smaller
// than a pixel still set the center pixel.
func (c *Canvas) FillCircle(cx, cy, r float64, ink Ink) {
	pcx, pcy, pr := cx*c.scale, cy*c.scale, r*c.scale
	c.setPixel(int(math.Round(pcx)), int(math.Round(pcy)), ink)

	rr := pr * pr
	for py := int(math.Floor(pcy - pr)); py <= int(math.Ceil(pcy+pr)); py++ {
		for px := int(math.Floor(pcx - pr)); px <= int(math.Ceil(pcx+pr)); px++ {
			dx := float64(px) + 0.5 - pcx
			dy := float64(py) + 0.5 - pcy
			if dx*dx+dy*dy <= rr {
				c.setPixel(px, py, ink)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using coloured half-block characters.
// Empty cells are skipped, so the caller clears the screen first.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 16)

	for row := 0; row < c.termHeight; row++ {
		top := c.pixels[row*2*c.termWidth : (row*2+1)*c.termWidth]
		bottom := c.pixels[(row*2+1)*c.termWidth : (row*2+2)*c.termWidth]

		for col := 0; col < c.termWidth; col++ {
			t, b := top[col], bottom[col]
			if t == InkNone && b == InkNone {
				continue
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			switch {
			case t == b:
				fmt.Fprintf(&c.renderBuf, "\033[38;5;%dm%c", inkColors[t], BlockFull)
			case b == InkNone:
				fmt.Fprintf(&c.renderBuf, "\033[38;5;%dm%c", inkColors[t], BlockUpperHalf)
			case t == InkNone:
				fmt.Fprintf(&c.renderBuf, "\033[38;5;%dm%c", inkColors[b], BlockLowerHalf)
			default:
				fmt.Fprintf(&c.renderBuf, "\033[38;5;%d;48;5;%dm%c", inkColors[t], inkColors[b], BlockUpperHalf)
			}
			c.renderBuf.WriteString("\033[0m")
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// TerminalWidth returns the number of columns used by the course.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the number of rows used by the course.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal position.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scale))
	py := int(math.Round(y * c.scale))
	return px + 1 + c.offsetCol, py/2 + 1 + c.offsetRow
}

// TerminalToLogical converts a 1-based terminal cell (as reported by mouse
// events) to the logical coordinates of the cell center. ok is false when the
// cell lies outside the course area; the coordinates are still returned so a
// drag released in the margin keeps its direction.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64, ok bool) {
	px := col - 1 - c.offsetCol
	prow := row - 1 - c.offsetRow
	x = (float64(px) + 0.5) / c.scale
	y = float64(prow*2+1) / c.scale
	ok = px >= 0 && px < c.termWidth && prow >= 0 && prow < c.termHeight
	return x, y, ok
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
