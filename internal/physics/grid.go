package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase lookups in a bounded world.
// Items are inserted by position and index; QueryAround visits the 3x3 cell
// neighborhood of a point.
//
// Cell size must be >= the maximum interaction distance between a query point
// and an inserted item, otherwise QueryAround can miss items.
type SpatialGrid struct {
	invCellSize float64 // 1 / cellSize
	cols        int
	rows        int
	cells       [][]int
}

// NewSpatialGrid creates a grid covering a worldW x worldH area.
func NewSpatialGrid(worldW, worldH, cellSize float64) *SpatialGrid {
	cols := max(int(math.Ceil(worldW/cellSize)), 1)
	rows := max(int(math.Ceil(worldH/cellSize)), 1)

	return &SpatialGrid{
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Insert adds an item (identified by index) at the given world position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given position. Cells outside the world are skipped.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}
			for _, item := range g.cells[r*g.cols+c] {
				if fn(item) {
					return
				}
			}
		}
	}
}

// posToCell converts world coordinates to cell coordinates, clamping
// positions outside the world onto the border cells.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = min(max(int(math.Floor(x*g.invCellSize)), 0), g.cols-1)
	row = min(max(int(math.Floor(y*g.invCellSize)), 0), g.rows-1)
	return col, row
}
