package game

import "github.com/tomz197/minigolf/internal/physics"

// bounceEdges reflects the ball off the screen edges. A hit negates the
// velocity component for that axis, damps the whole velocity and places the
// ball one unit inside the edge. Returns the number of axes that bounced.
func (s *State) bounceEdges(box physics.Rect) int {
	b := s.ball
	w := float64(s.params.ScreenWidth)
	h := float64(s.params.ScreenHeight)
	hits := 0

	if box.Right() >= w || box.Left() <= 0 {
		b.Vel.X = -b.Vel.X
		b.Vel = b.Vel.Scale(s.params.EdgeRestitution)
		if box.Right() >= w {
			b.Pos.X = w - b.Radius - 1
		} else {
			b.Pos.X = b.Radius + 1
		}
		hits++
	}
	if box.Bottom() >= h || box.Top() <= 0 {
		b.Vel.Y = -b.Vel.Y
		b.Vel = b.Vel.Scale(s.params.EdgeRestitution)
		if box.Bottom() >= h {
			b.Pos.Y = h - b.Radius - 1
		} else {
			b.Pos.Y = b.Radius + 1
		}
		hits++
	}
	return hits
}

// bunkerDrag slows the ball once for every bunker whose rim it is within
// BunkerRim of. Overlapping bunkers compound.
func (s *State) bunkerDrag() bool {
	b := s.ball
	bunkers := s.layout.Bunkers
	inSand := false

	s.bunkerGrid.QueryAround(b.Pos.X, b.Pos.Y, func(i int) bool {
		if bunkers[i].RimDistance(b.Pos.X, b.Pos.Y) < s.params.BunkerRim {
			b.Vel = b.Vel.Scale(s.params.BunkerDrag)
			inSand = true
		}
		return false
	})
	return inSand
}

// bounceWalls resolves overlap with each wall. The ball center is compared
// with the wall's edges on each axis independently: if it lies outside the
// wall's span on an axis, that velocity component is negated, the velocity
// damped, and the ball pushed out to one unit beyond the nearest edge. A
// corner hit resolves both axes in the same tick; a center already inside
// the wall on both axes is left alone.
func (s *State) bounceWalls(box physics.Rect) int {
	b := s.ball
	cx := box.X + box.W/2
	cy := box.Y + box.H/2
	hits := 0

	for _, w := range s.layout.Walls {
		if !box.Overlaps(w.Rect) {
			continue
		}

		if cx < w.Left() || cx > w.Right() {
			b.Vel.X = -b.Vel.X
			b.Vel = b.Vel.Scale(s.params.WallRestitution)
			if cx < w.Left() {
				b.Pos.X = w.Left() - b.Radius - 1
			} else {
				b.Pos.X = w.Right() + b.Radius + 1
			}
			hits++
		}
		if cy < w.Top() || cy > w.Bottom() {
			b.Vel.Y = -b.Vel.Y
			b.Vel = b.Vel.Scale(s.params.WallRestitution)
			if cy < w.Top() {
				b.Pos.Y = w.Top() - b.Radius - 1
			} else {
				b.Pos.Y = w.Bottom() + b.Radius + 1
			}
			hits++
		}
	}
	return hits
}
