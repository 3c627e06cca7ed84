// Package course generates the obstacle layout: walls, bunkers and the hole.
//
// Every obstacle is placed by rejection sampling. Each placement gets at most
// Params.MaxPlacementAttempts draws; running out yields an *InfeasibleError
// instead of looping forever on a course that cannot fit.
package course

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/minigolf/internal/config"
	"github.com/tomz197/minigolf/internal/object"
	"github.com/tomz197/minigolf/internal/physics"
)

// ErrLayoutInfeasible is matched by every *InfeasibleError.
var ErrLayoutInfeasible = errors.New("layout infeasible")

// Kind names the obstacle being placed when generation failed.
type Kind string

const (
	KindWall   Kind = "wall"
	KindBunker Kind = "bunker"
	KindHole   Kind = "hole"
)

// InfeasibleError reports a placement that ran out of attempts.
type InfeasibleError struct {
	Kind     Kind
	Placed   int // Obstacles of Kind placed before giving up
	Wanted   int
	Attempts int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("layout infeasible: placed %d of %d %ss, next one failed after %d attempts",
		e.Placed, e.Wanted, e.Kind, e.Attempts)
}

func (e *InfeasibleError) Is(target error) bool {
	return target == ErrLayoutInfeasible
}

// Layout is the set of obstacles for one game. Walls and bunkers stay fixed
// for the whole game; only the hole moves after it is reached.
type Layout struct {
	Walls   []object.Wall
	Bunkers []object.Bunker
	Hole    object.Hole
}

// Generator draws layouts from a seeded random source. It is not safe for
// concurrent use; each game owns its own generator.
type Generator struct {
	params config.Params
	rng    *rand.Rand
	logger *log.Logger
}

// New creates a generator. A nil logger discards output.
func New(params config.Params, rng *rand.Rand, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{params: params, rng: rng, logger: logger}
}

// Generate places walls, then bunkers, then the hole.
func (g *Generator) Generate(spawn physics.Vec2, ballRadius float64) (*Layout, error) {
	walls, err := g.Walls(spawn, ballRadius)
	if err != nil {
		return nil, err
	}
	bunkers, err := g.Bunkers()
	if err != nil {
		return nil, err
	}
	hole, err := g.Hole(walls)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("course generated", "walls", len(walls), "bunkers", len(bunkers), "hole_x", hole.X, "hole_y", hole.Y)
	return &Layout{Walls: walls, Bunkers: bunkers, Hole: hole}, nil
}

// Walls places Params.WallCount walls. A candidate is rejected when it
// overlaps a placed wall, when its top-left corner is within WallMinDistance
// of a placed wall's corner on both axes, or when it overlaps the clearance
// box of side 4*ballRadius around the spawn point.
func (g *Generator) Walls(spawn physics.Vec2, ballRadius float64) ([]object.Wall, error) {
	p := g.params
	clearance := physics.RectAround(spawn.X, spawn.Y, 2*ballRadius)
	walls := make([]object.Wall, 0, p.WallCount)

	for len(walls) < p.WallCount {
		placed := false
		for attempt := 0; attempt < p.MaxPlacementAttempts; attempt++ {
			w := g.between(p.WallMinSize, p.WallMaxSize)
			h := g.between(p.WallMinSize, p.WallMaxSize)
			if w > p.ScreenWidth || h > p.ScreenHeight {
				continue
			}
			candidate := object.NewWall(
				float64(g.between(0, p.ScreenWidth-w)),
				float64(g.between(0, p.ScreenHeight-h)),
				float64(w), float64(h),
			)
			if candidate.Overlaps(clearance) || g.wallConflicts(candidate, walls) {
				continue
			}
			walls = append(walls, candidate)
			placed = true
			break
		}
		if !placed {
			return nil, &InfeasibleError{Kind: KindWall, Placed: len(walls), Wanted: p.WallCount, Attempts: p.MaxPlacementAttempts}
		}
	}
	return walls, nil
}

func (g *Generator) wallConflicts(candidate object.Wall, walls []object.Wall) bool {
	minDist := g.params.WallMinDistance
	for _, w := range walls {
		if candidate.Overlaps(w.Rect) {
			return true
		}
		if math.Abs(candidate.X-w.X) < minDist && math.Abs(candidate.Y-w.Y) < minDist {
			return true
		}
	}
	return false
}

// Bunkers places Params.BunkerCount bunkers fully inside the course. A
// candidate is rejected when its center is closer than
// BunkerMinSeparation + its own radius to any placed bunker's center.
func (g *Generator) Bunkers() ([]object.Bunker, error) {
	p := g.params
	bunkers := make([]object.Bunker, 0, p.BunkerCount)

	for len(bunkers) < p.BunkerCount {
		placed := false
		for attempt := 0; attempt < p.MaxPlacementAttempts; attempt++ {
			r := g.between(p.BunkerMinRadius, p.BunkerMaxRadius)
			if 2*r > p.ScreenWidth || 2*r > p.ScreenHeight {
				continue
			}
			candidate := object.Bunker{
				X:      float64(g.between(r, p.ScreenWidth-r)),
				Y:      float64(g.between(r, p.ScreenHeight-r)),
				Radius: float64(r),
			}
			if g.bunkerConflicts(candidate, bunkers) {
				continue
			}
			bunkers = append(bunkers, candidate)
			placed = true
			break
		}
		if !placed {
			return nil, &InfeasibleError{Kind: KindBunker, Placed: len(bunkers), Wanted: p.BunkerCount, Attempts: p.MaxPlacementAttempts}
		}
	}
	return bunkers, nil
}

func (g *Generator) bunkerConflicts(candidate object.Bunker, bunkers []object.Bunker) bool {
	minDist := g.params.BunkerMinSeparation + candidate.Radius
	for _, b := range bunkers {
		if physics.CircleDistance(candidate.X, candidate.Y, b.X, b.Y) < minDist {
			return true
		}
	}
	return false
}

// Hole picks a position in the right part of the course whose
// HoleBoxSize square does not overlap any wall.
func (g *Generator) Hole(walls []object.Wall) (object.Hole, error) {
	p := g.params
	minX := int(float64(p.ScreenWidth) * p.HoleMinXFraction)

	for attempt := 0; attempt < p.MaxPlacementAttempts; attempt++ {
		hole := object.Hole{
			X: float64(g.between(minX, p.ScreenWidth)),
			Y: float64(g.between(0, p.ScreenHeight)),
		}
		if !holeBlocked(hole.Box(p.HoleBoxSize), walls) {
			return hole, nil
		}
	}
	return object.Hole{}, &InfeasibleError{Kind: KindHole, Placed: 0, Wanted: 1, Attempts: p.MaxPlacementAttempts}
}

func holeBlocked(box physics.Rect, walls []object.Wall) bool {
	for _, w := range walls {
		if w.Overlaps(box) {
			return true
		}
	}
	return false
}

// between returns a uniform integer in [lo, hi], both inclusive.
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}
