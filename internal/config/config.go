package config

import (
	"errors"
	"fmt"
	"time"
)

// Course dimensions in logical units. Rendering scales to fit the terminal.
const (
	ScreenWidth  = 1200
	ScreenHeight = 800
)

// Obstacles
const (
	WallCount            = 16
	WallMinSize          = 50
	WallMaxSize          = 200
	WallMinDistance      = 18 // Top-left corners closer than this on both axes are rejected
	BunkerCount          = 9
	BunkerMinRadius      = 10
	BunkerMaxRadius      = 50
	BunkerMinSeparation  = 30 // Added to the new bunker's radius
	HoleBoxSize          = 16
	HoleMinXFraction     = 0.75 // Holes are placed in the right quarter of the course
	MaxPlacementAttempts = 10000
)

// Ball and shot
const (
	BallRadius  = 10
	SpawnInset  = 75 // Spawn is this far from the left and bottom edges
	GrabRadius  = 40
	DragDivisor = 25
)

// Physics, per tick
const (
	Friction        = 0.99
	FrictionFloor   = 0.003
	EdgeRestitution = 0.9
	WallRestitution = 0.8
	BunkerDrag      = 0.9
	BunkerRim       = 3
	HoleCatchRange  = 10
	HoleMaxVelocity = 0.8
)

// Client rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Params holds every tunable used by the course generator and the physics
// step. Defaults returns the stock course; a TOML file can override fields.
type Params struct {
	ScreenWidth  int `toml:"screen_width"`
	ScreenHeight int `toml:"screen_height"`

	WallCount            int     `toml:"wall_count"`
	WallMinSize          int     `toml:"wall_min_size"`
	WallMaxSize          int     `toml:"wall_max_size"`
	WallMinDistance      float64 `toml:"wall_min_distance"`
	BunkerCount          int     `toml:"bunker_count"`
	BunkerMinRadius      int     `toml:"bunker_min_radius"`
	BunkerMaxRadius      int     `toml:"bunker_max_radius"`
	BunkerMinSeparation  float64 `toml:"bunker_min_separation"`
	HoleBoxSize          float64 `toml:"hole_box_size"`
	HoleMinXFraction     float64 `toml:"hole_min_x_fraction"`
	MaxPlacementAttempts int     `toml:"max_placement_attempts"`

	BallRadius  float64 `toml:"ball_radius"`
	SpawnInset  float64 `toml:"spawn_inset"`
	GrabRadius  float64 `toml:"grab_radius"`
	DragDivisor float64 `toml:"drag_divisor"`

	Friction        float64 `toml:"friction"`
	FrictionFloor   float64 `toml:"friction_floor"`
	EdgeRestitution float64 `toml:"edge_restitution"`
	WallRestitution float64 `toml:"wall_restitution"`
	BunkerDrag      float64 `toml:"bunker_drag"`
	BunkerRim       float64 `toml:"bunker_rim"`
	HoleCatchRange  float64 `toml:"hole_catch_range"`
	HoleMaxVelocity float64 `toml:"hole_max_velocity"`

	// Seed for the course rng. Zero picks a time-based seed.
	Seed int64 `toml:"seed"`
}

// Defaults returns the stock course parameters.
func Defaults() Params {
	return Params{
		ScreenWidth:          ScreenWidth,
		ScreenHeight:         ScreenHeight,
		WallCount:            WallCount,
		WallMinSize:          WallMinSize,
		WallMaxSize:          WallMaxSize,
		WallMinDistance:      WallMinDistance,
		BunkerCount:          BunkerCount,
		BunkerMinRadius:      BunkerMinRadius,
		BunkerMaxRadius:      BunkerMaxRadius,
		BunkerMinSeparation:  BunkerMinSeparation,
		HoleBoxSize:          HoleBoxSize,
		HoleMinXFraction:     HoleMinXFraction,
		MaxPlacementAttempts: MaxPlacementAttempts,
		BallRadius:           BallRadius,
		SpawnInset:           SpawnInset,
		GrabRadius:           GrabRadius,
		DragDivisor:          DragDivisor,
		Friction:             Friction,
		FrictionFloor:        FrictionFloor,
		EdgeRestitution:      EdgeRestitution,
		WallRestitution:      WallRestitution,
		BunkerDrag:           BunkerDrag,
		BunkerRim:            BunkerRim,
		HoleCatchRange:       HoleCatchRange,
		HoleMaxVelocity:      HoleMaxVelocity,
	}
}

// Validate reports every field that would make the course unusable.
// A course that is merely too crowded is not rejected here; the generator
// reports that as an infeasible layout.
func (p Params) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(p.ScreenWidth > 0 && p.ScreenHeight > 0, "screen must be positive, got %dx%d", p.ScreenWidth, p.ScreenHeight)
	check(p.WallCount >= 0, "wall_count must not be negative, got %d", p.WallCount)
	check(p.WallMinSize > 0 && p.WallMinSize <= p.WallMaxSize, "wall size range [%d,%d] is invalid", p.WallMinSize, p.WallMaxSize)
	check(p.BunkerCount >= 0, "bunker_count must not be negative, got %d", p.BunkerCount)
	check(p.BunkerMinRadius > 0 && p.BunkerMinRadius <= p.BunkerMaxRadius, "bunker radius range [%d,%d] is invalid", p.BunkerMinRadius, p.BunkerMaxRadius)
	check(p.HoleMinXFraction >= 0 && p.HoleMinXFraction <= 1, "hole_min_x_fraction must be within [0,1], got %v", p.HoleMinXFraction)
	check(p.MaxPlacementAttempts > 0, "max_placement_attempts must be positive, got %d", p.MaxPlacementAttempts)
	check(p.BallRadius > 0, "ball_radius must be positive, got %v", p.BallRadius)
	check(p.DragDivisor != 0, "drag_divisor must not be zero")
	check(p.Friction > 0 && p.Friction <= 1, "friction must be within (0,1], got %v", p.Friction)

	return errors.Join(errs...)
}

// Spawn returns the ball spawn point: SpawnInset in from the bottom-left corner.
func (p Params) Spawn() (x, y float64) {
	return p.SpawnInset, float64(p.ScreenHeight) - p.SpawnInset
}
