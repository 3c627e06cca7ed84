package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/minigolf/internal/config"
	"github.com/tomz197/minigolf/internal/course"
	"github.com/tomz197/minigolf/internal/object"
	"github.com/tomz197/minigolf/internal/physics"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// newTestState builds a game on a fixed course with the hole far from
// everything the tests touch.
func newTestState(t *testing.T, walls []object.Wall, bunkers []object.Bunker) *State {
	t.Helper()
	layout := &course.Layout{
		Walls:   walls,
		Bunkers: bunkers,
		Hole:    object.Hole{X: 1000, Y: 100},
	}
	s, err := NewWithLayout(config.Defaults(), rand.New(rand.NewSource(1)), layout, nil)
	if err != nil {
		t.Fatalf("NewWithLayout: %v", err)
	}
	return s
}

func place(s *State, x, y, vx, vy float64) {
	s.ball.Pos = physics.Vec2{X: x, Y: y}
	s.ball.Vel = physics.Vec2{X: vx, Y: vy}
}

func tick(t *testing.T, s *State) Report {
	t.Helper()
	rep, err := s.Tick()
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	return rep
}

func TestTickAtRestIsIdempotent(t *testing.T) {
	s := newTestState(t, []object.Wall{object.NewWall(100, 100, 50, 50)}, []object.Bunker{{X: 600, Y: 400, Radius: 30}})
	place(s, 600, 400, 0, 0)

	for i := 0; i < 3; i++ {
		tick(t, s)
	}
	b := s.Ball()
	if b.Pos != (physics.Vec2{X: 600, Y: 400}) || !b.AtRest() {
		t.Errorf("ball moved at rest: %+v", b)
	}
}

func TestFrictionSnapsToZero(t *testing.T) {
	s := newTestState(t, nil, nil)
	place(s, 300, 400, 3, -0.002)

	tick(t, s)
	if s.ball.Vel.Y != 0 {
		t.Errorf("vy = %v, want snapped to 0", s.ball.Vel.Y)
	}
	if !almostEqual(s.ball.Vel.X, 3*0.99) {
		t.Errorf("vx = %v, want %v", s.ball.Vel.X, 3*0.99)
	}

	for i := 0; i < 2000 && !s.ball.AtRest(); i++ {
		tick(t, s)
	}
	if !s.ball.AtRest() {
		t.Fatalf("ball never came to rest: %+v", s.ball)
	}
}

func TestEdgeBounce(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{
			name: "left edge",
			x:    0, y: 400, vx: -5, vy: 0,
			wantX: 11, wantY: 400,
			wantVX: 5 * 0.99 * 0.9, wantVY: 0,
		},
		{
			name: "right edge",
			x:    1195, y: 400, vx: 3, vy: 0,
			wantX: 1189, wantY: 400,
			wantVX: -3 * 0.99 * 0.9, wantVY: 0,
		},
		{
			name: "bottom edge damps both axes",
			x:    600, y: 795, vx: 1, vy: 2,
			wantX: 601, wantY: 789,
			wantVX: 0.99 * 0.9, wantVY: -2 * 0.99 * 0.9,
		},
		{
			name: "top left corner",
			x:    5, y: 5, vx: -1, vy: -1,
			wantX: 11, wantY: 11,
			wantVX: 0.99 * 0.81, wantVY: 0.99 * 0.81,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, nil, nil)
			place(s, tt.x, tt.y, tt.vx, tt.vy)

			rep := tick(t, s)
			b := s.ball
			if b.Pos.X != tt.wantX || b.Pos.Y != tt.wantY {
				t.Errorf("pos = %+v, want (%v, %v)", b.Pos, tt.wantX, tt.wantY)
			}
			if !almostEqual(b.Vel.X, tt.wantVX) || !almostEqual(b.Vel.Y, tt.wantVY) {
				t.Errorf("vel = %+v, want (%v, %v)", b.Vel, tt.wantVX, tt.wantVY)
			}
			if rep.EdgeBounces == 0 {
				t.Error("report shows no edge bounce")
			}
		})
	}
}

func TestWallSideHit(t *testing.T) {
	s := newTestState(t, []object.Wall{object.NewWall(300, 300, 100, 100)}, nil)
	place(s, 285, 350, 8, 0)

	rep := tick(t, s)
	b := s.ball
	if b.Pos.X != 289 || b.Pos.Y != 350 {
		t.Errorf("pos = %+v, want (289, 350)", b.Pos)
	}
	if !almostEqual(b.Vel.X, -8*0.99*0.8) || b.Vel.Y != 0 {
		t.Errorf("vel = %+v", b.Vel)
	}
	if rep.WallBounces != 1 {
		t.Errorf("WallBounces = %d, want 1", rep.WallBounces)
	}
}

func TestWallCornerHitResolvesBothAxes(t *testing.T) {
	s := newTestState(t, []object.Wall{object.NewWall(100, 100, 50, 50)}, nil)
	place(s, 93, 93, 2, 2)

	rep := tick(t, s)
	b := s.ball
	if b.Pos.X != 89 || b.Pos.Y != 89 {
		t.Errorf("pos = %+v, want (89, 89)", b.Pos)
	}
	want := -2 * 0.99 * 0.8 * 0.8
	if !almostEqual(b.Vel.X, want) || !almostEqual(b.Vel.Y, want) {
		t.Errorf("vel = %+v, want both %v", b.Vel, want)
	}
	if rep.WallBounces != 2 {
		t.Errorf("WallBounces = %d, want 2", rep.WallBounces)
	}
}

func TestBunkerDrag(t *testing.T) {
	tests := []struct {
		name    string
		bunkers []object.Bunker
		x       float64
		wantVY  float64
		inSand  bool
	}{
		{"outside rim", []object.Bunker{{X: 600, Y: 400, Radius: 30}}, 640, 0.99, false},
		{"touching rim", []object.Bunker{{X: 600, Y: 400, Radius: 30}}, 632, 0.99 * 0.9, true},
		{"inside", []object.Bunker{{X: 600, Y: 400, Radius: 30}}, 600, 0.99 * 0.9, true},
		{
			"overlapping bunkers compound",
			[]object.Bunker{{X: 600, Y: 400, Radius: 30}, {X: 610, Y: 400, Radius: 30}},
			600, 0.99 * 0.9 * 0.9, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, nil, tt.bunkers)
			place(s, tt.x, 399, 0, 1)

			rep := tick(t, s)
			if !almostEqual(s.ball.Vel.Y, tt.wantVY) {
				t.Errorf("vy = %v, want %v", s.ball.Vel.Y, tt.wantVY)
			}
			if rep.InSand != tt.inSand {
				t.Errorf("InSand = %v, want %v", rep.InSand, tt.inSand)
			}
		})
	}
}

func TestHoleCompletion(t *testing.T) {
	walls := []object.Wall{
		object.NewWall(900, 0, 100, 200),
		object.NewWall(1050, 500, 150, 150),
	}
	bunkers := []object.Bunker{{X: 500, Y: 500, Radius: 20}}
	s := newTestState(t, walls, bunkers)
	s.layout.Hole = object.Hole{X: 1000, Y: 300}
	s.tries = 3
	place(s, 1005, 296, 0, 0)

	rep := tick(t, s)
	if !rep.Holed || rep.Strokes != 3 {
		t.Fatalf("report = %+v, want holed in 3", rep)
	}
	b := s.Ball()
	if b.Pos != s.Spawn() || !b.AtRest() {
		t.Errorf("ball not reset: %+v", b)
	}
	if s.Tries() != 0 || s.Holes() != 1 {
		t.Errorf("tries = %d holes = %d, want 0 and 1", s.Tries(), s.Holes())
	}

	box := s.Layout().Hole.Box(config.HoleBoxSize)
	for i, w := range s.Layout().Walls {
		if w.Overlaps(box) {
			t.Errorf("new hole %+v overlaps wall %d", s.Layout().Hole, i)
		}
	}

	// Walls and bunkers are kept between holes.
	if len(s.Layout().Walls) != 2 || s.Layout().Walls[1] != walls[1] || s.Layout().Bunkers[0] != bunkers[0] {
		t.Error("obstacles changed after completing a hole")
	}
}

func TestHoleUsesSignedVelocity(t *testing.T) {
	s := newTestState(t, nil, nil)
	s.layout.Hole = object.Hole{X: 1000, Y: 300}

	// Fast towards +x: too fast to drop.
	place(s, 995, 300, 5, 0)
	if tick(t, s).Holed {
		t.Error("fast ball moving right should roll over the hole")
	}

	// Just as fast towards -x: the signed comparison lets it drop.
	s.layout.Hole = object.Hole{X: 1000, Y: 300}
	place(s, 1005, 300, -5, 0)
	if !tick(t, s).Holed {
		t.Error("ball moving left is compared by signed velocity and should drop")
	}
}

func TestTickFailsWhenNoHoleFits(t *testing.T) {
	p := config.Defaults()
	p.MaxPlacementAttempts = 50
	layout := &course.Layout{
		Walls: []object.Wall{object.NewWall(850, -10, 400, 820)},
		Hole:  object.Hole{X: 1000, Y: 300},
	}
	s, err := NewWithLayout(p, rand.New(rand.NewSource(2)), layout, nil)
	if err != nil {
		t.Fatal(err)
	}
	place(s, 1000, 300, 0, 0)

	if _, err := s.Tick(); !errors.Is(err, course.ErrLayoutInfeasible) {
		t.Fatalf("Tick err = %v, want ErrLayoutInfeasible", err)
	}
}

func TestNewGeneratesCourse(t *testing.T) {
	s, err := New(config.Defaults(), rand.New(rand.NewSource(11)), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(s.Layout().Walls) != config.WallCount || len(s.Layout().Bunkers) != config.BunkerCount {
		t.Errorf("layout has %d walls, %d bunkers", len(s.Layout().Walls), len(s.Layout().Bunkers))
	}
	if s.Ball().Pos != (physics.Vec2{X: 75, Y: 725}) {
		t.Errorf("ball starts at %+v", s.Ball().Pos)
	}

	s.tries, s.holes = 4, 2
	place(s, 300, 300, 1, 1)
	if err := s.NewCourse(); err != nil {
		t.Fatal(err)
	}
	if s.Tries() != 0 || s.Holes() != 0 || !s.Ball().AtRest() || s.Ball().Pos != s.Spawn() {
		t.Errorf("NewCourse did not reset the game: tries=%d holes=%d ball=%+v", s.Tries(), s.Holes(), s.Ball())
	}
}

func TestNewReportsInfeasibleCourse(t *testing.T) {
	p := config.Defaults()
	p.ScreenWidth, p.ScreenHeight = 200, 200
	p.MaxPlacementAttempts = 100

	_, err := New(p, rand.New(rand.NewSource(1)), nil)
	if !errors.Is(err, course.ErrLayoutInfeasible) {
		t.Fatalf("err = %v, want ErrLayoutInfeasible", err)
	}
}
