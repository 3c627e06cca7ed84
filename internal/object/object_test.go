package object

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/tomz197/minigolf/internal/physics"
)

func TestNewBallRejectsNonPositiveRadius(t *testing.T) {
	for _, r := range []float64{0, -1} {
		if _, err := NewBall(0, 0, r); err == nil {
			t.Errorf("NewBall radius %v: expected error", r)
		}
	}
	b, err := NewBall(75, 725, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !b.AtRest() {
		t.Error("new ball should be at rest")
	}
	bounds := b.Bounds()
	if bounds.Left() != 65 || bounds.Bottom() != 735 {
		t.Errorf("Bounds = %+v", bounds)
	}
}

func TestBallValueMethods(t *testing.T) {
	snapshot := func() Ball { return Ball{Pos: physics.Vec2{X: 40, Y: 50}, Radius: 10} }
	if !snapshot().AtRest() {
		t.Error("copied ball with zero velocity should be at rest")
	}
	if got := snapshot().Bounds(); got != (physics.Rect{X: 30, Y: 40, W: 20, H: 20}) {
		t.Errorf("Bounds = %+v", got)
	}
	moving := Ball{Vel: physics.Vec2{X: 0.5}, Radius: 1}
	if moving.AtRest() {
		t.Error("moving ball reported at rest")
	}
}

func TestBunkerRimDistance(t *testing.T) {
	b := Bunker{X: 100, Y: 100, Radius: 20}
	if d := b.RimDistance(100, 100); d != -20 {
		t.Errorf("center rim distance = %v, want -20", d)
	}
	if d := b.RimDistance(130, 100); d != 10 {
		t.Errorf("outside rim distance = %v, want 10", d)
	}
}

func TestHoleBox(t *testing.T) {
	box := Hole{X: 1000, Y: 300}.Box(16)
	if box.X != 992 || box.Y != 292 || box.W != 16 || box.H != 16 {
		t.Errorf("Box = %+v", box)
	}
}

func TestTextRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (Text{X: 0, Y: 2, Value: "Tries: 3"}).Render(&buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\033[2;1HTries: 3"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestBurstParticlesSlowAndExpire(t *testing.T) {
	ps := Burst(500, 500, 10, 4, 20, rand.New(rand.NewSource(7)))
	if len(ps) != 10 {
		t.Fatalf("Burst made %d particles, want 10", len(ps))
	}
	for _, p := range ps {
		if p.Life < 10 || p.Life > 20 {
			t.Errorf("life %d outside [10, 20]", p.Life)
		}
		if speed := p.Vel.Len(); speed < 2 || speed > 6 {
			t.Errorf("speed %v outside [2, 6]", speed)
		}
	}

	first := ps[0].Vel.Len()
	ps = UpdateParticles(ps)
	if len(ps) != 10 {
		t.Fatalf("%d particles survived one tick, want 10", len(ps))
	}
	if got := ps[0].Vel.Len(); got >= first {
		t.Errorf("speed after one tick = %v, want below %v", got, first)
	}

	for i := 0; i < 20; i++ {
		ps = UpdateParticles(ps)
	}
	if len(ps) != 0 {
		t.Errorf("%d particles alive after their lifetime", len(ps))
	}
}
