package loop

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/minigolf/internal/draw"
	"github.com/tomz197/minigolf/internal/game"
	"github.com/tomz197/minigolf/internal/input"
	"github.com/tomz197/minigolf/internal/object"
	"github.com/tomz197/minigolf/internal/physics"
)

const (
	// bannerTicks is how long a banner message stays on screen (2 seconds at 60 FPS).
	bannerTicks = 120

	burstCount = 24
	burstSpeed = 6.0
	burstLife  = 40
)

// session holds per-terminal state around one game: the canvas, the last
// pointer position, the banner shown above the course and any particles
// left over from the last sunk putt.
type session struct {
	game   *game.State
	canvas *draw.Canvas
	logger *log.Logger
	fx     *rand.Rand // Cosmetic randomness, separate from course generation

	cursor    physics.Vec2 // Last pointer position in logical units
	hasCursor bool

	banner      string
	bannerTicks int
	particles   []*object.Particle
	running     bool
}

func newSession(g *game.State, canvas *draw.Canvas, fx *rand.Rand, logger *log.Logger) *session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &session{
		game:    g,
		canvas:  canvas,
		logger:  logger,
		fx:      fx,
		running: true,
	}
}

// handleInput applies one frame of input. Left press grabs the ball, left
// release shoots, right press cancels the aim.
func (s *session) handleInput(in input.Input) error {
	if in.Quit {
		s.running = false
		return nil
	}

	for _, ev := range in.Mouse {
		x, y, inside := s.canvas.TerminalToLogical(ev.Col, ev.Row)
		s.cursor = physics.Vec2{X: x, Y: y}
		s.hasCursor = true

		switch {
		case ev.Button == input.ButtonRight && ev.Action == input.MousePress:
			s.game.CancelDrag()
		case ev.Button != input.ButtonLeft:
		case ev.Action == input.MousePress:
			if inside {
				s.game.BeginDrag(s.cursor)
			}
		case ev.Action == input.MouseRelease:
			if s.game.EndDrag(s.cursor) {
				b := s.game.Ball()
				s.logger.Debug("shot", "tries", s.game.Tries(), "vx", b.Vel.X, "vy", b.Vel.Y)
			}
		}
	}

	if in.NewCourse {
		if err := s.game.NewCourse(); err != nil {
			return err
		}
		s.showBanner("New course")
	}
	return nil
}

// update advances the simulation one tick and turns its report into banners.
func (s *session) update() error {
	// The hole moves when it is completed, so remember where the ball went in.
	hole := s.game.Layout().Hole
	rep, err := s.game.Tick()
	if err != nil {
		return err
	}
	if rep.Holed {
		s.particles = append(s.particles, object.Burst(hole.X, hole.Y, burstCount, burstSpeed, burstLife, s.fx)...)
	}
	s.particles = object.UpdateParticles(s.particles)

	switch {
	case rep.Holed && rep.Strokes == 1:
		s.showBanner("Hole in one!")
	case rep.Holed:
		s.showBanner(holeBanner(rep.Strokes))
	case rep.InSand && s.bannerTicks == 0 && !s.game.Ball().AtRest():
		s.showBanner("In the sand")
	}

	if s.bannerTicks > 0 {
		s.bannerTicks--
		if s.bannerTicks == 0 {
			s.banner = ""
		}
	}
	return nil
}

func (s *session) showBanner(msg string) {
	s.banner = msg
	s.bannerTicks = bannerTicks
}
