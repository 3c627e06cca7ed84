// Package loop runs a game in a terminal with the standard
// Input → Update → Draw cycle at a fixed tick rate.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/minigolf/internal/config"
	"github.com/tomz197/minigolf/internal/draw"
	"github.com/tomz197/minigolf/internal/game"
	"github.com/tomz197/minigolf/internal/input"
)

// Options configures a terminal session.
type Options struct {
	// TermSizeFunc reports the terminal size. Defaults to os.Stdout's size.
	TermSizeFunc draw.TermSizeFunc
	// Logger receives debug output. Defaults to discarding it.
	Logger *log.Logger
}

// Run plays a game on the terminal behind r and w until the player quits or
// the input closes. The simulation advances exactly one tick per frame.
func Run(r *bufio.Reader, w io.Writer, params config.Params, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.New(params, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return err
	}
	logger.Info("game started", "seed", seed)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewScaledCanvas(termWidth, termHeight, float64(params.ScreenWidth), float64(params.ScreenHeight))
	s := newSession(g, canvas, rand.New(rand.NewSource(seed+1)), logger)

	out := bufio.NewWriterSize(w, 16*1024)
	draw.HideCursor(out)
	draw.EnableMouse(out)
	draw.ClearScreen(out)
	defer func() {
		draw.DisableMouse(out)
		draw.ShowCursor(out)
		draw.ClearScreen(out)
		_ = out.Flush()
	}()

	stream := input.StartStream(r)

	for s.running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		if err := s.handleInput(input.ReadInput(stream)); err != nil {
			return err
		}
		if !s.running {
			break
		}

		// ===== UPDATE PHASE =====
		termWidth, termHeight, err := sizeFunc()
		if err != nil {
			return err
		}
		canvas.Resize(termWidth, termHeight)

		if err := s.update(); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if err := s.drawFrame(out); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	logger.Info("game ended", "holes", g.Holes())
	return nil
}

// drawFrame clears the screen, renders the course and the UI overlay, and
// flushes the frame in one write.
func (s *session) drawFrame(out *bufio.Writer) error {
	draw.ClearScreen(out)
	s.drawCourse()
	if err := s.canvas.Render(out); err != nil {
		return err
	}
	if err := s.drawUI(out); err != nil {
		return err
	}
	return out.Flush()
}
