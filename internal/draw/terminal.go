package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// EnableMouse turns on button-event tracking with SGR extended coordinates,
// so presses, drags and releases arrive as ESC [ < b ; col ; row M|m.
func EnableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1002h\033[?1006h")
}

// DisableMouse restores the terminal's default mouse handling.
func DisableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1006l\033[?1002l")
}
