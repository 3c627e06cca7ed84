// Package input turns the raw terminal byte stream into keys and mouse events.
package input

import (
	"bufio"
	"strconv"
)

// MouseAction is what the pointer did.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseDrag
	MouseRelease
)

// Mouse buttons as reported by xterm.
const (
	ButtonLeft   = 0
	ButtonMiddle = 1
	ButtonRight  = 2
)

// MouseEvent is one SGR mouse report. Col and Row are 1-based terminal cells.
type MouseEvent struct {
	Action MouseAction
	Button int
	Col    int
	Row    int
}

// Input represents the current frame's input.
type Input struct {
	Quit      bool
	NewCourse bool
	Mouse     []MouseEvent // In arrival order
}

// Stream delivers input bytes via a channel. Bytes of an escape sequence that
// has not fully arrived yet are kept until the next read.
type Stream struct {
	ch      chan byte
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 256)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking.
// A closed stream (reader hit EOF) is reported as Quit.
func ReadInput(s *Stream) Input {
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			s.pending = append(s.pending, b)
		default:
			break drain
		}
	}

	in, rest := Parse(s.pending)
	s.pending = append(s.pending[:0], rest...)
	if closed {
		in.Quit = true
	}
	return in
}

// maxSequenceLen bounds the parameter bytes of one CSI sequence. SGR mouse
// reports are far shorter; anything longer is dropped instead of buffered.
const maxSequenceLen = 32

// Parse decodes buf and returns the input plus any trailing bytes that form
// an incomplete escape sequence.
func Parse(buf []byte) (Input, []byte) {
	var in Input
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			applyKey(&in, b)
			continue
		}
		if i+1 >= len(buf) {
			return in, buf[i:]
		}
		if buf[i+1] != '[' {
			// Alt+key or a lone escape; ignore the escape byte.
			continue
		}
		end, status := scanCSI(buf, i+2)
		switch status {
		case csiPartial:
			return in, buf[i:]
		case csiInvalid:
			// Drop the sequence so far and read the offending byte as input.
			i = end - 1
			continue
		}
		if buf[i+2] == '<' {
			if ev, ok := parseSGRMouse(buf[i+3:end], buf[end]); ok {
				in.Mouse = append(in.Mouse, ev)
			}
		}
		i = end
	}
	return in, nil
}

type csiStatus int

const (
	csiComplete csiStatus = iota
	csiPartial
	csiInvalid
)

// scanCSI looks for the final byte of a CSI sequence whose parameters start
// at from. For a complete or invalid sequence it returns the index of the
// final or offending byte. SGR mouse reports (leading '<') only accept digits
// and ';' before M or m.
func scanCSI(buf []byte, from int) (int, csiStatus) {
	mouse := from < len(buf) && buf[from] == '<'
	for j := from; j < len(buf); j++ {
		if j-from >= maxSequenceLen {
			return j, csiInvalid
		}
		c := buf[j]
		switch {
		case mouse && j == from:
		case mouse && (c == 'M' || c == 'm'):
			return j, csiComplete
		case mouse && (c < '0' || c > '9') && c != ';':
			return j, csiInvalid
		case mouse:
		case c >= 0x40 && c <= 0x7e:
			return j, csiComplete
		case c < 0x20 || c > 0x3f:
			return j, csiInvalid
		}
	}
	return -1, csiPartial
}

// parseSGRMouse decodes "b;col;row" with final byte M (press/motion) or m (release).
func parseSGRMouse(params []byte, final byte) (MouseEvent, bool) {
	var fields [3]int
	n := 0
	start := 0
	for j := 0; j <= len(params); j++ {
		if j < len(params) && params[j] != ';' {
			continue
		}
		if n == len(fields) {
			return MouseEvent{}, false
		}
		v, err := strconv.Atoi(string(params[start:j]))
		if err != nil {
			return MouseEvent{}, false
		}
		fields[n] = v
		n++
		start = j + 1
	}
	if n != len(fields) {
		return MouseEvent{}, false
	}

	code := fields[0]
	if code&64 != 0 {
		return MouseEvent{}, false // wheel
	}
	ev := MouseEvent{Button: code & 3, Col: fields[1], Row: fields[2]}
	switch {
	case final == 'm':
		ev.Action = MouseRelease
	case final == 'M' && code&32 != 0:
		ev.Action = MouseDrag
	case final == 'M':
		ev.Action = MousePress
	default:
		return MouseEvent{}, false
	}
	return ev, true
}

func applyKey(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'n', 'N':
		in.NewCourse = true
	}
}
