// Package display provides the surfaces the driving loop presents
// frames to. Windowed drivers live in subpackages so that only the
// binary links against them.
package display

// Display is stepped once per emulated frame.
type Display interface {
	// Step processes pending input and reports whether emulation
	// should continue.
	Step() bool
	// Close releases the display.
	Close()
}

// Headless is a Display without a window. It stops after a fixed
// number of frames, or never when the limit is zero.
type Headless struct {
	limit  int
	frames int
	closed bool
}

// NewHeadless returns a Headless display that stops after frames
// frames. A limit <= 0 runs until the emulator stops on its own.
func NewHeadless(frames int) *Headless {
	if frames < 0 {
		frames = 0
	}
	return &Headless{limit: frames}
}

func (h *Headless) Step() bool {
	if h.closed || (h.limit != 0 && h.frames >= h.limit) {
		return false
	}
	h.frames++
	return true
}

// Frames returns the number of frames allowed so far.
func (h *Headless) Frames() int {
	return h.frames
}

func (h *Headless) Close() {
	h.closed = true
}
