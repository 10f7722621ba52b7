// Package sdl implements display.Display with an SDL2 window.
package sdl

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/display"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	// Title is the window title.
	Title = "dmgcore"
	// Width and Height are the window dimensions, the 160x144 LCD
	// scaled by four.
	Width  = 640
	Height = 576
)

// background is the colour the window is cleared to, DMG off-white.
var background = sdl.Color{R: 0xE0, G: 0xF8, B: 0xD0, A: 0xFF}

var _ display.Display = (*Window)(nil)

// Window is an SDL2 window. All methods must be called from the
// goroutine that called New.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

// New initializes SDL and opens the window.
func New() (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl: init: %w", err)
	}

	window, err := sdl.CreateWindow(
		Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		Width, Height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_INPUT_FOCUS,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl: creating renderer: %w", err)
	}

	return &Window{window: window, renderer: renderer}, nil
}

// Step drains the event queue and presents the window. It returns
// false once the window is closed or Q is held.
func (w *Window) Step() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return false
		}
	}

	if sdl.GetKeyboardState()[sdl.SCANCODE_Q] != 0 {
		return false
	}

	w.renderer.SetDrawColor(background.R, background.G, background.B, background.A)
	w.renderer.Clear()
	w.renderer.Present()
	return true
}

func (w *Window) Close() {
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
