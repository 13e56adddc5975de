// Package display shows a polycore.Device in a desktop window.
package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"polycore"
)

// RenderFunc draws frame into device. It is called from the window's update
// loop, outside any scene.
type RenderFunc func(device *polycore.Device, frame int) error

// Window presents a device once per tick. Space pauses, the left and right
// arrows step while paused, Escape closes the window.
type Window struct {
	device *polycore.Device
	render RenderFunc

	frame  int
	paused bool
	dirty  bool
}

func New(device *polycore.Device, render RenderFunc) *Window {
	return &Window{device: device, render: render, dirty: true}
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
	}

	var step int
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		step++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		step--
	}

	return w.advance(step)
}

// advance renders the next frame, or frame+step while paused.
func (w *Window) advance(step int) error {
	if w.paused {
		if step == 0 && !w.dirty {
			return nil
		}

		w.frame += step
	} else if !w.dirty {
		w.frame++
	}

	if err := w.render(w.device, w.frame); err != nil {
		return fmt.Errorf("render frame %d: %w", w.frame, err)
	}

	w.dirty = false

	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if err := w.device.Present(screen); err != nil {
		polycore.Logger().Warn("display: present failed", "error", err)
		return
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()))
}

// Layout implements ebiten.Game. The logical screen is the device surface.
func (w *Window) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return w.device.Width(), w.device.Height()
}

// Frame returns the number of the frame last rendered.
func (w *Window) Frame() int { return w.frame }

// Run opens a window scaled by scale and blocks until it is closed.
func Run(title string, scale int, window *Window) error {
	ebiten.SetWindowSize(window.device.Width()*scale, window.device.Height()*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetScreenClearedEveryFrame(false)

	polycore.Logger().Debug("display: window opened", "title", title, "width", window.device.Width(), "height", window.device.Height())

	if err := ebiten.RunGame(window); err != nil {
		return fmt.Errorf("run window: %w", err)
	}

	return nil
}
