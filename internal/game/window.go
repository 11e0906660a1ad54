package game

import (
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/rotating-line/internal/animation"
	"github.com/iburimskiy/rotating-line/internal/config"
)

type lifecycle int

const (
	created lifecycle = iota
	running
	closing
	destroyed
)

// Window is the single top-level window. It implements ebiten.Game and owns
// the animation state; only the Tick handler mutates it.
type Window struct {
	state *animation.State
	timer *Timer
	pens  penPool

	phase   lifecycle
	dirty   bool
	painted image.Point // client size at the last paint

	quit     bool
	exitCode int

	// Platform hooks, replaced in tests.
	closeRequested func() bool
	tps            func() int
}

func NewWindow() *Window {
	return &Window{
		state:          animation.NewState(),
		timer:          NewTimer(config.TickInterval),
		closeRequested: ebiten.IsWindowBeingClosed,
		tps:            ebiten.TPS,
	}
}

// State returns a copy of the animation state.
func (w *Window) State() animation.State { return *w.state }

// Created reports whether the platform window ever received EventCreate.
func (w *Window) Created() bool { return w.phase != created }

// ExitCode is the code posted on destroy.
func (w *Window) ExitCode() int { return w.exitCode }

// Dispatch routes one event to its handler. screen is only used by EventPaint.
func (w *Window) Dispatch(ev Event, screen *ebiten.Image) {
	switch ev {
	case EventCreate:
		w.onCreate()
	case EventTick:
		w.onTick()
	case EventPaint:
		w.onPaint(screen)
	case EventClose:
		w.onClose()
	case EventDestroy:
		w.onDestroy()
	default:
		// Nothing to do for anything else.
	}
}

func (w *Window) onCreate() {
	if w.phase != created {
		return
	}
	w.phase = running
	w.timer.Start()
	w.dirty = true
	log.Printf("[Window] %v: timer every %v", EventCreate, w.timer.Interval)
}

func (w *Window) onTick() {
	if w.phase != running {
		return
	}
	w.state.Advance()
	w.dirty = true
}

func (w *Window) onPaint(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	paint(screen, w.state, &w.pens)
	w.painted = screen.Bounds().Size()
	w.dirty = false
}

func (w *Window) onClose() {
	if w.phase != running && w.phase != created {
		return
	}
	w.phase = closing
	w.timer.Stop()
	log.Printf("[Window] %v: timer stopped", EventClose)
	w.Dispatch(EventDestroy, nil)
}

func (w *Window) onDestroy() {
	if w.phase == destroyed {
		return
	}
	w.phase = destroyed
	log.Printf("[Window] %v", EventDestroy)
	w.postQuit(0)
}

func (w *Window) postQuit(code int) {
	w.quit = true
	w.exitCode = code
	log.Printf("[Window] quit posted, code %d", code)
}

// frameDuration is the time one Update call represents.
func (w *Window) frameDuration() time.Duration {
	tps := w.tps()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (w *Window) Update() error {
	if w.phase == created {
		w.Dispatch(EventCreate, nil)
	}
	if !w.quit && w.closeRequested() {
		w.Dispatch(EventClose, nil)
	}
	if w.quit {
		return ebiten.Termination
	}

	for n := w.timer.Advance(w.frameDuration()); n > 0; n-- {
		w.Dispatch(EventTick, nil)
	}
	return nil
}

// Draw only repaints when a tick invalidated the window or the client area
// changed size; the screen is not cleared between frames.
func (w *Window) Draw(screen *ebiten.Image) {
	if !w.dirty && screen.Bounds().Size() == w.painted {
		return
	}
	w.Dispatch(EventPaint, screen)
}

// Layout keeps the logical client area equal to the window size. A minimized
// window still reports a 1x1 area.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
