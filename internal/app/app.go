// Package app wires the window into Ebitengine and owns the process
// lifecycle: register the window class, run the loop, report failures.
package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/rotating-line/internal/config"
	"github.com/iburimskiy/rotating-line/internal/game"
)

var (
	ErrRegistration = errors.New("window registration failed")
	ErrCreation     = errors.New("window creation failed")
	ErrRun          = errors.New("game loop failed")
)

// Dialog shows a blocking modal message. zenity.Error satisfies it.
type Dialog func(text string, options ...zenity.Option) error

// WindowClass describes the top-level window before it exists.
type WindowClass struct {
	Title         string
	Width, Height int
	Resizable     bool
}

// DefaultClass is the one window this program creates.
func DefaultClass() WindowClass {
	return WindowClass{
		Title:     config.WindowTitle,
		Width:     config.WindowWidth,
		Height:    config.WindowHeight,
		Resizable: true,
	}
}

func (c WindowClass) validate() error {
	if c.Title == "" {
		return fmt.Errorf("%w: empty title", ErrRegistration)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", ErrRegistration, c.Width, c.Height)
	}
	return nil
}

// apply pushes the class into Ebitengine's window settings.
func (c WindowClass) apply() {
	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetWindowTitle(c.Title)
	if c.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)
}

type App struct {
	class   WindowClass
	dialog  Dialog
	runGame func(ebiten.Game) error
	apply   func(WindowClass)
}

func New() *App {
	return &App{
		class:   DefaultClass(),
		dialog:  zenity.Error,
		runGame: ebiten.RunGame,
		apply:   WindowClass.apply,
	}
}

// Run blocks until the window is closed and returns the process exit code.
// Registration and creation failures are reported in a modal dialog and
// exit with 0. A loop error after the window was created is logged and
// exits with 1.
func (a *App) Run() int {
	if err := a.register(); err != nil {
		a.fail(config.RegistrationFailText, err)
		return 0
	}

	w := game.NewWindow()
	if err := a.runGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		if !w.Created() {
			a.fail(config.CreationFailText, fmt.Errorf("%w: %v", ErrCreation, err))
			return 0
		}
		log.Printf("[App] %v", fmt.Errorf("%w: %v", ErrRun, err))
		return 1
	}

	log.Printf("[App] exiting with code %d", w.ExitCode())
	return w.ExitCode()
}

func (a *App) register() error {
	if err := a.class.validate(); err != nil {
		return err
	}
	a.apply(a.class)
	log.Printf("[App] registered window %q (%dx%d)", a.class.Title, a.class.Width, a.class.Height)
	return nil
}

func (a *App) fail(text string, err error) {
	log.Printf("[App] %v", err)
	if derr := a.dialog(text, zenity.Title(config.ErrorTitle), zenity.WarningIcon); derr != nil && !errors.Is(derr, zenity.ErrCanceled) {
		log.Printf("[App] error dialog failed: %v", derr)
	}
}
