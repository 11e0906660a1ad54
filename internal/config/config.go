package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 500
	WindowHeight = 500
	WindowTitle  = "Rotating Line Animation"

	// Animation timer
	TickInterval = 30 * time.Millisecond
	AngleStep    = 0.05 // radians per tick
	ColorCycle   = 768  // phases per full red -> green -> blue sweep

	// Line parameters
	LengthRatio = 0.75 // fraction of half the shorter client side
	LineWidth   = 3

	// Dialog text
	ErrorTitle           = "Error!"
	RegistrationFailText = "Window Registration Failed!"
	CreationFailText     = "Window Creation Failed!"
)

// Background is the client area fill, matching a plain window background.
var Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
