package geometry

import (
	"image"
	"math"

	"github.com/iburimskiy/rotating-line/internal/config"
)

// Geometry is the client rectangle as seen by a single paint.
type Geometry struct {
	Width, Height int
}

// FromBounds reads the client size from an image rectangle.
func FromBounds(r image.Rectangle) Geometry {
	return Geometry{Width: r.Dx(), Height: r.Dy()}
}

func (g Geometry) Center() image.Point {
	return image.Pt(g.Width/2, g.Height/2)
}

// HalfLength is the line length: LengthRatio of half the shorter side.
func (g Geometry) HalfLength() int {
	side := min(g.Width, g.Height)
	if side <= 0 {
		return 0
	}
	return int(float64(side/2) * config.LengthRatio)
}

// Endpoint returns the far end of the line at angle, truncated toward zero.
func (g Geometry) Endpoint(angle float64) image.Point {
	c := g.Center()
	l := float64(g.HalfLength())
	return image.Pt(
		c.X+int(l*math.Cos(angle)),
		c.Y+int(l*math.Sin(angle)),
	)
}
