package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/rotating-line/internal/animation"
	"github.com/iburimskiy/rotating-line/internal/config"
	"github.com/iburimskiy/rotating-line/internal/geometry"
)

// paint redraws the client area: background, then one line from the center.
// Geometry is read from the screen every time so a resize is picked up on
// the next paint.
func paint(screen *ebiten.Image, st *animation.State, pens *penPool) {
	geom := geometry.FromBounds(screen.Bounds())
	screen.Fill(config.Background)

	center := geom.Center()
	end := geom.Endpoint(st.Angle)

	if end == center {
		return
	}

	p := pens.acquire(st.Color, config.LineWidth)
	defer p.release()

	p.line(screen, float32(center.X), float32(center.Y), float32(end.X), float32(end.Y))
}
