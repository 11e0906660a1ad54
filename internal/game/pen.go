package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// penSourceSize keeps a one pixel border around the sampled texel.
const penSourceSize = 3

// pen is a solid stroke source borrowed from a penPool for one paint.
type pen struct {
	pool     *penPool
	src      *ebiten.Image
	width    float32
	released bool
}

// penPool recycles pen source images between paints.
type penPool struct {
	free      []*ebiten.Image
	allocated int
}

func (p *penPool) acquire(clr color.Color, width float32) *pen {
	var src *ebiten.Image
	if n := len(p.free); n > 0 {
		src = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		src = ebiten.NewImage(penSourceSize, penSourceSize)
		p.allocated++
	}
	src.Fill(clr)
	return &pen{pool: p, src: src, width: width}
}

// release returns the source image to the pool. Only the first call has an effect.
func (p *pen) release() {
	if p.released {
		return
	}
	p.released = true
	p.pool.free = append(p.pool.free, p.src)
	p.src = nil
}

// solidStroke matches a plain solid pen: round ends and joins.
func solidStroke(width float32) *vector.StrokeOptions {
	return &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
}

// line strokes a round-capped segment from (x0, y0) to (x1, y1).
func (p *pen) line(dst *ebiten.Image, x0, y0, x1, y1 float32) {
	if p.released {
		return
	}

	var path vector.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, solidStroke(p.width))
	if len(is) == 0 {
		return
	}
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = 1
		vs[i].ColorG = 1
		vs[i].ColorB = 1
		vs[i].ColorA = 1
	}
	dst.DrawTriangles(vs, is, p.src, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}
