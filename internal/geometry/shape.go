package geometry

import (
	"math"

	"github.com/specialistvlad/boardgrid/internal/model"
)

// CutPolygon returns the board outline in board-local coordinates:
// (0,0), (bottom,0), (top,right), (0,left). Missing cut values fall back to
// the full width or height, so an uncut board yields its w×h rectangle.
func CutPolygon(b *model.Board) []Point {
	lh, rh, bw, tw := b.H, b.H, b.W, b.W
	if c := b.Cuts; c != nil {
		lh = valueOr(c.Left, lh)
		rh = valueOr(c.Right, rh)
		bw = valueOr(c.Bottom, bw)
		tw = valueOr(c.Top, tw)
	}
	return []Point{{0, 0}, {bw, 0}, {tw, rh}, {0, lh}}
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// PolygonArea returns the unsigned area of a simple polygon.
func PolygonArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}
