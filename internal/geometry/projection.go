package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/specialistvlad/boardgrid/internal/model"
)

// Direction names the side an assembly is viewed from.
type Direction string

const (
	Front  Direction = "front"
	Back   Direction = "back"
	Left   Direction = "left"
	Right  Direction = "right"
	Top    Direction = "top"
	Bottom Direction = "bottom"
)

// Directions lists all projection directions.
var Directions = []Direction{Front, Back, Left, Right, Top, Bottom}

// ParseDirection validates a direction name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Directions {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown projection %q: must be one of front, back, left, right, top, bottom", s)
}

// Rect is a projected, axis-aligned rectangle.
type Rect struct {
	LX float64 `json:"lx" yaml:"lx"`
	LY float64 `json:"ly" yaml:"ly"`
	LW float64 `json:"lw" yaml:"lw"`
	LH float64 `json:"lh" yaml:"lh"`
}

// Project maps b onto the plane seen from dir.
func Project(b *model.Board, dir Direction) Rect {
	x, y, z := b.Pos()
	switch dir {
	case Front:
		return Rect{x, y, b.W, b.H}
	case Back:
		return Rect{-x - b.W, y, b.W, b.H}
	case Left:
		return Rect{z, y, b.D, b.H}
	case Right:
		return Rect{-z - b.D, y, b.D, b.H}
	case Top:
		return Rect{x, z, b.W, b.D}
	case Bottom:
		return Rect{x, -z - b.D, b.W, b.D}
	}
	panic(fmt.Sprintf("geometry: unknown direction %q", dir))
}

// AxisLabels returns the horizontal and vertical axis names for dir.
func AxisLabels(dir Direction) (horizontal, vertical string) {
	switch dir {
	case Left, Right:
		return "Z", "Y"
	case Top, Bottom:
		return "X", "Z"
	default:
		return "X", "Y"
	}
}

// SceneBounds returns the union of the projections of all positioned,
// visible boards. ok is false when there is no such board.
func SceneBounds(boards []*model.Board, dir Direction) (r Rect, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range boards {
		if !b.HasPos || !b.Visible {
			continue
		}
		p := Project(b, dir)
		minX = math.Min(minX, p.LX)
		minY = math.Min(minY, p.LY)
		maxX = math.Max(maxX, p.LX+p.LW)
		maxY = math.Max(maxY, p.LY+p.LH)
		ok = true
	}
	if !ok {
		return Rect{}, false
	}
	return Rect{LX: minX, LY: minY, LW: maxX - minX, LH: maxY - minY}, true
}
