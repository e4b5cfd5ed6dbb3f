package geometry

import (
	"math"

	"github.com/agext/levenshtein"
	"github.com/pkg/errors"
	"github.com/specialistvlad/boardgrid/internal/model"
)

// Point is a 2-D coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Properties lists every name Property understands.
var Properties = []string{"x", "y", "z", "w", "h", "d", "back", "angle", "right", "top", "cx", "cy", "x2", "y2"}

// Property returns a derived value of b. id is used in error messages only.
func Property(b *model.Board, prop, id string) (float64, error) {
	x, y, z := b.Pos()
	switch prop {
	case "x":
		return x, nil
	case "y":
		return y, nil
	case "z":
		return z, nil
	case "w":
		return b.W, nil
	case "h":
		return b.H, nil
	case "d":
		return b.D, nil
	case "back":
		return z + b.D, nil
	case "angle":
		return b.Angle, nil
	}

	if b.Angle == 0 {
		switch prop {
		case "right", "x2":
			return x + b.W, nil
		case "top":
			return y + b.H, nil
		case "cx":
			return x + b.W/2, nil
		case "cy":
			return y + b.H/2, nil
		case "y2":
			return y, nil
		}
		return 0, unknownProperty(prop, id)
	}

	corners := Corners(b)
	minX, minY, maxX, maxY := bounds(corners[:])
	switch prop {
	case "right":
		return maxX, nil
	case "top":
		return maxY, nil
	case "cx":
		return (minX + maxX) / 2, nil
	case "cy":
		return (minY + maxY) / 2, nil
	case "x2":
		return corners[1].X, nil
	case "y2":
		return corners[1].Y, nil
	}
	return 0, unknownProperty(prop, id)
}

// Corners returns the four corners of b rotated by its angle about (x, y):
// origin, end of the width vector, far corner, end of the height vector.
func Corners(b *model.Board) [4]Point {
	x, y, _ := b.Pos()
	theta := b.Angle * math.Pi / 180
	sin, cos := math.Sincos(theta)
	return [4]Point{
		{x, y},
		{x + b.W*cos, y + b.W*sin},
		{x + b.W*cos - b.H*sin, y + b.W*sin + b.H*cos},
		{x - b.H*sin, y + b.H*cos},
	}
}

func bounds(points []Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

func unknownProperty(prop, id string) error {
	if hint := Suggest(prop, Properties); hint != "" {
		return errors.Wrapf(model.ErrUnknownProperty, "{%s.%s} (did you mean %q?)", id, prop, hint)
	}
	return errors.Wrapf(model.ErrUnknownProperty, "{%s.%s}", id, prop)
}

// Suggest returns the candidate closest to name when it is within two
// edits, or "".
func Suggest(name string, candidates []string) string {
	best, bestDist := "", 3
	for _, c := range candidates {
		if d := levenshtein.Distance(name, c, nil); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
