package geometry

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/specialistvlad/boardgrid/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placed(w, h, d, x, y, z float64) *model.Board {
	return &model.Board{
		ID: "a", W: w, H: h, D: d,
		X: model.Float(x), Y: model.Float(y), Z: model.Float(z),
		HasPos: true, Visible: true,
	}
}

func TestProperty_Axis(t *testing.T) {
	b := placed(100, 200, 18, 10, 20, 30)
	want := map[string]float64{
		"x": 10, "y": 20, "z": 30, "w": 100, "h": 200, "d": 18,
		"back": 48, "angle": 0, "right": 110, "top": 220,
		"cx": 60, "cy": 120, "x2": 110, "y2": 20,
	}
	for prop, v := range want {
		got, err := Property(b, prop, "a")
		require.NoError(t, err, prop)
		assert.Equal(t, v, got, prop)
	}
}

func TestProperty_NullPositionReadsAsZero(t *testing.T) {
	b := &model.Board{ID: "a", W: 100, H: 200, D: 50}
	for prop, v := range map[string]float64{"x": 0, "y": 0, "z": 0, "right": 100, "top": 200, "back": 50} {
		got, err := Property(b, prop, "a")
		require.NoError(t, err)
		assert.Equal(t, v, got, prop)
	}
}

func TestProperty_RightAndTopInvariant(t *testing.T) {
	for _, b := range []*model.Board{placed(1, 2, 3, 4, 5, 6), placed(600, 18, 560, -300, 720, 0)} {
		x, _ := Property(b, "x", "a")
		w, _ := Property(b, "w", "a")
		right, _ := Property(b, "right", "a")
		assert.Equal(t, x+w, right)

		y, _ := Property(b, "y", "a")
		h, _ := Property(b, "h", "a")
		top, _ := Property(b, "top", "a")
		assert.Equal(t, y+h, top)
	}
}

func TestProperty_Rotated(t *testing.T) {
	b := placed(100, 20, 18, 0, 0, 0)
	b.Angle = 90

	right, err := Property(b, "right", "a")
	require.NoError(t, err)
	assert.InDelta(t, 0, right, 1e-9)

	top, err := Property(b, "top", "a")
	require.NoError(t, err)
	assert.InDelta(t, 100, top, 1e-9)

	cx, _ := Property(b, "cx", "a")
	assert.InDelta(t, -10, cx, 1e-9)

	cy, _ := Property(b, "cy", "a")
	assert.InDelta(t, 50, cy, 1e-9)

	x2, _ := Property(b, "x2", "a")
	y2, _ := Property(b, "y2", "a")
	assert.InDelta(t, 0, x2, 1e-9)
	assert.InDelta(t, 100, y2, 1e-9)
}

func TestProperty_Rotated45(t *testing.T) {
	b := placed(math.Sqrt2*100, 20, 18, 0, 0, 0)
	b.Angle = 45

	x2, _ := Property(b, "x2", "a")
	y2, _ := Property(b, "y2", "a")
	assert.InDelta(t, 100, x2, 1e-9)
	assert.InDelta(t, 100, y2, 1e-9)

	top, _ := Property(b, "top", "a")
	assert.InDelta(t, 100+20*math.Cos(math.Pi/4), top, 1e-9)
}

func TestProperty_Unknown(t *testing.T) {
	_, err := Property(placed(1, 1, 1, 0, 0, 0), "rigth", "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownProperty))
	assert.Contains(t, err.Error(), `did you mean "right"`)

	b := placed(1, 1, 1, 0, 0, 0)
	b.Angle = 30
	_, err = Property(b, "volume", "a")
	assert.True(t, errors.Is(err, model.ErrUnknownProperty))
	assert.NotContains(t, err.Error(), "did you mean")
}
