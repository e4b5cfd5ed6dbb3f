package geometry

import (
	"testing"

	"github.com/specialistvlad/boardgrid/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	b := placed(100, 200, 18, 10, 20, 30)
	want := map[Direction]Rect{
		Front:  {10, 20, 100, 200},
		Back:   {-110, 20, 100, 200},
		Left:   {30, 20, 18, 200},
		Right:  {-48, 20, 18, 200},
		Top:    {10, 30, 100, 18},
		Bottom: {10, -48, 100, 18},
	}
	for dir, r := range want {
		assert.Equal(t, r, Project(b, dir), string(dir))
	}
}

func TestProject_Unpositioned(t *testing.T) {
	b := &model.Board{W: 100, H: 200, D: 18}
	assert.Equal(t, Rect{-100, 0, 100, 200}, Project(b, Back))
}

func TestAxisLabels(t *testing.T) {
	for dir, want := range map[Direction][2]string{
		Front: {"X", "Y"}, Back: {"X", "Y"},
		Left: {"Z", "Y"}, Right: {"Z", "Y"},
		Top: {"X", "Z"}, Bottom: {"X", "Z"},
	} {
		h, v := AxisLabels(dir)
		assert.Equal(t, want, [2]string{h, v}, string(dir))
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" Top ")
	require.NoError(t, err)
	assert.Equal(t, Top, d)

	_, err = ParseDirection("isometric")
	require.Error(t, err)
}

func TestSceneBounds(t *testing.T) {
	hidden := placed(1000, 1000, 1000, -500, -500, -500)
	hidden.Visible = false

	boards := []*model.Board{
		placed(600, 18, 560, 0, 0, 0),
		placed(18, 720, 560, 0, 18, 0),
		{W: 5000, H: 5000, D: 5000, Visible: true},
		hidden,
	}

	r, ok := SceneBounds(boards, Front)
	require.True(t, ok)
	assert.Equal(t, Rect{0, 0, 600, 738}, r)

	_, ok = SceneBounds(boards[2:], Front)
	assert.False(t, ok)
}
