package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/boardgrid/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCutPolygon(t *testing.T) {
	cases := []struct {
		name string
		cuts *model.Cuts
		want []Point
	}{
		{
			name: "no cuts is the full rectangle",
			want: []Point{{0, 0}, {500, 0}, {500, 400}, {0, 400}},
		},
		{
			name: "left and right heights",
			cuts: &model.Cuts{Left: model.Float(300), Right: model.Float(200)},
			want: []Point{{0, 0}, {500, 0}, {500, 200}, {0, 300}},
		},
		{
			name: "top width only",
			cuts: &model.Cuts{Top: model.Float(250)},
			want: []Point{{0, 0}, {500, 0}, {250, 400}, {0, 400}},
		},
		{
			name: "all four sides",
			cuts: &model.Cuts{Left: model.Float(1), Right: model.Float(2), Top: model.Float(3), Bottom: model.Float(4)},
			want: []Point{{0, 0}, {4, 0}, {3, 2}, {0, 1}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &model.Board{W: 500, H: 400, D: 50, Cuts: tc.cuts}
			if diff := cmp.Diff(tc.want, CutPolygon(b)); diff != "" {
				t.Errorf("CutPolygon mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPolygonArea(t *testing.T) {
	assert.Equal(t, 200000.0, PolygonArea(CutPolygon(&model.Board{W: 500, H: 400})))

	trapezoid := CutPolygon(&model.Board{W: 500, H: 400, Cuts: &model.Cuts{Left: model.Float(300), Right: model.Float(200)}})
	assert.Equal(t, 125000.0, PolygonArea(trapezoid))
}
