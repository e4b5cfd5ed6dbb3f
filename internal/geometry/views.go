package geometry

import (
	"sort"

	"github.com/specialistvlad/boardgrid/internal/model"
)

// ViewDims describes one face of a board in a list view.
type ViewDims struct {
	DW    float64 `json:"dw" yaml:"dw"`
	DH    float64 `json:"dh" yaml:"dh"`
	View  string  `json:"view" yaml:"view"`
	Label string  `json:"label" yaml:"label"`
}

// FaceDims returns the drawn width and height of one face.
func FaceDims(b *model.Board, face rune) (w, h float64) {
	switch face {
	case model.FaceSide:
		return b.D, b.H
	case model.FaceTop:
		return b.W, b.D
	default:
		return b.W, b.H
	}
}

// SingleViewDims returns the dimensions of the first selected face, the
// front face when no view is set.
func SingleViewDims(b *model.Board) (w, h float64) {
	face := rune(model.FaceFront)
	for _, r := range b.View {
		face = r
		break
	}
	return FaceDims(b, face)
}

// DetectViews returns the two faces with the largest projected area. Equal
// areas keep the f, s, t order.
func DetectViews(b *model.Board) string {
	type faceArea struct {
		face rune
		area float64
	}
	areas := []faceArea{
		{model.FaceFront, b.W * b.H},
		{model.FaceSide, b.D * b.H},
		{model.FaceTop, b.W * b.D},
	}
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].area > areas[j].area
	})
	return string([]rune{areas[0].face, areas[1].face})
}

// MultiViewDims lists the faces to draw: the explicit view when set,
// otherwise the two dominant faces.
func MultiViewDims(b *model.Board) []ViewDims {
	faces := b.View
	if faces == "" {
		faces = DetectViews(b)
	}

	out := make([]ViewDims, 0, len(faces))
	for _, f := range faces {
		w, h := FaceDims(b, f)
		out = append(out, ViewDims{DW: w, DH: h, View: string(f), Label: model.FaceLabels[f]})
	}
	return out
}
