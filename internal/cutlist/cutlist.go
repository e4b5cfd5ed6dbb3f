// Package cutlist groups parsed boards into rows for ordering material:
// boards with the same dimensions and the same cut outline collapse into one
// row with a quantity.
package cutlist

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/specialistvlad/boardgrid/internal/expr"
	"github.com/specialistvlad/boardgrid/internal/geometry"
	"github.com/specialistvlad/boardgrid/internal/model"
)

// Row is one line of the cut list.
type Row struct {
	Names []string `json:"names" yaml:"names"`
	W     float64  `json:"w" yaml:"w"`
	H     float64  `json:"h" yaml:"h"`
	D     float64  `json:"d" yaml:"d"`
	Cut   bool     `json:"cut" yaml:"cut"`
	Qty   int      `json:"qty" yaml:"qty"`
	// Area is the face area of a single piece, cuts included.
	Area float64 `json:"area" yaml:"area"`
}

// Summary totals a cut list.
type Summary struct {
	Pieces int     `json:"pieces" yaml:"pieces"`
	Area   float64 `json:"area" yaml:"area"`
}

// Build groups boards into rows in first-seen order. Position, rotation,
// view and color do not affect grouping.
func Build(boards []*model.Board) []Row {
	groups := linkedhashmap.New()
	for _, b := range boards {
		key := shapeKey(b)
		if v, ok := groups.Get(key); ok {
			row := v.(*Row)
			row.Qty++
			if !contains(row.Names, b.Name) {
				row.Names = append(row.Names, b.Name)
			}
			continue
		}
		groups.Put(key, &Row{
			Names: []string{b.Name},
			W:     b.W,
			H:     b.H,
			D:     b.D,
			Cut:   !b.Cuts.Empty(),
			Qty:   1,
			Area:  expr.Round3(geometry.PolygonArea(geometry.CutPolygon(b))),
		})
	}

	rows := make([]Row, 0, groups.Size())
	it := groups.Iterator()
	for it.Next() {
		rows = append(rows, *it.Value().(*Row))
	}
	return rows
}

// Total sums the quantities and areas of rows.
func Total(rows []Row) Summary {
	var s Summary
	for _, r := range rows {
		s.Pieces += r.Qty
		s.Area += r.Area * float64(r.Qty)
	}
	s.Area = expr.Round3(s.Area)
	return s
}

func shapeKey(b *model.Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%g|%g|%g", b.W, b.H, b.D)
	if c := b.Cuts; c != nil {
		for _, v := range []*float64{c.Left, c.Right, c.Top, c.Bottom} {
			if v == nil {
				sb.WriteString("|-")
			} else {
				fmt.Fprintf(&sb, "|%g", *v)
			}
		}
	}
	return sb.String()
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
