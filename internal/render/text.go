package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gookit/color"
	"github.com/specialistvlad/boardgrid/internal/geometry"
	"github.com/specialistvlad/boardgrid/internal/model"
)

type textWriter struct {
	w     io.Writer
	color bool
}

func (t *textWriter) style(s color.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Sprint(text)
}

// swatch prints a two-cell block in the board color followed by its code.
func (t *textWriter) swatch(hex string) string {
	if !t.color {
		return hex
	}
	return color.HEX(hex, true).Sprint("  ") + " " + hex
}

func (t *textWriter) boards(r *BoardsReport) error {
	for i, src := range r.Sources {
		if i > 0 {
			fmt.Fprintln(t.w)
		}
		header := fmt.Sprintf("== %s (%d boards, %d variables)", src.Path, len(src.Boards), src.VarCount)
		fmt.Fprintln(t.w, t.style(color.Style{color.OpBold}, header))

		if len(src.Boards) > 0 {
			if err := t.boardTable(src.Boards); err != nil {
				return err
			}
		}

		if src.Bounds != nil {
			h, v := geometry.AxisLabels(r.Projection)
			b := src.Bounds
			fmt.Fprintf(t.w, "bounds (%s): %s %s..%s, %s %s..%s\n", r.Projection,
				h, num(b.LX), num(b.LX+b.LW), v, num(b.LY), num(b.LY+b.LH))
		}

		if len(src.Errors) > 0 {
			fmt.Fprintln(t.w, t.style(color.Style{color.FgRed, color.OpBold}, fmt.Sprintf("errors (%d):", len(src.Errors))))
			for _, e := range src.Errors {
				fmt.Fprintln(t.w, "  "+t.style(color.Style{color.FgRed}, e))
			}
		}
	}
	return nil
}

func (t *textWriter) boardTable(entries []BoardEntry) error {
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tW\tH\tD\tPOSITION\tANGLE\tVIEW\tCOLOR")
	for _, e := range entries {
		b := e.Board
		view := b.View
		if view == "" {
			view = "(" + geometry.DetectViews(b) + ")"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Name, num(b.W), num(b.H), num(b.D), position(b), num(b.Angle), view, t.swatch(b.Color))
	}
	return tw.Flush()
}

func position(b *model.Board) string {
	if !b.HasPos {
		return "-"
	}
	x, y, z := b.Pos()
	return num(x) + "," + num(y) + "," + num(z)
}

func (t *textWriter) cutList(r *CutListReport) error {
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "QTY\tW\tH\tD\tCUT\tAREA\tNAMES")
	for _, row := range r.Rows {
		cut := ""
		if row.Cut {
			cut = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Qty, num(row.W), num(row.H), num(row.D), cut, num(row.Area), strings.Join(row.Names, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	total := fmt.Sprintf("total: %d pieces, %s", r.Total.Pieces, num(r.Total.Area))
	_, err := fmt.Fprintln(t.w, t.style(color.Style{color.OpBold}, total))
	return err
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
