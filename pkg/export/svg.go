package export

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/canopytui/canopy/pkg/tree"
)

const (
	svgRowHeight = 20
	svgIndent    = 16
	svgPadding   = 10
	svgMinWidth  = 400
)

// GenerateSVG writes the given flattened rows as an SVG outline, one text
// line per row with depth-based indentation. Rows come from tree.Flatten so
// the image mirrors exactly what the terminal shows.
func GenerateSVG(w io.Writer, rows []tree.Row, title string) {
	width := svgMinWidth
	for _, row := range rows {
		if lineWidth := svgPadding*2 + row.Depth*svgIndent + 8*len(row.Node.Label); lineWidth > width {
			width = lineWidth
		}
	}
	height := svgPadding*2 + svgRowHeight*(len(rows)+1)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")
	canvas.Text(svgPadding, svgPadding+svgRowHeight/2,
		title, "font-family:monospace;font-size:14px;font-weight:bold")

	for i, row := range rows {
		x := svgPadding + row.Depth*svgIndent
		y := svgPadding + svgRowHeight*(i+2) - svgRowHeight/2

		label := row.Node.Label
		style := "font-family:monospace;font-size:13px"
		if row.Node.Dir {
			label += "/"
			style += ";font-weight:bold"
		}
		canvas.Text(x, y, label, style)
	}
	canvas.End()
}
