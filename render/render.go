// Package render draws yantras and shapes onto a Canvas. Two canvases are
// provided: SVG, backed by github.com/ajstarks/svgo, and PNG, backed by
// github.com/fogleman/gg.
//
// Coordinates are in diagram units with y pointing up. Each canvas maps a
// viewBox onto its output and flips y.
package render

import (
	"fmt"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"

	"sri-yantra/planar"
	"sri-yantra/shapes"
	"sri-yantra/yantra"
)

// None disables a fill or a stroke.
const None = "none"

// Style is how one shape is painted. Colors are SVG color names or hex
// (#rgb, #rrggbb, #rrggbbaa).
type Style struct {
	StrokeWidth float64
	StrokeColor string
	FillColor   string
}

func (s Style) css() string {
	fill, stroke := s.FillColor, s.StrokeColor
	if fill == "" {
		fill = None
	}
	if stroke == "" {
		stroke = None
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g;stroke-linejoin:round", fill, stroke, s.StrokeWidth)
}

// Canvas receives shapes in diagram coordinates.
type Canvas interface {
	// Polygon draws the closed polygon through points.
	Polygon(points []geom.Coord, s Style)
	// Polyline draws the open line through points.
	Polyline(points []geom.Coord, s Style)
	Circle(center geom.Coord, r float64, s Style)
	Leaf(l shapes.LeafOutline, s Style)
}

// DefaultStyles alternates blue outer paths with red inner ones. Stroke
// widths scale with radius.
func DefaultStyles(radius float64) [yantra.NumPaths]Style {
	outer := Style{StrokeWidth: radius / 100, StrokeColor: "blue", FillColor: "blue"}
	inner := Style{StrokeWidth: radius / 100, StrokeColor: "red", FillColor: "red"}
	var styles [yantra.NumPaths]Style
	for i := range styles {
		styles[i] = outer
		if i%2 == 1 {
			styles[i] = inner
		}
	}
	return styles
}

// ViewBox is the square around circle, grown by margin (a fraction of the
// radius) on every side.
func ViewBox(circle planar.Circle, margin float64) geom.Rect {
	r := circle.Radius * (1 + margin)
	return geom.Rect{
		Min: circle.Center.Minus(geom.Coord{X: r, Y: r}),
		Max: circle.Center.Plus(geom.Coord{X: r, Y: r}),
	}
}

// DrawSriYantra paints the nine paths of a constructed yantra, outermost
// first, each with the style at the same index.
func DrawSriYantra(c Canvas, y *yantra.Yantra, styles [yantra.NumPaths]Style) error {
	paths, err := y.Paths()
	if err != nil {
		return errors.Wrap(err, "render: sri yantra")
	}
	for i, p := range paths {
		c.Polygon(p.Points, styles[i])
	}
	yantra.Logger().Debug("render: drew sri yantra", "paths", len(paths))
	return nil
}

// DrawPoints marks every constructed point of y with a circle of radius r.
func DrawPoints(c Canvas, y *yantra.Yantra, r float64, s Style) error {
	pts := planar.Distinct(y.AllPoints(), 0)
	if len(pts) == 0 {
		return errors.New("render: yantra has no constructed points")
	}
	for _, p := range pts {
		c.Circle(p, r, s)
	}
	return nil
}

// DrawLeaves paints every leaf with the same style.
func DrawLeaves(c Canvas, leaves []shapes.LeafOutline, s Style) {
	for _, l := range leaves {
		c.Leaf(l, s)
	}
}
