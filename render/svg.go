package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/jbeda/geom"

	"sri-yantra/shapes"
	"sri-yantra/yantra"
)

// SVGDecimals is the precision of coordinates written to SVG.
const SVGDecimals = 4

// SVG writes shapes as SVG elements. Everything is drawn inside a group that
// flips y about the middle of the viewBox.
type SVG struct {
	canvas *svg.SVG
}

// NewSVG starts a document showing viewBox. Call Close to finish it.
func NewSVG(w io.Writer, viewBox geom.Rect) *SVG {
	s := &SVG{canvas: svg.New(w)}
	s.canvas.Decimals = SVGDecimals
	width, height := viewBox.Width(), viewBox.Height()
	s.canvas.Startview(width, height, viewBox.Min.X, viewBox.Min.Y, width, height)
	s.canvas.Gtransform(fmt.Sprintf("translate(0,%g) scale(1,-1)", viewBox.Min.Y+viewBox.Max.Y))
	yantra.Logger().Debug("render: svg canvas", "viewBox", viewBox)
	return s
}

// Close ends the flip group and the document.
func (s *SVG) Close() {
	s.canvas.Gend()
	s.canvas.End()
}

// pathData builds the d attribute of a leaf path, at SVGDecimals precision.
type pathData struct {
	b strings.Builder
}

func (pd *pathData) printf(format string, a ...interface{}) {
	fmt.Fprintf(&pd.b, format, a...)
}

func coord(p geom.Coord) string {
	return fmt.Sprintf("%.*f,%.*f", SVGDecimals, p.X, SVGDecimals, p.Y)
}

func (pd *pathData) moveTo(p geom.Coord) { pd.printf("M%s", coord(p)) }

func (pd *pathData) cubicTo(ctrl1, ctrl2, p geom.Coord) {
	pd.printf(" C%s %s %s", coord(ctrl1), coord(ctrl2), coord(p))
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (pd *pathData) circularArcTo(p geom.Coord, r float64, largeArc, sweep bool) {
	pd.printf(" A%.*f,%.*f 0 %s,%s %s", SVGDecimals, r, SVGDecimals, r, onezero(largeArc), onezero(sweep), coord(p))
}

func (pd *pathData) close() { pd.printf(" Z") }

func (pd *pathData) String() string { return pd.b.String() }

// xy splits points into the coordinate slices svgo takes.
func xy(points []geom.Coord) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func (s *SVG) Polygon(points []geom.Coord, st Style) {
	if len(points) == 0 {
		return
	}
	xs, ys := xy(points)
	s.canvas.Polygon(xs, ys, st.css())
}

func (s *SVG) Polyline(points []geom.Coord, st Style) {
	if len(points) == 0 {
		return
	}
	xs, ys := xy(points)
	s.canvas.Polyline(xs, ys, st.css())
}

func (s *SVG) Circle(center geom.Coord, r float64, st Style) {
	s.canvas.Circle(center.X, center.Y, r, st.css())
}

func (s *SVG) Leaf(l shapes.LeafOutline, st Style) {
	pd := &pathData{}
	pd.moveTo(l.Start)
	pd.cubicTo(l.Control1, l.MidControl1, l.Tip)
	pd.cubicTo(l.MidControl2, l.Control2, l.End)
	if l.ArcRadius > 0 {
		pd.circularArcTo(l.Start, l.ArcRadius, false, false)
	} else {
		pd.close()
	}
	s.canvas.Path(pd.String(), st.css())
}
