package render

import (
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/jbeda/geom"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"sri-yantra/shapes"
	"sri-yantra/yantra"
)

// PNG rasterizes shapes onto a square white image.
type PNG struct {
	dc    *gg.Context
	scale float64
}

// NewPNG returns a size x size canvas showing viewBox.
func NewPNG(size int, viewBox geom.Rect) *PNG {
	dc := gg.NewContext(size, size)
	dc.SetColor(color.White)
	dc.Clear()

	scale := float64(size) / math.Max(viewBox.Width(), viewBox.Height())
	dc.Translate(0, float64(size))
	dc.Scale(scale, -scale)
	dc.Translate(-viewBox.Min.X, -viewBox.Min.Y)
	dc.SetLineJoinRound()
	yantra.Logger().Debug("render: png canvas", "size", size, "viewBox", viewBox)
	return &PNG{dc: dc, scale: scale}
}

// colorSetter makes one resolved color current on a context.
type colorSetter func(dc *gg.Context)

const hexDigits = "0123456789abcdef"

// parseColor resolves a color name, or a #rgb, #rrggbb or #rrggbbaa hex
// string. ok is false for "none" or an empty string.
func parseColor(s string) (set colorSetter, ok bool, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == None {
		return nil, false, nil
	}
	if strings.HasPrefix(s, "#") {
		digits := s[1:]
		if n := len(digits); (n != 3 && n != 6 && n != 8) || strings.Trim(digits, hexDigits) != "" {
			return nil, false, errors.Errorf("render: bad hex color %q", s)
		}
		return func(dc *gg.Context) { dc.SetHexColor(digits) }, true, nil
	}
	named, found := colornames.Map[s]
	if !found {
		return nil, false, errors.Errorf("render: unknown color %q", s)
	}
	return func(dc *gg.Context) { dc.SetColor(named) }, true, nil
}

func (p *PNG) color(s string) (colorSetter, bool) {
	set, ok, err := parseColor(s)
	if err != nil {
		yantra.Logger().Warn("render: color ignored", "err", err)
		return nil, false
	}
	return set, ok
}

// paint fills and strokes the current path, then clears it.
func (p *PNG) paint(st Style) {
	if fill, ok := p.color(st.FillColor); ok {
		fill(p.dc)
		p.dc.FillPreserve()
	}
	if stroke, ok := p.color(st.StrokeColor); ok && st.StrokeWidth > 0 {
		stroke(p.dc)
		// Line widths are in device pixels.
		p.dc.SetLineWidth(st.StrokeWidth * p.scale)
		p.dc.StrokePreserve()
	}
	p.dc.ClearPath()
}

func (p *PNG) trace(points []geom.Coord) {
	p.dc.MoveTo(points[0].X, points[0].Y)
	for _, q := range points[1:] {
		p.dc.LineTo(q.X, q.Y)
	}
}

func (p *PNG) Polygon(points []geom.Coord, st Style) {
	if len(points) == 0 {
		return
	}
	p.trace(points)
	p.dc.ClosePath()
	p.paint(st)
}

func (p *PNG) Polyline(points []geom.Coord, st Style) {
	if len(points) == 0 {
		return
	}
	p.trace(points)
	p.paint(Style{StrokeWidth: st.StrokeWidth, StrokeColor: st.StrokeColor, FillColor: None})
}

func (p *PNG) Circle(center geom.Coord, r float64, st Style) {
	p.dc.DrawCircle(center.X, center.Y, r)
	p.paint(st)
}

func (p *PNG) Leaf(l shapes.LeafOutline, st Style) {
	p.dc.MoveTo(l.Start.X, l.Start.Y)
	p.dc.CubicTo(l.Control1.X, l.Control1.Y, l.MidControl1.X, l.MidControl1.Y, l.Tip.X, l.Tip.Y)
	p.dc.CubicTo(l.MidControl2.X, l.MidControl2.Y, l.Control2.X, l.Control2.Y, l.End.X, l.End.Y)
	if c, ok := l.ArcCenter(); ok {
		from := math.Atan2(l.End.Y-c.Y, l.End.X-c.X)
		to := math.Atan2(l.Start.Y-c.Y, l.Start.X-c.X)
		// Clockwise, the short way round.
		for to > from {
			to -= 2 * math.Pi
		}
		p.dc.DrawArc(c.X, c.Y, l.ArcRadius, from, to)
	}
	p.dc.ClosePath()
	p.paint(st)
}

func (p *PNG) Image() image.Image { return p.dc.Image() }

func (p *PNG) WritePNG(w io.Writer) error {
	return errors.Wrap(p.dc.EncodePNG(w), "render: encode png")
}

func (p *PNG) SavePNG(path string) error {
	return errors.Wrapf(p.dc.SavePNG(path), "render: save %s", path)
}
