// Package planar holds the plane geometry the diagram is constructed from:
// reflections about an axis through a center, midpoints, affine helpers and
// the intersection of extended segments with each other and with chords of a
// bounding circle.
//
// Points are geom.Coord values. Transforms are computed with curve.Affine and
// converted back, so callers never see the curve types.
package planar

import (
	"fmt"

	"github.com/jbeda/geom"
	"honnef.co/go/curve"
)

// Axis selects the mirror line through a center.
type Axis int

const (
	// Vertical mirrors east and west: x' = 2cx - x.
	Vertical Axis = iota
	// Horizontal mirrors up and down: y' = 2cy - y.
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func toCurve(c geom.Coord) curve.Point { return curve.Pt(c.X, c.Y) }

func fromCurve(p curve.Point) geom.Coord { return geom.Coord{X: p.X, Y: p.Y} }

// Reflection returns the affine transform mirroring points across axis
// through center.
func Reflection(axis Axis, center geom.Coord) curve.Affine {
	dir := curve.Vec(0, 1)
	if axis == Horizontal {
		dir = curve.Vec(1, 0)
	}
	return curve.Reflect(toCurve(center), dir)
}

// Reflect mirrors p across axis through center.
func Reflect(p geom.Coord, axis Axis, center geom.Coord) geom.Coord {
	return Transform(p, Reflection(axis, center))
}

// Transform applies aff to p.
func Transform(p geom.Coord, aff curve.Affine) geom.Coord {
	return fromCurve(toCurve(p).Transform(aff))
}

func Midpoint(a, b geom.Coord) geom.Coord {
	return fromCurve(toCurve(a).Midpoint(toCurve(b)))
}

// ScaleAbout scales p by (sx, sy) keeping center fixed.
func ScaleAbout(p, center geom.Coord, sx, sy float64) geom.Coord {
	c := curve.Vec2(toCurve(center))
	return Transform(p, curve.Translate(c.Negate()).ThenScale(sx, sy).ThenTranslate(c))
}

// RotateAbout rotates p by theta radians (counter-clockwise) about center.
func RotateAbout(p, center geom.Coord, theta float64) geom.Coord {
	return Transform(p, curve.RotateAbout(theta, toCurve(center)))
}
