package planar

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"honnef.co/go/curve"
)

// ExtensionFactor is how many segment lengths a segment is stretched beyond
// each endpoint before it is intersected.
const ExtensionFactor = 25.0

// NoIntersectionError reports that the extended segments P-Q and R-S do not
// cross: they are parallel or collinear, or they only meet outside the
// extended range. A chord that misses the circle sets only Reason.
type NoIntersectionError struct {
	P, Q, R, S geom.Coord
	Reason     string
}

func (e *NoIntersectionError) Error() string {
	if e.Reason != "" {
		return "planar: no intersection: " + e.Reason
	}
	return fmt.Sprintf("planar: no intersection between %v-%v and %v-%v: parallel or out of range", e.P, e.Q, e.R, e.S)
}

// extend returns a-b stretched by ExtensionFactor lengths on both sides.
func extend(a, b geom.Coord) curve.Line {
	return curve.Line{
		P0: toCurve(a.Plus(a.Minus(b).Times(ExtensionFactor))),
		P1: toCurve(b.Plus(b.Minus(a).Times(ExtensionFactor))),
	}
}

// LineIntersection intersects the line through p and q with the line through
// r and s. Both segments are extended by ExtensionFactor before intersecting,
// so a crossing far outside either segment is not found.
func LineIntersection(p, q, r, s geom.Coord) (geom.Coord, error) {
	l := extend(p, q)
	hits, n := l.IntersectLine(extend(r, s))
	if n == 0 {
		return geom.Coord{}, &NoIntersectionError{P: p, Q: q, R: r, S: s}
	}
	return fromCurve(l.Eval(hits[0].SegmentT)), nil
}

type Circle struct {
	Center geom.Coord
	Radius float64
}

// Contains reports whether p lies inside the circle or within tol of it.
func (c Circle) Contains(p geom.Coord, tol float64) bool {
	return p.DistanceFrom(c.Center) <= c.Radius+tol
}

// ChordEnd returns the east end of the horizontal chord at chord's height.
func (c Circle) ChordEnd(chord geom.Coord) (geom.Coord, error) {
	h := (chord.Y - c.Center.Y) / c.Radius
	if math.IsNaN(h) || h < -1 || h > 1 {
		return geom.Coord{}, &NoIntersectionError{
			Reason: fmt.Sprintf("chord at height %g lies outside the circle of radius %g about %v", chord.Y, c.Radius, c.Center),
		}
	}
	return geom.Coord{X: c.Center.X + c.Radius*math.Sin(math.Acos(h)), Y: chord.Y}, nil
}

// ChordIntersection intersects the line through p and q with the horizontal
// chord of circle running from chord to the circle's east edge at the same
// height. The chord is extended like any other segment.
func ChordIntersection(chord, p, q geom.Coord, circle Circle) (geom.Coord, error) {
	end, err := circle.ChordEnd(chord)
	if err != nil {
		return geom.Coord{}, err
	}
	return LineIntersection(p, q, chord, end)
}
