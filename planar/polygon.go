package planar

import (
	"math"
	"sort"

	"github.com/jbeda/geom"
	"github.com/jbeda/geom/qtree"
)

// Segment is a straight edge between two points.
type Segment struct {
	A, B geom.Coord
}

func (s Segment) Length() float64 {
	return s.A.DistanceFrom(s.B)
}

// Edges returns the edges of the closed polygon through poly, including the
// closing edge from the last point back to the first.
func Edges(poly []geom.Coord) []Segment {
	if len(poly) < 2 {
		return nil
	}
	edges := make([]Segment, 0, len(poly))
	for i := range poly {
		edges = append(edges, Segment{poly[i], poly[(i+1)%len(poly)]})
	}
	return edges
}

// Area is the unsigned shoelace area of the closed polygon through poly.
func Area(poly []geom.Coord) float64 {
	area := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].X * poly[j].Y
		area -= poly[j].X * poly[i].Y
	}
	return math.Abs(area) / 2
}

// Bounds returns the smallest rect holding every point. It is the zero Rect
// when points is empty.
func Bounds(points []geom.Coord) geom.Rect {
	if len(points) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

func orientation(p, q, r geom.Coord) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if val == 0 {
		return 0 // colinear
	}
	if val > 0 {
		return 1 // clock wise
	}
	return 2 // counterclock wise
}

func onSegment(p, q, r geom.Coord) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// Crosses reports whether s and o touch or cross.
func (s Segment) Crosses(o Segment) bool {
	o1 := orientation(s.A, s.B, o.A)
	o2 := orientation(s.A, s.B, o.B)
	o3 := orientation(o.A, o.B, s.A)
	o4 := orientation(o.A, o.B, s.B)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Colinear endpoints lying on the other segment.
	return (o1 == 0 && onSegment(s.A, o.A, s.B)) ||
		(o2 == 0 && onSegment(s.A, o.B, s.B)) ||
		(o3 == 0 && onSegment(o.A, s.A, o.B)) ||
		(o4 == 0 && onSegment(o.A, s.B, o.B))
}

// SelfIntersects reports whether any two non-adjacent edges of the closed
// polygon through poly touch or cross.
func SelfIntersects(poly []geom.Coord) bool {
	edges := Edges(poly)
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if edges[i].Crosses(edges[j]) {
				return true
			}
		}
	}
	return false
}

// pointItem is a point stored in a qtree; two items are equal when they lie
// within tol of each other on both axes.
type pointItem struct {
	c   geom.Coord
	tol float64
}

func (pi pointItem) Bounds() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: pi.c.X - pi.tol, Y: pi.c.Y - pi.tol},
		Max: geom.Coord{X: pi.c.X + pi.tol, Y: pi.c.Y + pi.tol},
	}
}

func (pi pointItem) Equals(oi interface{}) bool {
	o, ok := oi.(pointItem)
	return ok && math.Abs(pi.c.X-o.c.X) <= pi.tol && math.Abs(pi.c.Y-o.c.Y) <= pi.tol
}

// Distinct collapses points lying within tol of each other. A non-positive tol
// falls back to FloatEqualThresh. The result is sorted by X, then Y.
func Distinct(points []geom.Coord, tol float64) []geom.Coord {
	if len(points) == 0 {
		return nil
	}
	if tol <= 0 {
		tol = FloatEqualThresh
	}
	bounds := Bounds(points)
	bounds.Min = bounds.Min.Minus(geom.Coord{X: 2 * tol, Y: 2 * tol})
	bounds.Max = bounds.Max.Plus(geom.Coord{X: 2 * tol, Y: 2 * tol})

	qt := qtree.New(qtree.ConfigDefault(), bounds)
	for _, p := range points {
		qt.FindOrInsert(pointItem{c: p, tol: tol})
	}

	col := make(map[qtree.Item]bool)
	qt.Enumerate(col)
	out := make([]geom.Coord, 0, len(col))
	for item := range col {
		out = append(out, item.(pointItem).c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
