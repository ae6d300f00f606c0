// Package shapes generates the simple figures drawn around a yantra: regular
// polygons, star polygons, isotoxal stars and bezier leaves.
//
// Angles are in degrees, measured counter-clockwise from the positive x axis.
// Invalid input is reported with a *ShapeError before any point is computed.
package shapes

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"

	"sri-yantra/planar"
)

// ShapeError reports input that cannot produce the requested shape.
type ShapeError struct {
	Shape  string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shapes: invalid %s: %s", e.Shape, e.Reason)
}

// Polar returns the point at radius from center in direction alpha.
func Polar(radius float64, center geom.Coord, alpha float64) geom.Coord {
	sin, cos := math.Sincos(alpha * math.Pi / 180)
	return geom.Coord{X: center.X + radius*cos, Y: center.Y + radius*sin}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// RegularPolygon returns the n vertices of the regular n-gon inscribed in
// the circle, the first at angle alpha.
func RegularPolygon(radius float64, center geom.Coord, alpha float64, n int) ([]geom.Coord, error) {
	if n < 3 {
		return nil, &ShapeError{"regular polygon", fmt.Sprintf("need at least 3 sides, got %d", n)}
	}
	span := 360 / float64(n)
	poly := make([]geom.Coord, n)
	for i := range poly {
		poly[i] = Polar(radius, center, alpha+float64(i)*span)
	}
	return poly, nil
}

func checkStar(shape string, p, q int) error {
	switch {
	case q <= 0:
		return &ShapeError{shape, fmt.Sprintf("q must be positive, got %d", q)}
	case p < 3:
		return &ShapeError{shape, fmt.Sprintf("need at least 3 vertices, got %d", p)}
	case gcd(p, q) != 1:
		return &ShapeError{shape, fmt.Sprintf("%d and %d are not coprime", p, q)}
	}
	return nil
}

// StarPolygon returns the star polygon {p/q}: the vertices of the regular
// p-gon visited q at a time until the walk returns to the first one.
func StarPolygon(radius float64, center geom.Coord, alpha float64, p, q int) ([]geom.Coord, error) {
	if err := checkStar("star polygon", p, q); err != nil {
		return nil, err
	}
	poly, err := RegularPolygon(radius, center, alpha, p)
	if err != nil {
		return nil, err
	}
	star := []geom.Coord{poly[0]}
	for idx := q % p; idx != 0; idx = (idx + q) % p {
		star = append(star, poly[idx])
	}
	return star, nil
}

// IsotoxalStar returns the 2p vertices of the concave star alternating
// between the outer circle and the inner circle where the edges of {p/q}
// cross. deformation shifts the inner vertices by half steps.
func IsotoxalStar(radius float64, center geom.Coord, alpha float64, p, q, deformation int) ([]geom.Coord, error) {
	const shape = "isotoxal star"
	if p < 3 {
		return nil, &ShapeError{shape, fmt.Sprintf("need at least 3 vertices, got %d", p)}
	}
	if rem := q % p; rem <= 0 || rem == 1 || rem == p-1 {
		return nil, &ShapeError{shape, fmt.Sprintf("q mod p = %d does not give a concave star", q%p)}
	}
	if err := checkStar(shape, p, q); err != nil {
		return nil, err
	}
	if deformation < 0 {
		return nil, &ShapeError{shape, fmt.Sprintf("negative deformation %d", deformation)}
	}

	span := 360 / float64(p)
	start := Polar(radius, center, alpha)
	mid := Polar(radius, center, alpha+span/2)
	firstEdgeTo := Polar(radius, center, alpha+float64(q)*span)
	inner, err := planar.LineIntersection(start, firstEdgeTo, center, mid)
	if err != nil {
		return nil, errors.Wrap(err, "shapes: isotoxal star inner radius")
	}
	smaller := center.DistanceFrom(inner)

	star := make([]geom.Coord, 2*p)
	for i := range star {
		if i%2 == 0 {
			star[i] = Polar(radius, center, alpha+float64(i/2)*span)
			continue
		}
		star[i] = Polar(smaller, center, alpha+span/2+float64((i+deformation)/2)*span)
	}
	return star, nil
}
