package planar

import (
	"math"

	"github.com/jbeda/geom"
)

// FloatEqualThresh is the absolute tolerance used when comparing coordinates.
const FloatEqualThresh = 1e-8

func FloatAlmostEqual(x, y float64) bool {
	return math.Abs(x-y) < FloatEqualThresh
}

func AlmostEqualsCoord(a, b geom.Coord) bool {
	return FloatAlmostEqual(a.X, b.X) && FloatAlmostEqual(a.Y, b.Y)
}
