// Package yantra constructs a Sri Yantra: nine nested interlocking triangles
// inscribed in a circle, derived from a radius, a center and five free
// distances along the vertical axis.
//
// Construction is a fixed, ordered sequence of steps. Every step places a
// point directly, as a midpoint, or as the intersection of two previously
// placed lines (or a line and a horizontal chord of the circle). Most points
// are placed on the west side and mirrored to the east.
//
//	y := yantra.New(100, geom.Coord{})
//	if err := y.Construct(); err != nil {
//		// the parameters cannot produce a diagram
//	}
//	outer, _ := y.FirstOuterPath()
//
// The package is silent by default; see SetLogger.
package yantra
