package yantra

import (
	"math"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"

	"sri-yantra/planar"
)

// construction runs the construction steps against a fresh registry. The
// first failing step sets err and every later step becomes a no-op.
type construction struct {
	points *Registry
	circle planar.Circle
	params Params
	err    error
}

func newConstruction(center geom.Coord, radius float64, params Params) *construction {
	return &construction{
		points: NewRegistry(center),
		circle: planar.Circle{Center: center, Radius: radius},
		params: params,
	}
}

func (c *construction) get(id PointID) geom.Coord {
	if c.err != nil {
		return geom.Coord{}
	}
	p, err := c.points.Get(id)
	if err != nil {
		c.err = err
	}
	return p
}

// onAxis is the point dy above the center on the vertical axis.
func (c *construction) onAxis(dy float64) geom.Coord {
	return geom.Coord{X: c.circle.Center.X, Y: c.circle.Center.Y + dy}
}

// westEdge is the point of the circle dy above the center on its west side.
func (c *construction) westEdge(dy float64) geom.Coord {
	r := c.circle.Radius
	return geom.Coord{
		X: c.circle.Center.X - r*math.Sin(math.Acos(dy/r)),
		Y: c.circle.Center.Y + dy,
	}
}

func (c *construction) place(id PointID, p geom.Coord) {
	if c.err == nil {
		c.points.Insert(id, p)
	}
}

func (c *construction) placeUpDown(up, down PointID, p geom.Coord) {
	if c.err == nil {
		c.points.InsertMirroredHorizontal(up, down, p)
	}
}

func (c *construction) placeWestEast(west, east PointID, p geom.Coord) {
	if c.err == nil {
		c.points.InsertMirroredVertical(west, east, p)
	}
}

// midpoint places id halfway between a and b.
func (c *construction) midpoint(id, a, b PointID) {
	pa, pb := c.get(a), c.get(b)
	c.place(id, planar.Midpoint(pa, pb))
}

// intersect places west (and its mirror east) where line a-b meets line p-q.
func (c *construction) intersect(west, east, a, b, p, q PointID) {
	pa, pb, pp, pq := c.get(a), c.get(b), c.get(p), c.get(q)
	if c.err != nil {
		return
	}
	pt, err := planar.LineIntersection(pa, pb, pp, pq)
	if err != nil {
		c.err = errors.Wrapf(err, "construct %s from %s-%s and %s-%s", west, a, b, p, q)
		return
	}
	c.placeWestEast(west, east, pt)
}

// intersectChord places west (and its mirror east) where line a-b meets the
// chord through chord.
func (c *construction) intersectChord(west, east, chord, a, b PointID) {
	pc, pa, pb := c.get(chord), c.get(a), c.get(b)
	if c.err != nil {
		return
	}
	pt, err := planar.ChordIntersection(pc, pa, pb, c.circle)
	if err != nil {
		c.err = errors.Wrapf(err, "construct %s from chord at %s and %s-%s", west, chord, a, b)
		return
	}
	c.placeWestEast(west, east, pt)
}

func (c *construction) run() {
	r := c.circle.Radius
	p := c.params

	// First up and down triangles, from g and c.
	c.place(UM1, c.onAxis(r-p.G))
	c.placeUpDown(UT1, DT1, c.onAxis(r))
	c.placeWestEast(UL1, UR1, c.westEdge(r-p.G))
	c.place(DM1, c.onAxis(r-p.C))
	c.placeWestEast(DL1, DR1, c.westEdge(r-p.C))

	c.intersect(NWG1, NEG1, UT1, UL1, DL1, DR1)
	c.intersect(SWG1, SEG1, DT1, DL1, UL1, UR1)
	c.intersect(WH1, EH1, UT1, UL1, DL1, DT1)

	// Tip of the second down triangle, from i.
	c.place(DT2, c.onAxis(r-p.I))
	c.intersect(SWG3, SEG3, NWG1, DT2, UL1, UR1)
	c.intersect(SWG2, SEG2, DM1, SWG3, DL1, DT1)
	c.intersectChord(UL4, UR4, DT2, DM1, SWG3)

	// Tip of the second up triangle, from a.
	c.place(UT2, c.onAxis(r-p.A))
	c.intersect(NWG3, NEG3, SWG1, UT2, DL1, DR1)

	// Base of the third up triangle, from f.
	c.place(UM3, c.onAxis(r-p.F))
	c.intersect(NWG2, NEG2, UM3, NWG3, UL1, UT1)

	// Rest of the first path.
	c.intersectChord(DL5, DR5, UT2, UM3, NWG3)
	c.intersect(UL2, UR2, UT2, SWG1, SWG2, SEG2)
	c.intersect(DL2, DR2, DT2, NWG1, NWG2, NEG2)
	c.intersectChord(NWH, NEH, UT2, UT1, UL1)
	c.intersectChord(SWH, SEH, DT2, DT1, DL1)

	// Rest of the second path.
	c.intersect(WI2, EI2, UT2, SWG1, DT2, NWG1)
	c.intersect(WI1, EI1, UT2, NWG3, NWG2, NEG2)
	c.intersect(WI3, EI3, DT2, SWG3, SWG2, SEG2)

	// Third up triangle.
	c.midpoint(UT3, WI1, EI1)
	c.intersectChord(UL3, UR3, UM3, NWG1, DT2)

	// Last triple points and the third down triangle.
	c.intersect(WG, EG, UM3, NWG3, DM1, SWG3)
	c.intersectChord(SWG4, SEG4, UM3, DM1, SWG2)
	c.midpoint(DT3, WI3, EI3)
	c.intersect(DL3, DR3, DT3, SWG4, UT2, SWG1)
	c.intersect(NWG4, NEG4, UT3, UL3, DL3, DR3)

	// Double points of the third path.
	c.intersectChord(NWF, NEF, DM1, UT3, UL3)
	c.intersectChord(SWF, SEF, UM1, DT3, DL3)
	c.intersect(WK, EK, UT3, UL3, DT3, DL3)

	// Fourth down triangle and the fourth path.
	c.intersectChord(DL4, DR4, EG, UT3, UL3)
	c.intersectChord(WJ1, EJ1, DL3, DM1, SWG2)
	c.intersect(WJ2, EJ2, UM1, DL4, DM1, SWG2)
	c.intersectChord(WJ3, EJ3, UM3, UM1, DL4)

	c.place(Bindu, c.circle.Center)
}
