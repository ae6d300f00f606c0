package shapes

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"sri-yantra/planar"
)

// LeafKind selects the silhouette of a leaf.
type LeafKind int

const (
	// Reniform leaves bulge at the base.
	Reniform LeafKind = iota
	// Cordate leaves bulge near the tip.
	Cordate
)

func (k LeafKind) String() string {
	switch k {
	case Reniform:
		return "reniform"
	case Cordate:
		return "cordate"
	}
	return fmt.Sprintf("LeafKind(%d)", int(k))
}

// LeafStyle describes a leaf relative to its base: Size is the distance from
// the base to the tip, Scale the fraction of the base the leaf occupies, C
// and D the control distances at the base and at the tip.
type LeafStyle struct {
	Kind        LeafKind
	Size, Scale float64
	C, D        float64
}

// LeafBase is how a leaf meets what it grows on. It is one of CircularBase,
// LinearBase or PointBase.
//
// C1 and C2 place the base control points along and across the leaf axis,
// D1 and D2 place the tip control points.
type LeafBase interface {
	controls() (c1, c2, d1, d2 float64)
}

// CircularBase closes the leaf with an arc of Radius back to its start.
type CircularBase struct {
	C1, C2, D1, D2 float64
	Radius         float64
}

// LinearBase closes the leaf with a straight line.
type LinearBase struct {
	C1, C2, D1, D2 float64
}

// PointBase is a leaf whose start and end coincide.
type PointBase struct {
	C1, C2, D1, D2 float64
}

func (b CircularBase) controls() (float64, float64, float64, float64) { return b.C1, b.C2, b.D1, b.D2 }
func (b LinearBase) controls() (float64, float64, float64, float64)   { return b.C1, b.C2, b.D1, b.D2 }
func (b PointBase) controls() (float64, float64, float64, float64)    { return b.C1, b.C2, b.D1, b.D2 }

// LeafOutline is a leaf as two cubic beziers, Start to Tip and Tip to End.
// It is closed by the minor clockwise arc of ArcRadius from End back to Start
// when ArcRadius is positive, otherwise by a straight line.
type LeafOutline struct {
	Start, Control1, MidControl1 geom.Coord
	Tip                          geom.Coord
	MidControl2, Control2, End   geom.Coord
	ArcRadius                    float64
}

// Points returns the outline's anchor and control points in drawing order.
func (l LeafOutline) Points() []geom.Coord {
	return []geom.Coord{l.Start, l.Control1, l.MidControl1, l.Tip, l.MidControl2, l.Control2, l.End}
}

// ArcCenter returns the center of the closing arc. ok is false for a
// straight closing. A radius shorter than half the chord is treated as
// exactly half of it.
func (l LeafOutline) ArcCenter() (center geom.Coord, ok bool) {
	if l.ArcRadius <= 0 {
		return geom.Coord{}, false
	}
	chord := l.Start.Minus(l.End)
	half := chord.Magnitude() / 2
	if half == 0 {
		return geom.Coord{}, false
	}
	h := math.Sqrt(math.Max(0, l.ArcRadius*l.ArcRadius-half*half))
	// Walking clockwise the center is on the right.
	right := geom.Coord{X: chord.Y, Y: -chord.X}.Unit()
	return planar.Midpoint(l.Start, l.End).Plus(right.Times(h)), true
}

// NewLeaf builds the leaf from start to end with its tip at tip.
func NewLeaf(start, end, tip geom.Coord, base LeafBase) (LeafOutline, error) {
	const shape = "leaf"
	var arcRadius float64
	switch b := base.(type) {
	case CircularBase:
		if b.Radius <= 0 {
			return LeafOutline{}, &ShapeError{shape, fmt.Sprintf("circular base needs a positive radius, got %g", b.Radius)}
		}
		arcRadius = b.Radius
	case LinearBase:
	case PointBase:
		if !planar.AlmostEqualsCoord(start, end) {
			return LeafOutline{}, &ShapeError{shape, "start and end must be equal for a point base"}
		}
	default:
		return LeafOutline{}, &ShapeError{shape, fmt.Sprintf("unknown base %T", base)}
	}

	mid := start.Plus(end).Times(0.5)
	radial := tip.Minus(mid)
	if radial.Magnitude() == 0 {
		return LeafOutline{}, &ShapeError{shape, "tip lies on the middle of the base"}
	}
	dir := radial.Unit()
	perp := planar.RotateAbout(dir, geom.Coord{}, math.Pi/2)

	c1, c2, d1, d2 := base.controls()
	out := LeafOutline{
		Start:       start,
		Control1:    start.Plus(dir.Times(c1)).Minus(perp.Times(c2)),
		MidControl1: tip.Minus(dir.Times(d1)).Minus(perp.Times(d2)),
		Tip:         tip,
		MidControl2: tip.Minus(dir.Times(d1)).Plus(perp.Times(d2)),
		Control2:    end.Plus(dir.Times(c1)).Plus(perp.Times(c2)),
		End:         end,
		ArcRadius:   arcRadius,
	}
	return out, nil
}

func checkStyle(style LeafStyle) error {
	if style.Kind != Reniform && style.Kind != Cordate {
		return &ShapeError{"leaf", fmt.Sprintf("unknown leaf kind %v", style.Kind)}
	}
	return nil
}

// LinearLeaf grows a leaf from the segment p-q. The leaf points away from the
// origin when origin, p, q turn counter-clockwise.
func LinearLeaf(p, q geom.Coord, style LeafStyle) (LeafOutline, error) {
	if err := checkStyle(style); err != nil {
		return LeafOutline{}, err
	}
	mid := p.Plus(q).Times(0.5)
	start := mid.Minus(mid.Minus(p).Times(style.Scale))
	end := mid.Plus(q.Minus(mid).Times(style.Scale))

	radial := planar.RotateAbout(start.Minus(end), geom.Coord{}, math.Pi/2)
	if radial.Magnitude() == 0 {
		return LeafOutline{}, &ShapeError{"leaf", "base has no length"}
	}
	tip := mid.Plus(radial.Unit().Times(style.Size))

	base := LinearBase{C1: style.C, D2: style.D}
	if style.Kind == Cordate {
		base = LinearBase{C1: style.C, D1: style.D}
	}
	return NewLeaf(start, end, tip, base)
}

// CircularLeaf grows a leaf outward from the arc of the circle between alpha
// and beta. The base arc is inverted when alpha > beta.
func CircularLeaf(radius float64, center geom.Coord, alpha, beta float64, style LeafStyle) (LeafOutline, error) {
	if err := checkStyle(style); err != nil {
		return LeafOutline{}, err
	}
	mid := (alpha + beta) / 2
	alpha = mid - style.Scale*(mid-alpha)
	beta = mid + style.Scale*(beta-mid)

	start := Polar(radius, center, alpha)
	end := Polar(radius, center, beta)
	tip := Polar(radius+style.Size, center, mid)

	sinHalf, cosHalf := math.Sincos((mid - alpha) * math.Pi / 180)
	base := CircularBase{C1: style.C * cosHalf, C2: style.C * sinHalf, D2: style.D, Radius: radius}
	if style.Kind == Cordate {
		base = CircularBase{C1: style.C * cosHalf, C2: style.C * sinHalf, D1: style.D, Radius: radius}
	}
	return NewLeaf(start, end, tip, base)
}

// CircularLeavesOnArc spreads n leaves evenly over the arc from alpha to beta.
func CircularLeavesOnArc(radius float64, center geom.Coord, alpha, beta float64, n int, style LeafStyle) ([]LeafOutline, error) {
	if n <= 0 {
		return nil, &ShapeError{"leaves", fmt.Sprintf("need at least one leaf, got %d", n)}
	}
	span := (beta - alpha) / float64(n)
	leaves := make([]LeafOutline, 0, n)
	for i := 0; i < n; i++ {
		a := alpha + float64(i)*span
		leaf, err := CircularLeaf(radius, center, a, a+span, style)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, leaf)
	}
	return leaves, nil
}

// CircularLeaves rings the whole circle with n leaves starting at alpha.
// orientation is 1 for counter-clockwise and -1 for clockwise.
func CircularLeaves(radius float64, center geom.Coord, alpha float64, n int, orientation float64, style LeafStyle) ([]LeafOutline, error) {
	return CircularLeavesOnArc(radius, center, alpha, alpha+orientation*360, n, style)
}
