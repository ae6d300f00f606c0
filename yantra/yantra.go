package yantra

import (
	"github.com/jbeda/geom"

	"sri-yantra/planar"
)

// Yantra is one diagram. Its inputs are fixed at New; Construct derives the
// points.
type Yantra struct {
	radius float64
	center geom.Coord
	params Params
	points *Registry
}

// New returns an unconstructed diagram inscribed in the circle of radius
// about center. Parameters not set by an option default to DefaultParams.
func New(radius float64, center geom.Coord, opts ...Option) *Yantra {
	params := DefaultParams(radius)
	for _, opt := range opts {
		opt(&params)
	}
	return &Yantra{
		radius: radius,
		center: center,
		params: params,
		points: NewRegistry(center),
	}
}

func (y *Yantra) Radius() float64    { return y.radius }
func (y *Yantra) Center() geom.Coord { return y.center }
func (y *Yantra) Params() Params     { return y.params }

// Circle is the bounding circle.
func (y *Yantra) Circle() planar.Circle {
	return planar.Circle{Center: y.center, Radius: y.radius}
}

// Construct derives every point from the inputs. It either succeeds
// completely or leaves the diagram without points. Calling it again rebuilds
// the same points from scratch.
func (y *Yantra) Construct() error {
	log := Logger().With("radius", y.radius, "center", y.center)
	y.points = NewRegistry(y.center)
	if err := y.params.Validate(y.radius); err != nil {
		log.Warn("yantra: invalid parameters", "err", err)
		return err
	}

	c := newConstruction(y.center, y.radius, y.params)
	c.run()
	if c.err != nil {
		log.Warn("yantra: construction failed", "err", c.err)
		return c.err
	}
	y.points = c.points
	log.Debug("yantra: constructed", "points", y.points.Len())
	return nil
}

// Point returns a constructed point.
func (y *Yantra) Point(id PointID) (geom.Coord, error) {
	return y.points.Get(id)
}

// AllPoints returns every constructed point, empty before Construct.
func (y *Yantra) AllPoints() []geom.Coord {
	return y.points.AllPoints()
}

// MirrorPairs returns the pairs recorded as reflections across axis.
func (y *Yantra) MirrorPairs(axis planar.Axis) []MirrorPair {
	if axis == planar.Horizontal {
		return y.points.HorizontalPairs()
	}
	return y.points.VerticalPairs()
}
