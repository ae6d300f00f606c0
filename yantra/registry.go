package yantra

import (
	"fmt"

	"github.com/jbeda/geom"

	"sri-yantra/planar"
)

// UnknownPointError is returned when a point is read before it was
// constructed.
type UnknownPointError struct {
	ID PointID
}

func (e *UnknownPointError) Error() string {
	return fmt.Sprintf("yantra: point %s has not been constructed", e.ID)
}

// MirrorPair records two points inserted as reflections of each other.
type MirrorPair struct {
	First, Second PointID
}

// Registry maps identifiers to constructed points. Mirrored insertions
// reflect about the registry's center.
type Registry struct {
	center     geom.Coord
	coords     map[PointID]geom.Coord
	vertical   []MirrorPair
	horizontal []MirrorPair
}

func NewRegistry(center geom.Coord) *Registry {
	return &Registry{
		center: center,
		coords: make(map[PointID]geom.Coord, numPointIDs),
	}
}

// Insert stores p under id, replacing any previous value.
func (r *Registry) Insert(id PointID, p geom.Coord) {
	r.coords[id] = p
}

// InsertMirroredVertical stores west and its reflection across the vertical
// axis through the center.
func (r *Registry) InsertMirroredVertical(westID, eastID PointID, west geom.Coord) {
	r.Insert(westID, west)
	r.Insert(eastID, planar.Reflect(west, planar.Vertical, r.center))
	r.vertical = append(r.vertical, MirrorPair{westID, eastID})
}

// InsertMirroredHorizontal stores up and its reflection across the horizontal
// axis through the center.
func (r *Registry) InsertMirroredHorizontal(upID, downID PointID, up geom.Coord) {
	r.Insert(upID, up)
	r.Insert(downID, planar.Reflect(up, planar.Horizontal, r.center))
	r.horizontal = append(r.horizontal, MirrorPair{upID, downID})
}

func (r *Registry) Get(id PointID) (geom.Coord, error) {
	p, ok := r.coords[id]
	if !ok {
		return geom.Coord{}, &UnknownPointError{ID: id}
	}
	return p, nil
}

func (r *Registry) Has(id PointID) bool {
	_, ok := r.coords[id]
	return ok
}

func (r *Registry) Len() int { return len(r.coords) }

// AllPoints returns every stored point, in identifier order.
func (r *Registry) AllPoints() []geom.Coord {
	out := make([]geom.Coord, 0, len(r.coords))
	for id := PointID(0); id < numPointIDs; id++ {
		if p, ok := r.coords[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// VerticalPairs returns the west/east pairs in insertion order.
func (r *Registry) VerticalPairs() []MirrorPair {
	return append([]MirrorPair(nil), r.vertical...)
}

// HorizontalPairs returns the up/down pairs in insertion order.
func (r *Registry) HorizontalPairs() []MirrorPair {
	return append([]MirrorPair(nil), r.horizontal...)
}
