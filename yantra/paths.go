package yantra

import (
	"github.com/jbeda/geom"

	"sri-yantra/planar"
)

// PathKind distinguishes the outline of a layer from the small triangle
// enclosed by its double points.
type PathKind int

const (
	Outer PathKind = iota
	Inner
)

func (k PathKind) String() string {
	if k == Inner {
		return "inner"
	}
	return "outer"
}

// pathDef lists the west half of a path from bottom to top. The east half
// is its reflection, top to bottom. top closes the west half and bottom the
// east half; either may be noPoint.
type pathDef struct {
	name        string
	kind        PathKind
	layer       int
	west        []PointID
	top, bottom PointID
}

var pathDefs = [...]pathDef{
	{"first outer", Outer, 1, []PointID{SWH, UL4, SWG2, UL2, SWG1, UL1, WH1, DL1, NWG1, DL2, NWG2, DL5, NWH}, UT1, DT1},
	{"first inner", Inner, 1, []PointID{SWH, WH1, NWH}, noPoint, noPoint},
	{"second outer", Outer, 2, []PointID{WI3, SWG2, SWG3, SWG1, WI2, NWG1, NWG3, NWG2, WI1}, UT2, DT2},
	{"second inner", Inner, 2, []PointID{WI3, WI2, WI1}, noPoint, noPoint},
	{"third outer", Outer, 3, []PointID{SWF, SWG3, SWG4, UL3, WK, DL3, NWG4, NWG3, NWF}, UT3, DT3},
	{"third inner", Inner, 3, []PointID{SWF, WK, NWF}, noPoint, noPoint},
	{"fourth outer", Outer, 4, []PointID{WJ3, SWG4, WJ2, DL4, WG, NWG4, WJ1}, DM1, UM1},
	{"fourth inner", Inner, 4, []PointID{WJ3, WJ2, WJ1}, noPoint, noPoint},
	{"fifth outer", Outer, 5, []PointID{WG}, noPoint, UM3},
}

// NumPaths is the number of paths returned by Paths.
const NumPaths = len(pathDefs)

// reflectedAndClosed resolves def's west half, mirrors it into the east
// half and appends the closing endpoints.
func (y *Yantra) reflectedAndClosed(def pathDef) ([]geom.Coord, error) {
	west := make([]geom.Coord, 0, 2*len(def.west)+2)
	for _, id := range def.west {
		p, err := y.points.Get(id)
		if err != nil {
			return nil, err
		}
		west = append(west, p)
	}

	east := make([]geom.Coord, 0, len(def.west)+1)
	for i := len(west) - 1; i >= 0; i-- {
		east = append(east, planar.Reflect(west[i], planar.Vertical, y.center))
	}

	if def.top != noPoint {
		p, err := y.points.Get(def.top)
		if err != nil {
			return nil, err
		}
		west = append(west, p)
	}
	if def.bottom != noPoint {
		p, err := y.points.Get(def.bottom)
		if err != nil {
			return nil, err
		}
		east = append(east, p)
	}
	return append(west, east...), nil
}

func (y *Yantra) FirstOuterPath() ([]geom.Coord, error)  { return y.reflectedAndClosed(pathDefs[0]) }
func (y *Yantra) FirstInnerPath() ([]geom.Coord, error)  { return y.reflectedAndClosed(pathDefs[1]) }
func (y *Yantra) SecondOuterPath() ([]geom.Coord, error) { return y.reflectedAndClosed(pathDefs[2]) }
func (y *Yantra) SecondInnerPath() ([]geom.Coord, error) { return y.reflectedAndClosed(pathDefs[3]) }
func (y *Yantra) ThirdOuterPath() ([]geom.Coord, error)  { return y.reflectedAndClosed(pathDefs[4]) }
func (y *Yantra) ThirdInnerPath() ([]geom.Coord, error)  { return y.reflectedAndClosed(pathDefs[5]) }
func (y *Yantra) FourthOuterPath() ([]geom.Coord, error) { return y.reflectedAndClosed(pathDefs[6]) }
func (y *Yantra) FourthInnerPath() ([]geom.Coord, error) { return y.reflectedAndClosed(pathDefs[7]) }
func (y *Yantra) FifthOuterPath() ([]geom.Coord, error)  { return y.reflectedAndClosed(pathDefs[8]) }

// NamedPath is one path of the diagram with the metadata a renderer needs.
type NamedPath struct {
	Name   string
	Kind   PathKind
	Layer  int
	Points []geom.Coord
}

// Paths returns all nine paths, outermost layer first, each outer path
// followed by its inner path.
func (y *Yantra) Paths() ([]NamedPath, error) {
	out := make([]NamedPath, 0, NumPaths)
	for _, def := range pathDefs {
		pts, err := y.reflectedAndClosed(def)
		if err != nil {
			return nil, err
		}
		out = append(out, NamedPath{Name: def.name, Kind: def.kind, Layer: def.layer, Points: pts})
	}
	return out, nil
}
