package yantra

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jbeda/geom"

	"sri-yantra/planar"
)

func TestConstructDefaults(t *testing.T) {
	y := constructed(t, 100, geom.Coord{})

	pts := y.AllPoints()
	if len(pts) != int(numPointIDs) {
		t.Fatalf("got %d points, want %d", len(pts), numPointIDs)
	}
	circle := y.Circle()
	for _, id := range PointIDs() {
		p, err := y.Point(id)
		if err != nil {
			t.Fatalf("Point(%s): %v", id, err)
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Errorf("%s is NaN", id)
		}
		if !circle.Contains(p, 1e-6) {
			t.Errorf("%s = %v lies outside the circle", id, p)
		}
	}

	bindu, _ := y.Point(Bindu)
	diff(t, geom.Coord{}, bindu)
	ut1, _ := y.Point(UT1)
	diff(t, geom.Coord{X: 0, Y: 100}, ut1, approx)
}

func TestMirrorSymmetry(t *testing.T) {
	center := geom.Coord{X: 12.5, Y: -40}
	y := constructed(t, 80, center)

	vertical := y.MirrorPairs(planar.Vertical)
	if len(vertical) != 30 {
		t.Errorf("got %d vertical pairs, want 30", len(vertical))
	}
	for _, pair := range vertical {
		w, _ := y.Point(pair.First)
		e, _ := y.Point(pair.Second)
		diff(t, geom.Coord{X: 2*center.X - w.X, Y: w.Y}, e, approx)
	}

	horizontal := y.MirrorPairs(planar.Horizontal)
	diff(t, []MirrorPair{{UT1, DT1}}, horizontal)
	for _, pair := range horizontal {
		u, _ := y.Point(pair.First)
		d, _ := y.Point(pair.Second)
		diff(t, geom.Coord{X: u.X, Y: 2*center.Y - u.Y}, d, approx)
	}
}

func TestConstructDeterministic(t *testing.T) {
	a := constructed(t, 100, geom.Coord{X: 1, Y: 2})
	b := constructed(t, 100, geom.Coord{X: 1, Y: 2})
	diff(t, a.AllPoints(), b.AllPoints())

	pa, err := a.Paths()
	if err != nil {
		t.Fatal(err)
	}
	pb, err := b.Paths()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pa, pb)

	// Rebuilding the same diagram gives the same points.
	before := a.AllPoints()
	if err := a.Construct(); err != nil {
		t.Fatal(err)
	}
	diff(t, before, a.AllPoints())
}

func TestDefaultParamRecovery(t *testing.T) {
	const r = 100.0
	d := 2 * r
	explicit := constructed(t, r, geom.Coord{},
		WithA(d*5/48), WithC(d*17/48), WithF(d*26.5/48), WithG(d*30/48), WithI(d*42/48))
	defaults := constructed(t, r, geom.Coord{})

	diff(t, defaults.Params(), explicit.Params(), approx)
	diff(t, defaults.AllPoints(), explicit.AllPoints(), cmpopts.EquateApprox(0, 1e-7))
}

func TestOffsetCenterTranslates(t *testing.T) {
	offset := geom.Coord{X: 50, Y: -30}
	origin := constructed(t, 100, geom.Coord{})
	moved := constructed(t, 100, offset)

	for _, id := range PointIDs() {
		p, _ := origin.Point(id)
		q, _ := moved.Point(id)
		if d := p.Plus(offset).DistanceFrom(q); d > 1e-7 {
			t.Errorf("%s: got %v, want %v", id, q, p.Plus(offset))
		}
	}
}

func TestReadBeforeConstruct(t *testing.T) {
	y := New(100, geom.Coord{})
	_, err := y.FirstOuterPath()
	var upe *UnknownPointError
	if !errors.As(err, &upe) {
		t.Fatalf("got %v, want *UnknownPointError", err)
	}
	if upe.ID != SWH {
		t.Errorf("first missing point = %s, want SWH", upe.ID)
	}
	if _, err := y.Point(Bindu); !errors.As(err, &upe) {
		t.Errorf("got %v, want *UnknownPointError", err)
	}
	if n := len(y.AllPoints()); n != 0 {
		t.Errorf("got %d points before Construct", n)
	}
}

func TestInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		opts   []Option
		field  string
	}{
		{"zero radius", 0, nil, "radius"},
		{"negative radius", -1, nil, "radius"},
		{"infinite radius", math.Inf(1), nil, "radius"},
		{"zero a", 100, []Option{WithA(0)}, "a"},
		{"c beyond diameter", 100, []Option{WithC(200)}, "c"},
		{"negative g", 100, []Option{WithG(-3)}, "g"},
		{"nan i", 100, []Option{WithI(math.NaN())}, "i"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := New(tt.radius, geom.Coord{}, tt.opts...)
			err := y.Construct()
			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("got %v, want *ParamError", err)
			}
			if pe.Name != tt.field {
				t.Errorf("ParamError.Name = %q, want %q", pe.Name, tt.field)
			}
			if n := len(y.AllPoints()); n != 0 {
				t.Errorf("failed construction left %d points", n)
			}
		})
	}
}

func TestConstructionStopsAtFirstFailure(t *testing.T) {
	c := newConstruction(geom.Coord{}, 10, DefaultParams(10))
	c.place(UT1, geom.Coord{X: 0, Y: 10})
	c.place(UL1, geom.Coord{X: 0, Y: 10})
	c.place(DL1, geom.Coord{X: -1, Y: 0})
	c.place(DR1, geom.Coord{X: 1, Y: 0})

	// UT1-UL1 has no length, so it meets nothing.
	c.intersect(NWG1, NEG1, UT1, UL1, DL1, DR1)
	var nie *planar.NoIntersectionError
	if !errors.As(c.err, &nie) {
		t.Fatalf("got %v, want *planar.NoIntersectionError", c.err)
	}

	c.place(Bindu, geom.Coord{})
	if c.points.Has(Bindu) || c.points.Has(NWG1) {
		t.Error("steps after a failure must not place points")
	}
}

func TestConstructionUnknownPoint(t *testing.T) {
	c := newConstruction(geom.Coord{}, 10, DefaultParams(10))
	c.intersectChord(UL4, UR4, DT2, DM1, SWG3)
	var upe *UnknownPointError
	if !errors.As(c.err, &upe) || upe.ID != DT2 {
		t.Fatalf("got %v, want *UnknownPointError for DT2", c.err)
	}
}

func TestPointIDString(t *testing.T) {
	diff(t, "NWG3", NWG3.String())
	diff(t, "Bindu", Bindu.String())
	diff(t, "PointID(-1)", noPoint.String())
	if len(PointIDs()) != 70 {
		t.Errorf("got %d identifiers, want 70", len(PointIDs()))
	}
	for _, id := range PointIDs() {
		if id.String() == "" {
			t.Errorf("PointID %d has no name", int(id))
		}
	}
}

func TestConstructIntersectionFailure(t *testing.T) {
	tests := []struct {
		name   string
		opt    Option
		failAt string
	}{
		{"a near the bottom", WithA(190), "WJ1"},
		{"f near the top", WithF(5), "DL4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := New(100, geom.Coord{}, tt.opt)
			err := y.Construct()
			var nie *planar.NoIntersectionError
			if !errors.As(err, &nie) {
				t.Fatalf("got %v, want *planar.NoIntersectionError", err)
			}
			if !strings.Contains(err.Error(), "construct "+tt.failAt+" ") {
				t.Errorf("error %q does not name %s", err, tt.failAt)
			}
			if n := len(y.AllPoints()); n != 0 {
				t.Errorf("failed construction left %d points", n)
			}
			if _, err := y.FirstOuterPath(); err == nil {
				t.Error("paths must be unavailable after a failed construction")
			}
		})
	}
}

func TestConstructKnownPoints(t *testing.T) {
	y := constructed(t, 100, geom.Coord{})
	tests := []struct {
		id   PointID
		want geom.Coord
	}{
		{NWG1, geom.Coord{X: -54.867264071, Y: 29.166666667}},
		{UT3, geom.Coord{X: 0, Y: 48.646196054}},
		{WJ3, geom.Coord{X: -11.440491329, Y: -10.416666667}},
		{NEG1, geom.Coord{X: 54.867264071, Y: 29.166666667}},
		{EJ3, geom.Coord{X: 11.440491329, Y: -10.416666667}},
	}
	for _, tt := range tests {
		got, err := y.Point(tt.id)
		if err != nil {
			t.Fatalf("Point(%s): %v", tt.id, err)
		}
		if d := got.DistanceFrom(tt.want); d > 1e-8 {
			t.Errorf("%s = %v, want %v", tt.id, got, tt.want)
		}
	}
}
