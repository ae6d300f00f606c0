package yantra

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jbeda/geom"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func constructed(t *testing.T, radius float64, center geom.Coord, opts ...Option) *Yantra {
	t.Helper()
	y := New(radius, center, opts...)
	if err := y.Construct(); err != nil {
		t.Fatalf("Construct: %v", err)
	}
	return y
}
