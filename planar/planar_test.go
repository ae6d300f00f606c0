package planar

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestReflect(t *testing.T) {
	center := pt(10, -5)
	tests := []struct {
		name string
		p    geom.Coord
		axis Axis
		want geom.Coord
	}{
		{"vertical", pt(3, 4), Vertical, pt(17, 4)},
		{"horizontal", pt(3, 4), Horizontal, pt(3, -14)},
		{"on vertical axis", pt(10, 7), Vertical, pt(10, 7)},
		{"on horizontal axis", pt(-2, -5), Horizontal, pt(-2, -5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, Reflect(tt.p, tt.axis, center), approx)
		})
	}
}

func TestReflectTwiceIsIdentity(t *testing.T) {
	p := pt(-3.25, 8.5)
	c := pt(1, 2)
	for _, axis := range []Axis{Vertical, Horizontal} {
		diff(t, p, Reflect(Reflect(p, axis, c), axis, c), approx)
	}
}

func TestMidpoint(t *testing.T) {
	diff(t, pt(1, 2), Midpoint(pt(-1, 0), pt(3, 4)), approx)
}

func TestScaleAndRotateAbout(t *testing.T) {
	c := pt(1, 1)
	diff(t, pt(5, -1), ScaleAbout(pt(3, 0), c, 2, 2), approx)
	diff(t, pt(1, 3), RotateAbout(pt(3, 1), c, math.Pi/2), approx)
}

func TestAxisString(t *testing.T) {
	if got := Vertical.String(); got != "vertical" {
		t.Errorf("got %q", got)
	}
	if got := Axis(7).String(); got != "Axis(7)" {
		t.Errorf("got %q", got)
	}
}
