package planar

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestLineIntersection(t *testing.T) {
	tests := []struct {
		name       string
		p, q, r, s [2]float64
		want       [2]float64
	}{
		{"crossing", [2]float64{-1, 0}, [2]float64{1, 0}, [2]float64{0, -1}, [2]float64{0, 1}, [2]float64{0, 0}},
		{"beyond both segments", [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{20, 1}, [2]float64{20, 2}, [2]float64{20, 0}},
		{"diagonals", [2]float64{0, 0}, [2]float64{2, 2}, [2]float64{0, 2}, [2]float64{2, 0}, [2]float64{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LineIntersection(pt(tt.p[0], tt.p[1]), pt(tt.q[0], tt.q[1]), pt(tt.r[0], tt.r[1]), pt(tt.s[0], tt.s[1]))
			if err != nil {
				t.Fatal(err)
			}
			diff(t, pt(tt.want[0], tt.want[1]), got, approx)
		})
	}
}

func TestLineIntersectionParallel(t *testing.T) {
	_, err := LineIntersection(pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1))
	var nie *NoIntersectionError
	if !errors.As(err, &nie) {
		t.Fatalf("got %v, want *NoIntersectionError", err)
	}
	diff(t, pt(0, 1), nie.R)
}

func TestLineIntersectionOutOfRange(t *testing.T) {
	// The horizontal segment only reaches x = 26 once extended.
	_, err := LineIntersection(pt(0, 0), pt(1, 0), pt(30, -1), pt(30, 1))
	var nie *NoIntersectionError
	if !errors.As(err, &nie) {
		t.Fatalf("got %v, want *NoIntersectionError", err)
	}
}

func TestLineIntersectionDegenerate(t *testing.T) {
	if _, err := LineIntersection(pt(1, 1), pt(1, 1), pt(0, -1), pt(0, 1)); err == nil {
		t.Fatal("expected an error for a zero-length segment")
	}
}

func TestChordIntersection(t *testing.T) {
	circle := Circle{Center: pt(0, 0), Radius: 10}
	got, err := ChordIntersection(pt(0, 6), pt(2, -10), pt(2, 10), circle)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pt(2, 6), got, approx)

	end, err := circle.ChordEnd(pt(0, 6))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pt(8, 6), end, approx)
}

func TestChordIntersectionOffsetCenter(t *testing.T) {
	circle := Circle{Center: pt(100, 50), Radius: 10}
	end, err := circle.ChordEnd(pt(100, 56))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pt(108, 56), end, approx)
}

func TestChordOutsideCircle(t *testing.T) {
	circle := Circle{Center: pt(0, 0), Radius: 1}
	_, err := ChordIntersection(pt(0, 2), pt(0, 0), pt(1, 1), circle)
	var nie *NoIntersectionError
	if !errors.As(err, &nie) {
		t.Fatalf("got %v, want *NoIntersectionError", err)
	}
	if nie.Reason == "" {
		t.Error("expected a reason for a chord outside the circle")
	}
	if msg := err.Error(); strings.Contains(msg, "between") || !strings.Contains(msg, "height 2") {
		t.Errorf("message %q should describe the chord, not a segment pair", msg)
	}
	diff(t, NoIntersectionError{Reason: nie.Reason}, *nie)
}

func TestNoIntersectionErrorMessage(t *testing.T) {
	_, err := LineIntersection(pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1))
	if msg := err.Error(); !strings.Contains(msg, "between {0 0}-{1 0} and {0 1}-{1 1}") {
		t.Errorf("message %q does not name both segments", msg)
	}
}

func TestCircleContains(t *testing.T) {
	c := Circle{Center: pt(1, 1), Radius: 2}
	if !c.Contains(pt(1, 3), 1e-9) {
		t.Error("point on the circle should be contained")
	}
	if c.Contains(pt(1, 3.1), 1e-9) {
		t.Error("point outside the circle should not be contained")
	}
	if !c.Contains(pt(1+math.Sqrt2, 1+math.Sqrt2), 1e-9) {
		t.Error("diagonal point on the circle should be contained")
	}
}
