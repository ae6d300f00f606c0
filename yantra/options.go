package yantra

import (
	"fmt"
	"math"
)

// Default parameters as fractions of the diameter.
const (
	defaultA = 5.0 / 48
	defaultC = 17.0 / 48
	defaultF = 26.5 / 48
	defaultG = 30.0 / 48
	defaultI = 42.0 / 48
)

// Params are the five free distances of the construction, each measured
// down from the top of the bounding circle along the vertical axis.
type Params struct {
	A float64 // tip of the second up triangle
	C float64 // base of the first down triangle
	F float64 // base of the third up triangle
	G float64 // base of the first up triangle
	I float64 // tip of the second down triangle
}

// DefaultParams returns the classical proportions for a circle of radius.
func DefaultParams(radius float64) Params {
	d := 2 * radius
	return Params{
		A: d * defaultA,
		C: d * defaultC,
		F: d * defaultF,
		G: d * defaultG,
		I: d * defaultI,
	}
}

// Option overrides one parameter.
type Option func(*Params)

func WithA(a float64) Option { return func(p *Params) { p.A = a } }
func WithC(c float64) Option { return func(p *Params) { p.C = c } }
func WithF(f float64) Option { return func(p *Params) { p.F = f } }
func WithG(g float64) Option { return func(p *Params) { p.G = g } }
func WithI(i float64) Option { return func(p *Params) { p.I = i } }

// ParamError reports an input that cannot produce a diagram.
type ParamError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("yantra: invalid %s = %g: %s", e.Name, e.Value, e.Reason)
}

// Validate checks that radius is positive and every parameter lies strictly
// inside the diameter.
func (p Params) Validate(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return &ParamError{Name: "radius", Value: radius, Reason: "must be positive and finite"}
	}
	d := 2 * radius
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"a", p.A}, {"c", p.C}, {"f", p.F}, {"g", p.G}, {"i", p.I},
	} {
		if math.IsNaN(f.v) || f.v <= 0 || f.v >= d {
			return &ParamError{Name: f.name, Value: f.v, Reason: fmt.Sprintf("must lie in (0, %g)", d)}
		}
	}
	return nil
}
