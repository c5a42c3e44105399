// Package graph samples an expression's curve for plotting.
//
// The package owns the caller side of the grapher: axis-range
// validation and the step-size policy. The expression itself is
// evaluated by the calc pipeline once per sample point, and points
// where evaluation is undefined are dropped rather than aborting the
// curve.
package graph

import (
	"math"
	"strconv"

	"github.com/kostyandriy/Calculator-app-MVC-sub001/internal/calc"
)

// Axes is the requested plot window.
type Axes struct {
	XMin, XMax float64
	YMin, YMax float64
}

// RangeError indicates an axis range that is empty, inverted, or not
// finite.
type RangeError struct {
	// Axis is "x" or "y".
	Axis string
	// Min and Max are the rejected bounds.
	Min, Max float64
}

func (err *RangeError) Error() string {
	return "invalid " + err.Axis + " range [" +
		strconv.FormatFloat(err.Min, 'g', -1, 64) + ", " +
		strconv.FormatFloat(err.Max, 'g', -1, 64) + "]"
}

// CountError indicates a sample count too small to define a step.
type CountError struct {
	Count int
}

func (err *CountError) Error() string {
	return "need at least 2 samples, got " + strconv.Itoa(err.Count)
}

func (a Axes) validate() error {
	if !(a.XMin < a.XMax) || math.IsInf(a.XMin, 0) || math.IsInf(a.XMax, 0) {
		return &RangeError{Axis: "x", Min: a.XMin, Max: a.XMax}
	}
	if !(a.YMin < a.YMax) || math.IsInf(a.YMin, 0) || math.IsInf(a.YMax, 0) {
		return &RangeError{Axis: "y", Min: a.YMin, Max: a.YMax}
	}
	return nil
}

// Sample evaluates expr at samples evenly spaced x values spanning
// [ax.XMin, ax.XMax] inclusive and returns the points that landed
// inside the window. The step is chosen from the requested x span;
// sample points where the expression is undefined, and points whose y
// falls outside [ax.YMin, ax.YMax], are omitted.
func Sample(expr string, ax Axes, samples int) ([]calc.Point, error) {
	if err := ax.validate(); err != nil {
		return nil, err
	}
	if samples < 2 {
		return nil, &CountError{Count: samples}
	}
	step := (ax.XMax - ax.XMin) / float64(samples-1)
	xs := make([]float64, samples)
	for i := range xs {
		xs[i] = ax.XMin + float64(i)*step
	}
	// The spacing above can leave the last sample a hair past XMax.
	xs[samples-1] = ax.XMax
	pts, err := calc.EvaluateMany(expr, xs)
	if err != nil {
		return nil, err
	}
	in := pts[:0]
	for _, p := range pts {
		if p.Y < ax.YMin || p.Y > ax.YMax {
			continue
		}
		in = append(in, p)
	}
	return in, nil
}
