//go:build go1.18
// +build go1.18

package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/kostyandriy/Calculator-app-MVC-sub001/internal/calc"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("1+2", 0.0)
	f.Add("sin(x)cos(x)", 1.5)
	f.Add("2^-3^x", -2.0)
	f.Add("-(x+1)(x-1)mod7", 0.25)
	f.Add("(()", 0.0)
	f.Fuzz(func(t *testing.T, s string, x float64) {
		v, err := calc.Evaluate(s, x)
		if err != nil {
			var me *calc.MathError
			var in calc.InputError
			if !errors.As(err, &me) && !errors.As(err, &in) {
				t.Errorf("Evaluate(%q, %v): error outside the taxonomy: %#v", s, x, err)
			}
			return
		}
		if math.IsNaN(v) && !math.IsNaN(x) {
			t.Errorf("Evaluate(%q, %v) = NaN with nil error", s, x)
		}
	})
}

func FuzzValidate(f *testing.F) {
	f.Add("x")
	f.Add("1e5")
	f.Add("2..5")
	f.Add("sin(x)^2")
	f.Fuzz(func(t *testing.T, s string) {
		calc.Validate(s)
	})
}
