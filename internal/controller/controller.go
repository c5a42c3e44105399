// Package controller adapts engine outcomes for the front ends: it
// renders successes to the fixed 8-decimal format and failures to the
// fixed user-facing strings, and short-circuits empty or oversize input
// before the engine is invoked at all.
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/kostyandriy/Calculator-app-MVC-sub001/internal/calc"
)

// The fixed strings the front ends display.
const (
	MsgMathError  = "Error in calculation"
	MsgInputError = "Error in input"
	MsgEmpty      = "Empty input"
	MsgTooLarge   = "Too large input"
)

// Calculate evaluates expr at x and renders the outcome the way the
// calculator front end shows it: the value formatted to 8 decimal
// places on success, or one of the fixed message strings.
func Calculate(expr string, x float64) string {
	if strings.TrimSpace(expr) == "" {
		return MsgEmpty
	}
	if len(expr) > calc.MaxExprLen {
		return MsgTooLarge
	}
	v, err := calc.Evaluate(expr, x)
	switch {
	case err == nil:
		return Format(v)
	case errors.As(err, new(*calc.MathError)):
		return MsgMathError
	default:
		return MsgInputError
	}
}

// Format renders a computed value to 8 decimal places.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64)
}
