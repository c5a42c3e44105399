package calc

import (
	"errors"
	"math"
	"strconv"
)

// MathError reports an operation applied outside its numeric domain:
// division or modulo by zero, or an out-of-domain function argument.
type MathError struct {
	// Op is the operator or function spelling.
	Op string
	// X is the offending operand.
	X float64
}

func (err *MathError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Op
}

// Evaluate runs the full pipeline on expr with the given value for x
// and returns the result. On failure the error is an InputError if expr
// never parsed, or a *MathError if a well-formed expression hit an
// undefined operation. The pipeline keeps no state, so identical
// arguments always produce identical results.
func Evaluate(expr string, x float64) (float64, error) {
	if err := Validate(expr); err != nil {
		return 0, err
	}
	return evalPostfix(toPostfix(tokenize(normalize(expr), x)))
}

// Point is one sample of an expression's curve.
type Point struct {
	X, Y float64
}

// EvaluateMany evaluates expr at each of xs in order. Sample points
// where evaluation hits a math error are skipped, so a single undefined
// point does not abort the whole curve. Invalid expression text fails
// the whole batch.
func EvaluateMany(expr string, xs []float64) ([]Point, error) {
	if err := Validate(expr); err != nil {
		return nil, err
	}
	pts := make([]Point, 0, len(xs))
	for _, x := range xs {
		y, err := Evaluate(expr, x)
		if err != nil {
			if errors.As(err, new(*MathError)) {
				continue
			}
			return nil, err
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts, nil
}

// evalPostfix reduces a postfix token sequence with a single operand
// stack: numbers push, binary operators pop two (the second pop is the
// left operand), prefix operators pop one. It short-circuits on the
// first domain violation. On success exactly one value remains; any
// other final stack depth is a defect in an earlier stage.
func evalPostfix(toks []token) (float64, error) {
	stack := make([]float64, 0, len(toks))
	pop := func() float64 {
		if len(stack) == 0 {
			panic("calc: operand stack underflow")
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	for _, t := range toks {
		if t.kind == KindNumber {
			stack = append(stack, t.value)
			continue
		}
		var v float64
		if t.kind.isBinary() {
			b := pop()
			a := pop()
			switch t.kind {
			case KindPlus:
				v = a + b
			case KindMinus:
				v = a - b
			case KindMul:
				v = a * b
			case KindDiv:
				if b == 0 {
					return 0, &MathError{Op: "/", X: b}
				}
				v = a / b
			case KindMod:
				if b == 0 {
					return 0, &MathError{Op: "mod", X: b}
				}
				if math.IsInf(a, 0) || math.IsInf(b, 0) {
					return 0, &MathError{Op: "mod", X: a}
				}
				v = math.Mod(a, b)
			case KindPow:
				v = math.Pow(a, b)
			}
			// Catches the holes the checks above leave open, like
			// inf/inf, 0*inf, and a negative base under a fractional
			// exponent.
			if math.IsNaN(v) {
				return 0, &MathError{Op: t.kind.String(), X: a}
			}
			stack = append(stack, v)
			continue
		}
		a := pop()
		switch t.kind {
		case KindNeg:
			v = -a
		case KindSin:
			v = math.Sin(a)
		case KindCos:
			v = math.Cos(a)
		case KindTan:
			v = math.Tan(a)
		case KindAsin:
			if a < -1 || a > 1 {
				return 0, &MathError{Op: "asin", X: a}
			}
			v = math.Asin(a)
		case KindAcos:
			if a < -1 || a > 1 {
				return 0, &MathError{Op: "acos", X: a}
			}
			v = math.Acos(a)
		case KindAtan:
			v = math.Atan(a)
		case KindSqrt:
			if a < 0 {
				return 0, &MathError{Op: "sqrt", X: a}
			}
			v = math.Sqrt(a)
		case KindLn:
			if a <= 0 {
				return 0, &MathError{Op: "ln", X: a}
			}
			v = math.Log(a)
		case KindLog:
			if a <= 0 {
				return 0, &MathError{Op: "log", X: a}
			}
			v = math.Log10(a)
		default:
			panic("calc: invalid token in postfix sequence: " + t.String())
		}
		if math.IsNaN(v) {
			// sin/cos/tan of an infinity.
			return 0, &MathError{Op: t.kind.String(), X: a}
		}
		stack = append(stack, v)
	}
	if len(stack) != 1 {
		panic("calc: inconsistent operand stack: " + strconv.Itoa(len(stack)) + " items")
	}
	return stack[0], nil
}
