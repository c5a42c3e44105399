package controller_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kostyandriy/Calculator-app-MVC-sub001/internal/controller"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name string
		expr string
		x    float64
		want string
	}{
		{"integer", "2+2", 0, "4.00000000"},
		{"log", "log(10)", 0, "1.00000000"},
		{"fraction", "1/3", 0, "0.33333333"},
		{"variable", "2*x", 21, "42.00000000"},
		{"negative", "-x", 0.5, "-0.50000000"},
		{"math-error", "1/0", 0, controller.MsgMathError},
		{"domain-error", "sqrt(-1)", 0, controller.MsgMathError},
		{"input-error", "(()", 0, controller.MsgInputError},
		{"bad-char", "2&3", 0, controller.MsgInputError},
		{"empty", "", 0, controller.MsgEmpty},
		{"blank", "   ", 0, controller.MsgEmpty},
		{"oversize", strings.Repeat("1+", 200) + "1", 0, controller.MsgTooLarge},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, controller.Calculate(c.expr, c.x))
		})
	}
}
