package calc

import "testing"

func rpn(src string, x float64) string {
	return tokens(toPostfix(tokenize(normalize(src), x)))
}

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		x    float64
		want string
	}{
		{"num", "42", 0, "42"},
		{"add-sub", "1+2-3", 0, "1 2 + 3 -"},
		{"precedence", "1-2*12-3^2", 0, "1 2 12 * - 3 2 ^ -"},
		{"pow-right", "2^3^2", 0, "2 3 2 ^ ^"},
		{"parens", "(1+2)*3", 0, "1 2 + 3 *"},
		{"mod", "5mod3+1", 0, "5 3 mod 1 +"},
		{"func", "sin(x)+1", 0, "0 sin 1 +"},
		{"func-pow", "sin(x)^2", 0, "0 sin 2 ^"},
		{"func-nested", "sin(cos(x))", 0, "0 cos sin"},
		{"func-arg-scope", "sin(x+1)*2", 0, "0 1 + sin 2 *"},
		{"implicit", "2(x+1)", 3, "2 3 1 + *"},
		{"neg-binds-below-pow", "-2^2", 0, "2 2 ^ neg"},
		{"neg-exponent", "2^-2", 0, "2 2 neg ^"},
		{"neg-func", "-sin(x)", 1, "1 sin neg"},
		{"neg-factor", "2*-3", 0, "2 3 neg *"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := rpn(c.src, c.x)
			if got != c.want {
				t.Errorf("toPostfix(%q) = %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestToPostfixDrainsOperators(t *testing.T) {
	// The converter must never leave residual operator-stack entries:
	// every operator and function token reappears in the output.
	cases := []string{
		"1+2*3-4/5^6",
		"sin(cos(tan(x)))",
		"-(x+1)(x-1)mod7",
		"2^-sin(x)^2",
	}
	for _, src := range cases {
		in := tokenize(normalize(src), 1)
		out := toPostfix(in)
		ops := 0
		for _, tk := range in {
			if tk.kind != KindLeftParen && tk.kind != KindRightParen {
				ops++
			}
		}
		if len(out) != ops {
			t.Errorf("toPostfix(%q) emitted %d tokens, want %d: %q", src, len(out), ops, tokens(out))
		}
	}
}
