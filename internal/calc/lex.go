package calc

import "strconv"

// tokenize converts validated, whitespace-stripped text into an ordered
// token sequence, substituting the value of x in place of the variable
// and synthesizing a multiplication token between adjacent operands.
// It is total on input that passed Validate; anything else is a defect
// upstream.
func tokenize(expr string, x float64) []token {
	syms, err := scan(expr)
	if err != nil {
		panic("calc: tokenize on unvalidated input: " + err.Error())
	}
	toks := make([]token, 0, len(syms)+4)
	for _, s := range syms {
		var t token
		switch {
		case s.variable:
			t = token{kind: KindNumber, value: x}
		case s.kind == KindNumber:
			v, err := strconv.ParseFloat(s.text, 64)
			if err != nil {
				panic("calc: invalid number " + strconv.Quote(s.text) + " after validation")
			}
			t = token{kind: KindNumber, value: v}
		case s.kind == KindMinus && unaryContext(toks):
			t = token{kind: KindNeg}
		default:
			t = token{kind: s.kind}
		}
		if len(toks) > 0 && impliedMul(toks[len(toks)-1].kind, t.kind) {
			toks = append(toks, token{kind: KindMul})
		}
		toks = append(toks, t)
	}
	return toks
}

// unaryContext reports whether a minus at the current position negates
// its operand rather than subtracting: at the start of the expression
// or directly after an operator or opening bracket.
func unaryContext(toks []token) bool {
	if len(toks) == 0 {
		return true
	}
	k := toks[len(toks)-1].kind
	return k.isBinary() || k == KindNeg || k == KindLeftParen
}

// impliedMul reports whether two adjacent tokens multiply: an operand
// (a number or a closed group) followed by anything that begins a new
// operand.
func impliedMul(prev, cur Kind) bool {
	if prev != KindNumber && prev != KindRightParen {
		return false
	}
	return cur == KindNumber || cur == KindLeftParen || cur.isFunction()
}
