package calc

// toPostfix reorders an infix token sequence into postfix with a
// two-stack shunting-yard pass. Numbers go straight to the output;
// operators wait on the stack until an incoming operator of no higher
// precedence, a closing bracket, or the end of input releases them.
// Exponentiation and the prefix operators are right-associative, so an
// equal-precedence stack entry does not bind before them.
//
// Bracket balance is guaranteed by the validator, so unbalanced state
// here is a defect in an earlier stage, not a user error.
func toPostfix(toks []token) []token {
	out := make([]token, 0, len(toks))
	ops := make([]token, 0, 8)
	for _, t := range toks {
		switch t.kind {
		case KindNumber:
			out = append(out, t)
		case KindLeftParen:
			ops = append(ops, t)
		case KindRightParen:
			for {
				if len(ops) == 0 {
					panic("calc: unmatched ) in converter")
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == KindLeftParen {
					break
				}
				out = append(out, top)
			}
		default:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == KindLeftParen || !top.kind.popsBefore(t.kind) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == KindLeftParen {
			panic("calc: unmatched ( in converter")
		}
		out = append(out, top)
	}
	return out
}
