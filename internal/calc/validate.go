package calc

import (
	"strings"
	"unicode"
)

// MaxExprLen bounds the accepted input size in bytes. Longer input is
// rejected before any character scan.
const MaxExprLen = 255

// symbol is a scanned lexeme prior to tokenization. The validator
// checks the grammar over symbols; the tokenizer turns them into
// tokens.
type symbol struct {
	kind Kind
	text string
	// pos is the 1-based rune position in the stripped expression.
	pos int
	// variable marks the x variable. Its kind is KindNumber, since the
	// tokenizer substitutes the value of x in place.
	variable bool
}

// normalize strips all whitespace. Spacing is cosmetic everywhere in
// the grammar.
func normalize(expr string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
}

// Validate checks that expr is a well-formed expression. It returns nil
// or an InputError; no tokenization is attempted on invalid input.
func Validate(expr string) error {
	if len(expr) > MaxExprLen {
		return &SizeError{Len: len(expr)}
	}
	s := normalize(expr)
	if s == "" {
		return &EmptyExpressionError{}
	}
	syms, err := scan(s)
	if err != nil {
		return err
	}
	return checkGrammar(syms)
}

// scan splits a stripped expression into symbols, consuming numbers and
// words greedily to their maximal extent.
func scan(s string) ([]symbol, error) {
	rs := []rune(s)
	syms := make([]symbol, 0, len(rs))
	for i := 0; i < len(rs); {
		pos := i + 1
		r := rs[i]
		switch {
		case '0' <= r && r <= '9', r == '.':
			j, dig, dot := i, false, false
			for j < len(rs) && ('0' <= rs[j] && rs[j] <= '9' || rs[j] == '.') {
				if rs[j] == '.' {
					if dot {
						return nil, &NumberError{Col: pos, Text: string(rs[i : j+1])}
					}
					dot = true
				} else {
					dig = true
				}
				j++
			}
			text := string(rs[i:j])
			if !dig {
				return nil, &NumberError{Col: pos, Text: text}
			}
			syms = append(syms, symbol{kind: KindNumber, text: text, pos: pos})
			i = j
		case r == 'x':
			syms = append(syms, symbol{kind: KindNumber, text: "x", pos: pos, variable: true})
			i++
		case unicode.IsLetter(r):
			k, n := matchWord(rs[i:])
			if n == 0 {
				j := i
				for j < len(rs) && unicode.IsLetter(rs[j]) {
					j++
				}
				return nil, &CharError{Col: pos, Text: string(rs[i:j])}
			}
			syms = append(syms, symbol{kind: k, text: string(rs[i : i+n]), pos: pos})
			i += n
		default:
			var k Kind
			switch r {
			case '+':
				k = KindPlus
			case '-':
				k = KindMinus
			case '*':
				k = KindMul
			case '/':
				k = KindDiv
			case '^':
				k = KindPow
			case '(':
				k = KindLeftParen
			case ')':
				k = KindRightParen
			default:
				return nil, &CharError{Col: pos, Text: string(r)}
			}
			syms = append(syms, symbol{kind: k, text: string(r), pos: pos})
			i++
		}
	}
	return syms, nil
}

// matchWord finds the word beginning rs, trying longer spellings first
// so that e.g. "tan" never shadows "atan" elsewhere in a letter run.
func matchWord(rs []rune) (Kind, int) {
	for _, w := range words {
		if len(rs) < len(w.text) {
			continue
		}
		if string(rs[:len(w.text)]) == w.text {
			return w.kind, len(w.text)
		}
	}
	return KindNone, 0
}

// checkGrammar verifies bracket balance and the adjacency rules over a
// scanned symbol sequence.
//
// An operator may not start the expression (unless it is unary minus),
// end it, follow another operator (again, minus excepted), or sit
// directly before a closing bracket. A function name must be followed
// by an opening bracket. Operand juxtapositions without an operator are
// allowed only where they imply multiplication: a number or x before
// "(", a function, or x; and ")" before "(", a number, x, or a
// function.
func checkGrammar(syms []symbol) error {
	depth := 0
	for i := range syms {
		cur := &syms[i]
		switch cur.kind {
		case KindLeftParen:
			depth++
		case KindRightParen:
			if depth == 0 {
				return &BracketError{Col: cur.pos, Right: ")"}
			}
			depth--
		}
		var prev *symbol
		if i > 0 {
			prev = &syms[i-1]
		}
		if err := checkPair(prev, cur); err != nil {
			return err
		}
	}
	last := &syms[len(syms)-1]
	if depth != 0 {
		return &BracketError{Col: last.pos, Left: "("}
	}
	switch {
	case last.kind.isBinary():
		return &OperatorError{Col: last.pos, Operator: last.text}
	case last.kind.isFunction():
		return &CallError{Col: last.pos, Func: last.text}
	}
	return nil
}

func checkPair(prev, cur *symbol) error {
	if prev == nil {
		if cur.kind.isBinary() && cur.kind != KindMinus {
			return &OperatorError{Col: cur.pos, Operator: cur.text}
		}
		return nil
	}
	switch {
	case prev.kind.isBinary():
		if cur.kind.isBinary() && cur.kind != KindMinus {
			return &OperatorError{Col: cur.pos, Operator: cur.text}
		}
		if cur.kind == KindRightParen {
			return &OperatorError{Col: prev.pos, Operator: prev.text}
		}
	case prev.kind.isFunction():
		if cur.kind != KindLeftParen {
			return &CallError{Col: prev.pos, Func: prev.text}
		}
	case prev.kind == KindLeftParen:
		if cur.kind.isBinary() && cur.kind != KindMinus {
			return &OperatorError{Col: cur.pos, Operator: cur.text}
		}
		if cur.kind == KindRightParen {
			return &EmptyExpressionError{Col: cur.pos, End: ")"}
		}
	case prev.kind == KindNumber:
		// A literal directly after x would read as a second operand,
		// not a multiplication: digits only bind leftward into
		// literals. Everything else operand-like implies *.
		if cur.kind == KindNumber && !cur.variable {
			return &AdjacencyError{Col: cur.pos, Left: prev.text, Right: cur.text}
		}
	}
	return nil
}
