package calc

import "strconv"

// Kind identifies the lexical class of a token.
type Kind int8

const (
	KindNone Kind = iota
	// KindNumber is a numeric literal. The variable x becomes a number
	// at tokenization time, so nothing downstream sees a variable.
	KindNumber
	// KindLeftParen and KindRightParen group subexpressions and scope
	// function arguments. They carry no precedence; the converter uses
	// them only to bound operator scopes.
	KindLeftParen
	KindRightParen
	// Binary operators.
	KindPlus
	KindMinus
	KindMul
	KindDiv
	KindMod
	KindPow
	// KindNeg is unary minus.
	KindNeg
	// Unary functions.
	KindSin
	KindCos
	KindTan
	KindAsin
	KindAcos
	KindAtan
	KindSqrt
	KindLn
	KindLog
)

// token is the unit exchanged between the pipeline stages. value is
// meaningful only when kind is KindNumber.
type token struct {
	kind  Kind
	value float64
}

func (t token) String() string {
	if t.kind == KindNumber {
		return strconv.FormatFloat(t.value, 'g', -1, 64)
	}
	return t.kind.String()
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNumber:
		return "number"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindPlus:
		return "+"
	case KindMinus:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindMod:
		return "mod"
	case KindPow:
		return "^"
	case KindNeg:
		return "neg"
	case KindSin:
		return "sin"
	case KindCos:
		return "cos"
	case KindTan:
		return "tan"
	case KindAsin:
		return "asin"
	case KindAcos:
		return "acos"
	case KindAtan:
		return "atan"
	case KindSqrt:
		return "sqrt"
	case KindLn:
		return "ln"
	case KindLog:
		return "log"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Precedence bands, lowest to highest. Brackets use the sentinel band;
// the converter never compares against it.
const (
	precSentinel = iota
	precAdditive
	precMultiplicative
	precPower
	precFunction
)

func (k Kind) precedence() int {
	switch k {
	case KindPlus, KindMinus:
		return precAdditive
	case KindMul, KindDiv, KindMod:
		return precMultiplicative
	case KindPow, KindNeg:
		return precPower
	case KindSin, KindCos, KindTan, KindAsin, KindAcos, KindAtan, KindSqrt, KindLn, KindLog:
		return precFunction
	default:
		return precSentinel
	}
}

// rightAssoc reports whether an operator groups right to left.
// Exponentiation does, and so do all prefix operators: a prefix token
// never pops an equal-precedence token already on the stack.
func (k Kind) rightAssoc() bool {
	switch k {
	case KindPow, KindNeg:
		return true
	default:
		return k.isFunction()
	}
}

// popsBefore reports whether an operator k on top of the operator stack
// must be emitted before pushing the incoming operator.
func (k Kind) popsBefore(incoming Kind) bool {
	if k.precedence() != incoming.precedence() {
		return k.precedence() > incoming.precedence()
	}
	return !incoming.rightAssoc()
}

func (k Kind) isBinary() bool {
	switch k {
	case KindPlus, KindMinus, KindMul, KindDiv, KindMod, KindPow:
		return true
	}
	return false
}

func (k Kind) isFunction() bool {
	switch k {
	case KindSin, KindCos, KindTan, KindAsin, KindAcos, KindAtan, KindSqrt, KindLn, KindLog:
		return true
	}
	return false
}

// words are the multi-character spellings the scanner recognizes,
// longest first so that prefixes never shadow longer names.
var words = []struct {
	text string
	kind Kind
}{
	{"asin", KindAsin},
	{"acos", KindAcos},
	{"atan", KindAtan},
	{"sqrt", KindSqrt},
	{"sin", KindSin},
	{"cos", KindCos},
	{"tan", KindTan},
	{"mod", KindMod},
	{"log", KindLog},
	{"ln", KindLn},
}
