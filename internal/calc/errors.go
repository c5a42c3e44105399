package calc

import "strconv"

// InputError is an error with position information. Every error
// resulting from invalid expression text implements InputError, so a
// caller can classify an Evaluate failure with a single type assertion
// or errors.As against this interface.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up
	// to and including the start of the offending text, counted in the
	// whitespace-stripped expression. Zero means the whole input.
	Pos() int
}

// SizeError indicates input longer than MaxExprLen bytes. It is
// detected before any character scan.
type SizeError struct {
	// Len is the byte length of the rejected input.
	Len int
}

func (err *SizeError) Error() string {
	return "expression too large: " + strconv.Itoa(err.Len) + " bytes (max " + strconv.Itoa(MaxExprLen) + ")"
}

func (err *SizeError) Pos() int { return 0 }

// CharError indicates a character outside the expression alphabet.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Text is the offending character, or the unrecognized word it
	// starts.
	Text string
}

func (err *CharError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.Quote(err.Text))
}

func (err *CharError) Pos() int { return err.Col }

// NumberError indicates a malformed numeric literal, e.g. a second
// decimal point or a lone dot.
type NumberError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the literal as scanned.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int { return err.Col }

// BracketError indicates unbalanced brackets in the input.
type BracketError struct {
	// Col is the position of the offending bracket, or of the end of
	// the input for an unclosed bracket.
	Col int
	// Left is the opening bracket with no close, if any.
	Left string
	// Right is the closing bracket with no opener, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int { return err.Col }

// OperatorError indicates an operator in a position where no operator
// may appear: at the start or end of the input, doubled up with another
// operator, or directly before a closing bracket. Unary minus is exempt
// everywhere except at the end.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator's spelling.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "misplaced operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int { return err.Col }

// CallError indicates a function name not followed by an opening
// bracket.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, err.Func+" must be followed by (")
}

func (err *CallError) Pos() int { return err.Col }

// AdjacencyError indicates two adjacent tokens with no operator between
// them in a combination that does not imply multiplication.
type AdjacencyError struct {
	// Col is the position of the second token.
	Col int
	// Left and Right are the adjacent tokens.
	Left, Right string
}

func (err *AdjacencyError) Error() string {
	return errpos(err.Col, "missing operator between "+strconv.Quote(err.Left)+" and "+strconv.Quote(err.Right))
}

func (err *AdjacencyError) Pos() int { return err.Col }

// EmptyExpressionError indicates an empty input or an empty bracketed
// subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression,
	// or zero for an entirely empty input.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int { return err.Col }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*SizeError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*AdjacencyError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
