// Package calc evaluates single-variable arithmetic expressions.
//
// An expression is plain text over numbers, the variable x, the binary
// operators + - * / mod ^, unary minus, the unary functions sin cos tan
// asin acos atan sqrt ln log, and parenthesized grouping. Adjacent
// operands multiply, so "2x" and "(x+1)(x-1)" parse the way you'd read
// them in notes.
//
// Evaluation runs a fixed pipeline: a validator rejects malformed text,
// a tokenizer turns the text into typed tokens with x substituted by
// value, a shunting-yard pass reorders the tokens into postfix, and a
// stack evaluator reduces the postfix sequence to a float64. Failures
// are either input errors (the text never parsed; see InputError) or
// math errors (a well-formed expression hit an undefined operation; see
// MathError). The pipeline keeps no state between calls.
package calc
