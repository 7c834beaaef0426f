// Package calc implements a floating-point arithmetic expression engine.
//
// An expression string is scanned into a token sequence, reordered from
// infix to postfix with the shunting-yard algorithm, and evaluated with an
// operand stack. The three stages are exposed separately as Tokenize,
// ToPostfix, and Evaluate so a caller can inspect the intermediate
// sequences; EvalString composes them.
//
// The grammar covers the six binary operators + - * / ^ %, parenthesized
// subexpressions, the constants pi and e, and a fixed set of one-argument
// functions (sin, cos, tan, sqrt, cbrt, log, log10, abs, floor, ceil,
// round). A minus sign at the start of the input, after an operator, or
// after an open paren negates the operand that follows. All arithmetic is
// float64.
//
// The engine keeps no state between calls, so separate evaluations may run
// concurrently.
package calc
