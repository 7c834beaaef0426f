package calc

import "strconv"

// BadTokenError indicates a character the lexer does not recognize. It
// implements InputError.
type BadTokenError struct {
	// Char is the unrecognized character.
	Char rune
	// Col is the 1-based byte column of the character.
	Col int
}

func (err *BadTokenError) Error() string {
	return errpos(err.Col, "bad token "+strconv.QuoteRune(err.Char))
}

func (err *BadTokenError) Pos() int {
	return err.Col
}

// MismatchedParensError indicates a close paren with no outstanding open
// paren, or an open paren left unmatched at the end of the input. It
// implements InputError.
type MismatchedParensError struct {
	// Col is the column of the offending close paren, or the end of the
	// input for an unmatched open paren.
	Col int
}

func (err *MismatchedParensError) Error() string {
	return errpos(err.Col, "mismatched parentheses")
}

func (err *MismatchedParensError) Pos() int {
	return err.Col
}

// InvalidNumberError indicates a numeric literal that does not parse as a
// 64-bit float. It implements InputError.
type InvalidNumberError struct {
	// Text is the scanned literal.
	Text string
	// Col is the column where the literal starts.
	Col int
}

func (err *InvalidNumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *InvalidNumberError) Pos() int {
	return err.Col
}

// UnknownFunctionError indicates a letter that begins a function name but
// does not start any known function or constant at its position. It
// implements InputError.
type UnknownFunctionError struct {
	// Name is the offending letter.
	Name string
	// Col is the column of the letter.
	Col int
}

func (err *UnknownFunctionError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *UnknownFunctionError) Pos() int {
	return err.Col
}

// DivisionByZeroError indicates a division or modulo whose right operand
// is zero.
type DivisionByZeroError struct{}

func (*DivisionByZeroError) Error() string {
	return "division by zero"
}

// InvalidOperationError indicates an operator or function with too few
// operands, an argument outside a function's domain, or a malformed final
// stack state.
type InvalidOperationError struct {
	// Reason describes what was invalid.
	Reason string
}

func (err *InvalidOperationError) Error() string {
	return "invalid operation: " + err.Reason
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error the lexer
// returns implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based byte column of the input that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*BadTokenError)(nil)
	_ InputError = (*MismatchedParensError)(nil)
	_ InputError = (*InvalidNumberError)(nil)
	_ InputError = (*UnknownFunctionError)(nil)
)
