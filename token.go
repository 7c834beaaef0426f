package calc

import "strconv"

// Kind discriminates the variants of Token.
type Kind int

const (
	KindNumber Kind = iota
	KindOperator
	KindBracket
	KindFunction
	KindConstant
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindOperator:
		return "Operator"
	case KindBracket:
		return "Bracket"
	case KindFunction:
		return "Function"
	case KindConstant:
		return "Constant"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Operator is one of the six binary arithmetic operators.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Pow
	Mod
)

// Precedence returns the binding strength of the operator; a higher value
// binds more tightly. Add and Sub are 1, Mul, Div, and Mod are 2, and Pow
// is 3. The converter relies on this ordering.
func (op Operator) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div, Mod:
		return 2
	case Pow:
		return 3
	}
	return 0
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Mod:
		return "%"
	}
	return "Operator(" + strconv.Itoa(int(op)) + ")"
}

// Bracket is an open or close parenthesis.
type Bracket int

const (
	Open Bracket = iota
	Close
)

func (b Bracket) String() string {
	if b == Open {
		return "("
	}
	return ")"
}

// Function is one of the engine's one-argument functions.
type Function int

const (
	Sin Function = iota
	Cos
	Tan
	Sqrt
	Cbrt
	Log
	Log10
	Abs
	Floor
	Ceil
	Round
)

func (f Function) String() string {
	switch f {
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Tan:
		return "tan"
	case Sqrt:
		return "sqrt"
	case Cbrt:
		return "cbrt"
	case Log:
		return "log"
	case Log10:
		return "log10"
	case Abs:
		return "abs"
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	case Round:
		return "round"
	}
	return "Function(" + strconv.Itoa(int(f)) + ")"
}

// Constant is a named mathematical constant.
type Constant int

const (
	Pi Constant = iota
	E
)

func (c Constant) String() string {
	if c == Pi {
		return "pi"
	}
	return "e"
}

// Token is one lexical unit of an expression. Kind selects which payload
// field is meaningful; the others are zero. Tokens are immutable values
// with no identity beyond their content, so they compare with ==.
type Token struct {
	Kind  Kind
	Num   float64
	Op    Operator
	Brk   Bracket
	Fn    Function
	Const Constant
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case KindOperator:
		return t.Op.String()
	case KindBracket:
		return t.Brk.String()
	case KindFunction:
		return t.Fn.String()
	case KindConstant:
		return t.Const.String()
	}
	return "<invalid token>"
}
