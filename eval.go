package calc

import "math"

// Evaluate consumes a postfix token sequence and computes its value with an
// operand stack. Exactly one value must remain once the sequence is spent;
// anything else reports an InvalidOperationError. Division and modulo check
// for a zero right operand, and sqrt, log, and log10 refuse arguments
// outside their domains instead of producing a NaN.
func Evaluate(postfix []Token) (float64, error) {
	var stack []float64
	for _, tok := range postfix {
		switch tok.Kind {
		case KindNumber:
			stack = append(stack, tok.Num)
		case KindConstant:
			switch tok.Const {
			case Pi:
				stack = append(stack, math.Pi)
			case E:
				stack = append(stack, math.E)
			}
		case KindOperator:
			if len(stack) < 2 {
				return 0, &InvalidOperationError{Reason: "not enough operands"}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			var r float64
			switch tok.Op {
			case Add:
				r = left + right
			case Sub:
				r = left - right
			case Mul:
				r = left * right
			case Div:
				if right == 0 {
					return 0, &DivisionByZeroError{}
				}
				r = left / right
			case Pow:
				r = math.Pow(left, right)
			case Mod:
				if right == 0 {
					return 0, &DivisionByZeroError{}
				}
				r = math.Mod(left, right)
			}
			stack = append(stack, r)
		case KindFunction:
			if len(stack) < 1 {
				return 0, &InvalidOperationError{Reason: "not enough operands for function"}
			}
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			var r float64
			switch tok.Fn {
			case Sin:
				r = math.Sin(v)
			case Cos:
				r = math.Cos(v)
			case Tan:
				r = math.Tan(v)
			case Sqrt:
				if v < 0 {
					return 0, &InvalidOperationError{Reason: "square root of negative number"}
				}
				r = math.Sqrt(v)
			case Cbrt:
				r = math.Cbrt(v)
			case Log:
				if v <= 0 {
					return 0, &InvalidOperationError{Reason: "logarithm of non-positive number"}
				}
				r = math.Log(v)
			case Log10:
				if v <= 0 {
					return 0, &InvalidOperationError{Reason: "logarithm of non-positive number"}
				}
				r = math.Log10(v)
			case Abs:
				r = math.Abs(v)
			case Floor:
				r = math.Floor(v)
			case Ceil:
				r = math.Ceil(v)
			case Round:
				r = math.Round(v)
			}
			stack = append(stack, r)
		default:
			// Brackets never appear in a sequence produced by ToPostfix.
		}
	}
	if len(stack) != 1 {
		return 0, &InvalidOperationError{Reason: "invalid expression"}
	}
	return stack[0], nil
}

// EvalString is a shortcut to tokenize, convert, and evaluate a string
// expression.
func EvalString(expr string) (float64, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return 0, err
	}
	return Evaluate(ToPostfix(tokens))
}
