package calc

// ToPostfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Conversion is total: bracket balance was already
// checked by Tokenize, so any stray bracket here is dropped rather than
// reported again.
func ToPostfix(tokens []Token) []Token {
	queue := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case KindNumber, KindConstant:
			queue = append(queue, tok)
		case KindOperator:
			// Pop while the top of the stack binds at least as tightly.
			// Popping on ties keeps every operator left-associative,
			// including ^, so 2^3^2 is (2^3)^2.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != KindOperator || tok.Op.Precedence() > top.Op.Precedence() {
					break
				}
				queue = append(queue, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case KindFunction:
			// Functions never compare by precedence; one binds to the
			// parenthesized subexpression that follows it.
			stack = append(stack, tok)
		case KindBracket:
			if tok.Brk == Open {
				stack = append(stack, tok)
				break
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == KindBracket && top.Brk == Open {
					// The barrier is discarded. If a function is waiting
					// behind it, emit it right after its argument.
					if n := len(stack); n > 0 && stack[n-1].Kind == KindFunction {
						queue = append(queue, stack[n-1])
						stack = stack[:n-1]
					}
					break
				}
				queue = append(queue, top)
			}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == KindBracket {
			continue
		}
		queue = append(queue, top)
	}
	return queue
}
