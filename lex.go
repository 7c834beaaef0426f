package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// keyword binds a fixed name to the token it scans to. Matching tries table
// entries in order and each entry matches as a prefix at the scan position,
// so log10 must appear before log.
type keyword struct {
	name string
	tok  Token
}

var keywords = []keyword{
	{"pi", Token{Kind: KindConstant, Const: Pi}},
	{"sin", Token{Kind: KindFunction, Fn: Sin}},
	{"sqrt", Token{Kind: KindFunction, Fn: Sqrt}},
	{"cos", Token{Kind: KindFunction, Fn: Cos}},
	{"cbrt", Token{Kind: KindFunction, Fn: Cbrt}},
	{"ceil", Token{Kind: KindFunction, Fn: Ceil}},
	{"tan", Token{Kind: KindFunction, Fn: Tan}},
	{"log10", Token{Kind: KindFunction, Fn: Log10}},
	{"log", Token{Kind: KindFunction, Fn: Log}},
	{"abs", Token{Kind: KindFunction, Fn: Abs}},
	{"floor", Token{Kind: KindFunction, Fn: Floor}},
	{"round", Token{Kind: KindFunction, Fn: Round}},
}

// triggers are the letters that begin a multi-letter function name. A
// trigger that does not start any keyword at the scan position reports an
// unknown function rather than a bad token.
const triggers = "sctlafr"

// Tokenize scans an expression into its token sequence. Scanning is
// case-insensitive. On any error the partial sequence is discarded and the
// error describes the offending input; lexical errors implement InputError.
func Tokenize(expr string) ([]Token, error) {
	src := strings.ToLower(expr)
	var tokens []Token
	depth := 0
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\n':
			i++
		case '0' <= c && c <= '9' || c == '.':
			start := i
			i++
			for i < len(src) {
				c := src[i]
				if '0' <= c && c <= '9' || c == '.' {
					i++
					continue
				}
				if c == 'e' {
					// A sign is part of the number only immediately after
					// the exponent marker; anywhere else it is an operator.
					i++
					if i < len(src) && (src[i] == '+' || src[i] == '-') {
						i++
					}
					continue
				}
				break
			}
			text := src[start:i]
			n, err := strconv.ParseFloat(text, 64)
			if err != nil {
				// Out-of-range literals round to ±Inf; only malformed
				// runs are invalid.
				if !errors.Is(err, strconv.ErrRange) {
					return nil, &InvalidNumberError{Text: text, Col: start + 1}
				}
			}
			tokens = append(tokens, Token{Kind: KindNumber, Num: n})
		case c == '(':
			tokens = append(tokens, Token{Kind: KindBracket, Brk: Open})
			depth++
			i++
		case c == ')':
			if depth == 0 {
				return nil, &MismatchedParensError{Col: i + 1}
			}
			tokens = append(tokens, Token{Kind: KindBracket, Brk: Close})
			depth--
			i++
		case c == '+':
			tokens = append(tokens, Token{Kind: KindOperator, Op: Add})
			i++
		case c == '-':
			// A minus at the start of the input, after an operator, or
			// after an open paren negates the operand that follows. It is
			// emitted as -1 * rather than as a unary token, which is what
			// makes "3--2" and "-(2+3)" come out right.
			if negates(tokens) {
				tokens = append(tokens,
					Token{Kind: KindNumber, Num: -1},
					Token{Kind: KindOperator, Op: Mul})
			} else {
				tokens = append(tokens, Token{Kind: KindOperator, Op: Sub})
			}
			i++
		case c == '*':
			tokens = append(tokens, Token{Kind: KindOperator, Op: Mul})
			i++
		case c == '/':
			tokens = append(tokens, Token{Kind: KindOperator, Op: Div})
			i++
		case c == '^':
			tokens = append(tokens, Token{Kind: KindOperator, Op: Pow})
			i++
		case c == '%':
			tokens = append(tokens, Token{Kind: KindOperator, Op: Mod})
			i++
		case 'a' <= c && c <= 'z':
			if kw, ok := match(src[i:]); ok {
				tokens = append(tokens, kw.tok)
				i += len(kw.name)
				break
			}
			if c == 'e' {
				// e is the constant only when not immediately followed by
				// another letter; scanning resumes at that letter, which
				// then reports its own error if it starts no keyword.
				if i+1 >= len(src) || !isLetter(src[i+1]) {
					tokens = append(tokens, Token{Kind: KindConstant, Const: E})
				}
				i++
				break
			}
			if strings.IndexByte(triggers, c) >= 0 {
				return nil, &UnknownFunctionError{Name: string(c), Col: i + 1}
			}
			return nil, &BadTokenError{Char: rune(c), Col: i + 1}
		default:
			r, _ := utf8.DecodeRuneInString(src[i:])
			return nil, &BadTokenError{Char: r, Col: i + 1}
		}
	}
	if depth > 0 {
		return nil, &MismatchedParensError{Col: len(src)}
	}
	return tokens, nil
}

// negates reports whether a minus sign scanned after the given tokens
// negates its operand rather than subtracting.
func negates(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	last := tokens[len(tokens)-1]
	return last.Kind == KindOperator || last.Kind == KindBracket && last.Brk == Open
}

// match finds the first keyword that is a prefix of s.
func match(s string) (keyword, bool) {
	for _, kw := range keywords {
		if strings.HasPrefix(s, kw.name) {
			return kw, true
		}
	}
	return keyword{}, false
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z'
}
