package intcalc

import (
	"math/big"
	"strconv"
	"strings"
)

// term is one element of a postfix sequence: either a resolved value or an
// operator symbol.
type term struct {
	val *big.Int // nil for operators
	op  string
}

// Expr is an expression converted to postfix form. Variable names are
// resolved against the environment during conversion, so an Expr holds only
// values and operators.
type Expr struct {
	terms []term
}

// ToPostfix converts an infix expression to postfix form by the shunting
// yard algorithm, resolving variable names through env as it goes.
func ToPostfix(env *Env, src string) (*Expr, error) {
	l := lex(strings.NewReader(src))
	var out []term
	var ops []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			break
		}
		switch tok.kind {
		case tokenNum:
			v, ok := new(big.Int).SetString(tok.text, 10)
			if !ok {
				return nil, &SyntaxError{Col: tok.pos, Msg: "malformed number " + strconv.Quote(tok.text)}
			}
			out = append(out, term{val: v})
		case tokenIdent:
			v, err := env.Lookup(tok.text)
			if err != nil {
				return nil, err
			}
			if tok.neg {
				v.Neg(v)
			}
			out = append(out, term{val: v})
		case tokenOp:
			// A leading operator goes straight to the output so that the
			// evaluator can reject it by operand count.
			if len(out) == 0 {
				out = append(out, term{op: tok.text})
				continue
			}
			p, err := Precedence(tok.text)
			if err != nil {
				return nil, err
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOp {
					break
				}
				q, err := Precedence(top.text)
				if err != nil {
					return nil, err
				}
				if q < p {
					break
				}
				out = append(out, term{op: top.text})
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					matched = true
					break
				}
				out = append(out, term{op: top.text})
			}
			if !matched {
				return nil, &SyntaxError{Col: tok.pos, Msg: "close parenthesis with no open parenthesis"}
			}
		default:
			return nil, &SyntaxError{Col: tok.pos, Msg: "unexpected token " + strconv.Quote(tok.text)}
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind != tokenOp {
			return nil, &SyntaxError{Col: top.pos, Msg: "open parenthesis with no close parenthesis"}
		}
		out = append(out, term{op: top.text})
	}
	return &Expr{terms: out}, nil
}

// Len returns the number of terms in the postfix sequence.
func (x *Expr) Len() int {
	return len(x.terms)
}

// String renders the postfix sequence space-separated, values first where
// they occur: "3 + 4 * 2" renders as "3 4 2 * +".
func (x *Expr) String() string {
	var b strings.Builder
	for i, t := range x.terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t.val != nil {
			b.WriteString(t.val.String())
		} else {
			b.WriteString(t.op)
		}
	}
	return b.String()
}
