package intcalc

import (
	"math/big"
	"strconv"
	"strings"
)

// Eval evaluates the postfix sequence with a stack machine and returns the
// result. The returned value is a fresh integer, never an alias of a value
// inside the expression, so an Expr can be evaluated any number of times.
func (x *Expr) Eval() (*big.Int, error) {
	switch len(x.terms) {
	case 0:
		return nil, &SyntaxError{Msg: "empty expression"}
	case 1:
		t := x.terms[0]
		if t.val == nil {
			if strings.HasPrefix(t.op, "/") {
				return nil, &UnknownCommandError{Command: t.op}
			}
			return nil, &SyntaxError{Msg: "lone operator " + strconv.Quote(t.op)}
		}
		return new(big.Int).Set(t.val), nil
	}
	// Binary operators only, so a well-formed sequence has an odd number of
	// terms.
	if len(x.terms)%2 == 0 {
		return nil, &SyntaxError{Msg: "even number of terms"}
	}
	var stack []*big.Int
	for _, t := range x.terms {
		if t.val != nil {
			stack = append(stack, t.val)
			continue
		}
		if len(stack) < 2 {
			return nil, &SyntaxError{Msg: "operator " + strconv.Quote(t.op) + " with missing operand"}
		}
		rhs := stack[len(stack)-1]
		lhs := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		r := new(big.Int)
		switch t.op {
		case "+":
			r.Add(lhs, rhs)
		case "-":
			r.Sub(lhs, rhs)
		case "*":
			r.Mul(lhs, rhs)
		case "/":
			if rhs.Sign() == 0 {
				return nil, &DivisionByZeroError{}
			}
			// Quo truncates toward zero.
			r.Quo(lhs, rhs)
		default:
			return nil, &UnknownCommandError{Command: t.op}
		}
		stack = append(stack, r)
	}
	if len(stack) != 1 {
		return nil, &SyntaxError{Msg: strconv.Itoa(len(stack)) + " values left after evaluation"}
	}
	return stack[0], nil
}
