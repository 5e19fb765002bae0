package intcalc

import (
	"math/big"
	"strings"
)

// EvaluateLine evaluates one line of input as an expression against env and
// returns the result. The line must not be an assignment; callers branch on
// IsAssignment first. Lines beginning with a slash belong to the
// surrounding command layer, so any that reach the evaluator report an
// unknown command.
func EvaluateLine(env *Env, line string) (*big.Int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, &SyntaxError{Msg: "empty expression"}
	}
	if strings.HasPrefix(line, "/") {
		return nil, &UnknownCommandError{Command: line}
	}
	x, err := ToPostfix(env, line)
	if err != nil {
		return nil, err
	}
	return x.Eval()
}
