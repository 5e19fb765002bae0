package intcalc

import (
	"math/big"
	"strconv"
	"strings"
)

// IsAssignment reports whether a line is an assignment rather than an
// expression, which is simply whether it contains an equals sign.
func IsAssignment(line string) bool {
	return strings.Contains(line, "=")
}

// ProcessAssignment executes an assignment line of the form "name = value"
// or "name = othername". The right-hand side must be an integer literal or
// an already defined variable; a variable's current value is copied, so the
// new name does not track the old one. On any error the environment is left
// unchanged.
func ProcessAssignment(env *Env, line string) error {
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return &AssignmentError{Msg: "want exactly one = in " + strconv.Quote(line)}
	}
	name := strings.TrimSpace(parts[0])
	rhs := strings.TrimSpace(parts[1])
	if !IsIdentifier(name) {
		return &IdentifierError{Name: name}
	}
	switch {
	case IsIdentifier(rhs):
		v, err := env.Lookup(rhs)
		if err != nil {
			return err
		}
		env.Assign(name, v)
	case IsIntegerLiteral(rhs):
		v, _ := new(big.Int).SetString(rhs, 10)
		env.Assign(name, v)
	default:
		return &AssignmentError{Msg: strconv.Quote(rhs) + " is neither a literal nor a variable"}
	}
	return nil
}
