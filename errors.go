package intcalc

import (
	"errors"
	"strconv"
)

// SyntaxError indicates a malformed expression: an illegal character, an
// unbalanced parenthesis, a missing operand or operator.
type SyntaxError struct {
	// Col is the number of runes scanned up to and including the offending
	// token, or 0 when no position is known.
	Col int
	// Msg describes what was malformed.
	Msg string
}

func (err *SyntaxError) Error() string {
	if err.Col > 0 {
		return strconv.Itoa(err.Col) + ": invalid expression: " + err.Msg
	}
	return "invalid expression: " + err.Msg
}

// IdentifierError indicates a name that is not a legal variable name.
type IdentifierError struct {
	// Name is the illegal name.
	Name string
}

func (err *IdentifierError) Error() string {
	return "invalid identifier: " + strconv.Quote(err.Name)
}

// AssignmentError indicates an assignment line of the wrong shape, or one
// whose right-hand side is neither a literal nor a variable name.
type AssignmentError struct {
	// Msg describes what was wrong with the assignment.
	Msg string
}

func (err *AssignmentError) Error() string {
	return "invalid assignment: " + err.Msg
}

// UnknownVariableError indicates a lookup of a name that was never assigned.
type UnknownVariableError struct {
	// Name is the unbound name.
	Name string
}

func (err *UnknownVariableError) Error() string {
	return "unknown variable: " + strconv.Quote(err.Name)
}

// UnknownCommandError indicates a line that looks like a command but names
// none, or an operator token the evaluator does not understand.
type UnknownCommandError struct {
	// Command is the unrecognized text.
	Command string
}

func (err *UnknownCommandError) Error() string {
	return "unknown command: " + strconv.Quote(err.Command)
}

// DivisionByZeroError indicates a division whose divisor evaluated to zero.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}

// Message converts any error from the calculator into the one-line
// diagnostic shown to the user. Errors of no recognized kind report as a
// generic invalid expression so that internal details never leak.
func Message(err error) string {
	var (
		ident *IdentifierError
		asgn  *AssignmentError
		uvar  *UnknownVariableError
		ucmd  *UnknownCommandError
		dbz   *DivisionByZeroError
	)
	switch {
	case errors.As(err, &ident):
		return "Invalid identifier"
	case errors.As(err, &asgn):
		return "Invalid assignment"
	case errors.As(err, &uvar):
		return "Unknown variable"
	case errors.As(err, &ucmd):
		return "Unknown command"
	case errors.As(err, &dbz):
		return "Division by zero"
	default:
		return "Invalid expression"
	}
}

var (
	_ error = (*SyntaxError)(nil)
	_ error = (*IdentifierError)(nil)
	_ error = (*AssignmentError)(nil)
	_ error = (*UnknownVariableError)(nil)
	_ error = (*UnknownCommandError)(nil)
	_ error = (*DivisionByZeroError)(nil)
)
