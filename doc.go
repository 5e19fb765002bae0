// Package intcalc implements an arbitrary-precision integer calculator.
//
// The calculator evaluates infix expressions over the four operators
// + - * / with the usual precedence and parentheses. Division truncates
// toward zero. Values are arbitrary-precision integers; there is no
// floating-point arithmetic.
//
// Variables let you name results and reuse them in later expressions.
// Names are alphabetic only and live in an Env owned by the caller, so
// several sessions can keep separate variable sets.
//
// Runs of + and - signs collapse by parity before parsing, so "3 - -5"
// is 8 and "5 - - - 2" is 3, matching how you'd read the signs aloud.
package intcalc
