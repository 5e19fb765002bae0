package intcalc

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	text string
	kind tokenKind
	// neg records a unary minus attached to an identifier. Numbers carry
	// their sign in text instead.
	neg bool
	pos int
}

func (t token) String() string {
	s := t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
	if t.neg {
		s = "-" + s
	}
	return s
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer literal, possibly signed.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenOp is a binary operator. Sign runs are already collapsed by
	// parity, so the text is always a single character.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Operators contains the characters which are considered to be operators.
const Operators = "+-*/"

// precedences maps each operator character to its binding strength.
var precedences = map[byte]int{
	'*': 2,
	'/': 2,
	'+': 1,
	'-': 1,
}

// IsIntegerLiteral reports whether tok is a base-10 integer literal,
// optionally signed.
func IsIntegerLiteral(tok string) bool {
	_, ok := new(big.Int).SetString(tok, 10)
	return ok
}

// IsIdentifier reports whether tok is a legal variable name: non-empty and
// composed entirely of letters.
func IsIdentifier(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsOperator reports whether tok is a legal operator token. A single
// character from Operators qualifies, as does a run of + and - signs, which
// denotes repeated negation. Runs beginning with * or / do not qualify.
func IsOperator(tok string) bool {
	if len(tok) == 1 {
		return strings.ContainsRune(Operators, rune(tok[0]))
	}
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] != '+' && tok[i] != '-' {
			return false
		}
	}
	return true
}

// Precedence returns the binding strength of an operator token, judged by
// its first character. Higher binds tighter. Tokens whose first character is
// not an operator yield a SyntaxError.
func Precedence(tok string) (int, error) {
	if tok != "" {
		if p, ok := precedences[tok[0]]; ok {
			return p, nil
		}
	}
	return 0, &SyntaxError{Msg: "no precedence for token " + strconv.Quote(tok)}
}

// signParity collapses a run of + and - signs to its canonical single
// character: an odd number of minuses negates, any other mix does not.
func signParity(minuses int) string {
	if minuses%2 != 0 {
		return "-"
	}
	return "+"
}
