package intcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// lexer scans an expression into classified tokens. Sign runs collapse
// during scanning: a maximal sequence of + and - characters, whitespace
// between them allowed, becomes a single + or - depending on how many
// minuses it contains. Where the run cannot be a binary operator it attaches
// to the following number or name as a unary sign instead.
type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	prev tokenKind
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input the
// result is an EOF token with a nil error once, then io.EOF.
func (l *lexer) next() (token, error) {
	if l.eof {
		return token{}, io.EOF
	}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				l.prev = tokenEOF
				return token{kind: tokenEOF, pos: l.rune + 1}, nil
			}
			return token{}, err
		}
		if unicode.IsSpace(r) {
			continue
		}
		pos := l.rune
		switch {
		case '0' <= r && r <= '9':
			l.unreadRune()
			return l.emit(token{text: l.scanNum(), kind: tokenNum, pos: pos}), nil
		case unicode.IsLetter(r):
			l.unreadRune()
			return l.emit(token{text: l.scanIdent(), kind: tokenIdent, pos: pos}), nil
		case r == '+', r == '-':
			l.unreadRune()
			return l.scanSigns(pos)
		case r == '*', r == '/':
			r2, err := l.readRune()
			if err == nil {
				if r2 == '*' || r2 == '/' {
					return token{}, &SyntaxError{Col: pos, Msg: "repeated operator " + string(r) + string(r2)}
				}
				l.unreadRune()
			} else if !errors.Is(err, io.EOF) {
				return token{}, err
			}
			return l.emit(token{text: string(r), kind: tokenOp, pos: pos}), nil
		case r == '(':
			return l.emit(token{text: "(", kind: tokenOpen, pos: pos}), nil
		case r == ')':
			return l.emit(token{text: ")", kind: tokenClose, pos: pos}), nil
		default:
			return token{}, &SyntaxError{Col: pos, Msg: "invalid character " + strconv.QuoteRune(r)}
		}
	}
}

// emit records the kind of the emitted token so that the next sign run knows
// whether an operand precedes it.
func (l *lexer) emit(tok token) token {
	l.prev = tok.kind
	return tok
}

// scanSigns consumes a maximal run of + and - signs and decides what it
// means. After an operand the run is a binary operator. Anywhere else it is
// a unary sign, which merges into a following number or name; with no
// operand following, the run is emitted as an operator anyway and rejected
// later for missing operands.
func (l *lexer) scanSigns(pos int) (token, error) {
	minuses := 0
run:
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break run
			}
			return token{}, err
		}
		switch {
		case r == '-':
			minuses++
		case r == '+':
			// Pluses never flip the sign.
		case unicode.IsSpace(r):
			// Signs separated by spaces still form one run.
		default:
			l.unreadRune()
			break run
		}
	}
	sym := signParity(minuses)
	if l.prev == tokenNum || l.prev == tokenIdent || l.prev == tokenClose {
		return l.emit(token{text: sym, kind: tokenOp, pos: pos}), nil
	}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return l.emit(token{text: sym, kind: tokenOp, pos: pos}), nil
		}
		return token{}, err
	}
	switch {
	case '0' <= r && r <= '9':
		l.unreadRune()
		text := l.scanNum()
		if sym == "-" {
			text = "-" + text
		}
		return l.emit(token{text: text, kind: tokenNum, pos: pos}), nil
	case unicode.IsLetter(r):
		l.unreadRune()
		return l.emit(token{text: l.scanIdent(), kind: tokenIdent, neg: sym == "-", pos: pos}), nil
	default:
		l.unreadRune()
		return l.emit(token{text: sym, kind: tokenOp, pos: pos}), nil
	}
}

func (l *lexer) scanNum() string {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			break
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	return l.buf.String()
}

func (l *lexer) scanIdent() string {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			break
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	return l.buf.String()
}
