package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a run of decimal digits.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenFunc is one of the reserved function names.
	tokenFunc
	// tokenPlus through tokenComma are the single-character punctuators.
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLeft
	tokenRight
	tokenAssign
	tokenComma
)

var tokenNames = [...]string{
	tokenNone:   "None",
	tokenEOF:    "EOF",
	tokenNum:    "Num",
	tokenIdent:  "Ident",
	tokenFunc:   "Func",
	tokenPlus:   "Plus",
	tokenMinus:  "Minus",
	tokenStar:   "Star",
	tokenSlash:  "Slash",
	tokenLeft:   "Left",
	tokenRight:  "Right",
	tokenAssign: "Assign",
	tokenComma:  "Comma",
}

func (k tokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// funcnames is the set of identifiers lexed as function names. Matching is
// exact and case-sensitive.
var funcnames = map[string]bool{
	"pow": true,
	"abs": true,
	"max": true,
	"min": true,
}

// punct returns the token kind for a punctuation rune, or tokenNone if the
// rune is not a punctuator.
func punct(r rune) tokenKind {
	switch r {
	case '+':
		return tokenPlus
	case '-':
		return tokenMinus
	case '*':
		return tokenStar
	case '/':
		return tokenSlash
	case '(':
		return tokenLeft
	case ')':
		return tokenRight
	case '=':
		return tokenAssign
	case ',':
		return tokenComma
	default:
		return tokenNone
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("arith: double push")
	}
	l.p = tok
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

// next scans the next token from the input. Once the end of the input is
// reached, every call returns an EOF token; the scanner itself reports io.EOF
// as the end-of-stream sentinel, so there is never a probe past the last
// character.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{kind: tokenEOF, pos: l.rune}, nil
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.pos++
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			if funcnames[tok.text] {
				tok.kind = tokenFunc
			} else {
				tok.kind = tokenIdent
			}
			return tok, nil
		default:
			if k := punct(r); k != tokenNone {
				tok.text = string(r)
				tok.kind = k
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, &LexError{Text: l.buf.String(), Col: tok.pos}
		}
	}
}

// scanNum scans a run of decimal digits. Decimal points, exponents, and signs
// are not part of number tokens; a leading - lexes separately as Minus.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// scanIdent scans a letter followed by any run of letters and digits.
func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			l.buf.WriteRune(r)
			continue
		}
		l.unreadRune()
		return nil
	}
}

// LexError indicates an invalid character in the input. It implements
// InputError.
type LexError struct {
	// Text is the invalid character.
	Text string
	// Col is the rune column of the invalid character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
