package arith

import (
	"errors"
	"io"
	"strconv"
)

// Expr = Term { ('+' | '-') Term }
// Term = Primary { ('*' | '/') Primary }
// Primary = num | name | Call | '(' Expr ')'
// Call = funcname '(' [ Expr { ',' Expr } ] ')'

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of variable names used in the expression.
	names []string
}

// Parse parses an expression so it can be evaluated with a context. The
// entire input must form exactly one expression; any token left over after
// it, including a top-level =, is an error.
func Parse(src io.RuneScanner) (*Expr, error) {
	p := parser{
		scan:  lex(src),
		names: make(map[string]bool),
	}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenEOF {
		return nil, &TrailingError{Col: tok.pos, Token: tok.text}
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

type parser struct {
	scan *lexer
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
}

// expression parses a sum tier: terms folded left-to-right over + and -.
// The last token scanned is pushed back, including EOF.
func (p *parser) expression() (*node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch tok.kind {
		case tokenPlus:
			kind = nodeAdd
		case tokenMinus:
			kind = nodeSub
		default:
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		// Each operator wraps the tree built so far as its left child, which
		// keeps repeated operators left-associative.
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// term parses a product tier: primaries folded left-to-right over * and /.
func (p *parser) term() (*node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch tok.kind {
		case tokenStar:
			kind = nodeMul
		case tokenSlash:
			kind = nodeDiv
		default:
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.primary()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// primary parses a number, a parenthesized expression, a variable reference,
// or a function call.
func (p *parser) primary() (*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// Digit runs wider than a float64 round to +Inf, which is a
			// legal value. Anything else from a digit-only token is a bug.
			if !errors.Is(err, strconv.ErrRange) {
				panic("arith: invalid number " + strconv.Quote(tok.text) + ": " + err.Error())
			}
		}
		return &node{kind: nodeNum, val: v}, nil
	case tokenIdent:
		p.names[tok.text] = true
		return &node{kind: nodeName, name: tok.text}, nil
	case tokenFunc:
		open, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if open.kind != tokenLeft {
			return nil, &CallError{Col: open.pos, Func: tok.text}
		}
		args, err := p.arglist()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, name: tok.text, args: args}, nil
	case tokenLeft:
		n, err := p.expression()
		if err != nil {
			return nil, err
		}
		end, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if end.kind != tokenRight {
			return nil, closeErr(end)
		}
		return n, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	case tokenRight:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	default:
		return nil, &SyntaxError{Col: tok.pos, Token: tok.text}
	}
}

// arglist parses the comma-separated expressions of a call, after the open
// parenthesis and through the close. The list may be empty, but every comma
// must be followed by another expression: pow(1,) is an error.
func (p *parser) arglist() ([]*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenRight {
		// Zero arguments. The evaluator decides whether the function
		// accepts that.
		return nil, nil
	}
	p.scan.push(tok)
	var args []*node
	for {
		a, err := p.expression()
		if err != nil {
			// Running out of input mid-argument reads better as an unclosed
			// call than as an empty expression.
			var ee *EmptyExpressionError
			if errors.As(err, &ee) && ee.End == "" {
				err = &BracketError{Col: ee.Col, Got: ""}
			}
			return nil, err
		}
		args = append(args, a)
		end, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		switch end.kind {
		case tokenRight:
			return args, nil
		case tokenComma:
			continue
		default:
			return nil, closeErr(end)
		}
	}
}

// closeErr returns a BracketError for a token found where ) was required.
func closeErr(tok lexToken) error {
	if tok.kind == tokenEOF {
		return &BracketError{Col: tok.pos, Got: ""}
	}
	return &BracketError{Col: tok.pos, Got: tok.text}
}

// Vars returns the variable names used when evaluating the expression, in
// sorted order.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed expression, with
// every binary operation fully parenthesized.
func (e *Expr) String() string {
	return e.n.String()
}
