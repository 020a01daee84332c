package arith

import (
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenMinus, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		{"1.0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 1},
		{"1x", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "x", kind: tokenIdent, pos: 2}}, 0},
		// identifiers and function names
		{"x", []lexToken{{text: "x", kind: tokenIdent, pos: 1}}, 0},
		{"x1", []lexToken{{text: "x1", kind: tokenIdent, pos: 1}}, 0},
		{"pow", []lexToken{{text: "pow", kind: tokenFunc, pos: 1}}, 0},
		{"abs", []lexToken{{text: "abs", kind: tokenFunc, pos: 1}}, 0},
		{"max", []lexToken{{text: "max", kind: tokenFunc, pos: 1}}, 0},
		{"min", []lexToken{{text: "min", kind: tokenFunc, pos: 1}}, 0},
		{"Pow", []lexToken{{text: "Pow", kind: tokenIdent, pos: 1}}, 0},
		{"pows", []lexToken{{text: "pows", kind: tokenIdent, pos: 1}}, 0},
		{"powabs", []lexToken{{text: "powabs", kind: tokenIdent, pos: 1}}, 0},
		{"pow abs", []lexToken{{text: "pow", kind: tokenFunc, pos: 1}, {text: "abs", kind: tokenFunc, pos: 5}}, 0},
		// punctuation
		{"+", []lexToken{{text: "+", kind: tokenPlus, pos: 1}}, 0},
		{"-", []lexToken{{text: "-", kind: tokenMinus, pos: 1}}, 0},
		{"*", []lexToken{{text: "*", kind: tokenStar, pos: 1}}, 0},
		{"/", []lexToken{{text: "/", kind: tokenSlash, pos: 1}}, 0},
		{"(", []lexToken{{text: "(", kind: tokenLeft, pos: 1}}, 0},
		{")", []lexToken{{text: ")", kind: tokenRight, pos: 1}}, 0},
		{"=", []lexToken{{text: "=", kind: tokenAssign, pos: 1}}, 0},
		{",", []lexToken{{text: ",", kind: tokenComma, pos: 1}}, 0},
		{"(1)", []lexToken{{text: "(", kind: tokenLeft, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenRight, pos: 3}}, 0},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenPlus, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"a--b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "-", kind: tokenMinus, pos: 2}, {text: "-", kind: tokenMinus, pos: 3}, {text: "b", kind: tokenIdent, pos: 4}}, 0},
		{"pow(2, 10)", []lexToken{
			{text: "pow", kind: tokenFunc, pos: 1},
			{text: "(", kind: tokenLeft, pos: 4},
			{text: "2", kind: tokenNum, pos: 5},
			{text: ",", kind: tokenComma, pos: 6},
			{text: "10", kind: tokenNum, pos: 8},
			{text: ")", kind: tokenRight, pos: 10},
		}, 0},
		// erroneous characters
		{"$", []lexToken{{pos: 1}}, 1},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {pos: 2}}, 1},
		{"$a", []lexToken{{pos: 1}, {text: "a", kind: tokenIdent, pos: 2}}, 1},
		{"3 & 4", []lexToken{{text: "3", kind: tokenNum, pos: 1}, {pos: 3}, {text: "4", kind: tokenNum, pos: 5}}, 1},
		{"$$", []lexToken{{pos: 1}, {pos: 2}}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		errs := c.errs
		for _, want := range c.tokens {
			got, err := scan.next()
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if errs > 0 {
					errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		if got, err := scan.next(); err != nil || got.kind != tokenEOF {
			t.Errorf("scanning %q: want EOF, got %v with error %v", c.src, got, err)
		}
		if errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestLexEOFIdempotent(t *testing.T) {
	scan := lex(strings.NewReader("1 + 2"))
	for i := 0; i < 3; i++ {
		if _, err := scan.next(); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		got, err := scan.next()
		if err != nil {
			t.Fatalf("error at EOF: %v", err)
		}
		if got.kind != tokenEOF {
			t.Errorf("call %d past end: want EOF, got %v", i, got)
		}
	}
}

func TestLexErrorColumn(t *testing.T) {
	scan := lex(strings.NewReader("3 & 4"))
	if tok, err := scan.next(); err != nil || tok.text != "3" {
		t.Fatalf("want number 3, got %v with error %v", tok, err)
	}
	_, err := scan.next()
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("want *LexError, got %#v", err)
	}
	if le.Text != "&" {
		t.Errorf("want text %q, got %q", "&", le.Text)
	}
	if le.Pos() != 3 {
		t.Errorf("want column 3, got %d", le.Pos())
	}
	if !strings.Contains(le.Error(), "invalid character") {
		t.Errorf("%q doesn't mention invalid character", le.Error())
	}
}
