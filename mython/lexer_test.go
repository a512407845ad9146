package mython

import "testing"

func lexAll(t *testing.T, source string) []Token {
	t.Helper()
	l, err := newLexer(source)
	if err != nil {
		t.Fatalf("newLexer: %v", err)
	}
	tokens := []Token{l.CurrentToken()}
	for tokens[len(tokens)-1].Type != tokenEOF {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func TestLexerIndentDedent(t *testing.T) {
	source := "if x:\n  print 1\nprint 2\n"
	got := lexAll(t, source)
	want := []Token{
		{Type: tokenIf},
		{Type: tokenID, Text: "x"},
		{Type: tokenChar, Char: ':'},
		{Type: tokenNewline},
		{Type: tokenIndent},
		{Type: tokenPrint},
		{Type: tokenNumber, Number: 1},
		{Type: tokenNewline},
		{Type: tokenDedent},
		{Type: tokenPrint},
		{Type: tokenNumber, Number: 2},
		{Type: tokenNewline},
		{Type: tokenEOF},
	}
	if !TokensEqual(got, want) {
		t.Fatalf("token streams differ:\n got: %v\nwant: %v", got, want)
	}
}

func TestLexerStringEscapes(t *testing.T) {
	source := `"a\tb\nc"`
	got := lexAll(t, source)
	want := []Token{
		{Type: tokenString, Text: "a\tb\nc"},
		{Type: tokenNewline},
		{Type: tokenEOF},
	}
	if !TokensEqual(got, want) {
		t.Fatalf("token streams differ:\n got: %v\nwant: %v", got, want)
	}
}

func TestLexerCommentThenNewline(t *testing.T) {
	source := "x = 1 # set\ny = 2\n"
	got := lexAll(t, source)
	want := []Token{
		{Type: tokenID, Text: "x"},
		{Type: tokenChar, Char: '='},
		{Type: tokenNumber, Number: 1},
		{Type: tokenNewline},
		{Type: tokenID, Text: "y"},
		{Type: tokenChar, Char: '='},
		{Type: tokenNumber, Number: 2},
		{Type: tokenNewline},
		{Type: tokenEOF},
	}
	if !TokensEqual(got, want) {
		t.Fatalf("token streams differ:\n got: %v\nwant: %v", got, want)
	}
}

func TestLexerBlankLinesCarryNoIndentChange(t *testing.T) {
	source := "x = 1\n\n\ny = 2\n"
	got := lexAll(t, source)
	for _, tok := range got {
		if tok.Type == tokenIndent || tok.Type == tokenDedent {
			t.Fatalf("blank lines must not synthesize Indent/Dedent, got %v", got)
		}
	}
}

func TestLexerOddIndentFails(t *testing.T) {
	_, err := newLexer(" x = 1\n")
	if err == nil {
		t.Fatalf("expected LexerError for a single leading space")
	}
	if _, ok := err.(*LexerError); !ok {
		t.Fatalf("expected *LexerError, got %T", err)
	}
}

func TestLexerEveryIndentMatchedByDedent(t *testing.T) {
	source := "class A:\n  def f(self):\n    return 1\n"
	got := lexAll(t, source)
	depth := 0
	for _, tok := range got {
		switch tok.Type {
		case tokenIndent:
			depth++
		case tokenDedent:
			depth--
		}
	}
	if depth != 0 {
		t.Fatalf("expected every Indent matched by a Dedent before Eof, final depth %d", depth)
	}
}

func TestLexerComparisonOperators(t *testing.T) {
	source := "a == b != c <= d >= e < f > g\n"
	got := lexAll(t, source)
	wantTypes := []TokenType{
		tokenID, tokenEq, tokenID, tokenNotEq, tokenID, tokenLessOrEq, tokenID,
		tokenGreaterOrEq, tokenID, tokenChar, tokenID, tokenChar, tokenID,
		tokenNewline, tokenEOF,
	}
	if len(got) != len(wantTypes) {
		t.Fatalf("expected %d tokens, got %d: %v", len(wantTypes), len(got), got)
	}
	for i, tt := range wantTypes {
		if got[i].Type != tt {
			t.Errorf("token %d: got type %v, want %v", i, got[i].Type, tt)
		}
	}
}
