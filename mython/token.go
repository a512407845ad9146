package mython

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType int

const (
	tokenNumber TokenType = iota
	tokenString
	tokenID
	tokenChar

	tokenClass
	tokenReturn
	tokenIf
	tokenElse
	tokenDef
	tokenPrint
	tokenAnd
	tokenOr
	tokenNot
	tokenNone
	tokenTrue
	tokenFalse

	tokenEq
	tokenNotEq
	tokenLessOrEq
	tokenGreaterOrEq

	tokenNewline
	tokenIndent
	tokenDedent
	tokenEOF
)

var keywords = map[string]TokenType{
	"class":  tokenClass,
	"return": tokenReturn,
	"if":     tokenIf,
	"else":   tokenElse,
	"def":    tokenDef,
	"print":  tokenPrint,
	"and":    tokenAnd,
	"or":     tokenOr,
	"not":    tokenNot,
	"None":   tokenNone,
	"True":   tokenTrue,
	"False":  tokenFalse,
}

var tokenNames = map[TokenType]string{
	tokenClass:       "Class",
	tokenReturn:      "Return",
	tokenIf:          "If",
	tokenElse:        "Else",
	tokenDef:         "Def",
	tokenPrint:       "Print",
	tokenAnd:         "And",
	tokenOr:          "Or",
	tokenNot:         "Not",
	tokenNone:        "None",
	tokenTrue:        "True",
	tokenFalse:       "False",
	tokenEq:          "Eq",
	tokenNotEq:       "NotEq",
	tokenLessOrEq:    "LessOrEq",
	tokenGreaterOrEq: "GreaterOrEq",
	tokenNewline:     "Newline",
	tokenIndent:      "Indent",
	tokenDedent:      "Dedent",
	tokenEOF:         "Eof",
}

// Position identifies a line/column in the source, one-based.
type Position struct {
	Line   int
	Column int
}

// Token is the tagged variant produced by the lexer. Only the fields
// relevant to Type carry meaning: Number for tokenNumber, Text for
// tokenString/tokenID, Char for tokenChar.
type Token struct {
	Type   TokenType
	Number int64
	Text   string
	Char   byte
	Pos    Position
}

func newToken(tt TokenType, pos Position) Token {
	return Token{Type: tt, Pos: pos}
}

// Equal compares tag and payload only; source position is not part of
// token identity.
func (t Token) Equal(other Token) bool {
	if t.Type != other.Type {
		return false
	}
	switch t.Type {
	case tokenNumber:
		return t.Number == other.Number
	case tokenString, tokenID:
		return t.Text == other.Text
	case tokenChar:
		return t.Char == other.Char
	default:
		return true
	}
}

// String renders the token the way the source's operator<< does, for
// diagnostics and for the lex/print/re-lex round trip.
func (t Token) String() string {
	switch t.Type {
	case tokenNumber:
		return fmt.Sprintf("Number{%d}", t.Number)
	case tokenID:
		return fmt.Sprintf("Id{%s}", t.Text)
	case tokenString:
		return fmt.Sprintf("String{%s}", t.Text)
	case tokenChar:
		return fmt.Sprintf("Char{%c}", t.Char)
	}
	if name, ok := tokenNames[t.Type]; ok {
		return name
	}
	return "Unknown token :("
}

// TokensEqual reports whether two token streams are element-wise equal.
func TokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
