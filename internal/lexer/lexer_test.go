package lexer

import (
	"testing"

	"github.com/lumenlang/lumen/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `var x = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLexeme string
		expectedType   token.Type
	}{
		{"var", token.VAR},
		{"x", token.IDENT},
		{"=", token.EQUAL},
		{"5", token.NUMBER},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.EQUAL},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.NUMBER},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `and class else false fun for if nil or print return super this true var while`

	expected := []token.Type{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FUN, token.FOR,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected=%s, got=%s", i, want, tok.Type)
		}
	}
}

func TestLiterals(t *testing.T) {
	input := `"hello" 3.5 true false nil`

	l := New(input)

	str := l.NextToken()
	if str.Type != token.STRING || str.Literal != "hello" {
		t.Fatalf("expected STRING %q, got %s %v", "hello", str.Type, str.Literal)
	}

	num := l.NextToken()
	if num.Type != token.NUMBER || num.Literal != 3.5 {
		t.Fatalf("expected NUMBER 3.5, got %s %v", num.Type, num.Literal)
	}

	tru := l.NextToken()
	if tru.Type != token.TRUE || tru.Literal != true {
		t.Fatalf("expected TRUE true, got %s %v", tru.Type, tru.Literal)
	}

	fls := l.NextToken()
	if fls.Type != token.FALSE || fls.Literal != false {
		t.Fatalf("expected FALSE false, got %s %v", fls.Type, fls.Literal)
	}

	nilTok := l.NextToken()
	if nilTok.Type != token.NIL || nilTok.Literal != nil {
		t.Fatalf("expected NIL nil, got %s %v", nilTok.Type, nilTok.Literal)
	}
}

func TestCommentsAndWhitespace(t *testing.T) {
	input := `// a line comment
	/* a block
	   comment */
	print 1;`

	l := New(input)
	tok := l.NextToken()
	if tok.Type != token.PRINT {
		t.Fatalf("expected PRINT after comments, got %s", tok.Type)
	}
}

func TestUnterminatedStringIsScanError(t *testing.T) {
	l := New(`"never closed`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 scan error, got %d", len(l.Errors()))
	}
}

func TestUnexpectedCharacterIsScanError(t *testing.T) {
	l := New(`@`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 scan error, got %d", len(l.Errors()))
	}
}

func TestLexAccumulatesMultipleErrors(t *testing.T) {
	l := New(`@ # $`)
	_, errors := l.Lex()
	if len(errors) != 3 {
		t.Fatalf("expected 3 scan errors, got %d", len(errors))
	}
}

func TestLineTracking(t *testing.T) {
	input := "var x = 1;\nvar y = 2;\nprint y;"
	l := New(input)

	var last token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		last = tok
	}
	if last.Lexeme != ";" || last.Pos.Line != 3 {
		t.Fatalf("expected final ';' on line 3, got %q on line %d", last.Lexeme, last.Pos.Line)
	}
}
