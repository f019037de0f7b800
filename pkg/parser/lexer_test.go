package parser_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tally-lang/tally/pkg/parser"
)

func TestLexLetStatement(t *testing.T) {
	tokens, err := parser.Lex("let x:u64=1+1;")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	want := []parser.Token{
		{Type: parser.TokenLet, Lexeme: "let", Line: 1, Col: 1},
		{Type: parser.TokenIdent, Lexeme: "x", Line: 1, Col: 5},
		{Type: parser.TokenColon, Lexeme: ":", Line: 1, Col: 6},
		{Type: parser.TokenKind, Lexeme: "u64", Line: 1, Col: 7},
		{Type: parser.TokenAssign, Lexeme: "=", Line: 1, Col: 10},
		{Type: parser.TokenNumber, Lexeme: "1", Line: 1, Col: 11},
		{Type: parser.TokenPlus, Lexeme: "+", Line: 1, Col: 12},
		{Type: parser.TokenNumber, Lexeme: "1", Line: 1, Col: 13},
		{Type: parser.TokenSemicolon, Lexeme: ";", Line: 1, Col: 14},
		{Type: parser.TokenEOF, Line: 1, Col: 15},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestLexWithoutWhitespace(t *testing.T) {
	tokens, err := parser.Lex("x=x+10;")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	want := []parser.Token{
		{Type: parser.TokenIdent, Lexeme: "x", Line: 1, Col: 1},
		{Type: parser.TokenAssign, Lexeme: "=", Line: 1, Col: 2},
		{Type: parser.TokenIdent, Lexeme: "x", Line: 1, Col: 3},
		{Type: parser.TokenPlus, Lexeme: "+", Line: 1, Col: 4},
		{Type: parser.TokenNumber, Lexeme: "10", Line: 1, Col: 5},
		{Type: parser.TokenSemicolon, Lexeme: ";", Line: 1, Col: 7},
		{Type: parser.TokenEOF, Line: 1, Col: 8},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestLexKeywordsAndConstants(t *testing.T) {
	tokens, err := parser.Lex("print pi π e f32")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	types := make([]parser.TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	want := []parser.TokenType{parser.TokenPrint, parser.TokenPi, parser.TokenPi, parser.TokenE, parser.TokenKind, parser.TokenEOF}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Fatalf("type mismatch (-want +got):\n%s", diff)
	}
}

func TestLexKindNamesAreReserved(t *testing.T) {
	for _, name := range []string{"u8", "i8", "u16", "i16", "u32", "i32", "u64", "i64", "f32", "f64"} {
		tokens, err := parser.Lex(name)
		if err != nil {
			t.Fatalf("lex %q failed: %v", name, err)
		}
		if tokens[0].Type != parser.TokenKind || tokens[0].Lexeme != name {
			t.Fatalf("%q lexed as %#v", name, tokens[0])
		}
	}
}

func TestLexFractionalNumbers(t *testing.T) {
	tokens, err := parser.Lex("2.5 10 0.125")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	lexemes := []string{tokens[0].Lexeme, tokens[1].Lexeme, tokens[2].Lexeme}
	want := []string{"2.5", "10", "0.125"}
	if diff := cmp.Diff(want, lexemes); diff != "" {
		t.Fatalf("lexeme mismatch (-want +got):\n%s", diff)
	}
}

func TestLexDanglingDot(t *testing.T) {
	_, err := parser.Lex("2.;")
	if err == nil {
		t.Fatalf("expected lex failure")
	}
	var lexErr *parser.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if lexErr.Line != 1 || lexErr.Col != 2 {
		t.Fatalf("unexpected position %d:%d", lexErr.Line, lexErr.Col)
	}
}

func TestLexCommentsAndLines(t *testing.T) {
	tokens, err := parser.Lex("# heading\nlet a:f64=1;\na; # trailing\n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if tokens[0].Type != parser.TokenLet || tokens[0].Line != 2 || tokens[0].Col != 1 {
		t.Fatalf("unexpected first token %#v", tokens[0])
	}
	last := tokens[len(tokens)-1]
	if last.Type != parser.TokenEOF || last.Line != 4 {
		t.Fatalf("unexpected EOF token %#v", last)
	}
	var semis int
	for _, tok := range tokens {
		if tok.Type == parser.TokenSemicolon {
			semis++
		}
	}
	if semis != 2 {
		t.Fatalf("expected 2 semicolons, found %d", semis)
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	_, err := parser.Lex("let x:u64 = 1 $ 2;")
	if err == nil {
		t.Fatalf("expected lex failure")
	}
	var lexErr *parser.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if lexErr.Line != 1 || lexErr.Col != 15 {
		t.Fatalf("unexpected position %d:%d", lexErr.Line, lexErr.Col)
	}
}
