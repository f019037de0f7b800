package parser

import (
	"fmt"
	"unicode/utf8"
)

// TokenType identifies the kind of a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenIdent
	TokenKind // one of the ten kind names, u8 .. f64
	TokenLet
	TokenPrint
	TokenPi
	TokenE
	TokenAssign    // =
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenCaret     // ^
	TokenLParen    // (
	TokenRParen    // )
	TokenColon     // :
	TokenSemicolon // ;
)

// Token is a lexical token with its 1-based source position.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

var keywords = map[string]TokenType{
	"let":   TokenLet,
	"print": TokenPrint,
	"pi":    TokenPi,
	"e":     TokenE,
	"u8":    TokenKind,
	"i8":    TokenKind,
	"u16":   TokenKind,
	"i16":   TokenKind,
	"u32":   TokenKind,
	"i32":   TokenKind,
	"u64":   TokenKind,
	"i64":   TokenKind,
	"f32":   TokenKind,
	"f64":   TokenKind,
}

type lexer struct {
	src       string
	start     int
	cur       int
	line      int
	col       int
	startLine int
	startCol  int
	tokens    []Token
}

// Lex scans source text into tokens, ending with a TokenEOF entry. Lexing
// stops at the first unexpected character.
func Lex(src string) ([]Token, error) {
	l := &lexer{src: src, line: 1, col: 1}
	for {
		l.skipWhitespaceAndComments()
		if l.isAtEnd() {
			l.tokens = append(l.tokens, Token{Type: TokenEOF, Line: l.line, Col: l.col})
			return l.tokens, nil
		}
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
}

func (l *lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *lexer) peekNext() byte {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

func (l *lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *lexer) addToken(tt TokenType) {
	l.tokens = append(l.tokens, Token{
		Type:   tt,
		Lexeme: l.src[l.start:l.cur],
		Line:   l.startLine,
		Col:    l.startCol,
	})
}

func (l *lexer) skipWhitespaceAndComments() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '#':
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *lexer) scanToken() error {
	l.start = l.cur
	l.startLine = l.line
	l.startCol = l.col
	ch := l.advance()
	switch ch {
	case '=':
		l.addToken(TokenAssign)
	case '+':
		l.addToken(TokenPlus)
	case '-':
		l.addToken(TokenMinus)
	case '*':
		l.addToken(TokenStar)
	case '/':
		l.addToken(TokenSlash)
	case '^':
		l.addToken(TokenCaret)
	case '(':
		l.addToken(TokenLParen)
	case ')':
		l.addToken(TokenRParen)
	case ':':
		l.addToken(TokenColon)
	case ';':
		l.addToken(TokenSemicolon)
	default:
		switch {
		case isDigit(ch):
			l.scanNumber()
		case isAlpha(ch):
			l.scanIdentifier()
		default:
			r, size := utf8.DecodeRuneInString(l.src[l.start:])
			if r == 'π' {
				for i := 1; i < size; i++ {
					l.advance()
				}
				l.addToken(TokenPi)
				return nil
			}
			return &Error{Line: l.startLine, Col: l.startCol, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	return nil
}

func (l *lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	l.addToken(TokenNumber)
}

func (l *lexer) scanIdentifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	if tt, ok := keywords[l.src[l.start:l.cur]]; ok {
		l.addToken(tt)
		return
	}
	l.addToken(TokenIdent)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isAlphaNumeric(b byte) bool { return isAlpha(b) || isDigit(b) }
