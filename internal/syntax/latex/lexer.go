package latex

import (
	"unicode/utf8"

	"github.com/texlsp/texlsp/internal/syntax"
)

type lexeme struct {
	kind syntax.Kind
	text string
}

func lex(text string) []lexeme {
	var lexemes []lexeme
	for i := 0; i < len(text); {
		kind, n := next(text[i:])
		lexemes = append(lexemes, lexeme{kind: kind, text: text[i : i+n]})
		i += n
	}
	return lexemes
}

func next(s string) (syntax.Kind, int) {
	switch c := s[0]; c {
	case '\n':
		return LineBreak, 1
	case '\r':
		if len(s) > 1 && s[1] == '\n' {
			return LineBreak, 2
		}
		return LineBreak, 1
	case ' ', '\t':
		n := 1
		for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
			n++
		}
		return Whitespace, n
	case '%':
		n := 1
		for n < len(s) && s[n] != '\n' && s[n] != '\r' {
			n++
		}
		return Comment, n
	case '\\':
		return CommandName, commandLength(s)
	case '{':
		return LCurly, 1
	case '}':
		return RCurly, 1
	case '[':
		return LBrack, 1
	case ']':
		return RBrack, 1
	case '(':
		return LParen, 1
	case ')':
		return RParen, 1
	case ',':
		return Comma, 1
	case '=':
		return EqualitySign, 1
	}

	n := 0
	for n < len(s) && !isWordBoundary(s[n]) {
		n++
	}
	return Word, n
}

// commandLength measures a control sequence: a backslash followed by letters
// and an optional star, or a backslash followed by one arbitrary character.
func commandLength(s string) int {
	n := 1
	for n < len(s) && isCommandLetter(s[n]) {
		n++
	}
	if n > 1 {
		if n < len(s) && s[n] == '*' {
			n++
		}
		return n
	}
	if len(s) > 1 {
		_, size := utf8.DecodeRuneInString(s[1:])
		return 1 + size
	}
	return 1
}

func isCommandLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '@'
}

func isWordBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '%', '\\', '{', '}', '[', ']', '(', ')', ',', '=':
		return true
	}
	return false
}
