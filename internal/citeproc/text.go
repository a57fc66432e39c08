// Package citeproc renders BibTeX field values as plain text.
package citeproc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/texlsp/texlsp/internal/syntax"
	"github.com/texlsp/texlsp/internal/syntax/bibtex"
)

// Combining marks produced by TeX accent commands.
var accents = map[string]rune{
	`\"`: '\u0308',
	`\'`: '\u0301',
	"\\`": '\u0300',
	`\^`: '\u0302',
	`\~`: '\u0303',
	`\=`: '\u0304',
	`\.`: '\u0307',
	`\c`: '\u0327',
	`\v`: '\u030C',
	`\u`: '\u0306',
	`\H`: '\u030B',
	`\r`: '\u030A',
	`\k`: '\u0328',
}

var symbols = map[string]string{
	`\ss`: "ß",
	`\o`:  "ø",
	`\O`:  "Ø",
	`\aa`: "å",
	`\AA`: "Å",
	`\ae`: "æ",
	`\AE`: "Æ",
	`\oe`: "œ",
	`\OE`: "Œ",
	`\l`:  "ł",
	`\L`:  "Ł",
	`\i`:  "ı",
	`\&`:  "&",
	`\%`:  "%",
	`\$`:  "$",
	`\#`:  "#",
	`\_`:  "_",
	`\{`:  "{",
	`\}`:  "}",
	`\ `:  " ",
}

var ligatures = strings.NewReplacer("---", "—", "--", "–", "~", " ")

// ParseText extracts the plain text of a field value. Braces and quotes are
// dropped, concatenations are joined, accent and symbol commands are turned
// into their characters and runs of whitespace collapse to a single space.
// It reports false when nothing but whitespace remains.
func ParseText(value bibtex.Value) (string, bool) {
	if value.Syntax() == nil {
		return "", false
	}

	var sb strings.Builder
	for _, term := range value.Terms() {
		renderTerm(&sb, term)
	}

	text := strings.Join(strings.Fields(sb.String()), " ")
	text = norm.NFC.String(text)
	return text, text != ""
}

func renderTerm(sb *strings.Builder, term bibtex.Value) {
	if literal := term.Literal(); literal != nil {
		sb.WriteString(literal.Text())
		return
	}

	var mark rune
	skipSpace := false
	for token := range term.Syntax().DescendantTokens() {
		switch token.Kind() {
		case bibtex.Whitespace, bibtex.LineBreak:
			if !skipSpace {
				sb.WriteByte(' ')
			}
		case bibtex.Word:
			text := ligatures.Replace(token.Text())
			if mark != 0 {
				first, size := utf8.DecodeRuneInString(text)
				sb.WriteRune(first)
				sb.WriteRune(mark)
				text = text[size:]
				mark = 0
			}
			sb.WriteString(text)
			skipSpace = false
		case bibtex.CommandName:
			mark, skipSpace = renderCommand(sb, token)
		}
	}
}

// renderCommand writes the expansion of a command token. It returns the
// combining mark the next character should carry and whether whitespace
// following the command is swallowed.
func renderCommand(sb *strings.Builder, token *syntax.Token) (rune, bool) {
	name := token.Text()
	letterCommand := len(name) > 1 && isLetter(name[1])
	if mark, ok := accents[name]; ok {
		return mark, letterCommand
	}
	if symbol, ok := symbols[name]; ok {
		sb.WriteString(symbol)
	}
	return 0, letterCommand
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
