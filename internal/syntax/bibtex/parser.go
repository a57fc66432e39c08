package bibtex

import (
	"strings"
	"unicode/utf8"

	"github.com/texlsp/texlsp/internal/syntax"
)

// Parse builds the syntax tree of a BibTeX document. Like the LaTeX parser it
// accepts any input; text outside of entries becomes JUNK and incomplete
// entries simply lack their missing parts.
func Parse(text string) *syntax.Node {
	p := &parser{text: text, builder: syntax.NewBuilder()}
	p.builder.StartNode(Root)
	for !p.done() {
		if p.current() == '@' {
			p.entryLike()
		} else {
			p.junk()
		}
	}
	p.builder.FinishNode()
	return p.builder.Finish()
}

type parser struct {
	text    string
	pos     int
	builder *syntax.Builder
}

func (p *parser) done() bool {
	return p.pos >= len(p.text)
}

func (p *parser) current() byte {
	if p.done() {
		return 0
	}
	return p.text[p.pos]
}

func (p *parser) emit(kind syntax.Kind, n int) {
	p.builder.Token(kind, p.text[p.pos:p.pos+n])
	p.pos += n
}

// span returns the length of the run starting at the cursor whose bytes all
// satisfy accept.
func (p *parser) span(accept func(byte) bool) int {
	n := 0
	for p.pos+n < len(p.text) && accept(p.text[p.pos+n]) {
		n++
	}
	return n
}

// trivia consumes whitespace and line breaks and reports whether it did.
func (p *parser) trivia() bool {
	consumed := false
	for !p.done() {
		switch c := p.current(); {
		case c == '\n':
			p.emit(LineBreak, 1)
		case c == '\r':
			if p.pos+1 < len(p.text) && p.text[p.pos+1] == '\n' {
				p.emit(LineBreak, 2)
			} else {
				p.emit(LineBreak, 1)
			}
		case c == ' ' || c == '\t':
			p.emit(Whitespace, p.span(func(b byte) bool { return b == ' ' || b == '\t' }))
		default:
			return consumed
		}
		consumed = true
	}
	return consumed
}

// peekPastTrivia returns the first byte after any whitespace at the cursor.
func (p *parser) peekPastTrivia() byte {
	for i := p.pos; i < len(p.text); i++ {
		switch p.text[i] {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return p.text[i]
		}
	}
	return 0
}

func (p *parser) junk() {
	p.builder.StartNode(Junk)
	for !p.done() && p.current() != '@' {
		if p.trivia() {
			continue
		}
		p.emit(JunkText, p.span(func(b byte) bool { return b != '@' && !isSpace(b) }))
	}
	p.builder.FinishNode()
}

func (p *parser) entryLike() {
	n := 1
	for p.pos+n < len(p.text) && isTypeChar(p.text[p.pos+n]) {
		n++
	}

	switch strings.ToLower(p.text[p.pos+1 : p.pos+n]) {
	case "string":
		p.stringDef(n)
	case "preamble":
		p.preamble(n)
	case "comment":
		p.builder.StartNode(Junk)
		p.emit(Type, n)
		p.builder.FinishNode()
	default:
		p.entry(n)
	}
}

// open consumes the opening delimiter of an entry-like block and returns the
// matching closing byte, or 0 if there is none.
func (p *parser) open() byte {
	p.trivia()
	switch p.current() {
	case '{':
		p.emit(LCurly, 1)
		return '}'
	case '(':
		p.emit(LParen, 1)
		return ')'
	}
	return 0
}

func (p *parser) close(closing byte) bool {
	if p.current() != closing {
		return false
	}
	if closing == '}' {
		p.emit(RCurly, 1)
	} else {
		p.emit(RParen, 1)
	}
	return true
}

func (p *parser) entry(typeLength int) {
	p.builder.StartNode(EntryNode)
	defer p.builder.FinishNode()

	p.emit(Type, typeLength)
	closing := p.open()
	if closing == 0 {
		return
	}

	p.trivia()
	if isNameChar(p.current()) {
		p.emit(Name, p.span(isNameChar))
	}

	for {
		p.trivia()
		switch c := p.current(); {
		case p.done() || c == '@':
			return
		case p.close(closing):
			return
		case c == ',':
			p.emit(Comma, 1)
		case isNameChar(c):
			p.field()
		default:
			_, size := utf8.DecodeRuneInString(p.text[p.pos:])
			p.emit(JunkText, size)
		}
	}
}

func (p *parser) field() {
	p.builder.StartNode(FieldNode)
	p.emit(Name, p.span(isNameChar))
	if p.peekPastTrivia() == '=' {
		p.trivia()
		p.emit(EqualitySign, 1)
		if p.valueAhead() {
			p.trivia()
			p.value()
		}
	}
	p.builder.FinishNode()
}

func (p *parser) stringDef(typeLength int) {
	p.builder.StartNode(StringDefNode)
	defer p.builder.FinishNode()

	p.emit(Type, typeLength)
	closing := p.open()
	if closing == 0 {
		return
	}

	p.trivia()
	if isNameChar(p.current()) {
		p.emit(Name, p.span(isNameChar))
	}
	if p.peekPastTrivia() == '=' {
		p.trivia()
		p.emit(EqualitySign, 1)
		if p.valueAhead() {
			p.trivia()
			p.value()
		}
	}
	p.trivia()
	p.close(closing)
}

func (p *parser) preamble(typeLength int) {
	p.builder.StartNode(PreambleNode)
	defer p.builder.FinishNode()

	p.emit(Type, typeLength)
	closing := p.open()
	if closing == 0 {
		return
	}
	if p.valueAhead() {
		p.trivia()
		p.value()
	}
	p.trivia()
	p.close(closing)
}

func (p *parser) valueAhead() bool {
	c := p.peekPastTrivia()
	return c == '"' || c == '{' || isNameChar(c)
}

// value parses a single term or a #-concatenation of terms.
func (p *parser) value() {
	checkpoint := p.builder.Checkpoint()
	p.term()

	concat := false
	for p.peekPastTrivia() == '#' {
		p.trivia()
		p.emit(Pound, 1)
		if !p.valueAhead() {
			concat = true
			break
		}
		p.trivia()
		p.term()
		concat = true
	}

	if concat {
		p.builder.StartNodeAt(checkpoint, Concat)
		p.builder.FinishNode()
	}
}

func (p *parser) term() {
	switch c := p.current(); {
	case c == '"':
		p.quoteGroup()
	case c == '{':
		p.curlyGroup()
	case isNameChar(c):
		p.builder.StartNode(Literal)
		n := p.span(isNameChar)
		if isInteger(p.text[p.pos : p.pos+n]) {
			p.emit(Integer, n)
		} else {
			p.emit(Name, n)
		}
		p.builder.FinishNode()
	}
}

func (p *parser) quoteGroup() {
	p.builder.StartNode(QuoteGroup)
	p.emit(Quote, 1)
	p.groupContent(true)
	if p.current() == '"' {
		p.emit(Quote, 1)
	}
	p.builder.FinishNode()
}

func (p *parser) curlyGroup() {
	p.builder.StartNode(CurlyGroup)
	p.emit(LCurly, 1)
	p.groupContent(false)
	if p.current() == '}' {
		p.emit(RCurly, 1)
	}
	p.builder.FinishNode()
}

// groupContent consumes the inside of a quoted or braced value up to its
// closing delimiter. Nested braces become nested curly groups.
func (p *parser) groupContent(quoted bool) {
	for !p.done() {
		if p.trivia() {
			continue
		}
		switch c := p.current(); {
		case c == '}':
			if !quoted {
				return
			}
			p.emit(Word, 1)
		case c == '"' && quoted:
			return
		case c == '{':
			p.curlyGroup()
		case c == '\\':
			p.emit(CommandName, commandLength(p.text[p.pos:]))
		default:
			p.emit(Word, p.span(func(b byte) bool {
				return !isSpace(b) && b != '{' && b != '}' && b != '\\' && !(quoted && b == '"')
			}))
		}
	}
}

func commandLength(s string) int {
	n := 1
	for n < len(s) && isLetter(s[n]) {
		n++
	}
	if n > 1 {
		return n
	}
	if len(s) > 1 {
		_, size := utf8.DecodeRuneInString(s[1:])
		return 1 + size
	}
	return 1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isTypeChar(c byte) bool {
	return isLetter(c)
}

func isNameChar(c byte) bool {
	if c == 0 || isSpace(c) {
		return false
	}
	switch c {
	case '{', '}', '(', ')', ',', '=', '"', '#', '@', '%':
		return false
	}
	return true
}

func isInteger(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
