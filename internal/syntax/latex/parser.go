package latex

import (
	"strings"

	"github.com/texlsp/texlsp/internal/config"
	"github.com/texlsp/texlsp/internal/syntax"
)

// Parse builds the syntax tree of a LaTeX document. It never fails: input the
// grammar does not understand ends up in TEXT nodes or as stray tokens, and
// missing pieces of a construct are simply absent from its node.
func Parse(text string, cfg *config.SyntaxConfig) *syntax.Node {
	p := &parser{
		text:    text,
		lexemes: lex(text),
		builder: syntax.NewBuilder(),
		config:  cfg,
	}
	if p.config == nil {
		p.config = &config.Default().Syntax
	}
	return p.parse()
}

const eof syntax.Kind = 0xFFFF

type parser struct {
	text    string
	offset  int
	lexemes []lexeme
	pos     int
	builder *syntax.Builder
	config  *config.SyntaxConfig
}

func (p *parser) parse() *syntax.Node {
	p.builder.StartNode(Root)
	p.content()
	p.builder.FinishNode()
	return p.builder.Finish()
}

func (p *parser) peek() syntax.Kind {
	if p.pos >= len(p.lexemes) {
		return eof
	}
	return p.lexemes[p.pos].kind
}

// peekPastTrivia returns the first non-trivia kind at or after the cursor.
func (p *parser) peekPastTrivia() syntax.Kind {
	for i := p.pos; i < len(p.lexemes); i++ {
		if !IsTrivia(p.lexemes[i].kind) {
			return p.lexemes[i].kind
		}
	}
	return eof
}

func (p *parser) eat() {
	l := p.lexemes[p.pos]
	p.builder.Token(l.kind, l.text)
	p.pos++
	p.offset += len(l.text)
}

func (p *parser) trivia() {
	for IsTrivia(p.peek()) {
		p.eat()
	}
}

// triviaBefore consumes trivia only when the next significant token is kind.
func (p *parser) triviaBefore(kind syntax.Kind) bool {
	if p.peekPastTrivia() != kind {
		return false
	}
	p.trivia()
	return true
}

// content parses items until EOF or until the next token is one of stop.
func (p *parser) content(stop ...syntax.Kind) {
	for {
		kind := p.peek()
		if kind == eof || containsKind(stop, kind) {
			return
		}

		switch kind {
		case CommandName:
			p.command()
		case LCurly:
			p.curlyGroup()
		case RCurly:
			// Unbalanced closing brace at the top level.
			p.eat()
		default:
			p.text(stop)
		}
	}
}

func (p *parser) text(stop []syntax.Kind) {
	p.builder.StartNode(Text)
	for {
		kind := p.peek()
		if kind == eof || kind == CommandName || kind == LCurly || kind == RCurly || containsKind(stop, kind) {
			break
		}
		p.eat()
	}
	p.builder.FinishNode()
}

func (p *parser) curlyGroup() {
	p.builder.StartNode(CurlyGroup)
	p.eat()
	p.content(RCurly)
	if p.peek() == RCurly {
		p.eat()
	}
	p.builder.FinishNode()
}

func (p *parser) brackGroup() {
	p.builder.StartNode(BrackGroup)
	p.eat()
	p.content(RBrack, RCurly)
	if p.peek() == RBrack {
		p.eat()
	}
	p.builder.FinishNode()
}

func (p *parser) command() {
	name := strings.TrimPrefix(p.lexemes[p.pos].text, `\`)
	if name == "begin" {
		if env, ok := p.verbatimBegin(); ok {
			p.verbatimEnvironment(env)
			return
		}
	}

	switch p.config.Classify(name) {
	case config.LabelDefinitionCommand:
		p.labelDefinition()
	case config.LabelReferenceCommand:
		p.wordListCommand(LabelReferenceNode, 0)
	case config.LabelReferenceRangeCommand:
		p.labelReferenceRange()
	case config.CitationCommand:
		p.wordListCommand(CitationNode, 2)
	case config.IncludeCommand:
		p.wordListCommand(IncludeNode, 1)
	case config.BibliographyIncludeCommand:
		p.wordListCommand(BibliographyIncludeNode, 1)
	case config.ClassIncludeCommand:
		p.wordListCommand(ClassIncludeNode, 1)
	default:
		p.genericCommand()
	}
}

func (p *parser) genericCommand() {
	p.builder.StartNode(GenericCommandNode)
	p.eat()
	for {
		switch p.peek() {
		case LCurly:
			p.curlyGroup()
			continue
		case LBrack:
			p.brackGroup()
			continue
		}
		break
	}
	p.builder.FinishNode()
}

// verbatimBegin returns the environment name when the cursor is at
// \begin{<env>} of a verbatim environment.
func (p *parser) verbatimBegin() (string, bool) {
	i := p.pos + 1
	for i < len(p.lexemes) && IsTrivia(p.lexemes[i].kind) {
		i++
	}
	if i+2 >= len(p.lexemes) || p.lexemes[i].kind != LCurly || p.lexemes[i+1].kind != Word || p.lexemes[i+2].kind != RCurly {
		return "", false
	}
	env := p.lexemes[i+1].text
	return env, p.config.IsVerbatimEnvironment(env)
}

// verbatimEnvironment keeps everything between \begin{env} and the first
// \end{env} as one VERBATIM token. Without a matching \end the body runs to
// the end of the input. The input after the body is lexed again.
func (p *parser) verbatimEnvironment(env string) {
	p.builder.StartNode(VerbatimEnvironmentNode)
	p.eat()
	p.trivia()
	p.curlyGroup()

	body := len(p.text)
	if i := strings.Index(p.text[p.offset:], `\end{`+env+`}`); i >= 0 {
		body = p.offset + i
	}
	if body > p.offset {
		p.builder.Token(VerbatimText, p.text[p.offset:body])
		p.offset = body
	}

	p.lexemes, p.pos = lex(p.text[body:]), 0
	if p.peek() == CommandName {
		p.eat()
		p.curlyGroup()
	}
	p.builder.FinishNode()
}

func (p *parser) labelDefinition() {
	p.builder.StartNode(LabelDefinitionNode)
	p.eat()
	if p.triviaBefore(LCurly) {
		p.curlyGroupWord()
	}
	p.builder.FinishNode()
}

func (p *parser) labelReferenceRange() {
	p.builder.StartNode(LabelReferenceRangeNode)
	p.eat()
	if p.triviaBefore(LBrack) {
		p.brackGroup()
	}
	for range 2 {
		if !p.triviaBefore(LCurly) {
			break
		}
		p.curlyGroupWord()
	}
	p.builder.FinishNode()
}

// wordListCommand parses a command taking up to maxOptions bracket arguments
// followed by a comma separated list of keys.
func (p *parser) wordListCommand(kind syntax.Kind, maxOptions int) {
	p.builder.StartNode(kind)
	p.eat()
	for range maxOptions {
		if !p.triviaBefore(LBrack) {
			break
		}
		p.brackGroup()
	}
	if p.triviaBefore(LCurly) {
		p.curlyGroupWordList()
	}
	p.builder.FinishNode()
}

func (p *parser) curlyGroupWord() {
	p.builder.StartNode(CurlyGroupWordNode)
	p.eat()
	p.trivia()
	if p.peek() == Word {
		p.key()
	}
	p.junkUntilClosingCurly()
	p.builder.FinishNode()
}

func (p *parser) curlyGroupWordList() {
	p.builder.StartNode(CurlyGroupWordListNode)
	p.eat()
	for {
		switch p.peek() {
		case Word:
			p.key()
		case RCurly:
			p.eat()
			p.builder.FinishNode()
			return
		case eof, CommandName, LCurly:
			p.builder.FinishNode()
			return
		default:
			p.eat()
		}
	}
}

// junkUntilClosingCurly swallows plain tokens up to and including the closing
// brace of a single-key group.
func (p *parser) junkUntilClosingCurly() {
	for {
		switch p.peek() {
		case RCurly:
			p.eat()
			return
		case eof, CommandName, LCurly:
			return
		default:
			p.eat()
		}
	}
}

// key parses words separated by inline whitespace.
func (p *parser) key() {
	p.builder.StartNode(KeyNode)
	p.eat()
	for p.peek() == Whitespace && p.pos+1 < len(p.lexemes) && p.lexemes[p.pos+1].kind == Word {
		p.eat()
		p.eat()
	}
	p.builder.FinishNode()
}

func containsKind(kinds []syntax.Kind, kind syntax.Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
