package ini

// =========================
// Public API
// =========================

// Parse builds a syntax tree for src. Every input produces a tree, and
// printing that tree yields src again.
func Parse(src string) *Document {
	return ParseInput(NewCursor(Tokenize(src)))
}

// ParseInput builds a syntax tree from an arbitrary token stream.
func ParseInput(in Input) *Document {
	p := &parser{in: in}
	return p.parseDocument()
}

// =========================
// Parser Implementation
// =========================

type parser struct {
	in Input
}

func isWhiteSpace(t Token) bool { return t.Kind == tokenKinds.WhiteSpace }

func isNotLineBreak(t Token) bool { return t.Kind != tokenKinds.LineBreak }

func isLineBreak(t Token) bool { return t.Kind == tokenKinds.LineBreak }

func isQuote(t Token) bool { return t.isQuote() }

func (p *parser) parseDocument() *Document {
	doc := &Document{}
	for p.in.Peek(0).Kind != tokenKinds.Epsilon {
		switch n := p.parseNode().(type) {
		case *SectionNode:
			doc.Sections = append(doc.Sections, n)
		case SectionChildNode:
			// only reachable before the first section header
			doc.NodesOutsideSection = append(doc.NodesOutsideSection, n)
		}
	}
	return doc
}

// parseNode consumes one line (a section consumes its children as well).
// Each branch consumes at least one token, which keeps the loops in
// parseDocument and parseSectionChildren finite.
func (p *parser) parseNode() Node {
	switch {
	case p.isSection():
		return p.parseSection()
	default:
		return p.parseSectionChild()
	}
}

func (p *parser) parseSectionChild() SectionChildNode {
	var node SectionChildNode
	if p.isKeyValue() {
		node = p.parseKeyValue()
	} else {
		node = NewTriviaLine(p.in.ReadWhile(isNotLineBreak), nil)
	}
	return node.withLineBreak(p.in.ReadOrNone(isLineBreak))
}

func (p *parser) isSection() bool {
	return p.in.PeekSkippingWhitespace(0).Kind == tokenKinds.OpeningBracket
}

func (p *parser) isKeyValue() bool {
	for i := 0; ; i++ {
		t := p.in.Peek(i)
		if t.isTerminator() {
			return false
		}
		if t.Kind == tokenKinds.EqualsSign {
			return true
		}
	}
}

// -------- Section --------

func (p *parser) parseSection() *SectionNode {
	n := &SectionNode{}
	n.LeadingTrivia = p.in.ReadOrEmpty(isWhiteSpace)
	n.OpeningBracket = p.in.Read()
	n.TriviaAfterOpeningBracket = p.in.ReadOrEmpty(isWhiteSpace)
	n.Name = concat(p.in.ReadWhileExcludingTrailingWhitespace(func(t Token) bool {
		return !t.Is(tokenKinds.ClosingBracket, tokenKinds.LineBreak)
	}))
	n.TriviaBeforeClosingBracket = p.in.ReadOrEmpty(isWhiteSpace)
	n.ClosingBracket = p.in.ReadOrNone(func(t Token) bool { return t.Kind == tokenKinds.ClosingBracket })
	n.TrailingTrivia = p.in.ReadWhile(isNotLineBreak)
	n.LineBreak = p.in.ReadOrNone(isLineBreak)
	n.Children = p.parseSectionChildren()
	return n
}

func (p *parser) parseSectionChildren() []SectionChildNode {
	var children []SectionChildNode
	for p.in.Peek(0).Kind != tokenKinds.Epsilon && !p.isSection() {
		children = append(children, p.parseSectionChild())
	}
	return children
}

// -------- KeyValue --------

func (p *parser) parseKeyValue() *KeyValueNode {
	n := &KeyValueNode{}
	n.LeadingTrivia = p.in.ReadOrEmpty(isWhiteSpace)
	n.Key = concat(p.in.ReadWhileExcludingTrailingWhitespace(func(t Token) bool {
		return t.Kind != tokenKinds.EqualsSign
	}))
	n.TriviaBeforeEquals = p.in.ReadOrEmpty(isWhiteSpace)
	n.EqualsSign = p.in.Read()
	n.TriviaAfterEquals = p.in.ReadOrEmpty(isWhiteSpace)
	n.OpeningQuote, n.Value, n.ClosingQuote = p.parseQuotedValue()
	n.TrailingTrivia = p.in.ReadWhile(isNotLineBreak)
	return n
}

// parseQuotedValue reads an optionally quoted value. A quote followed only
// by whitespace up to the end of the line is taken as the closing quote.
// When the quotes do not pair up they are kept as part of the value.
func (p *parser) parseQuotedValue() (*Token, string, *Token) {
	opening := p.in.ReadOrNone(isQuote)
	value := concat(p.parseValue())
	closing := p.in.ReadOrNone(isQuote)

	if sameQuote(opening, closing) {
		return opening, value, closing
	}
	return nil, optionalText(opening) + value + optionalText(closing), nil
}

func (p *parser) parseValue() []Token {
	var tokens []Token
	for {
		if p.in.PeekSkippingWhitespace(0).isTerminator() {
			break
		}
		if p.in.Peek(0).isQuote() && p.in.PeekSkippingWhitespace(1).isTerminator() {
			break
		}
		tokens = append(tokens, p.in.Read())
	}
	return tokens
}

func sameQuote(a, b *Token) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind == b.Kind
}

func optionalText(t *Token) string {
	if t == nil {
		return ""
	}
	return t.Text
}
