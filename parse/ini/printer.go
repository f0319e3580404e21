package ini

import (
	"io"
	"strings"
)

// =========================
// Printer
// =========================

type printer struct {
	b strings.Builder
}

func (p *printer) trivia(l TriviaList) {
	for _, t := range l {
		p.b.WriteString(t.Text)
	}
}

func (p *printer) token(t *Token) {
	if t != nil {
		p.b.WriteString(t.Text)
	}
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case *SectionNode:
		p.trivia(n.LeadingTrivia)
		p.b.WriteString(n.OpeningBracket.Text)
		p.trivia(n.TriviaAfterOpeningBracket)
		p.b.WriteString(n.Name)
		p.trivia(n.TriviaBeforeClosingBracket)
		p.token(n.ClosingBracket)
		p.trivia(n.TrailingTrivia)
		p.token(n.LineBreak)
		for _, c := range n.Children {
			p.node(c)
		}
	case *KeyValueNode:
		p.trivia(n.LeadingTrivia)
		p.b.WriteString(n.Key)
		p.trivia(n.TriviaBeforeEquals)
		p.b.WriteString(n.EqualsSign.Text)
		p.trivia(n.TriviaAfterEquals)
		p.token(n.OpeningQuote)
		p.b.WriteString(n.Value)
		p.token(n.ClosingQuote)
		p.trivia(n.TrailingTrivia)
		p.token(n.LineBreak)
	case *TriviaLine:
		p.trivia(n.Tokens)
		p.token(n.LineBreak)
	}
}

// Print renders nodes back to text.
func Print(nodes ...Node) string {
	p := &printer{}
	for _, n := range nodes {
		p.node(n)
	}
	return p.b.String()
}

func (d *Document) String() string {
	return Print(d.Nodes()...)
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

func (n *SectionNode) String() string { return Print(n) }

func (n *KeyValueNode) String() string { return Print(n) }

func (n *TriviaLine) String() string { return Print(n) }
