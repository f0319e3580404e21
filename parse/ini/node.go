package ini

import "strings"

// =========================
// Syntax Tree
// =========================

type NodeKind string

var nodeKinds = struct {
	Section  NodeKind
	KeyValue NodeKind
	Trivia   NodeKind
}{
	Section:  "section",
	KeyValue: "key_value",
	Trivia:   "trivia",
}

var (
	KindSection  = nodeKinds.Section
	KindKeyValue = nodeKinds.KeyValue
	KindTrivia   = nodeKinds.Trivia
)

// Node is one of *SectionNode, *KeyValueNode or *TriviaLine.
type Node interface {
	Kind() NodeKind
	// LineBreakToken is nil when the source line had no terminator.
	LineBreakToken() *Token
	iniNode()
}

// SectionChildNode is a Node that may appear inside a section:
// *KeyValueNode or *TriviaLine.
type SectionChildNode interface {
	Node
	withLineBreak(lb *Token) SectionChildNode
}

// -------- Section --------

type SectionNode struct {
	LeadingTrivia              TriviaList
	OpeningBracket             Token
	TriviaAfterOpeningBracket  TriviaList
	Name                       string
	TriviaBeforeClosingBracket TriviaList
	ClosingBracket             *Token
	TrailingTrivia             TriviaList
	LineBreak                  *Token
	Children                   []SectionChildNode
}

func (*SectionNode) Kind() NodeKind { return nodeKinds.Section }

func (n *SectionNode) LineBreakToken() *Token { return n.LineBreak }

func (*SectionNode) iniNode() {}

// -------- KeyValue --------

type KeyValueNode struct {
	LeadingTrivia      TriviaList
	Key                string
	TriviaBeforeEquals TriviaList
	EqualsSign         Token
	TriviaAfterEquals  TriviaList
	OpeningQuote       *Token
	Value              string
	ClosingQuote       *Token
	TrailingTrivia     TriviaList
	LineBreak          *Token
}

func (*KeyValueNode) Kind() NodeKind { return nodeKinds.KeyValue }

func (n *KeyValueNode) LineBreakToken() *Token { return n.LineBreak }

func (*KeyValueNode) iniNode() {}

func (n *KeyValueNode) withLineBreak(lb *Token) SectionChildNode {
	c := *n
	c.LineBreak = lb
	return &c
}

// Quoted reports whether the value was enclosed in a matching quote pair.
func (n *KeyValueNode) Quoted() bool { return n.OpeningQuote != nil }

// -------- TriviaLine --------

type TriviaKind string

var triviaKinds = struct {
	Comment      TriviaKind
	Unrecognized TriviaKind
}{
	Comment:      "comment",
	Unrecognized: "unrecognized",
}

var (
	TriviaComment      = triviaKinds.Comment
	TriviaUnrecognized = triviaKinds.Unrecognized
)

// CommentMarker starts a comment line.
const CommentMarker = ";"

// TriviaLine is a comment, a blank line or a line that could not be
// classified. Both classifications print the same way.
type TriviaLine struct {
	Class     TriviaKind
	Tokens    TriviaList
	LineBreak *Token
}

// NewTriviaLine classifies tokens as a comment or unrecognized line.
func NewTriviaLine(tokens TriviaList, lineBreak *Token) *TriviaLine {
	class := triviaKinds.Unrecognized
	for _, t := range tokens {
		if t.Kind == tokenKinds.WhiteSpace {
			continue
		}
		if strings.HasPrefix(t.Text, CommentMarker) {
			class = triviaKinds.Comment
		}
		break
	}
	return &TriviaLine{Class: class, Tokens: tokens, LineBreak: lineBreak}
}

func (*TriviaLine) Kind() NodeKind { return nodeKinds.Trivia }

func (n *TriviaLine) LineBreakToken() *Token { return n.LineBreak }

func (*TriviaLine) iniNode() {}

func (n *TriviaLine) withLineBreak(lb *Token) SectionChildNode {
	c := *n
	c.LineBreak = lb
	return &c
}

func (n *TriviaLine) IsComment() bool { return n.Class == triviaKinds.Comment }

// =========================
// Document
// =========================

// Document is the root of a parsed file. Nodes in NodesOutsideSection
// precede every section.
type Document struct {
	NodesOutsideSection []SectionChildNode
	Sections            []*SectionNode
}

// Nodes returns the top-level nodes in file order.
func (d *Document) Nodes() []Node {
	out := make([]Node, 0, len(d.NodesOutsideSection)+len(d.Sections))
	for _, n := range d.NodesOutsideSection {
		out = append(out, n)
	}
	for _, s := range d.Sections {
		out = append(out, s)
	}
	return out
}

// Walk visits every node depth-first in file order.
func (d *Document) Walk(fn func(n Node, depth int)) {
	for _, n := range d.NodesOutsideSection {
		fn(n, 0)
	}
	for _, s := range d.Sections {
		fn(s, 0)
		for _, c := range s.Children {
			fn(c, 1)
		}
	}
}
