package ini

import (
	"errors"
	"strings"

	"github.com/zeebo/errs/v2"
)

// Error tags everything the editing and lookup helpers return.
var Error = errs.Tag("ini")

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrKeyNotFound     = errors.New("key not found")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidValue    = errors.New("invalid value")
)

// DefaultLineBreak is used for new lines when a document has none to copy.
const DefaultLineBreak = "\r\n"

// =========================
// Trailing line break
// =========================

// EnsureTrailingNewLine returns a document whose last line carries a line
// break, so that something can be appended after it. An existing line
// break is never replaced.
func (d *Document) EnsureTrailingNewLine(lb Token) *Document {
	switch {
	case len(d.Sections) > 0:
		out := d.shallowCopy()
		last := len(out.Sections) - 1
		out.Sections[last] = out.Sections[last].ensureTrailingNewLine(lb)
		return out
	case len(d.NodesOutsideSection) > 0:
		out := d.shallowCopy()
		last := len(out.NodesOutsideSection) - 1
		out.NodesOutsideSection[last] = ensureChildTrailingNewLine(out.NodesOutsideSection[last], lb)
		return out
	default:
		return d
	}
}

func (n *SectionNode) ensureTrailingNewLine(lb Token) *SectionNode {
	switch {
	case len(n.Children) > 0:
		c := *n
		c.Children = append([]SectionChildNode(nil), n.Children...)
		last := len(c.Children) - 1
		c.Children[last] = ensureChildTrailingNewLine(c.Children[last], lb)
		return &c
	case n.LineBreak == nil:
		c := *n
		c.LineBreak = &lb
		return &c
	default:
		return n
	}
}

func ensureChildTrailingNewLine(n SectionChildNode, lb Token) SectionChildNode {
	if n.LineBreakToken() != nil {
		return n
	}
	return n.withLineBreak(&lb)
}

func (d *Document) endsWithLineBreak() bool {
	var last Node
	d.Walk(func(n Node, _ int) { last = n })
	return last != nil && last.LineBreakToken() != nil
}

func (d *Document) shallowCopy() *Document {
	return &Document{
		NodesOutsideSection: append([]SectionChildNode(nil), d.NodesOutsideSection...),
		Sections:            append([]*SectionNode(nil), d.Sections...),
	}
}

// LineBreak returns the first line break used in the document, or
// DefaultLineBreak.
func (d *Document) LineBreak() Token {
	var found *Token
	d.Walk(func(n Node, _ int) {
		if found == nil {
			found = n.LineBreakToken()
		}
	})
	if found != nil {
		return *found
	}
	return NewLineBreak(DefaultLineBreak)
}

// =========================
// Node builders
// =========================

// NewSection builds a "[name]" header without a line break.
func NewSection(name string) (*SectionNode, error) {
	if err := validateSectionName(name); err != nil {
		return nil, err
	}
	closing := ClosingBracket()
	return &SectionNode{
		OpeningBracket: OpeningBracket(),
		Name:           name,
		ClosingBracket: &closing,
	}, nil
}

// NewKeyValue builds a "key = value" line without a line break. Values that
// would not survive a reparse as written are enclosed in double quotes.
func NewKeyValue(key, value string) (*KeyValueNode, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	n := &KeyValueNode{
		Key:                key,
		TriviaBeforeEquals: TriviaList{NewWhiteSpace(" ")},
		EqualsSign:         EqualsSign(),
		TriviaAfterEquals:  TriviaList{NewWhiteSpace(" ")},
	}
	return n.withValue(value)
}

func (n *KeyValueNode) withValue(value string) (*KeyValueNode, error) {
	if strings.ContainsAny(value, "\r\n") {
		return nil, Error.Errorf("%w: %q contains a line break", ErrInvalidValue, value)
	}
	c := *n
	c.Value = value
	c.OpeningQuote, c.ClosingQuote = nil, nil
	if needsQuotes(value) {
		open, closing := DoubleQuote(), DoubleQuote()
		c.OpeningQuote, c.ClosingQuote = &open, &closing
	}
	return &c, nil
}

func needsQuotes(value string) bool {
	if value == "" {
		return false
	}
	if strings.TrimSpace(value) != value {
		return true
	}
	first, last := value[0], value[len(value)-1]
	return first == '"' || first == '\'' || last == '"' || last == '\''
}

func validateKey(key string) error {
	switch {
	case strings.ContainsAny(key, "=\r\n"):
		return Error.Errorf("%w: key %q contains '=' or a line break", ErrInvalidName, key)
	case strings.TrimSpace(key) != key:
		return Error.Errorf("%w: key %q has surrounding whitespace", ErrInvalidName, key)
	case strings.HasPrefix(key, "["):
		return Error.Errorf("%w: key %q would start a section", ErrInvalidName, key)
	}
	return nil
}

func validateSectionName(name string) error {
	switch {
	case name == "":
		return Error.Errorf("%w: empty section name", ErrInvalidName)
	case strings.ContainsAny(name, "]\r\n"):
		return Error.Errorf("%w: section %q contains ']' or a line break", ErrInvalidName, name)
	case strings.TrimSpace(name) != name:
		return Error.Errorf("%w: section %q has surrounding whitespace", ErrInvalidName, name)
	}
	return nil
}

// =========================
// Editing
// =========================

// AppendSection adds an empty "[name]" section at the end of the document.
func (d *Document) AppendSection(name string) (*Document, error) {
	section, err := NewSection(name)
	if err != nil {
		return nil, err
	}
	lb := d.LineBreak()
	if d.endsWithLineBreak() {
		section.LineBreak = &lb
	}
	out := d.EnsureTrailingNewLine(lb).shallowCopy()
	out.Sections = append(out.Sections, section)
	return out, nil
}

// SetValue replaces the value of the first matching key in the first
// matching section, keeping the line's formatting. A missing key is
// appended to the section, a missing section to the document.
func (d *Document) SetValue(section, key, value string) (*Document, error) {
	idx := d.sectionIndex(section)
	if idx < 0 {
		withSection, err := d.AppendSection(section)
		if err != nil {
			return nil, err
		}
		return withSection.SetValue(section, key, value)
	}

	s := d.Sections[idx]
	for i, c := range s.Children {
		kv, ok := c.(*KeyValueNode)
		if !ok || !NamesEqual(kv.Key, key) {
			continue
		}
		updated, err := kv.withValue(value)
		if err != nil {
			return nil, err
		}
		return d.replaceChild(idx, i, updated), nil
	}

	kv, err := NewKeyValue(key, value)
	if err != nil {
		return nil, err
	}
	lb := d.LineBreak()
	out := d.shallowCopy()
	// the new line keeps the document's trailing line break, if any
	ns := *s.ensureTrailingNewLine(lb)
	if idx != len(d.Sections)-1 || d.endsWithLineBreak() {
		kv.LineBreak = &lb
	}
	ns.Children = append(append([]SectionChildNode(nil), ns.Children...), kv)
	out.Sections[idx] = &ns
	return out, nil
}

// RemoveKey drops every key in the first matching section that matches key.
func (d *Document) RemoveKey(section, key string) (*Document, error) {
	idx := d.sectionIndex(section)
	if idx < 0 {
		return nil, Error.Errorf("%w: [%s]", ErrSectionNotFound, section)
	}
	s := d.Sections[idx]
	var kept []SectionChildNode
	for _, c := range s.Children {
		if kv, ok := c.(*KeyValueNode); ok && NamesEqual(kv.Key, key) {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == len(s.Children) {
		return nil, Error.Errorf("%w: [%s] %s", ErrKeyNotFound, section, key)
	}
	ns := *s
	ns.Children = kept
	out := d.shallowCopy()
	out.Sections[idx] = &ns
	return out, nil
}

// RemoveSection drops every section whose name matches, children included.
func (d *Document) RemoveSection(name string) (*Document, error) {
	out := &Document{NodesOutsideSection: append([]SectionChildNode(nil), d.NodesOutsideSection...)}
	for _, s := range d.Sections {
		if NamesEqual(s.Name, name) {
			continue
		}
		out.Sections = append(out.Sections, s)
	}
	if len(out.Sections) == len(d.Sections) {
		return nil, Error.Errorf("%w: [%s]", ErrSectionNotFound, name)
	}
	return out, nil
}

func (d *Document) replaceChild(section, child int, n SectionChildNode) *Document {
	out := d.shallowCopy()
	ns := *out.Sections[section]
	ns.Children = append([]SectionChildNode(nil), ns.Children...)
	ns.Children[child] = n
	out.Sections[section] = &ns
	return out
}

func (d *Document) sectionIndex(name string) int {
	for i, s := range d.Sections {
		if NamesEqual(s.Name, name) {
			return i
		}
	}
	return -1
}
