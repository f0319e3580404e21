package ini

// Input is the token stream the parser reads from. Reading past the end
// yields an epsilon token, as many times as asked.
type Input interface {
	Peek(offset int) Token
	PeekSkippingWhitespace(offset int) Token
	Read() Token
	ReadWhile(pred func(Token) bool) []Token
	ReadWhileExcludingTrailingWhitespace(pred func(Token) bool) []Token
	ReadOrEmpty(pred func(Token) bool) []Token
	ReadOrNone(pred func(Token) bool) *Token
}

// Cursor is an Input over a tokenized string.
type Cursor struct {
	tokens []Token
	pos    int
}

func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

func (c *Cursor) at(i int) Token {
	if i < 0 || i >= len(c.tokens) {
		return epsilon
	}
	return c.tokens[i]
}

func (c *Cursor) Peek(offset int) Token {
	return c.at(c.pos + offset)
}

// PeekSkippingWhitespace returns the offset-th non-whitespace token ahead.
func (c *Cursor) PeekSkippingWhitespace(offset int) Token {
	seen := 0
	for i := c.pos; i < len(c.tokens); i++ {
		t := c.tokens[i]
		if t.Kind == tokenKinds.WhiteSpace {
			continue
		}
		if seen == offset {
			return t
		}
		seen++
	}
	return epsilon
}

func (c *Cursor) Read() Token {
	t := c.at(c.pos)
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return t
}

// ReadWhile never consumes the end of input, whatever pred says.
func (c *Cursor) ReadWhile(pred func(Token) bool) []Token {
	end := c.scan(pred)
	return c.take(end)
}

func (c *Cursor) ReadWhileExcludingTrailingWhitespace(pred func(Token) bool) []Token {
	end := c.scan(pred)
	for end > c.pos && c.tokens[end-1].Kind == tokenKinds.WhiteSpace {
		end--
	}
	return c.take(end)
}

func (c *Cursor) ReadOrEmpty(pred func(Token) bool) []Token {
	if t := c.Peek(0); t.Kind != tokenKinds.Epsilon && pred(t) {
		return []Token{c.Read()}
	}
	return nil
}

func (c *Cursor) ReadOrNone(pred func(Token) bool) *Token {
	if t := c.Peek(0); t.Kind != tokenKinds.Epsilon && pred(t) {
		c.pos++
		return &t
	}
	return nil
}

func (c *Cursor) scan(pred func(Token) bool) int {
	end := c.pos
	for end < len(c.tokens) && pred(c.tokens[end]) {
		end++
	}
	return end
}

func (c *Cursor) take(end int) []Token {
	if end == c.pos {
		return nil
	}
	out := make([]Token, end-c.pos)
	copy(out, c.tokens[c.pos:end])
	c.pos = end
	return out
}
