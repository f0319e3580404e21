package ini

// ini 包实现了一个无损的 INI 解析器：保留注释、空行、缩进和无法识别的行，
// 解析后再打印可以逐字节还原原始文本。
//
// 范围：
// - 具体语法树（Section / KeyValue / TriviaLine）
// - 与原生 profile API 一致的大小写不敏感匹配
// - 不可变的编辑操作
//
// 非目标：
// - 值的类型校验
// - 其他 INI 方言

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// =========================
// Token Definitions
// =========================

type TokenKind string

var tokenKinds = struct {
	WhiteSpace     TokenKind
	LineBreak      TokenKind
	EqualsSign     TokenKind
	OpeningBracket TokenKind
	ClosingBracket TokenKind
	SingleQuote    TokenKind
	DoubleQuote    TokenKind
	Epsilon        TokenKind
	Content        TokenKind
}{
	WhiteSpace:     "whitespace",
	LineBreak:      "line_break",
	EqualsSign:     "equals_sign",
	OpeningBracket: "opening_bracket",
	ClosingBracket: "closing_bracket",
	SingleQuote:    "single_quote",
	DoubleQuote:    "double_quote",
	Epsilon:        "epsilon",
	Content:        "content",
}

// Token kinds, exported for callers that build trees by hand.
var (
	KindWhiteSpace     = tokenKinds.WhiteSpace
	KindLineBreak      = tokenKinds.LineBreak
	KindEqualsSign     = tokenKinds.EqualsSign
	KindOpeningBracket = tokenKinds.OpeningBracket
	KindClosingBracket = tokenKinds.ClosingBracket
	KindSingleQuote    = tokenKinds.SingleQuote
	KindDoubleQuote    = tokenKinds.DoubleQuote
	KindEpsilon        = tokenKinds.Epsilon
	KindContent        = tokenKinds.Content
)

// Token is a classified piece of source text. Text is kept verbatim.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string { return t.Text }

func (t Token) Is(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

func (t Token) isQuote() bool {
	return t.Is(tokenKinds.SingleQuote, tokenKinds.DoubleQuote)
}

func (t Token) isTerminator() bool {
	return t.Is(tokenKinds.LineBreak, tokenKinds.Epsilon)
}

// -------- constructors --------

func NewLineBreak(text string) Token { return Token{Kind: tokenKinds.LineBreak, Text: text} }

func NewWhiteSpace(text string) Token { return Token{Kind: tokenKinds.WhiteSpace, Text: text} }

func EqualsSign() Token { return Token{Kind: tokenKinds.EqualsSign, Text: "="} }

func OpeningBracket() Token { return Token{Kind: tokenKinds.OpeningBracket, Text: "["} }

func ClosingBracket() Token { return Token{Kind: tokenKinds.ClosingBracket, Text: "]"} }

func DoubleQuote() Token { return Token{Kind: tokenKinds.DoubleQuote, Text: `"`} }

func SingleQuote() Token { return Token{Kind: tokenKinds.SingleQuote, Text: "'"} }

var epsilon = Token{Kind: tokenKinds.Epsilon}

// =========================
// TriviaList
// =========================

// TriviaList holds formatting-only tokens.
type TriviaList []Token

func (l TriviaList) String() string {
	var b strings.Builder
	for _, t := range l {
		b.WriteString(t.Text)
	}
	return b.String()
}

func concat(tokens []Token) string {
	return TriviaList(tokens).String()
}

// =========================
// Lexer
// =========================

// Tokenize splits src into tokens. It accepts any input; the token texts
// concatenate back to src.
func Tokenize(src string) []Token {
	var tokens []Token
	for i := 0; i < len(src); {
		switch ch := src[i]; ch {
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				tokens = append(tokens, NewLineBreak("\r\n"))
				i += 2
				continue
			}
			tokens = append(tokens, NewLineBreak("\r"))
			i++
		case '\n':
			tokens = append(tokens, NewLineBreak("\n"))
			i++
		case '=':
			tokens = append(tokens, EqualsSign())
			i++
		case '[':
			tokens = append(tokens, OpeningBracket())
			i++
		case ']':
			tokens = append(tokens, ClosingBracket())
			i++
		case '\'':
			tokens = append(tokens, SingleQuote())
			i++
		case '"':
			tokens = append(tokens, DoubleQuote())
			i++
		default:
			j := i
			if isSpaceAt(src, i) {
				for j < len(src) && isSpaceAt(src, j) {
					_, size := utf8.DecodeRuneInString(src[j:])
					j += size
				}
				tokens = append(tokens, NewWhiteSpace(src[i:j]))
			} else {
				for j < len(src) && !isSpecial(src[j]) && !isSpaceAt(src, j) {
					_, size := utf8.DecodeRuneInString(src[j:])
					j += size
				}
				tokens = append(tokens, Token{Kind: tokenKinds.Content, Text: src[i:j]})
			}
			i = j
		}
	}
	return tokens
}

func isSpecial(ch byte) bool {
	switch ch {
	case '\r', '\n', '=', '[', ']', '\'', '"':
		return true
	}
	return false
}

func isSpaceAt(src string, i int) bool {
	if isSpecial(src[i]) {
		return false
	}
	r, size := utf8.DecodeRuneInString(src[i:])
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return unicode.IsSpace(r)
}
