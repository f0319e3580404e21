package ini

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize(t *testing.T) {
	convey.Convey("tokenize a key value line", t, func() {
		tokens := Tokenize("  key = 'v a'\r\n")
		convey.So(kinds(tokens), convey.ShouldResemble, []TokenKind{
			KindWhiteSpace, KindContent, KindWhiteSpace, KindEqualsSign, KindWhiteSpace,
			KindSingleQuote, KindContent, KindWhiteSpace, KindContent, KindSingleQuote, KindLineBreak,
		})
		convey.So(TriviaList(tokens).String(), convey.ShouldEqual, "  key = 'v a'\r\n")
	})

	convey.Convey("line breaks are single opaque tokens", t, func() {
		tokens := Tokenize("a\r\nb\nc\rd\n\r")
		var breaks []string
		for _, tok := range tokens {
			if tok.Kind == KindLineBreak {
				breaks = append(breaks, tok.Text)
			}
		}
		convey.So(breaks, convey.ShouldResemble, []string{"\r\n", "\n", "\r", "\n", "\r"})
	})

	convey.Convey("brackets and quotes are one token each", t, func() {
		tokens := Tokenize(`[["'`)
		convey.So(kinds(tokens), convey.ShouldResemble, []TokenKind{
			KindOpeningBracket, KindOpeningBracket, KindDoubleQuote, KindSingleQuote,
		})
	})

	convey.Convey("unicode whitespace forms one run", t, func() {
		tokens := Tokenize("\t  　x")
		convey.So(len(tokens), convey.ShouldEqual, 2)
		convey.So(tokens[0].Kind, convey.ShouldEqual, KindWhiteSpace)
		convey.So(tokens[1].Text, convey.ShouldEqual, "x")
	})

	convey.Convey("invalid utf-8 is content", t, func() {
		src := "a\xff\xfeb = c"
		tokens := Tokenize(src)
		convey.So(tokens[0].Kind, convey.ShouldEqual, KindContent)
		convey.So(tokens[0].Text, convey.ShouldEqual, "a\xff\xfeb")
		convey.So(TriviaList(tokens).String(), convey.ShouldEqual, src)
	})

	convey.Convey("empty input has no tokens", t, func() {
		convey.So(Tokenize(""), convey.ShouldBeEmpty)
	})
}

func TestCursor(t *testing.T) {
	convey.Convey("peeking past the end yields epsilon", t, func() {
		c := NewCursor(Tokenize("a"))
		convey.So(c.Peek(0).Text, convey.ShouldEqual, "a")
		convey.So(c.Peek(1).Kind, convey.ShouldEqual, KindEpsilon)
		convey.So(c.Peek(100).Kind, convey.ShouldEqual, KindEpsilon)
		convey.So(c.Read().Text, convey.ShouldEqual, "a")
		convey.So(c.Read().Kind, convey.ShouldEqual, KindEpsilon)
		convey.So(c.Read().Kind, convey.ShouldEqual, KindEpsilon)
		convey.So(c.PeekSkippingWhitespace(3).Kind, convey.ShouldEqual, KindEpsilon)
	})

	convey.Convey("peek skipping whitespace counts non-whitespace tokens", t, func() {
		c := NewCursor(Tokenize("  ' \r\n"))
		convey.So(c.PeekSkippingWhitespace(0).Kind, convey.ShouldEqual, KindSingleQuote)
		convey.So(c.PeekSkippingWhitespace(1).Kind, convey.ShouldEqual, KindLineBreak)
		convey.So(c.PeekSkippingWhitespace(2).Kind, convey.ShouldEqual, KindEpsilon)
		convey.So(c.Peek(0).Kind, convey.ShouldEqual, KindWhiteSpace)
	})

	convey.Convey("read while excluding trailing whitespace", t, func() {
		c := NewCursor(Tokenize("a b  = c"))
		run := c.ReadWhileExcludingTrailingWhitespace(func(t Token) bool { return t.Kind != KindEqualsSign })
		convey.So(TriviaList(run).String(), convey.ShouldEqual, "a b")
		convey.So(c.Peek(0).Text, convey.ShouldEqual, "  ")
	})

	convey.Convey("read while stops at the end of input", t, func() {
		c := NewCursor(Tokenize("a b"))
		run := c.ReadWhile(func(Token) bool { return true })
		convey.So(TriviaList(run).String(), convey.ShouldEqual, "a b")
		convey.So(c.Peek(0).Kind, convey.ShouldEqual, KindEpsilon)
	})

	convey.Convey("optional reads", t, func() {
		c := NewCursor(Tokenize(" x"))
		convey.So(c.ReadOrNone(isQuote), convey.ShouldBeNil)
		convey.So(c.ReadOrEmpty(isQuote), convey.ShouldBeEmpty)
		convey.So(TriviaList(c.ReadOrEmpty(isWhiteSpace)).String(), convey.ShouldEqual, " ")
		tok := c.ReadOrNone(func(t Token) bool { return t.Kind == KindContent })
		convey.So(tok, convey.ShouldNotBeNil)
		convey.So(tok.Text, convey.ShouldEqual, "x")
		convey.So(c.ReadOrNone(func(Token) bool { return true }), convey.ShouldBeNil)
	})
}
