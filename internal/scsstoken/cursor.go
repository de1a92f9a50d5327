// Package scsstoken provides a peekable, multi-lookahead cursor over the
// character stream produced by internal/scsslexer, plus the scope-free
// token-slice primitives the parser builds on: devouring whitespace,
// reading until an unbalanced delimiter, and reading a line comment.
//
// Primitives that require evaluating SCSS (interpolation, identifiers with
// "#{...}" segments, quoted strings) live in internal/scssparser instead,
// since they need the value evaluator and the current scope — this package
// only ever deals in raw characters.
package scsstoken

import (
	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scsslexer"
)

// Cursor wraps a Lexer with a small lookahead buffer so the parser can peek
// more than one token ahead without consuming it — @if/@else chains and
// the ambiguous "ident:" style-vs-selector decision both need this.
type Cursor struct {
	lexer *scsslexer.Lexer
	buf   []scsslexer.Token
}

func New(source *logger.Source) *Cursor {
	return &Cursor{lexer: scsslexer.NewLexer(source)}
}

func (c *Cursor) fill(n int) {
	for len(c.buf) <= n {
		c.buf = append(c.buf, c.lexer.Next())
	}
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() scsslexer.Token {
	c.fill(0)
	return c.buf[0]
}

// PeekForward returns the token k positions ahead (0 == Peek()) without
// consuming anything.
func (c *Cursor) PeekForward(k int) scsslexer.Token {
	c.fill(k)
	return c.buf[k]
}

// PeekAt is an alias for PeekForward, satisfying scssparser's tokSource
// interface alongside Peek/Next/AtEOF.
func (c *Cursor) PeekAt(k int) scsslexer.Token {
	return c.PeekForward(k)
}

// Next consumes and returns the next token.
func (c *Cursor) Next() scsslexer.Token {
	c.fill(0)
	tok := c.buf[0]
	c.buf = c.buf[1:]
	return tok
}

// AtEOF reports whether the next token is the end-of-file sentinel.
func (c *Cursor) AtEOF() bool {
	return c.Peek().Kind == -1
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// DevourWhitespace consumes a run of ASCII whitespace and reports whether
// any was consumed.
func (c *Cursor) DevourWhitespace() bool {
	consumed := false
	for isASCIIWhitespace(c.Peek().Kind) {
		c.Next()
		consumed = true
	}
	return consumed
}

// ReadUntilNewline consumes characters up to (not including) the next
// newline, or to EOF. Used for "//" line comments.
func (c *Cursor) ReadUntilNewline() []scsslexer.Token {
	var out []scsslexer.Token
	for c.Peek().Kind != '\n' && !c.AtEOF() {
		out = append(out, c.Next())
	}
	return out
}

// ReadUntilOpenCurlyBrace consumes and returns every token up to (not
// including) the next unnested "{".
func (c *Cursor) ReadUntilOpenCurlyBrace() []scsslexer.Token {
	var out []scsslexer.Token
	for c.Peek().Kind != '{' && !c.AtEOF() {
		out = append(out, c.Next())
	}
	return out
}

// ReadUntilClosingCurlyBrace consumes and returns every token up to (not
// including) the "}" that balances the braces already opened, tracking
// nested "{"/"}" pairs inside the slice being read.
func (c *Cursor) ReadUntilClosingCurlyBrace() []scsslexer.Token {
	var out []scsslexer.Token
	depth := 1
	for !c.AtEOF() {
		switch c.Peek().Kind {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return out
			}
		}
		out = append(out, c.Next())
	}
	return out
}

// Span returns the byte range covering [start, end) of consumed tokens,
// used to build a logger.Range for error messages.
func Span(start, end scsslexer.Token) logger.Range {
	return logger.Range{Loc: start.Span.Loc, Len: end.Span.End() - start.Span.Loc.Start}
}
