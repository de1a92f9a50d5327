// Package scsslexer turns SCSS source text into a stream of single-rune
// tokens. Unlike a conventional lexer, this one performs no classification
// beyond "what character is this" — higher layers (internal/scsstoken,
// internal/scssparser) decide whether a run of "-", "_", letters, and
// digits is an identifier, a negative number, or the start of a selector,
// because SCSS allows "#{...}" interpolation to appear in the middle of
// any of those and a coarser lexer would have nowhere to splice it in.
package scsslexer

import (
	"unicode/utf8"

	"github.com/scssc/scssc/internal/logger"
)

const eof = -1

// Token is one character of source together with the byte span it came
// from. Kind is eof (-1) only for the sentinel returned past end of input.
type Token struct {
	Kind rune
	Span logger.Range
}

// Lexer produces Tokens on demand from a Source. It is deliberately small:
// all the aggregation logic (identifiers, numbers, strings, interpolation)
// lives in internal/scsstoken, which wraps a Lexer in a Cursor.
type Lexer struct {
	Source      *logger.Source
	current     int
	codePoint   rune
	Line        int
	approxLines int
}

func NewLexer(source *logger.Source) *Lexer {
	lexer := &Lexer{Source: source, Line: 1}
	lexer.step()
	return lexer
}

func (lexer *Lexer) step() {
	codePoint, width := utf8.DecodeRuneInString(lexer.Source.Contents[lexer.current:])
	if width == 0 {
		codePoint = eof
	}
	if lexer.codePoint == '\n' {
		lexer.Line++
	}
	lexer.current += width
	lexer.codePoint = codePoint
	if width == 0 {
		// Leave "current" pinned at len(Contents) once we hit EOF so repeated
		// calls to Next keep returning the EOF sentinel instead of panicking.
		lexer.current = len(lexer.Source.Contents)
	}
}

// Next consumes and returns the current character, advancing by one rune.
// At end of input it returns an endless stream of eof tokens with a
// zero-length span at the end of the source.
func (lexer *Lexer) Next() Token {
	if lexer.codePoint == eof {
		n := int32(len(lexer.Source.Contents))
		return Token{Kind: eof, Span: logger.Range{Loc: logger.Loc{Start: n}, Len: 0}}
	}
	start := lexer.current - utf8.RuneLen(lexer.codePoint)
	c := lexer.codePoint
	lexer.step()
	return Token{Kind: c, Span: logger.Range{Loc: logger.Loc{Start: int32(start)}, Len: int32(utf8.RuneLen(c))}}
}

// AtEOF reports whether the lexer has no more characters to produce.
func (lexer *Lexer) AtEOF() bool {
	return lexer.codePoint == eof
}
