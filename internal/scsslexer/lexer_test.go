package scsslexer

import (
	"testing"

	"github.com/scssc/scssc/internal/logger"
)

func tokenKinds(contents string) []rune {
	lexer := NewLexer(&logger.Source{Contents: contents})
	var out []rune
	for {
		tok := lexer.Next()
		if tok.Kind == eof {
			break
		}
		out = append(out, tok.Kind)
	}
	return out
}

func TestNextProducesOneRunePerCharacter(t *testing.T) {
	got := tokenKinds("a{b:1}")
	want := []rune{'a', '{', 'b', ':', '1', '}'}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNextHandlesMultibyteRunes(t *testing.T) {
	got := tokenKinds("é")
	if len(got) != 1 || got[0] != 'é' {
		t.Fatalf("got %v, want single rune 'é'", got)
	}
}

func TestAtEOFAndRepeatedNext(t *testing.T) {
	lexer := NewLexer(&logger.Source{Contents: "a"})
	if lexer.AtEOF() {
		t.Fatal("should not be at EOF before consuming the only rune")
	}
	lexer.Next()
	if !lexer.AtEOF() {
		t.Fatal("should be at EOF after consuming the only rune")
	}
	first := lexer.Next()
	second := lexer.Next()
	if first.Kind != eof || second.Kind != eof {
		t.Fatal("Next past EOF should keep returning the EOF sentinel")
	}
}

func TestSpanTracksByteOffsets(t *testing.T) {
	lexer := NewLexer(&logger.Source{Contents: "ab"})
	first := lexer.Next()
	second := lexer.Next()
	if first.Span.Loc.Start != 0 || second.Span.Loc.Start != 1 {
		t.Fatalf("got spans %+v, %+v", first.Span, second.Span)
	}
}
