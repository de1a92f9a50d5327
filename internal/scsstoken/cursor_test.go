package scsstoken

import (
	"testing"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scsslexer"
)

func TestPeekDoesNotConsume(t *testing.T) {
	c := New(&logger.Source{Contents: "ab"})
	if c.Peek().Kind != 'a' {
		t.Fatalf("got %q, want 'a'", c.Peek().Kind)
	}
	if c.Peek().Kind != 'a' {
		t.Fatal("Peek should be idempotent")
	}
	if c.Next().Kind != 'a' {
		t.Fatal("Next should consume the peeked token")
	}
	if c.Peek().Kind != 'b' {
		t.Fatalf("got %q, want 'b'", c.Peek().Kind)
	}
}

func TestPeekForwardLooksAheadWithoutConsuming(t *testing.T) {
	c := New(&logger.Source{Contents: "abc"})
	if c.PeekForward(2).Kind != 'c' {
		t.Fatalf("got %q, want 'c'", c.PeekForward(2).Kind)
	}
	if c.Next().Kind != 'a' {
		t.Fatal("PeekForward must not have consumed anything")
	}
}

func TestDevourWhitespace(t *testing.T) {
	c := New(&logger.Source{Contents: "  \t\na"})
	if !c.DevourWhitespace() {
		t.Fatal("expected whitespace to be consumed")
	}
	if c.Peek().Kind != 'a' {
		t.Fatalf("got %q, want 'a'", c.Peek().Kind)
	}
	if c.DevourWhitespace() {
		t.Fatal("no whitespace left to consume")
	}
}

func TestReadUntilOpenCurlyBrace(t *testing.T) {
	c := New(&logger.Source{Contents: ".a, .b {}"})
	toks := c.ReadUntilOpenCurlyBrace()
	if len(toks) != 7 {
		t.Fatalf("got %d tokens, want 7", len(toks))
	}
	if c.Peek().Kind != '{' {
		t.Fatal("cursor should be positioned right before the '{'")
	}
}

func TestReadUntilClosingCurlyBraceTracksNesting(t *testing.T) {
	c := New(&logger.Source{Contents: "a { b { c } } }"})
	if c.Next().Kind != 'a' {
		t.Fatal("setup: expected to consume 'a'")
	}
	c.DevourWhitespace()
	if c.Next().Kind != '{' {
		t.Fatal("setup: expected to consume '{'")
	}
	body := c.ReadUntilClosingCurlyBrace()
	text := string(runeKinds(body))
	if text != " b { c } " {
		t.Fatalf("got %q, want %q", text, " b { c } ")
	}
	if c.Peek().Kind != '}' {
		t.Fatal("cursor should stop right before the balancing '}'")
	}
}

func runeKinds(toks []scsslexer.Token) []rune {
	out := make([]rune, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}
