package scssvalue

import (
	"math/big"
	"testing"

	"github.com/scssc/scssc/internal/logger"
)

func rat(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

func TestNumberStringTrimsTrailingZeroes(t *testing.T) {
	n := NewNumber(new(big.Rat).SetFrac64(3, 2), "px")
	if got := n.String(); got != "1.5px" {
		t.Fatalf("got %q, want %q", got, "1.5px")
	}
	if got := IntNumber(4, "").String(); got != "4" {
		t.Fatalf("got %q, want %q", got, "4")
	}
}

func TestIsTrueOnlyFalseAndNullAreFalsy(t *testing.T) {
	truthy := []Value{
		Bool(true, logger.Range{}),
		Num(IntNumber(0, ""), logger.Range{}),
		Quoted("", logger.Range{}),
		ListVal(List{}, logger.Range{}),
	}
	for _, v := range truthy {
		if !IsTrue(v) {
			t.Errorf("expected %+v to be truthy", v)
		}
	}
	falsy := []Value{
		Bool(false, logger.Range{}),
		Null(logger.Range{}),
	}
	for _, v := range falsy {
		if IsTrue(v) {
			t.Errorf("expected %+v to be falsy", v)
		}
	}
}

func TestEqualComparesQuotedAndUnquotedStringsByContent(t *testing.T) {
	a := Quoted("foo", logger.Range{})
	b := Unquoted("foo", logger.Range{})
	if !Equal(a, b) {
		t.Fatal("quoted and unquoted strings with equal text should compare equal")
	}
}

func TestEqualNormalizesCompatibleUnits(t *testing.T) {
	a := Num(NewNumber(rat(1), "in"), logger.Range{})
	b := Num(NewNumber(rat(96), "px"), logger.Range{})
	if !Equal(a, b) {
		t.Fatal("1in should equal 96px")
	}
}

func TestCSSStringRendersListsWithTheirSeparator(t *testing.T) {
	l := ListVal(List{
		Elements:  []Value{Unquoted("a", logger.Range{}), Unquoted("b", logger.Range{})},
		Separator: SepComma,
	}, logger.Range{})
	if got := CSSString(l); got != "a, b" {
		t.Fatalf("got %q, want %q", got, "a, b")
	}
}

func TestMapGetAndSet(t *testing.T) {
	var m Map
	key := Unquoted("k", logger.Range{})
	if _, ok := m.Get(key); ok {
		t.Fatal("empty map should not find anything")
	}
	m.Set(key, Num(IntNumber(1, ""), logger.Range{}))
	v, ok := m.Get(key)
	if !ok || v.Num.Float() != 1 {
		t.Fatalf("got %v, %v", v, ok)
	}
	m.Set(key, Num(IntNumber(2, ""), logger.Range{}))
	if len(m.Pairs) != 1 {
		t.Fatal("Set on an existing key must overwrite in place, not append")
	}
}

func TestAsListWrapsScalars(t *testing.T) {
	l := AsList(Num(IntNumber(1, ""), logger.Range{}))
	if len(l.Elements) != 1 || l.Separator != SepSpace {
		t.Fatalf("got %+v", l)
	}
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null(logger.Range{}), "null"},
		{Bool(true, logger.Range{}), "bool"},
		{Num(IntNumber(1, ""), logger.Range{}), "number"},
		{Quoted("x", logger.Range{}), "string"},
	}
	for _, c := range cases {
		if got := TypeName(c.v); got != c.want {
			t.Errorf("TypeName(%+v) = %q, want %q", c.v, got, c.want)
		}
	}
}
