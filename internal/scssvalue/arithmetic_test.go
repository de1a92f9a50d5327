package scssvalue

import (
	"math/big"
	"testing"

	"github.com/scssc/scssc/internal/logger"
)

func TestAddNumbersConvertsRightOperandToLeftUnit(t *testing.T) {
	a := NewNumber(rat(1), "in")
	b := NewNumber(rat(1), "px")
	sum, err := AddNumbers(a, b, false)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Unit != "in" {
		t.Fatalf("got unit %q, want %q", sum.Unit, "in")
	}
	want := new(big.Rat).SetFrac64(97, 96)
	if sum.Rat.Cmp(want) != 0 {
		t.Fatalf("got %v, want %v", sum.Rat, want)
	}
}

func TestAddNumbersRejectsIncompatibleUnits(t *testing.T) {
	_, err := AddNumbers(NewNumber(rat(1), "px"), NewNumber(rat(1), "deg"), false)
	if err == nil || err.Kind != ErrUnit {
		t.Fatalf("expected a unit error, got %v", err)
	}
}

func TestMulNumbersRejectsTwoUnits(t *testing.T) {
	_, err := MulNumbers(NewNumber(rat(1), "px"), NewNumber(rat(1), "px"))
	if err == nil || err.Kind != ErrUnit {
		t.Fatalf("expected a unit error multiplying two units, got %v", err)
	}
}

func TestDivNumbersByZero(t *testing.T) {
	_, err := DivNumbers(NewNumber(rat(1), ""), NewNumber(rat(0), ""))
	if err == nil || err.Kind != ErrArithmetic {
		t.Fatalf("expected an arithmetic error, got %v", err)
	}
}

func TestDivNumbersSameUnitCancels(t *testing.T) {
	q, err := DivNumbers(NewNumber(rat(10), "px"), NewNumber(rat(2), "px"))
	if err != nil {
		t.Fatal(err)
	}
	if q.Unit != "" {
		t.Fatalf("dividing px by px should cancel the unit, got %q", q.Unit)
	}
	if q.Float() != 5 {
		t.Fatalf("got %v, want 5", q.Float())
	}
}

func TestModNumbersSignMatchesDivisor(t *testing.T) {
	m, err := ModNumbers(NewNumber(rat(-7), ""), NewNumber(rat(3), ""))
	if err != nil {
		t.Fatal(err)
	}
	if m.Float() != 2 {
		t.Fatalf("got %v, want 2 (Sass modulo takes the divisor's sign)", m.Float())
	}
}

func TestCompareNumbersAfterUnitConversion(t *testing.T) {
	cmp, err := CompareNumbers(NewNumber(rat(1), "in"), NewNumber(rat(48), "px"))
	if err != nil {
		t.Fatal(err)
	}
	if cmp <= 0 {
		t.Fatalf("1in should compare greater than 48px, got %d", cmp)
	}
}

func TestConcatQuotesFollowTheLeftOperand(t *testing.T) {
	left := Quoted("a", logger.Range{})
	right := Unquoted("b", logger.Range{})
	got := Concat(left, right, "-")
	if !got.Str.Quoted {
		t.Fatal("concatenation should be quoted when the left operand is quoted")
	}
	if got.Str.Text != "a-b" {
		t.Fatalf("got %q, want %q", got.Str.Text, "a-b")
	}
}
