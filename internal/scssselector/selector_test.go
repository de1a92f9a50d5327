package scssselector

import "testing"

func TestParseSplitsOnTopLevelCommasOnly(t *testing.T) {
	got := Parse(".a, .b:nth-child(2, 3), [data-x=\"y,z\"]")
	want := []string{".a", ".b:nth-child(2, 3)", "[data-x=\"y,z\"]"}
	if len(got.Complex) != len(want) {
		t.Fatalf("got %d selectors, want %d: %v", len(got.Complex), len(want), got.Complex)
	}
	for i, w := range want {
		if string(got.Complex[i]) != w {
			t.Errorf("selector %d: got %q, want %q", i, got.Complex[i], w)
		}
	}
}

func TestZipSubstitutesParentReference(t *testing.T) {
	outer := Single(".card")
	inner := Single("&:hover")
	got := Zip(outer, inner)
	if got.String() != ".card:hover" {
		t.Fatalf("got %q, want %q", got.String(), ".card:hover")
	}
}

func TestZipPrependsAsDescendantWhenNoParentReference(t *testing.T) {
	outer := Single(".card")
	inner := Single(".title")
	got := Zip(outer, inner)
	if got.String() != ".card .title" {
		t.Fatalf("got %q, want %q", got.String(), ".card .title")
	}
}

func TestZipIsCartesianOverCommaLists(t *testing.T) {
	outer := Parse(".a, .b")
	inner := Parse(".x, .y")
	got := Zip(outer, inner)
	want := []string{".a .x", ".a .y", ".b .x", ".b .y"}
	if len(got.Complex) != len(want) {
		t.Fatalf("got %d, want %d: %v", len(got.Complex), len(want), got.Complex)
	}
	for i, w := range want {
		if string(got.Complex[i]) != w {
			t.Errorf("pair %d: got %q, want %q", i, got.Complex[i], w)
		}
	}
}

func TestZipWithEmptyOuterReturnsInnerUnchanged(t *testing.T) {
	inner := Single(".x")
	got := Zip(SelectorList{}, inner)
	if got.String() != ".x" {
		t.Fatalf("got %q, want %q", got.String(), ".x")
	}
}
