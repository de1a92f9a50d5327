package scssscope

import (
	"testing"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scssvalue"
)

func numVal(n int64) scssvalue.Value {
	return scssvalue.Num(scssvalue.IntNumber(n, ""), logger.Range{})
}

func TestCloneIsolatesWritesFromTheSource(t *testing.T) {
	base := New()
	base.InsertVar("x", numVal(1))
	clone := base.Clone()
	clone.InsertVar("x", numVal(2))

	v, _ := base.GetVar("x")
	if v.Num.Float() != 1 {
		t.Fatalf("writing to a clone must not affect the source, got %v", v.Num.Float())
	}
}

func TestScopeIsAReferenceTypeAcrossCopies(t *testing.T) {
	base := New()
	alias := base
	alias.InsertVar("x", numVal(1))

	if _, ok := base.GetVar("x"); !ok {
		t.Fatal("copying a Scope value should still share its underlying maps until Clone is called")
	}
}

func TestExtendOverwritesExistingBindings(t *testing.T) {
	a := New()
	a.InsertVar("x", numVal(1))
	b := New()
	b.InsertVar("x", numVal(2))
	a.Extend(b)

	v, _ := a.GetVar("x")
	if v.Num.Float() != 2 {
		t.Fatalf("Extend should overwrite existing bindings, got %v", v.Num.Float())
	}
}

func TestMixinAndFunctionNamespacesAreIndependent(t *testing.T) {
	s := New()
	s.InsertMixin("name", MixinDef{Name: "name"})
	if _, ok := s.GetFn("name"); ok {
		t.Fatal("a mixin and a function may share a name without colliding")
	}
	if _, ok := s.GetMixin("name"); !ok {
		t.Fatal("expected to find the registered mixin")
	}
}
