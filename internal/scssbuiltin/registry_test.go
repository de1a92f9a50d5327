package scssbuiltin

import (
	"testing"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scssselector"
	"github.com/scssc/scssc/internal/scssvalue"
)

func numArg(n int64) scssvalue.Value {
	return scssvalue.Num(scssvalue.IntNumber(n, ""), logger.Range{})
}

func call(t *testing.T, r *Registry, name string, args ...scssvalue.Value) scssvalue.Value {
	t.Helper()
	entry, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("no builtin registered as %q", name)
	}
	v, err := entry.Handler(scssvalue.CallArgs{Positional: args}, scssselector.SelectorList{}, logger.Range{})
	if err != nil {
		t.Fatalf("%s(...) returned error: %v", name, err)
	}
	return v
}

func TestRgbBuildsAnOpaqueColor(t *testing.T) {
	r := NewRegistry()
	v := call(t, r, "rgb", numArg(10), numArg(20), numArg(30))
	if v.Kind != scssvalue.KColor || v.Color.R != 10 || v.Color.G != 20 || v.Color.B != 30 || v.Color.A != 1 {
		t.Fatalf("got %+v", v.Color)
	}
}

func TestRgbClampsOutOfRangeChannels(t *testing.T) {
	r := NewRegistry()
	v := call(t, r, "rgb", numArg(300), numArg(-10), numArg(0))
	if v.Color.R != 255 || v.Color.G != 0 {
		t.Fatalf("got %+v, channels should clamp to [0, 255]", v.Color)
	}
}

func TestLightenMovesChannelsTowardWhite(t *testing.T) {
	r := NewRegistry()
	black := scssvalue.Col(scssvalue.Color{A: 1}, logger.Range{})
	v := call(t, r, "lighten", black, numArg(50))
	if v.Color.R != 127 {
		t.Fatalf("got R=%d, want 127 (50%% toward white from 0, truncated)", v.Color.R)
	}
}

func TestTypeOfReportsSassTypeNames(t *testing.T) {
	r := NewRegistry()
	v := call(t, r, "type-of", numArg(1))
	if v.Str.Text != "number" {
		t.Fatalf("got %q, want %q", v.Str.Text, "number")
	}
}

func TestNthSupportsNegativeIndices(t *testing.T) {
	r := NewRegistry()
	list := scssvalue.ListVal(scssvalue.List{Elements: []scssvalue.Value{numArg(1), numArg(2), numArg(3)}}, logger.Range{})
	v := call(t, r, "nth", list, numArg(-1))
	if v.Num.Float() != 3 {
		t.Fatalf("nth(list, -1) should return the last element, got %v", v.Num.Float())
	}
}

func TestMapGetReturnsNullForMissingKey(t *testing.T) {
	r := NewRegistry()
	m := scssvalue.MapVal(scssvalue.Map{}, logger.Range{})
	v := call(t, r, "map-get", m, scssvalue.Unquoted("missing", logger.Range{}))
	if v.Kind != scssvalue.KNull {
		t.Fatalf("got %+v, want null", v)
	}
}

func TestIfSelectsBranchByTruthiness(t *testing.T) {
	r := NewRegistry()
	yes := scssvalue.Unquoted("yes", logger.Range{})
	no := scssvalue.Unquoted("no", logger.Range{})
	v := call(t, r, "if", scssvalue.Bool(false, logger.Range{}), yes, no)
	if v.Str.Text != "no" {
		t.Fatalf("got %q, want %q", v.Str.Text, "no")
	}
}

func TestUserRegisteredBuiltinShadowsNothingUntilRegistered(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("custom-fn"); ok {
		t.Fatal("did not expect custom-fn to be registered yet")
	}
	r.Register("custom-fn", Entry{Arity: 0, Handler: func(scssvalue.CallArgs, scssselector.SelectorList, logger.Range) (scssvalue.Value, error) {
		return scssvalue.Unquoted("ok", logger.Range{}), nil
	}})
	v := call(t, r, "custom-fn")
	if v.Str.Text != "ok" {
		t.Fatalf("got %q, want %q", v.Str.Text, "ok")
	}
}
