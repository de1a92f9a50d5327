package scssparser

import (
	"testing"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scssbuiltin"
	"github.com/scssc/scssc/internal/scssprinter"
)

func compile(t *testing.T, source string) (string, *logger.Log) {
	t.Helper()
	log := logger.NewLog()
	src := &logger.Source{PrettyPath: "test.scss", Contents: source}
	p := NewParser(src, log, scssbuiltin.NewRegistry(), nil)
	stmts, err := p.ParseStylesheet()
	if err != nil {
		t.Fatalf("ParseStylesheet(%q) returned error: %v", source, err)
	}
	return string(scssprinter.Print(stmts, scssprinter.Options{})), log
}

func TestVariableSubstitutionInDeclaration(t *testing.T) {
	css, _ := compile(t, "$color: red;\na { color: $color; }")
	want := "a {\n  color: red;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestNestedSelectorsZipWithParentReference(t *testing.T) {
	css, _ := compile(t, "a { &:hover { color: blue; } }")
	want := "a:hover {\n  color: blue;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestNestedSelectorsWithoutParentReferenceNestAsDescendants(t *testing.T) {
	css, _ := compile(t, "a { .b { color: blue; } }")
	want := "a .b {\n  color: blue;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestArithmeticOperatorPrecedence(t *testing.T) {
	css, _ := compile(t, "a { width: 1px + 2px * 3; }")
	want := "a {\n  width: 7px;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestSlashIsLiteralBetweenTwoPlainNumberLiterals(t *testing.T) {
	css, _ := compile(t, "a { font: 12px/1.5; }")
	want := "a {\n  font: 12px/1.5;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestSlashIsDivisionWhenAnOperandIsAVariable(t *testing.T) {
	css, _ := compile(t, "$w: 10px;\na { width: $w / 2; }")
	want := "a {\n  width: 5px;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestIfElseChain(t *testing.T) {
	css, _ := compile(t, `
$x: 2;
a {
  @if $x == 1 {
    color: red;
  } @else if $x == 2 {
    color: green;
  } @else {
    color: blue;
  }
}`)
	want := "a {\n  color: green;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestForLoopGeneratesOneRulePerIteration(t *testing.T) {
	css, _ := compile(t, `
@for $i from 1 through 3 {
  .col-#{$i} { width: $i; }
}`)
	want := ".col-1 {\n  width: 1;\n}\n.col-2 {\n  width: 2;\n}\n.col-3 {\n  width: 3;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestEachOverMapBindsKeyAndValue(t *testing.T) {
	css, _ := compile(t, `
$sizes: (sm: 1, lg: 2);
@each $name, $size in $sizes {
  .#{$name} { width: $size; }
}`)
	want := ".sm {\n  width: 1;\n}\n.lg {\n  width: 2;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestMixinWithDefaultArgumentAndInclude(t *testing.T) {
	css, _ := compile(t, `
@mixin pad($amount: 1px) {
  padding: $amount;
}
a { @include pad; }
b { @include pad(5px); }`)
	want := "a {\n  padding: 1px;\n}\nb {\n  padding: 5px;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestContentBlockSplicesIntoMixinBody(t *testing.T) {
	css, _ := compile(t, `
@mixin wrap {
  a { @content; }
}
@include wrap {
  color: red;
}`)
	want := "a {\n  color: red;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestFunctionReturnsAComputedValue(t *testing.T) {
	css, _ := compile(t, `
@function double($n) {
  @return $n * 2;
}
a { width: double(3px); }`)
	want := "a {\n  width: 6px;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestFunctionWithForLoopAndConditionalReturn(t *testing.T) {
	css, _ := compile(t, `
@function first-even($n) {
  @for $i from 1 through $n {
    @if $i % 2 == 0 {
      @return $i;
    }
  }
  @return -1;
}
a { width: first-even(5); }`)
	want := "a {\n  width: 2;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestGlobalFlagWritesThroughToRootScope(t *testing.T) {
	css, _ := compile(t, `
$count: 0;
@mixin bump {
  $count: 1 !global;
}
a {
  @include bump;
  width: $count;
}`)
	want := "a {\n  width: 1;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestGlobalFlagFromInsideIfBodyWritesThroughToRootScope(t *testing.T) {
	css, _ := compile(t, `
$count: 0;
a {
  @if true {
    $count: 1 !global;
  }
  width: $count;
}`)
	want := "a {\n  width: 1;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestGlobalFlagFromInsideForBodyWritesThroughToRootScope(t *testing.T) {
	css, _ := compile(t, `
$count: 0;
@for $i from 1 through 1 {
  $count: 1 !global;
}
a { width: $count; }`)
	want := "a {\n  width: 1;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestDefaultFlagOnlyAssignsWhenUnset(t *testing.T) {
	css, _ := compile(t, `
$x: 1;
$x: 2 !default;
a { width: $x; }`)
	want := "a {\n  width: 1;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestQuotedStringValueKeepsItsQuotesInOutput(t *testing.T) {
	css, _ := compile(t, `a { content: "hello \"world\""; }`)
	want := "a {\n  content: \"hello \\\"world\\\"\";\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestUnquotedStringValueStaysUnquoted(t *testing.T) {
	css, _ := compile(t, "a { display: flex; }")
	want := "a {\n  display: flex;\n}\n"
	if css != want {
		t.Fatalf("got %q, want %q", css, want)
	}
}

func TestUnresolvedVariableIsAResolutionError(t *testing.T) {
	log := logger.NewLog()
	src := &logger.Source{PrettyPath: "test.scss", Contents: "a { color: $missing; }"}
	p := NewParser(src, log, scssbuiltin.NewRegistry(), nil)
	if _, err := p.ParseStylesheet(); err == nil {
		t.Fatal("expected an error resolving an undefined variable")
	}
}
