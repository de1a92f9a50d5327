// Package scssvalue implements the Sass value algebra: numbers with units,
// colors, quoted/unquoted strings, booleans, null, lists, maps, argument
// lists, and function references, plus the operators defined over them.
package scssvalue

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/scssc/scssc/internal/helpers"
	"github.com/scssc/scssc/internal/logger"
)

type Kind uint8

const (
	KNull Kind = iota
	KBool
	KNumber
	KColor
	KString
	KList
	KMap
	KArgList
	KFunctionRef
)

type Separator uint8

const (
	SepSpace Separator = iota
	SepComma
)

// Number is a rational magnitude plus a first-class unit. Arithmetic
// propagates units with cancellation (e.g. "px * px" has no idiomatic
// meaning in CSS, so multiplication by a non-empty-unit operand is
// restricted to one side carrying a unit).
type Number struct {
	Rat  *big.Rat
	Unit string
}

func NewNumber(r *big.Rat, unit string) Number {
	return Number{Rat: r, Unit: unit}
}

func IntNumber(n int64, unit string) Number {
	return Number{Rat: new(big.Rat).SetInt64(n), Unit: unit}
}

func (n Number) Float() float64 {
	f, _ := n.Rat.Float64()
	return f
}

// String renders a number the way Sass does: integral values print without
// a decimal point, and trailing zeroes are trimmed.
func (n Number) String() string {
	f := n.Float()
	var s string
	if n.Rat.IsInt() {
		s = n.Rat.Num().String()
	} else {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s + n.Unit
}

// Color is RGBA plus the literal form it was written in (name or hex), so
// that colors that are never arithmetically touched can echo losslessly.
type Color struct {
	R, G, B uint8
	A       float64
	Literal string // "" if synthesized, else original "red" / "#ff0000" text
}

func (c Color) WithLiteral(s string) Color {
	c.Literal = s
	return c
}

func (c Color) String() string {
	if c.Literal != "" {
		return c.Literal
	}
	if c.A == 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, trimFloat(c.A))
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampAlpha(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Str is a string value with the quoted/unquoted distinction that governs
// both comparison and concatenation.
type Str struct {
	Text   string
	Quoted bool
}

// List is an ordered sequence of values with a separator and an optional
// bracket flag (Sass list literals may be written "[a, b, c]").
type List struct {
	Elements  []Value
	Separator Separator
	Bracketed bool
}

// MapPair is one (key, value) entry of a Map, kept in insertion order.
type MapPair struct {
	Key   Value
	Value Value
}

// Map is an ordered sequence of pairs. Keys are compared by value equality,
// never by hash (needed because Sass map keys can themselves be lists,
// colors, etc.)
type Map struct {
	Pairs []MapPair
}

func (m Map) Get(key Value) (Value, bool) {
	for _, p := range m.Pairs {
		if Equal(p.Key, key) {
			return p.Value, true
		}
	}
	return Value{}, false
}

func (m *Map) Set(key, val Value) {
	for i, p := range m.Pairs {
		if Equal(p.Key, key) {
			m.Pairs[i].Value = val
			return
		}
	}
	m.Pairs = append(m.Pairs, MapPair{Key: key, Value: val})
}

// ArgList is produced by a variadic ("...") parameter: positional values,
// named values (from "$name: val" passed into the variadic slot), and
// whatever separator the positional part used.
type ArgList struct {
	Positional []Value
	Named      map[string]Value
	Separator  Separator
}

// Value is the Sass value sum type. Exactly one of the typed fields is
// meaningful, selected by Kind. Every value carries the span that produced
// it so diagnostics can point back at source.
type Value struct {
	Kind    Kind
	Bool    bool
	Num     Number
	Color   Color
	Str     Str
	List    List
	Map     Map
	ArgList ArgList
	FuncRef string
	Span    logger.Range
}

func Null(span logger.Range) Value           { return Value{Kind: KNull, Span: span} }
func Bool(b bool, span logger.Range) Value   { return Value{Kind: KBool, Bool: b, Span: span} }
func Num(n Number, span logger.Range) Value  { return Value{Kind: KNumber, Num: n, Span: span} }
func Col(c Color, span logger.Range) Value   { return Value{Kind: KColor, Color: c, Span: span} }
func Quoted(s string, span logger.Range) Value {
	return Value{Kind: KString, Str: Str{Text: s, Quoted: true}, Span: span}
}
func Unquoted(s string, span logger.Range) Value {
	return Value{Kind: KString, Str: Str{Text: s, Quoted: false}, Span: span}
}
func ListVal(l List, span logger.Range) Value    { return Value{Kind: KList, List: l, Span: span} }
func MapVal(m Map, span logger.Range) Value      { return Value{Kind: KMap, Map: m, Span: span} }
func ArgListVal(a ArgList, span logger.Range) Value {
	return Value{Kind: KArgList, ArgList: a, Span: span}
}
func FuncRefVal(name string, span logger.Range) Value {
	return Value{Kind: KFunctionRef, FuncRef: name, Span: span}
}

// IsTrue implements Sass truthiness: only false and null are falsy;
// everything else, including the number 0 and the empty string, is
// truthy.
func IsTrue(v Value) bool {
	switch v.Kind {
	case KNull:
		return false
	case KBool:
		return v.Bool
	default:
		return true
	}
}

// CSSString renders a value using CSS serialization rules: quoted strings
// become unquoted, numbers keep their unit, lists serialize with their
// separator. This is what #{...} interpolation uses; declaration values in
// the printed stylesheet go through DeclString instead.
func CSSString(v Value) string {
	switch v.Kind {
	case KNull:
		return ""
	case KBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KNumber:
		return v.Num.String()
	case KColor:
		return v.Color.String()
	case KString:
		return v.Str.Text
	case KList:
		sep := " "
		if v.List.Separator == SepComma {
			sep = ", "
		}
		parts := make([]string, len(v.List.Elements))
		for i, e := range v.List.Elements {
			parts[i] = CSSString(e)
		}
		out := strings.Join(parts, sep)
		if v.List.Bracketed {
			out = "[" + out + "]"
		}
		return out
	case KMap:
		parts := make([]string, len(v.Map.Pairs))
		for i, p := range v.Map.Pairs {
			parts[i] = fmt.Sprintf("%s: %s", CSSString(p.Key), CSSString(p.Value))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KArgList:
		parts := make([]string, len(v.ArgList.Positional))
		for i, e := range v.ArgList.Positional {
			parts[i] = CSSString(e)
		}
		return strings.Join(parts, ", ")
	case KFunctionRef:
		return "get-function(\"" + v.FuncRef + "\")"
	default:
		return ""
	}
}

// DeclString renders a value the way it appears as a property's value in the
// printed stylesheet: unlike CSSString, a quoted string keeps its quotes
// (escaped the way a CSS string literal requires), since only interpolation
// strips them.
func DeclString(v Value) string {
	switch v.Kind {
	case KString:
		if !v.Str.Quoted {
			return v.Str.Text
		}
		return string(helpers.QuoteForJSON(v.Str.Text, false))
	case KList:
		sep := " "
		if v.List.Separator == SepComma {
			sep = ", "
		}
		parts := make([]string, len(v.List.Elements))
		for i, e := range v.List.Elements {
			parts[i] = DeclString(e)
		}
		out := strings.Join(parts, sep)
		if v.List.Bracketed {
			out = "[" + out + "]"
		}
		return out
	case KMap:
		parts := make([]string, len(v.Map.Pairs))
		for i, p := range v.Map.Pairs {
			parts[i] = fmt.Sprintf("%s: %s", DeclString(p.Key), DeclString(p.Value))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KArgList:
		parts := make([]string, len(v.ArgList.Positional))
		for i, e := range v.ArgList.Positional {
			parts[i] = DeclString(e)
		}
		return strings.Join(parts, ", ")
	default:
		return CSSString(v)
	}
}

// TypeName returns the Sass "type-of" name for a value's kind.
func TypeName(v Value) string {
	switch v.Kind {
	case KNull:
		return "null"
	case KBool:
		return "bool"
	case KNumber:
		return "number"
	case KColor:
		return "color"
	case KString:
		return "string"
	case KList, KArgList:
		return "list"
	case KMap:
		return "map"
	case KFunctionRef:
		return "function"
	default:
		return "unknown"
	}
}

// Equal implements structural equality across types: numbers compare after
// unit normalization, and quoted/unquoted strings with equal contents
// compare equal.
func Equal(a, b Value) bool {
	if a.Kind == KString && b.Kind == KString {
		return a.Str.Text == b.Str.Text
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KNull:
		return true
	case KBool:
		return a.Bool == b.Bool
	case KNumber:
		bn, ok := convertUnit(b.Num, a.Num.Unit)
		if !ok {
			return false
		}
		return a.Num.Rat.Cmp(bn.Rat) == 0
	case KColor:
		return a.Color.R == b.Color.R && a.Color.G == b.Color.G && a.Color.B == b.Color.B && a.Color.A == b.Color.A
	case KList:
		if len(a.List.Elements) != len(b.List.Elements) || a.List.Separator != b.List.Separator {
			return false
		}
		for i := range a.List.Elements {
			if !Equal(a.List.Elements[i], b.List.Elements[i]) {
				return false
			}
		}
		return true
	case KMap:
		if len(a.Map.Pairs) != len(b.Map.Pairs) {
			return false
		}
		for _, p := range a.Map.Pairs {
			bv, ok := b.Map.Get(p.Key)
			if !ok || !Equal(p.Value, bv) {
				return false
			}
		}
		return true
	case KFunctionRef:
		return a.FuncRef == b.FuncRef
	default:
		return false
	}
}

// AsList normalizes any value into list form the way arguments like
// "each", "nth", and "length" expect: scalars become a one-element list.
func AsList(v Value) List {
	if v.Kind == KList {
		return v.List
	}
	if v.Kind == KArgList {
		return List{Elements: v.ArgList.Positional, Separator: v.ArgList.Separator}
	}
	return List{Elements: []Value{v}, Separator: SepSpace}
}

// SortedMapKeysForDebug returns the keys of names in sorted order, for
// deterministic output.
func SortedMapKeysForDebug(names map[string]Value) []string {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
