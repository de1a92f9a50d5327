package scssvalue

import (
	"fmt"
	"math/big"

	"github.com/scssc/scssc/internal/logger"
)

// Kind of the error returned by the operator functions below, mirrored by
// internal/scssast.ErrorKind so the parser can attach a span without this
// package needing to depend on the AST package.
type ErrKind uint8

const (
	ErrType ErrKind = iota
	ErrUnit
	ErrArithmetic
)

type OpError struct {
	Kind ErrKind
	Msg  string
}

func (e *OpError) Error() string { return e.Msg }

// unitGroups lists the compatible-unit families and each unit's ratio to
// the family's canonical unit (the first entry). Units not listed here are
// only ever compatible with themselves or with the empty unit.
var unitGroups = [][]struct {
	name  string
	ratio *big.Rat
}{
	{ // length, canonical: px
		{"px", big.NewRat(1, 1)},
		{"in", big.NewRat(96, 1)},
		{"pc", big.NewRat(16, 1)},
		{"pt", big.NewRat(96, 72)},
		{"cm", big.NewRat(9600, 254)},
		{"mm", big.NewRat(960, 254)},
		{"q", big.NewRat(240, 254)},
	},
	{ // angle, canonical: deg
		{"deg", big.NewRat(1, 1)},
		{"grad", big.NewRat(9, 10)},
		{"rad", bigFromFloat(180 / 3.14159265358979323846)},
		{"turn", big.NewRat(360, 1)},
	},
	{ // time, canonical: ms
		{"ms", big.NewRat(1, 1)},
		{"s", big.NewRat(1000, 1)},
	},
	{ // resolution, canonical: dpi
		{"dpi", big.NewRat(1, 1)},
		{"dpcm", big.NewRat(2540, 1000)},
		{"dppx", big.NewRat(96, 1)},
	},
	{ // frequency, canonical: hz
		{"hz", big.NewRat(1, 1)},
		{"khz", big.NewRat(1000, 1)},
	},
}

func bigFromFloat(f float64) *big.Rat {
	r := new(big.Rat)
	r.SetFloat64(f)
	return r
}

func ratioFor(unit string) (group int, ratio *big.Rat, ok bool) {
	for gi, g := range unitGroups {
		for _, u := range g {
			if u.name == unit {
				return gi, u.ratio, true
			}
		}
	}
	return 0, nil, false
}

// convertUnit converts n into toUnit if they are in the same family (or
// either is unitless). Returns ok=false if the units are incompatible.
func convertUnit(n Number, toUnit string) (Number, bool) {
	if n.Unit == toUnit {
		return n, true
	}
	if n.Unit == "" {
		return Number{Rat: n.Rat, Unit: toUnit}, true
	}
	if toUnit == "" {
		return Number{Rat: n.Rat, Unit: n.Unit}, true
	}
	g1, r1, ok1 := ratioFor(n.Unit)
	g2, r2, ok2 := ratioFor(toUnit)
	if !ok1 || !ok2 || g1 != g2 {
		return Number{}, false
	}
	canonical := new(big.Rat).Mul(n.Rat, r1)
	converted := new(big.Rat).Quo(canonical, r2)
	return Number{Rat: converted, Unit: toUnit}, true
}

func unitMismatch(op string, a, b Number) *OpError {
	return &OpError{Kind: ErrUnit, Msg: fmt.Sprintf("incompatible units %q and %q for %q", a.Unit, b.Unit, op)}
}

// AddNumbers implements "+"/"-" unit conversion: the right operand is
// converted to the left operand's unit, then the magnitudes combine.
func AddNumbers(a, b Number, sub bool) (Number, *OpError) {
	bc, ok := convertUnit(b, a.Unit)
	if !ok {
		op := "+"
		if sub {
			op = "-"
		}
		return Number{}, unitMismatch(op, a, b)
	}
	var r *big.Rat
	if sub {
		r = new(big.Rat).Sub(a.Rat, bc.Rat)
	} else {
		r = new(big.Rat).Add(a.Rat, bc.Rat)
	}
	return Number{Rat: r, Unit: a.Unit}, nil
}

// MulNumbers multiplies magnitudes. At most one operand may carry a unit;
// Sass has no first-class compound units like "px*px" or "px/s".
func MulNumbers(a, b Number) (Number, *OpError) {
	if a.Unit != "" && b.Unit != "" {
		return Number{}, &OpError{Kind: ErrUnit, Msg: fmt.Sprintf("%q isn't a valid CSS value (cannot multiply two units)", fmt.Sprintf("%s*%s", a.Unit, b.Unit))}
	}
	unit := a.Unit
	if unit == "" {
		unit = b.Unit
	}
	return Number{Rat: new(big.Rat).Mul(a.Rat, b.Rat), Unit: unit}, nil
}

func DivNumbers(a, b Number) (Number, *OpError) {
	if b.Rat.Sign() == 0 {
		return Number{}, &OpError{Kind: ErrArithmetic, Msg: "division by zero"}
	}
	unit := a.Unit
	if unit == "" {
		unit = b.Unit
	} else if b.Unit != "" && b.Unit != a.Unit {
		if conv, ok := convertUnit(b, a.Unit); ok {
			b = conv
		} else {
			unit = a.Unit + "/" + b.Unit
		}
	}
	if a.Unit != "" && b.Unit != "" && a.Unit == b.Unit {
		unit = ""
	}
	return Number{Rat: new(big.Rat).Quo(a.Rat, b.Rat), Unit: unit}, nil
}

func ModNumbers(a, b Number) (Number, *OpError) {
	if b.Rat.Sign() == 0 {
		return Number{}, &OpError{Kind: ErrArithmetic, Msg: "modulo by zero"}
	}
	bc, ok := convertUnit(b, a.Unit)
	if !ok {
		return Number{}, unitMismatch("%", a, b)
	}
	q := new(big.Int)
	rem := new(big.Int)
	an, ad := a.Rat.Num(), a.Rat.Denom()
	bn, bd := bc.Rat.Num(), bc.Rat.Denom()
	lhs := new(big.Int).Mul(an, bd)
	rhs := new(big.Int).Mul(bn, ad)
	if rhs.Sign() == 0 {
		return Number{}, &OpError{Kind: ErrArithmetic, Msg: "modulo by zero"}
	}
	q.QuoRem(lhs, rhs, rem)
	result := new(big.Rat).SetFrac(rem, new(big.Int).Mul(ad, bd))
	if result.Sign() < 0 {
		result.Add(result, bc.Rat)
	}
	return Number{Rat: result, Unit: a.Unit}, nil
}

// CompareNumbers implements "<"/"<="/">"/">=" after unit normalization.
func CompareNumbers(a, b Number) (int, *OpError) {
	bc, ok := convertUnit(b, a.Unit)
	if !ok {
		return 0, unitMismatch("comparison", a, b)
	}
	return a.Rat.Cmp(bc.Rat), nil
}

// AddColors adds channel-wise with saturation clamp [0,255]; alpha is
// taken from the left operand.
func AddColors(a, b Color, sub bool) Color {
	sign := 1
	if sub {
		sign = -1
	}
	return Color{
		R: clampByte(int(a.R) + sign*int(b.R)),
		G: clampByte(int(a.G) + sign*int(b.G)),
		B: clampByte(int(a.B) + sign*int(b.B)),
		A: a.A,
	}
}

// Concat implements string concatenation: the result is quoted iff the
// left operand is quoted, and the right side is stringified with CSS
// rules before joining.
func Concat(a Value, b Value, sep string) Value {
	left := CSSString(a)
	right := CSSString(b)
	return Value{
		Kind: KString,
		Str:  Str{Text: left + sep + right, Quoted: a.Kind == KString && a.Str.Quoted},
		Span: logger.Range{Loc: a.Span.Loc, Len: b.Span.End() - a.Span.Loc.Start},
	}
}
