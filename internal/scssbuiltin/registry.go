// Package scssbuiltin is the external collaborator contract for built-in
// functions: a name → handler table. The core exposes a registration
// interface rather than an enumerated catalogue, so this package ships a
// small, additive starter set (enough for ordinary stylesheets) rather
// than a full port of Sass's function library.
package scssbuiltin

import (
	"math/big"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scssast"
	"github.com/scssc/scssc/internal/scssselector"
	"github.com/scssc/scssc/internal/scssvalue"
)

// Handler accepts the call's actual arguments, the super-selector in
// effect, and the call's span, and returns a value or an error. The
// current scope is not passed to a handler.
type Handler func(args scssvalue.CallArgs, superSelector scssselector.SelectorList, span logger.Range) (scssvalue.Value, error)

// Entry pairs a handler with its arity: Variadic true means "any number of
// positional arguments is acceptable," otherwise Arity is the number of
// arguments the builtin takes. Arity is recorded but not checked before
// the handler is invoked; a handler receives whatever arguments the call
// site supplied.
type Entry struct {
	Arity    int
	Variadic bool
	Handler  Handler
}

// Registry is name → Entry. User-defined functions are looked up before
// built-ins by internal/scssparser so that a user function can shadow a
// built-in within scope, matching reference Sass behavior.
type Registry struct {
	entries map[string]Entry
}

func NewRegistry() *Registry {
	r := &Registry{entries: map[string]Entry{}}
	r.RegisterDefaults()
	return r
}

func (r *Registry) Register(name string, e Entry) {
	r.entries[name] = e
}

func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

func num(v scssvalue.Value) (scssvalue.Number, bool) {
	if v.Kind != scssvalue.KNumber {
		return scssvalue.Number{}, false
	}
	return v.Num, true
}

func typeErr(span logger.Range, msg string) error {
	return scssast.NewError(scssast.TypeError, span, msg)
}

func arityErr(span logger.Range, msg string) error {
	return scssast.NewError(scssast.ArityError, span, msg)
}

// RegisterDefaults installs the starter builtins: rgb/rgba, lighten/
// darken, percentage, quote/unquote, type-of, length, nth, map-get, if,
// and not — enough surface area for ordinary stylesheets to work, without
// pretending to be an exhaustive port.
func (r *Registry) RegisterDefaults() {
	r.Register("rgb", Entry{Arity: 3, Handler: rgbFn})
	r.Register("rgba", Entry{Arity: 4, Handler: rgbaFn})
	r.Register("lighten", Entry{Arity: 2, Handler: lightenFn(1)})
	r.Register("darken", Entry{Arity: 2, Handler: lightenFn(-1)})
	r.Register("percentage", Entry{Arity: 1, Handler: percentageFn})
	r.Register("quote", Entry{Arity: 1, Handler: quoteFn})
	r.Register("unquote", Entry{Arity: 1, Handler: unquoteFn})
	r.Register("type-of", Entry{Arity: 1, Handler: typeOfFn})
	r.Register("length", Entry{Arity: 1, Handler: lengthFn})
	r.Register("nth", Entry{Arity: 2, Handler: nthFn})
	r.Register("map-get", Entry{Arity: 2, Handler: mapGetFn})
	r.Register("if", Entry{Arity: 3, Handler: ifFn})
	r.Register("not", Entry{Arity: 1, Handler: notFn})
}

func rgbFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	return makeColorAlpha(args, span, 1)
}

func rgbaFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	if len(args.Positional) < 4 {
		return makeColorAlpha(args, span, 1)
	}
	a, ok := num(args.Positional[3])
	if !ok {
		return scssvalue.Value{}, typeErr(span, "$alpha: expected a number")
	}
	return makeColorAlpha(args, span, a.Float())
}

func makeColorAlpha(args scssvalue.CallArgs, span logger.Range, alpha float64) (scssvalue.Value, error) {
	if len(args.Positional) < 3 {
		return scssvalue.Value{}, arityErr(span, "rgb() requires red, green, and blue channels")
	}
	chans := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, ok := num(args.Positional[i])
		if !ok {
			return scssvalue.Value{}, typeErr(span, "color channels must be numbers")
		}
		chans[i] = int(n.Float())
	}
	c := scssvalue.Color{R: clamp(chans[0]), G: clamp(chans[1]), B: clamp(chans[2]), A: clampA(alpha)}
	return scssvalue.Col(c, span), nil
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampA(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lightenFn returns a handler parameterized by direction (+1 lighten, -1
// darken), each shifting RGB channels toward white/black by a percentage.
func lightenFn(direction float64) Handler {
	return func(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
		if len(args.Positional) != 2 {
			return scssvalue.Value{}, arityErr(span, "expected (color, amount)")
		}
		if args.Positional[0].Kind != scssvalue.KColor {
			return scssvalue.Value{}, typeErr(span, "$color: expected a color")
		}
		amt, ok := num(args.Positional[1])
		if !ok {
			return scssvalue.Value{}, typeErr(span, "$amount: expected a number")
		}
		pct := amt.Float() / 100
		c := args.Positional[0].Color
		shift := func(ch uint8) uint8 {
			target := 0.0
			if direction > 0 {
				target = 255
			}
			return clamp(int(float64(ch) + (target-float64(ch))*pct))
		}
		out := scssvalue.Color{R: shift(c.R), G: shift(c.G), B: shift(c.B), A: c.A}
		return scssvalue.Col(out, span), nil
	}
}

func percentageFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	n, ok := num(args.Positional[0])
	if !ok || n.Unit != "" {
		return scssvalue.Value{}, typeErr(span, "percentage() expects a unitless number")
	}
	r := new(big.Rat).Mul(n.Rat, big.NewRat(100, 1))
	return scssvalue.Num(scssvalue.NewNumber(r, "%"), span), nil
}

func quoteFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	return scssvalue.Quoted(scssvalue.CSSString(args.Positional[0]), span), nil
}

func unquoteFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	return scssvalue.Unquoted(scssvalue.CSSString(args.Positional[0]), span), nil
}

func typeOfFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	return scssvalue.Unquoted(scssvalue.TypeName(args.Positional[0]), span), nil
}

func lengthFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	l := scssvalue.AsList(args.Positional[0])
	return scssvalue.Num(scssvalue.IntNumber(int64(len(l.Elements)), ""), span), nil
}

func nthFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	l := scssvalue.AsList(args.Positional[0])
	n, ok := num(args.Positional[1])
	if !ok {
		return scssvalue.Value{}, typeErr(span, "$n: expected a number")
	}
	idx := int(n.Float())
	if idx < 0 {
		idx = len(l.Elements) + idx + 1
	}
	if idx < 1 || idx > len(l.Elements) {
		return scssvalue.Value{}, scssast.NewError(scssast.ArityError, span, "index out of bounds for nth()")
	}
	return l.Elements[idx-1], nil
}

func mapGetFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	if args.Positional[0].Kind != scssvalue.KMap {
		return scssvalue.Value{}, typeErr(span, "$map: expected a map")
	}
	v, ok := args.Positional[0].Map.Get(args.Positional[1])
	if !ok {
		return scssvalue.Null(span), nil
	}
	return v, nil
}

func ifFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	if scssvalue.IsTrue(args.Positional[0]) {
		return args.Positional[1], nil
	}
	return args.Positional[2], nil
}

func notFn(args scssvalue.CallArgs, _ scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	return scssvalue.Bool(!scssvalue.IsTrue(args.Positional[0]), span), nil
}
