// This file implements the value/expression evaluator. It walks a slice
// of single-character tokens (as produced by the lexer) and
// produces a scssvalue.Value, handling the full operator precedence table
// and the unit/arithmetic/equality/truthiness rules along the way.
package scssparser

import (
	"math/big"
	"strings"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scssast"
	"github.com/scssc/scssc/internal/scsslexer"
	"github.com/scssc/scssc/internal/scssscope"
	"github.com/scssc/scssc/internal/scssselector"
	"github.com/scssc/scssc/internal/scssvalue"
)

// evalResult is a value plus a "this came from a variable/call/
// parentheses" flag so the "/" operator can decide between literal
// two-number slash and real division, and (for exactly that case) the
// value it would have been had it been combined further, since the
// ambiguity resolves as soon as the result is used as an operand of
// another arithmetic operator.
type evalResult struct {
	Value        scssvalue.Value
	Numeric      scssvalue.Value
	Dynamic      bool
	SlashLiteral bool
}

// resolve forces a tentative literal-slash result into its real numeric
// value — called whenever a result is about to be combined with another
// operator, which is exactly the condition under which the slash must
// mean division.
func resolve(e evalResult) evalResult {
	if e.SlashLiteral {
		return evalResult{Value: e.Numeric, Dynamic: false}
	}
	return e
}

type exprState struct {
	p        *Parser
	toks     []scsslexer.Token
	pos      int
	scope    scssscope.Scope
	superSel scssselector.SelectorList
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func (e *exprState) peek() rune {
	if e.pos >= len(e.toks) {
		return -1
	}
	return e.toks[e.pos].Kind
}

func (e *exprState) peekAt(k int) rune {
	if e.pos+k >= len(e.toks) {
		return -1
	}
	return e.toks[e.pos+k].Kind
}

func (e *exprState) loc() logger.Loc {
	if e.pos < len(e.toks) {
		return e.toks[e.pos].Span.Loc
	}
	if len(e.toks) > 0 {
		return logger.Loc{Start: e.toks[len(e.toks)-1].Span.End()}
	}
	return logger.Loc{}
}

func (e *exprState) rangeFrom(start logger.Loc) logger.Range {
	return logger.Range{Loc: start, Len: e.loc().Start - start.Start}
}

// The following four methods implement the tokSource interface so that
// Parser.EatIdent/ParseQuotedString/ParseInterpolation (internal/scssparser
// parser.go) can run identically whether they're walking a live
// scsstoken.Cursor or a token slice already sliced out for expression
// evaluation.
func (e *exprState) Peek() scsslexer.Token        { return e.tokenAt(0) }
func (e *exprState) PeekAt(k int) scsslexer.Token { return e.tokenAt(k) }
func (e *exprState) AtEOF() bool                  { return e.pos >= len(e.toks) }
func (e *exprState) Next() scsslexer.Token {
	t := e.tokenAt(0)
	if e.pos < len(e.toks) {
		e.pos++
	}
	return t
}
func (e *exprState) Mark() int     { return e.pos }
func (e *exprState) Reset(m int)   { e.pos = m }

func (e *exprState) tokenAt(k int) scsslexer.Token {
	idx := e.pos + k
	if idx < 0 || idx >= len(e.toks) {
		end := logger.Loc{}
		if len(e.toks) > 0 {
			end = logger.Loc{Start: e.toks[len(e.toks)-1].Span.End()}
		}
		return scsslexer.Token{Kind: -1, Span: logger.Range{Loc: end}}
	}
	return e.toks[idx]
}

func (e *exprState) skipSpace() {
	for isSpace(e.peek()) {
		e.pos++
	}
}

func isIdentStart(r rune) bool {
	return r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 127
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// EvalValueList is the top-level entry point: a comma-separated list of
// space-separated lists of single expressions.
// Exactly one bare value unwraps to itself rather than a one-element list.
func (p *Parser) EvalValueList(toks []scsslexer.Token, scope scssscope.Scope, superSel scssselector.SelectorList) (scssvalue.Value, error) {
	st := &exprState{p: p, toks: toks, scope: scope, superSel: superSel}
	st.skipSpace()
	if st.pos >= len(st.toks) {
		return scssvalue.Null(logger.Range{}), nil
	}

	var commaGroups []scssvalue.Value
	var spaceGroup []scssvalue.Value
	bracketed := false
	if st.peek() == '[' {
		bracketed = true
	}

	for {
		start := st.loc()
		res, err := st.parseOr()
		if err != nil {
			return scssvalue.Value{}, err
		}
		// A tentative literal-slash result (e.g. "12px/1.5") is never forced
		// to its numeric quotient here: nothing downstream of this point
		// combines it with another operator, so it stays literal. resolve()
		// only fires inside the additive/comparison/etc. chains above, where
		// the slash result is about to become an operand of something else.
		v := res.Value
		if v.Span == (logger.Range{}) {
			v.Span = st.rangeFrom(start)
		}
		spaceGroup = append(spaceGroup, v)
		st.skipSpace()
		if st.peek() == ',' {
			st.pos++
			st.skipSpace()
			commaGroups = append(commaGroups, collapseSpaceGroup(spaceGroup, bracketed))
			spaceGroup = nil
			bracketed = false
			if st.peek() == '[' {
				bracketed = true
			}
			continue
		}
		if st.pos < len(st.toks) {
			continue
		}
		break
	}
	commaGroups = append(commaGroups, collapseSpaceGroup(spaceGroup, bracketed))

	if len(commaGroups) == 1 {
		return commaGroups[0], nil
	}
	return scssvalue.ListVal(scssvalue.List{Elements: commaGroups, Separator: scssvalue.SepComma}, logger.Range{}), nil
}

func collapseSpaceGroup(group []scssvalue.Value, bracketed bool) scssvalue.Value {
	if len(group) == 1 && !bracketed {
		return group[0]
	}
	return scssvalue.ListVal(scssvalue.List{Elements: group, Separator: scssvalue.SepSpace, Bracketed: bracketed}, logger.Range{})
}

// EvalSingle parses exactly one "or"-precedence expression and ignores
// anything after it; used by @if/@for/@while conditions, which evaluate
// a single expression slice.
func (p *Parser) EvalSingle(toks []scsslexer.Token, scope scssscope.Scope, superSel scssselector.SelectorList) (scssvalue.Value, error) {
	st := &exprState{p: p, toks: toks, scope: scope, superSel: superSel}
	st.skipSpace()
	res, err := st.parseOr()
	if err != nil {
		return scssvalue.Value{}, err
	}
	return resolve(res).Value, nil
}

func (st *exprState) matchWord(word string) bool {
	save := st.pos
	st.skipSpace()
	start := st.pos
	if !isIdentStart(st.peek()) {
		st.pos = save
		return false
	}
	for isIdentCont(st.peek()) {
		st.pos++
	}
	text := identText(st.toks[start:st.pos])
	if strings.EqualFold(text, word) {
		return true
	}
	st.pos = save
	return false
}

func identText(toks []scsslexer.Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteRune(t.Kind)
	}
	return sb.String()
}

func (st *exprState) parseOr() (evalResult, error) {
	left, err := st.parseAnd()
	if err != nil {
		return evalResult{}, err
	}
	for {
		st.skipSpace()
		if !st.matchWord("or") {
			return left, nil
		}
		right, err := st.parseAnd()
		if err != nil {
			return evalResult{}, err
		}
		l, r := resolve(left), resolve(right)
		val := scssvalue.Bool(scssvalue.IsTrue(l.Value) || scssvalue.IsTrue(r.Value), logger.Range{})
		left = evalResult{Value: val}
	}
}

func (st *exprState) parseAnd() (evalResult, error) {
	left, err := st.parseNot()
	if err != nil {
		return evalResult{}, err
	}
	for {
		st.skipSpace()
		if !st.matchWord("and") {
			return left, nil
		}
		right, err := st.parseNot()
		if err != nil {
			return evalResult{}, err
		}
		l, r := resolve(left), resolve(right)
		val := scssvalue.Bool(scssvalue.IsTrue(l.Value) && scssvalue.IsTrue(r.Value), logger.Range{})
		left = evalResult{Value: val}
	}
}

func (st *exprState) parseNot() (evalResult, error) {
	st.skipSpace()
	if st.matchWord("not") {
		operand, err := st.parseNot()
		if err != nil {
			return evalResult{}, err
		}
		v := resolve(operand)
		return evalResult{Value: scssvalue.Bool(!scssvalue.IsTrue(v.Value), logger.Range{})}, nil
	}
	return st.parseEquality()
}

func (st *exprState) parseEquality() (evalResult, error) {
	left, err := st.parseComparison()
	if err != nil {
		return evalResult{}, err
	}
	for {
		st.skipSpace()
		neg := false
		if st.peek() == '=' && st.peekAt(1) == '=' {
			st.pos += 2
		} else if st.peek() == '!' && st.peekAt(1) == '=' {
			st.pos += 2
			neg = true
		} else {
			return left, nil
		}
		right, err := st.parseComparison()
		if err != nil {
			return evalResult{}, err
		}
		l, r := resolve(left), resolve(right)
		eq := scssvalue.Equal(l.Value, r.Value)
		if neg {
			eq = !eq
		}
		left = evalResult{Value: scssvalue.Bool(eq, logger.Range{})}
	}
}

func (st *exprState) parseComparison() (evalResult, error) {
	left, err := st.parseAdditive()
	if err != nil {
		return evalResult{}, err
	}
	for {
		st.skipSpace()
		var op string
		switch {
		case st.peek() == '<' && st.peekAt(1) == '=':
			op = "<="
			st.pos += 2
		case st.peek() == '>' && st.peekAt(1) == '=':
			op = ">="
			st.pos += 2
		case st.peek() == '<':
			op = "<"
			st.pos++
		case st.peek() == '>':
			op = ">"
			st.pos++
		default:
			return left, nil
		}
		right, err := st.parseAdditive()
		if err != nil {
			return evalResult{}, err
		}
		l, r := resolve(left), resolve(right)
		ln, lok := asNumber(l.Value)
		rn, rok := asNumber(r.Value)
		if !lok || !rok {
			return evalResult{}, scssast.NewError(scssast.TypeError, st.rangeFrom(st.loc()), "comparison requires numbers")
		}
		cmp, cmpErr := scssvalue.CompareNumbers(ln, rn)
		if cmpErr != nil {
			return evalResult{}, scssast.NewError(scssast.UnitError, st.rangeFrom(st.loc()), cmpErr.Error())
		}
		var b bool
		switch op {
		case "<":
			b = cmp < 0
		case "<=":
			b = cmp <= 0
		case ">":
			b = cmp > 0
		case ">=":
			b = cmp >= 0
		}
		left = evalResult{Value: scssvalue.Bool(b, logger.Range{})}
	}
}

func asNumber(v scssvalue.Value) (scssvalue.Number, bool) {
	if v.Kind != scssvalue.KNumber {
		return scssvalue.Number{}, false
	}
	return v.Num, true
}

func (st *exprState) parseAdditive() (evalResult, error) {
	left, err := st.parseMultiplicative()
	if err != nil {
		return evalResult{}, err
	}
	for {
		st.skipSpace()
		var sub bool
		switch st.peek() {
		case '+':
			sub = false
		case '-':
			sub = true
		default:
			return left, nil
		}
		// Every "+"/"-" that reaches here is taken as a binary operator;
		// "foo-bar" never arrives as a dangling "-" because the identifier
		// reader has already consumed it whole.
		st.pos++
		right, err := st.parseMultiplicative()
		if err != nil {
			return evalResult{}, err
		}
		l, r := resolve(left), resolve(right)
		if l.Value.Kind == scssvalue.KNumber && r.Value.Kind == scssvalue.KNumber {
			if _, opErr := scssvalue.AddNumbers(l.Value.Num, r.Value.Num, sub); opErr != nil {
				return evalResult{}, scssast.NewError(scssast.UnitError, st.rangeFrom(st.loc()), opErr.Error())
			}
		}
		left = evalResult{Value: addValues(l.Value, r.Value, sub)}
	}
}

// addValues implements "+"/"-": numeric addition with unit conversion,
// color channel addition, and string concatenation (quoted iff the left
// operand is quoted).
func addValues(a, b scssvalue.Value, sub bool) scssvalue.Value {
	if a.Kind == scssvalue.KNumber && b.Kind == scssvalue.KNumber {
		n, errOp := scssvalue.AddNumbers(a.Num, b.Num, sub)
		if errOp != nil {
			return scssvalue.Unquoted(a.Num.String()+opSym(sub)+b.Num.String(), logger.Range{})
		}
		return scssvalue.Num(n, logger.Range{})
	}
	if a.Kind == scssvalue.KColor && b.Kind == scssvalue.KColor && !sub {
		return scssvalue.Col(scssvalue.AddColors(a.Color, b.Color, false), logger.Range{})
	}
	if a.Kind == scssvalue.KColor && b.Kind == scssvalue.KColor && sub {
		return scssvalue.Col(scssvalue.AddColors(a.Color, b.Color, true), logger.Range{})
	}
	if sub {
		return scssvalue.Unquoted(scssvalue.CSSString(a)+"-"+scssvalue.CSSString(b), logger.Range{})
	}
	return scssvalue.Concat(a, b, "")
}

func opSym(sub bool) string {
	if sub {
		return " - "
	}
	return " + "
}

func (st *exprState) parseMultiplicative() (evalResult, error) {
	left, err := st.parseUnary()
	if err != nil {
		return evalResult{}, err
	}
	for {
		st.skipSpace()
		op := st.peek()
		if op != '*' && op != '/' && op != '%' {
			return left, nil
		}
		st.pos++
		right, err := st.parseUnary()
		if err != nil {
			return evalResult{}, err
		}
		if op == '/' {
			leftDynamic := left.Dynamic
			rightDynamic := right.Dynamic
			ln, lok := asNumber(resolve(left).Value)
			rn, rok := asNumber(resolve(right).Value)
			if lok && rok && !leftDynamic && !rightDynamic {
				numeric, divErr := scssvalue.DivNumbers(ln, rn)
				var numericVal scssvalue.Value
				if divErr == nil {
					numericVal = scssvalue.Num(numeric, logger.Range{})
				}
				left = evalResult{
					Value:        scssvalue.Unquoted(ln.String()+"/"+rn.String(), logger.Range{}),
					Numeric:      numericVal,
					SlashLiteral: divErr == nil,
				}
				if divErr != nil {
					return evalResult{}, scssast.NewError(scssast.UnitError, st.rangeFrom(st.loc()), divErr.Error())
				}
				continue
			}
			l, r := resolve(left), resolve(right)
			ln2, lok2 := asNumber(l.Value)
			rn2, rok2 := asNumber(r.Value)
			if !lok2 || !rok2 {
				return evalResult{}, scssast.NewError(scssast.TypeError, st.rangeFrom(st.loc()), "\"/\" requires numbers")
			}
			n, divErr := scssvalue.DivNumbers(ln2, rn2)
			if divErr != nil {
				return evalResult{}, scssast.NewError(scssast.UnitError, st.rangeFrom(st.loc()), divErr.Error())
			}
			left = evalResult{Value: scssvalue.Num(n, logger.Range{}), Dynamic: true}
			continue
		}
		l, r := resolve(left), resolve(right)
		ln, lok := asNumber(l.Value)
		rn, rok := asNumber(r.Value)
		if !lok || !rok {
			return evalResult{}, scssast.NewError(scssast.TypeError, st.rangeFrom(st.loc()), "arithmetic requires numbers")
		}
		var n scssvalue.Number
		var opErr error
		if op == '*' {
			res, e := scssvalue.MulNumbers(ln, rn)
			n, opErr = res, errOrNil(e)
		} else {
			res, e := scssvalue.ModNumbers(ln, rn)
			n, opErr = res, errOrNil(e)
		}
		if opErr != nil {
			return evalResult{}, scssast.NewError(scssast.UnitError, st.rangeFrom(st.loc()), opErr.Error())
		}
		left = evalResult{Value: scssvalue.Num(n, logger.Range{})}
	}
}

func errOrNil(e *scssvalue.OpError) error {
	if e == nil {
		return nil
	}
	return e
}

func (st *exprState) parseUnary() (evalResult, error) {
	st.skipSpace()
	switch st.peek() {
	case '-':
		st.pos++
		operand, err := st.parseUnary()
		if err != nil {
			return evalResult{}, err
		}
		v := resolve(operand)
		if n, ok := asNumber(v.Value); ok {
			neg := new(big.Rat).Neg(n.Rat)
			return evalResult{Value: scssvalue.Num(scssvalue.NewNumber(neg, n.Unit), logger.Range{})}, nil
		}
		return evalResult{Value: scssvalue.Unquoted("-"+scssvalue.CSSString(v.Value), logger.Range{})}, nil
	case '+':
		st.pos++
		return st.parseUnary()
	case '/':
		st.pos++
		operand, err := st.parseUnary()
		if err != nil {
			return evalResult{}, err
		}
		v := resolve(operand)
		return evalResult{Value: scssvalue.Unquoted("/"+scssvalue.CSSString(v.Value), logger.Range{})}, nil
	}
	return st.parsePrimary()
}

func (st *exprState) parsePrimary() (evalResult, error) {
	st.skipSpace()
	start := st.loc()
	c := st.peek()

	switch {
	case c == -1:
		return evalResult{}, scssast.NewError(scssast.SyntaxError, logger.Range{Loc: start}, "unexpected end of expression")

	case c == '(':
		st.pos++
		st.skipSpace()
		inner, err := st.parseOr()
		if err != nil {
			return evalResult{}, err
		}
		st.skipSpace()
		if st.peek() != ')' {
			return evalResult{}, scssast.NewError(scssast.SyntaxError, st.rangeFrom(start), "expected \")\"")
		}
		st.pos++
		v := resolve(inner)
		v.Value.Span = st.rangeFrom(start)
		return evalResult{Value: v.Value, Dynamic: true}, nil

	case c == '[':
		return st.parseListLiteral('[', ']', true)

	case c == '"' || c == '\'':
		quote := c
		st.pos++
		v, err := st.p.ParseQuotedString(st, quote, st.scope, st.superSel)
		if err != nil {
			return evalResult{}, err
		}
		v.Span = st.rangeFrom(start)
		return evalResult{Value: v}, nil

	case c == '$':
		st.pos++
		name, err := st.p.EatIdent(st, st.scope, st.superSel)
		if err != nil {
			return evalResult{}, err
		}
		v, ok := st.scope.GetVar(name)
		if !ok {
			return evalResult{}, scssast.NewError(scssast.ResolutionError, st.rangeFrom(start), "undefined variable \"$"+name+"\"")
		}
		return evalResult{Value: v, Dynamic: true}, nil

	case c == '#' && st.peekAt(1) == '{':
		text, err := st.p.ParseInterpolation(st, st.scope, st.superSel)
		if err != nil {
			return evalResult{}, err
		}
		return evalResult{Value: scssvalue.Unquoted(text, st.rangeFrom(start))}, nil

	case c == '#':
		return st.parseHexColor(start)

	case isDigit(c) || (c == '.' && isDigit(st.peekAt(1))):
		return st.parseNumber(start)

	case isIdentStart(c):
		return st.parseIdentOrCall(start)
	}

	return evalResult{}, scssast.NewError(scssast.SyntaxError, logger.Range{Loc: start}, "unexpected character in expression")
}

func (st *exprState) parseListLiteral(open, close rune, bracketed bool) (evalResult, error) {
	start := st.loc()
	st.pos++ // consume open
	var elems []scssvalue.Value
	sep := scssvalue.SepSpace
	st.skipSpace()
	if st.peek() == close {
		st.pos++
		return evalResult{Value: scssvalue.ListVal(scssvalue.List{Separator: sep, Bracketed: bracketed}, st.rangeFrom(start))}, nil
	}
	for {
		v, err := st.parseOr()
		if err != nil {
			return evalResult{}, err
		}
		elems = append(elems, resolve(v).Value)
		st.skipSpace()
		if st.peek() == ',' {
			sep = scssvalue.SepComma
			st.pos++
			st.skipSpace()
			continue
		}
		break
	}
	if st.peek() != close {
		return evalResult{}, scssast.NewError(scssast.SyntaxError, st.rangeFrom(start), "expected closing bracket")
	}
	st.pos++
	return evalResult{Value: scssvalue.ListVal(scssvalue.List{Elements: elems, Separator: sep, Bracketed: bracketed}, st.rangeFrom(start))}, nil
}

func (st *exprState) parseHexColor(start logger.Loc) (evalResult, error) {
	st.pos++ // consume '#'
	hexStart := st.pos
	for isHexDigit(st.peek()) {
		st.pos++
	}
	hex := identText(st.toks[hexStart:st.pos])
	c, ok := parseHex(hex)
	if !ok {
		return evalResult{}, scssast.NewError(scssast.SyntaxError, st.rangeFrom(start), "invalid hex color")
	}
	return evalResult{Value: scssvalue.Col(c.WithLiteral("#"+hex), st.rangeFrom(start))}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

func parseHex(hex string) (scssvalue.Color, bool) {
	expand := func(c rune) uint8 { return uint8(hexVal(c)*16 + hexVal(c)) }
	switch len(hex) {
	case 3:
		r := []rune(hex)
		return scssvalue.Color{R: expand(r[0]), G: expand(r[1]), B: expand(r[2]), A: 1}, true
	case 4:
		r := []rune(hex)
		return scssvalue.Color{R: expand(r[0]), G: expand(r[1]), B: expand(r[2]), A: float64(hexVal(r[3])*16+hexVal(r[3])) / 255}, true
	case 6:
		r := []rune(hex)
		return scssvalue.Color{
			R: uint8(hexVal(r[0])*16 + hexVal(r[1])),
			G: uint8(hexVal(r[2])*16 + hexVal(r[3])),
			B: uint8(hexVal(r[4])*16 + hexVal(r[5])),
			A: 1,
		}, true
	case 8:
		r := []rune(hex)
		return scssvalue.Color{
			R: uint8(hexVal(r[0])*16 + hexVal(r[1])),
			G: uint8(hexVal(r[2])*16 + hexVal(r[3])),
			B: uint8(hexVal(r[4])*16 + hexVal(r[5])),
			A: float64(hexVal(r[6])*16+hexVal(r[7])) / 255,
		}, true
	}
	return scssvalue.Color{}, false
}

func (st *exprState) parseNumber(start logger.Loc) (evalResult, error) {
	numStart := st.pos
	for isDigit(st.peek()) {
		st.pos++
	}
	if st.peek() == '.' && isDigit(st.peekAt(1)) {
		st.pos++
		for isDigit(st.peek()) {
			st.pos++
		}
	}
	text := identText(st.toks[numStart:st.pos])
	rat, ok := new(big.Rat).SetString(text)
	if !ok {
		return evalResult{}, scssast.NewError(scssast.SyntaxError, st.rangeFrom(start), "invalid number")
	}
	unit := ""
	if st.peek() == '%' {
		unit = "%"
		st.pos++
	} else if isIdentStart(st.peek()) && st.peek() != '-' || (st.peek() == '-' && isIdentCont(st.peekAt(1))) {
		unitStart := st.pos
		for isIdentCont(st.peek()) {
			st.pos++
		}
		unit = identText(st.toks[unitStart:st.pos])
	}
	return evalResult{Value: scssvalue.Num(scssvalue.NewNumber(rat, unit), st.rangeFrom(start))}, nil
}

func (st *exprState) parseIdentOrCall(start logger.Loc) (evalResult, error) {
	name, err := st.p.EatIdent(st, st.scope, st.superSel)
	if err != nil {
		return evalResult{}, err
	}
	switch strings.ToLower(name) {
	case "true":
		return evalResult{Value: scssvalue.Bool(true, st.rangeFrom(start))}, nil
	case "false":
		return evalResult{Value: scssvalue.Bool(false, st.rangeFrom(start))}, nil
	case "null":
		return evalResult{Value: scssvalue.Null(st.rangeFrom(start))}, nil
	}
	if rgb, ok := scssvalue.LookupNamedColor(strings.ToLower(name)); ok && st.peek() != '(' {
		return evalResult{Value: scssvalue.Col(scssvalue.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 1}.WithLiteral(name), st.rangeFrom(start))}, nil
	}
	if strings.EqualFold(name, "transparent") && st.peek() != '(' {
		return evalResult{Value: scssvalue.Col(scssvalue.Color{A: 0}.WithLiteral("transparent"), st.rangeFrom(start))}, nil
	}
	if st.peek() == '(' {
		args, err := st.p.parseArgList(st, st.scope, st.superSel)
		if err != nil {
			return evalResult{}, err
		}
		v, err := st.p.callFunction(name, args, st.scope, st.superSel, st.rangeFrom(start))
		if err != nil {
			return evalResult{}, err
		}
		return evalResult{Value: v, Dynamic: true}, nil
	}
	return evalResult{Value: scssvalue.Unquoted(name, st.rangeFrom(start))}, nil
}

