// This file implements the "@"-rule dispatcher: the full set of control
// and at-rule directives, split out from atrules.go's construct classifier
// into one file per cohesive group of at-rules rather than one very long
// switch.
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

var knownPassthroughAtRules = map[string]bool{
	"media":      true,
	"supports":   true,
	"keyframes":  true,
	"font-face":  true,
	"page":       true,
	"document":   true,
	"namespace":  true,
	"viewport":   true,
	"font-feature-values": true,
}

func (p *Parser) evalAtRule(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	sc.Next() // '@'
	name, err := p.EatIdent(sc, scope, superSel)
	if err != nil {
		return err
	}
	lower := strings.ToLower(name)

	switch lower {
	case "mixin":
		return p.evalMixinDef(sc, scope, superSel)
	case "function":
		return p.evalFunctionDef(sc, scope, superSel)
	case "include":
		return p.evalInclude(sc, scope, superSel, out)
	case "content":
		return p.evalContent(sc, scope, superSel, out)
	case "if":
		return p.evalIfChain(sc, scope, superSel, out)
	case "for":
		return p.evalFor(sc, scope, superSel, out)
	case "each":
		return p.evalEach(sc, scope, superSel, out)
	case "while":
		return p.evalWhile(sc, scope, superSel, out)
	case "import":
		return p.evalImport(sc, scope, superSel, out)
	case "charset":
		// Dropped at output: a leading @charset never affects this
		// compiler's own always-UTF-8 output.
		_, term := readStatementHead(sc)
		if term == ';' {
			sc.Next()
		}
		return nil
	case "error":
		return p.evalMessageDirective(sc, scope, superSel, scssast.UserError)
	case "warn":
		return p.evalWarnOrDebug(sc, scope, superSel, false)
	case "debug":
		return p.evalWarnOrDebug(sc, scope, superSel, true)
	case "return":
		return scssast.NewError(scssast.UserError, logger.Range{}, "\"@return\" is only valid inside a function body")
	case "else":
		return scssast.NewError(scssast.SyntaxError, logger.Range{}, "\"@else\" without a preceding \"@if\"")
	default:
		return p.evalUnknownAtRule(sc, name, scope, superSel, out)
	}
}

func (p *Parser) evalMixinDef(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList) error {
	sc.devourWhitespace()
	name, err := p.EatIdent(sc, scope, superSel)
	if err != nil {
		return err
	}
	sc.devourWhitespace()
	var params []scssscope.Param
	if sc.Peek().Kind == '(' {
		params, err = p.parseFormalParams(sc, scope, superSel)
		if err != nil {
			return err
		}
	}
	sc.devourWhitespace()
	if sc.Peek().Kind != '{' {
		return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" in @mixin "+name)
	}
	body := readBalancedBody(sc)
	scope.InsertMixin(name, scssscope.MixinDef{Name: name, Params: params, Body: body, Closure: scope.Clone()})
	return nil
}

func (p *Parser) evalFunctionDef(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList) error {
	sc.devourWhitespace()
	name, err := p.EatIdent(sc, scope, superSel)
	if err != nil {
		return err
	}
	sc.devourWhitespace()
	var params []scssscope.Param
	if sc.Peek().Kind == '(' {
		params, err = p.parseFormalParams(sc, scope, superSel)
		if err != nil {
			return err
		}
	}
	sc.devourWhitespace()
	if sc.Peek().Kind != '{' {
		return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" in @function "+name)
	}
	body := readBalancedBody(sc)
	scope.InsertFn(name, scssscope.FunctionDef{Name: name, Params: params, Body: body, Closure: scope.Clone()})
	return nil
}

func (p *Parser) evalInclude(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	sc.devourWhitespace()
	name, err := p.EatIdent(sc, scope, superSel)
	if err != nil {
		return err
	}
	sc.devourWhitespace()
	args := scssvalue.NewCallArgs()
	if sc.Peek().Kind == '(' {
		args, err = p.parseArgList(sc, scope, superSel)
		if err != nil {
			return err
		}
	}
	sc.devourWhitespace()
	var contentBody []scsslexer.Token
	hasContent := false
	if sc.Peek().Kind == '{' {
		contentBody = readBalancedBody(sc)
		hasContent = true
	} else {
		_, term := readStatementHead(sc)
		if term == ';' {
			sc.Next()
		}
	}

	mixin, ok := scope.GetMixin(name)
	if !ok {
		return scssast.NewError(scssast.ResolutionError, logger.Range{}, "undefined mixin \""+name+"\"")
	}
	callScope, err := p.bindParams(mixin.Params, args, mixin.Closure, superSel)
	if err != nil {
		return err
	}
	if hasContent {
		p.contentStack = append(p.contentStack, contentFrame{body: contentBody, scope: scope})
		defer func() { p.contentStack = p.contentStack[:len(p.contentStack)-1] }()
	}
	rules, err := p.evalBlock(newSliceCursor(mixin.Body), callScope, superSel)
	if err != nil {
		return err
	}
	*out = append(*out, rules...)
	return nil
}

func (p *Parser) evalContent(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	sc.devourWhitespace()
	if sc.Peek().Kind == '(' {
		// Content blocks taking their own arguments are outside this
		// compiler's scope; consume and ignore the argument list.
		if _, err := p.parseArgList(sc, scope, superSel); err != nil {
			return err
		}
	}
	_, term := readStatementHead(sc)
	if term == ';' {
		sc.Next()
	}
	if len(p.contentStack) == 0 {
		return nil
	}
	frame := p.contentStack[len(p.contentStack)-1]
	rules, err := p.evalBlock(newSliceCursor(frame.body), frame.scope.Clone(), superSel)
	if err != nil {
		return err
	}
	*out = append(*out, rules...)
	return nil
}

func (p *Parser) evalIfChain(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	cond, term := readStatementHead(sc)
	if term != '{' {
		return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" after @if condition")
	}
	body := readBalancedBody(sc)
	v, err := p.EvalSingle(trimSpaceToks(cond), scope, superSel)
	if err != nil {
		return err
	}
	taken := scssvalue.IsTrue(v)
	if taken {
		rules, err := p.evalBlock(newSliceCursor(body), scope.Clone(), superSel)
		if err != nil {
			return err
		}
		*out = append(*out, rules...)
	}

	for {
		mark := sc.Mark()
		sc.devourWhitespace()
		if sc.Peek().Kind != '@' {
			sc.Reset(mark)
			return nil
		}
		save := sc.Mark()
		sc.Next()
		word, err := p.EatIdent(sc, scope, superSel)
		if err != nil || !strings.EqualFold(word, "else") {
			sc.Reset(save)
			return nil
		}
		sc.devourWhitespace()
		isElseIf := false
		var elifCond []scsslexer.Token
		if w, ok := peekWord(sc); ok && strings.EqualFold(w, "if") {
			_, _ = p.EatIdent(sc, scope, superSel) // consumes "if"
			isElseIf = true
			elifCond, term = readStatementHead(sc)
			if term != '{' {
				return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" after @else if condition")
			}
		} else if sc.Peek().Kind != '{' {
			return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" after @else")
		}
		elseBody := readBalancedBody(sc)
		if taken {
			continue
		}
		if isElseIf {
			v, err := p.EvalSingle(trimSpaceToks(elifCond), scope, superSel)
			if err != nil {
				return err
			}
			if !scssvalue.IsTrue(v) {
				continue
			}
		}
		taken = true
		rules, err := p.evalBlock(newSliceCursor(elseBody), scope.Clone(), superSel)
		if err != nil {
			return err
		}
		*out = append(*out, rules...)
	}
}

func peekWord(sc *sliceCursor) (string, bool) {
	mark := sc.Mark()
	defer sc.Reset(mark)
	if !isIdentStart(sc.Peek().Kind) {
		return "", false
	}
	var sb strings.Builder
	for isIdentCont(sc.Peek().Kind) {
		sb.WriteRune(sc.Next().Kind)
	}
	return sb.String(), true
}

// readUntilKeyword scans tokens at bracket depth 0 until an identifier
// matching one of words is found (without consuming it), used by @for's
// "from X through/to Y" header where the stop condition is a keyword
// rather than a punctuation character.
func readUntilKeyword(sc *sliceCursor, words ...string) []scsslexer.Token {
	var out []scsslexer.Token
	depth := 0
	for !sc.AtEOF() {
		if depth == 0 && isIdentStart(sc.Peek().Kind) {
			if w, ok := peekWord(sc); ok {
				for _, want := range words {
					if strings.EqualFold(w, want) {
						return out
					}
				}
			}
		}
		switch sc.Peek().Kind {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		}
		out = append(out, sc.Next())
	}
	return out
}

func (sc *sliceCursor) matchWord(word string) bool {
	sc.devourWhitespace()
	mark := sc.Mark()
	if w, ok := peekWord(sc); ok && strings.EqualFold(w, word) {
		for range []rune(w) {
			sc.Next()
		}
		return true
	}
	sc.Reset(mark)
	return false
}

// forHeader is the parsed-but-not-yet-run shape of "@for $var from A
// through|to B { body }", shared by the statement-level @for (which runs
// each iteration through evalBlock) and the function-body @for (which runs
// each iteration through execFunctionBody and can short-circuit on
// @return).
type forHeader struct {
	varName   string
	from, to  *big.Rat
	unit      string
	direction *big.Rat
	inclusive bool
	body      []scsslexer.Token
}

func (p *Parser) parseForHeader(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList) (forHeader, error) {
	sc.devourWhitespace()
	if sc.Peek().Kind != '$' {
		return forHeader{}, scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"$var\" after @for")
	}
	sc.Next()
	varName, err := p.EatIdent(sc, scope, superSel)
	if err != nil {
		return forHeader{}, err
	}
	sc.devourWhitespace()
	if !sc.matchWord("from") {
		return forHeader{}, scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"from\" in @for")
	}
	fromToks := readUntilKeyword(sc, "through", "to")
	var inclusive bool
	if sc.matchWord("through") {
		inclusive = true
	} else if sc.matchWord("to") {
		inclusive = false
	} else {
		return forHeader{}, scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"through\" or \"to\" in @for")
	}
	toHead, term := readStatementHead(sc)
	if term != '{' {
		return forHeader{}, scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" after @for range")
	}
	body := readBalancedBody(sc)

	fromV, err := p.EvalSingle(trimSpaceToks(fromToks), scope, superSel)
	if err != nil {
		return forHeader{}, err
	}
	toV, err := p.EvalSingle(trimSpaceToks(toHead), scope, superSel)
	if err != nil {
		return forHeader{}, err
	}
	fromN, ok1 := asNumber(fromV)
	toN, ok2 := asNumber(toV)
	if !ok1 || !ok2 {
		return forHeader{}, scssast.NewError(scssast.TypeError, logger.Range{}, "@for bounds must be numbers")
	}
	direction := big.NewRat(1, 1)
	if fromN.Rat.Cmp(toN.Rat) > 0 {
		direction = big.NewRat(-1, 1)
	}
	return forHeader{
		varName: varName, from: fromN.Rat, to: toN.Rat, unit: fromN.Unit,
		direction: direction, inclusive: inclusive, body: body,
	}, nil
}

func (h forHeader) continues(i *big.Rat) bool {
	if h.direction.Sign() > 0 {
		if h.inclusive {
			return i.Cmp(h.to) <= 0
		}
		return i.Cmp(h.to) < 0
	}
	if h.inclusive {
		return i.Cmp(h.to) >= 0
	}
	return i.Cmp(h.to) > 0
}

func (p *Parser) evalFor(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	h, err := p.parseForHeader(sc, scope, superSel)
	if err != nil {
		return err
	}
	childScope := scope.Clone()
	for i := new(big.Rat).Set(h.from); h.continues(i); i = new(big.Rat).Add(i, h.direction) {
		childScope.InsertVar(h.varName, scssvalue.Num(scssvalue.NewNumber(new(big.Rat).Set(i), h.unit), logger.Range{}))
		rules, err := p.evalBlock(newSliceCursor(h.body), childScope, superSel)
		if err != nil {
			return err
		}
		*out = append(*out, rules...)
	}
	return nil
}

// execFunctionFor is @for's function-body counterpart: it runs the same
// iteration bookkeeping as evalFor but through execFunctionBody, returning
// as soon as an iteration's @return fires.
func (p *Parser) execFunctionFor(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList) (scssvalue.Value, bool, error) {
	h, err := p.parseForHeader(sc, scope, superSel)
	if err != nil {
		return scssvalue.Value{}, false, err
	}
	childScope := scope.Clone()
	for i := new(big.Rat).Set(h.from); h.continues(i); i = new(big.Rat).Add(i, h.direction) {
		childScope.InsertVar(h.varName, scssvalue.Num(scssvalue.NewNumber(new(big.Rat).Set(i), h.unit), logger.Range{}))
		v, returned, err := p.execFunctionBody(newSliceCursor(h.body), childScope, superSel)
		if err != nil {
			return scssvalue.Value{}, false, err
		}
		if returned {
			return v, true, nil
		}
	}
	return scssvalue.Value{}, false, nil
}

func (p *Parser) evalEach(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	var names []string
	for {
		sc.devourWhitespace()
		if sc.Peek().Kind != '$' {
			return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"$var\" after @each")
		}
		sc.Next()
		n, err := p.EatIdent(sc, scope, superSel)
		if err != nil {
			return err
		}
		names = append(names, n)
		sc.devourWhitespace()
		if sc.Peek().Kind == ',' {
			sc.Next()
			continue
		}
		break
	}
	if !sc.matchWord("in") {
		return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"in\" in @each")
	}
	listHead, term := readStatementHead(sc)
	if term != '{' {
		return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" after @each source")
	}
	body := readBalancedBody(sc)
	listV, err := p.EvalSingle(trimSpaceToks(listHead), scope, superSel)
	if err != nil {
		return err
	}

	childScope := scope.Clone()
	bindAndRun := func(vals []scssvalue.Value) error {
		if len(names) >= 2 {
			for i, nm := range names {
				if i < len(vals) {
					childScope.InsertVar(nm, vals[i])
				} else {
					childScope.InsertVar(nm, scssvalue.Null(logger.Range{}))
				}
			}
		} else {
			if len(vals) == 1 {
				childScope.InsertVar(names[0], vals[0])
			} else {
				childScope.InsertVar(names[0], scssvalue.ListVal(scssvalue.List{Elements: vals, Separator: scssvalue.SepSpace}, logger.Range{}))
			}
		}
		rules, err := p.evalBlock(newSliceCursor(body), childScope, superSel)
		if err != nil {
			return err
		}
		*out = append(*out, rules...)
		return nil
	}

	if listV.Kind == scssvalue.KMap {
		for _, pair := range listV.Map.Pairs {
			if err := bindAndRun([]scssvalue.Value{pair.Key, pair.Value}); err != nil {
				return err
			}
		}
		return nil
	}
	l := scssvalue.AsList(listV)
	for _, elem := range l.Elements {
		var vals []scssvalue.Value
		if len(names) >= 2 && elem.Kind == scssvalue.KList {
			vals = elem.List.Elements
		} else {
			vals = []scssvalue.Value{elem}
		}
		if err := bindAndRun(vals); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) evalWhile(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	cond, term := readStatementHead(sc)
	if term != '{' {
		return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" after @while condition")
	}
	body := readBalancedBody(sc)
	condToks := trimSpaceToks(cond)
	childScope := scope.Clone()
	for {
		v, err := p.EvalSingle(condToks, childScope, superSel)
		if err != nil {
			return err
		}
		if !scssvalue.IsTrue(v) {
			return nil
		}
		rules, err := p.evalBlock(newSliceCursor(body), childScope, superSel)
		if err != nil {
			return err
		}
		*out = append(*out, rules...)
	}
}

func (p *Parser) evalImport(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	head, term := readStatementHead(sc)
	if term == ';' {
		sc.Next()
	}
	text, err := p.resolveInterpolatedText(trimSpaceToks(head), scope, superSel)
	if err != nil {
		return err
	}
	if p.importer == nil {
		return scssast.NewError(scssast.IoError, logger.Range{}, "@import is not available in this context")
	}
	for _, spec := range splitImportList(text) {
		src, err := p.importer.Resolve(p.source.PrettyPath, spec)
		if err != nil {
			return scssast.NewError(scssast.IoError, logger.Range{}, err.Error())
		}
		child := NewParser(src, p.log, p.builtins, p.importer)
		child.rootScope = p.rootScope
		stmts, err := child.parseWithScope(scope)
		if err != nil {
			return err
		}
		*out = append(*out, stmts...)
	}
	return nil
}

// parseWithScope is like ParseStylesheet but evaluates into an
// already-existing scope (used by @import, which folds the imported
// file's top-level bindings directly into the importing scope rather than
// starting fresh).
func (p *Parser) parseWithScope(scope scssscope.Scope) ([]scssast.Statement, error) {
	var toks []scsslexer.Token
	for !p.cur.AtEOF() {
		toks = append(toks, p.cur.Next())
	}
	return p.evalBlock(newSliceCursor(toks), scope, scssselector.SelectorList{})
}

// splitImportList splits a "@import" prelude on top-level commas, each a
// quoted or bare specifier; quotes are stripped.
func splitImportList(text string) []string {
	var out []string
	depth := 0
	start := 0
	runes := []rune(text)
	for i, r := range runes {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, unquoteSpec(strings.TrimSpace(string(runes[start:i]))))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		out = append(out, unquoteSpec(tail))
	}
	return out
}

func unquoteSpec(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func (p *Parser) evalMessageDirective(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, kind scssast.ErrorKind) error {
	head, term := readStatementHead(sc)
	if term == ';' {
		sc.Next()
	}
	v, err := p.EvalValueList(trimSpaceToks(head), scope, superSel)
	if err != nil {
		return err
	}
	return scssast.NewError(kind, logger.Range{}, scssvalue.CSSString(v))
}

func (p *Parser) evalWarnOrDebug(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, debug bool) error {
	head, term := readStatementHead(sc)
	if term == ';' {
		sc.Next()
	}
	v, err := p.EvalValueList(trimSpaceToks(head), scope, superSel)
	if err != nil {
		return err
	}
	text := scssvalue.CSSString(v)
	if debug {
		p.log.AddDebug(p.source, logger.Range{}, text)
	} else {
		p.log.AddWarning(p.source, logger.Range{}, text)
	}
	return nil
}

func (p *Parser) evalUnknownAtRule(sc *sliceCursor, name string, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	head, term := readStatementHead(sc)
	prelude, err := p.resolveInterpolatedText(trimSpaceToks(head), scope, superSel)
	if err != nil {
		return err
	}
	var rules []scssast.Statement
	switch term {
	case '{':
		body := readBalancedBody(sc)
		rules, err = p.evalBlock(newSliceCursor(body), scope.Clone(), superSel)
		if err != nil {
			return err
		}
	case ';':
		sc.Next()
	}
	_, known := knownPassthroughAtRules[strings.ToLower(name)]
	*out = append(*out, scssast.AtRuleStmt(scssast.AtRule{Name: name, Prelude: prelude, Rules: rules, IsUnknown: !known}))
	return nil
}

// execFunctionBody runs a function body restricted to variable
// assignment, @if/@else chains, @for loops, and a terminating
// @return; it is deliberately smaller than evalConstruct since rule sets,
// mixin includes, and nested at-rules have no meaning inside a function.
func (p *Parser) execFunctionBody(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList) (scssvalue.Value, bool, error) {
	for {
		sc.devourWhitespace()
		if sc.AtEOF() {
			return scssvalue.Value{}, false, nil
		}
		c := sc.Peek().Kind
		switch {
		case c == '$':
			if err := p.evalVariableAssignment(sc, scope, superSel); err != nil {
				return scssvalue.Value{}, false, err
			}
		case c == '@':
			sc.Next()
			name, err := p.EatIdent(sc, scope, superSel)
			if err != nil {
				return scssvalue.Value{}, false, err
			}
			switch strings.ToLower(name) {
			case "return":
				head, term := readStatementHead(sc)
				if term == ';' {
					sc.Next()
				}
				v, err := p.EvalValueList(trimSpaceToks(head), scope, superSel)
				if err != nil {
					return scssvalue.Value{}, false, err
				}
				return v, true, nil
			case "if":
				v, done, err := p.execFunctionIf(sc, scope, superSel)
				if err != nil {
					return scssvalue.Value{}, false, err
				}
				if done {
					return v, true, nil
				}
			case "for":
				v, done, err := p.execFunctionFor(sc, scope, superSel)
				if err != nil {
					return scssvalue.Value{}, false, err
				}
				if done {
					return v, true, nil
				}
			default:
				return scssvalue.Value{}, false, scssast.NewError(scssast.UserError, logger.Range{}, "\"@"+name+"\" is not valid inside a function body")
			}
		default:
			return scssvalue.Value{}, false, scssast.NewError(scssast.SyntaxError, logger.Range{}, "unexpected statement inside function body")
		}
	}
}

// execFunctionIf mirrors evalIfChain but propagates a @return found inside
// any taken branch back up to the caller instead of collecting CSS
// statements, since a function's @if branches contain more statements
// (including further @if/@for) rather than declarations.
func (p *Parser) execFunctionIf(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList) (scssvalue.Value, bool, error) {
	cond, term := readStatementHead(sc)
	if term != '{' {
		return scssvalue.Value{}, false, scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" after @if condition")
	}
	body := readBalancedBody(sc)
	v, err := p.EvalSingle(trimSpaceToks(cond), scope, superSel)
	if err != nil {
		return scssvalue.Value{}, false, err
	}
	taken := scssvalue.IsTrue(v)
	var result scssvalue.Value
	var returned bool
	if taken {
		result, returned, err = p.execFunctionBody(newSliceCursor(body), scope.Clone(), superSel)
		if err != nil {
			return scssvalue.Value{}, false, err
		}
	}

	for {
		mark := sc.Mark()
		sc.devourWhitespace()
		save := sc.Mark()
		if sc.Peek().Kind != '@' {
			sc.Reset(mark)
			return result, returned, nil
		}
		sc.Next()
		word, err := p.EatIdent(sc, scope, superSel)
		if err != nil || !strings.EqualFold(word, "else") {
			sc.Reset(save)
			return result, returned, nil
		}
		sc.devourWhitespace()
		isElseIf := false
		var elifCond []scsslexer.Token
		if w, ok := peekWord(sc); ok && strings.EqualFold(w, "if") {
			_, _ = p.EatIdent(sc, scope, superSel)
			isElseIf = true
			elifCond, term = readStatementHead(sc)
			if term != '{' {
				return scssvalue.Value{}, false, scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" after @else if condition")
			}
		} else if sc.Peek().Kind != '{' {
			return scssvalue.Value{}, false, scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"{\" after @else")
		}
		elseBody := readBalancedBody(sc)
		if taken {
			continue
		}
		if isElseIf {
			v, err := p.EvalSingle(trimSpaceToks(elifCond), scope, superSel)
			if err != nil {
				return scssvalue.Value{}, false, err
			}
			if !scssvalue.IsTrue(v) {
				continue
			}
		}
		taken = true
		result, returned, err = p.execFunctionBody(newSliceCursor(elseBody), scope.Clone(), superSel)
		if err != nil {
			return scssvalue.Value{}, false, err
		}
	}
}
