// Package scssparser is the single-pass recursive-descent driver: it walks
// the character cursor from internal/scsstoken, classifies each construct
// (style declaration, rule set, at-rule, comment), evaluates it immediately
// against the current internal/scssscope, and emits internal/scssast
// statements as it goes. There is no separate parse-then-evaluate phase.
package scssparser

import (
	"strings"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scssast"
	"github.com/scssc/scssc/internal/scssbuiltin"
	"github.com/scssc/scssc/internal/scsslexer"
	"github.com/scssc/scssc/internal/scssscope"
	"github.com/scssc/scssc/internal/scssselector"
	"github.com/scssc/scssc/internal/scsstoken"
	"github.com/scssc/scssc/internal/scssvalue"
)

// Importer resolves an "@import" specifier relative to the file that
// contains it, returning the source to recurse into and a pretty path for
// diagnostics. internal/scssfs implements this; keeping the interface here
// (rather than importing scssfs) keeps this package free of any filesystem
// dependency of its own.
type Importer interface {
	Resolve(fromPrettyPath, spec string) (*logger.Source, error)
}

// Parser holds everything one compilation needs: the character cursor, the
// diagnostics log, the registered built-in functions, and (optionally) an
// Importer for "@import". A Parser is used for exactly one source tree —
// recursive @import calls construct a fresh *Parser sharing the same log
// and builtins.
type Parser struct {
	cur      *scsstoken.Cursor
	source   *logger.Source
	log      *logger.Log
	builtins *scssbuiltin.Registry
	importer Importer

	// rootScope is the "!global" write target: bypass every enclosing
	// scope and write to the root, set once by ParseStylesheet.
	rootScope scssscope.Scope

	// contentStack stacks the token body of the most recent "@include ... {
	// }" call site so a nested "@content" inside the called mixin's body
	// can splice it back in, with the scope it closed over.
	contentStack []contentFrame
}

type contentFrame struct {
	body  []scsslexer.Token
	scope scssscope.Scope
}

func NewParser(source *logger.Source, log *logger.Log, builtins *scssbuiltin.Registry, importer Importer) *Parser {
	return &Parser{
		cur:      scsstoken.New(source),
		source:   source,
		log:      log,
		builtins: builtins,
		importer: importer,
	}
}

// tokSource is the minimal read interface shared by the live
// *scsstoken.Cursor (driving the statement-level grammar) and the
// pre-sliced *exprState / *sliceCursor (driving expression evaluation and
// function/mixin body execution), so EatIdent/ParseQuotedString/
// ParseInterpolation work identically over either.
type tokSource interface {
	Peek() scsslexer.Token
	PeekAt(k int) scsslexer.Token
	Next() scsslexer.Token
	AtEOF() bool
	Mark() int
	Reset(m int)
}

// sliceCursor is a tokSource over an already-extracted token slice, used to
// drive the statement grammar over the stylesheet and over rule-set, mixin
// and function bodies (function bodies are limited to variable
// assignments, @if, @for and @return).
type sliceCursor struct {
	toks []scsslexer.Token
	pos  int
}

func newSliceCursor(toks []scsslexer.Token) *sliceCursor {
	return &sliceCursor{toks: toks}
}

func (c *sliceCursor) Peek() scsslexer.Token { return c.PeekAt(0) }

func (c *sliceCursor) PeekAt(k int) scsslexer.Token {
	idx := c.pos + k
	if idx < 0 || idx >= len(c.toks) {
		end := logger.Loc{}
		if len(c.toks) > 0 {
			end = logger.Loc{Start: c.toks[len(c.toks)-1].Span.End()}
		}
		return scsslexer.Token{Kind: -1, Span: logger.Range{Loc: end}}
	}
	return c.toks[idx]
}

func (c *sliceCursor) Next() scsslexer.Token {
	t := c.PeekAt(0)
	if c.pos < len(c.toks) {
		c.pos++
	}
	return t
}

func (c *sliceCursor) AtEOF() bool { return c.pos >= len(c.toks) }

func (c *sliceCursor) Mark() int   { return c.pos }
func (c *sliceCursor) Reset(m int) { c.pos = m }

func (c *sliceCursor) devourWhitespace() {
	for isSpace(c.Peek().Kind) {
		c.Next()
	}
}

// devourWS is the tokSource-generic equivalent of sliceCursor/exprState's
// own devourWhitespace, used by the shared argument-list and formal-
// parameter-list parsers that run over either concrete cursor type.
func devourWS(ts tokSource) {
	for isSpace(ts.Peek().Kind) {
		ts.Next()
	}
}

// readBalancedUntilGeneric collects tokens up to (not including) the next
// occurrence of any stop rune at bracket depth 0.
func readBalancedUntilGeneric(ts tokSource, stops ...rune) []scsslexer.Token {
	var out []scsslexer.Token
	depth := 0
	for !ts.AtEOF() {
		c := ts.Peek().Kind
		if depth == 0 {
			for _, s := range stops {
				if c == s {
					return out
				}
			}
		}
		switch c {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		}
		out = append(out, ts.Next())
	}
	return out
}

// parseArgList parses a parenthesized, comma-separated actual-argument
// list, recognizing "$name: value" named arguments. The opening "(" must
// be the current token. Shared by the expression evaluator's function
// calls and the statement driver's "@include".
func (p *Parser) parseArgList(ts tokSource, scope scssscope.Scope, superSel scssselector.SelectorList) (scssvalue.CallArgs, error) {
	args := scssvalue.NewCallArgs()
	ts.Next() // '('
	devourWS(ts)
	if ts.Peek().Kind == ')' {
		ts.Next()
		return args, nil
	}
	for {
		devourWS(ts)
		name := ""
		if ts.Peek().Kind == '$' {
			mark := ts.Mark()
			ts.Next()
			n, err := p.EatIdent(ts, scope, superSel)
			if err != nil {
				return args, err
			}
			devourWS(ts)
			if ts.Peek().Kind == ':' {
				ts.Next()
				name = n
			} else {
				ts.Reset(mark)
			}
		}
		valToks := readBalancedUntilGeneric(ts, ',', ')')
		v, err := p.EvalValueList(valToks, scope, superSel)
		if err != nil {
			return args, err
		}
		if name != "" {
			args.Named[name] = v
		} else {
			args.Positional = append(args.Positional, v)
		}
		devourWS(ts)
		if ts.Peek().Kind == ',' {
			ts.Next()
			continue
		}
		break
	}
	devourWS(ts)
	if ts.Peek().Kind != ')' {
		return args, scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \")\" in argument list")
	}
	ts.Next()
	return args, nil
}

// parseFormalParams parses a "@mixin"/"@function" parameter list: each
// parameter is "$name", optionally "$name: default", and the last
// parameter may instead be "$name...".
func (p *Parser) parseFormalParams(ts tokSource, scope scssscope.Scope, superSel scssselector.SelectorList) ([]scssscope.Param, error) {
	ts.Next() // '('
	devourWS(ts)
	var params []scssscope.Param
	if ts.Peek().Kind == ')' {
		ts.Next()
		return params, nil
	}
	for {
		devourWS(ts)
		if ts.Peek().Kind != '$' {
			return nil, scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \"$\" in parameter list")
		}
		ts.Next()
		name, err := p.EatIdent(ts, scope, superSel)
		if err != nil {
			return nil, err
		}
		param := scssscope.Param{Name: name}
		devourWS(ts)
		if ts.Peek().Kind == '.' && ts.PeekAt(1).Kind == '.' && ts.PeekAt(2).Kind == '.' {
			ts.Next()
			ts.Next()
			ts.Next()
			param.Variadic = true
		} else if ts.Peek().Kind == ':' {
			ts.Next()
			devourWS(ts)
			param.Default = readBalancedUntilGeneric(ts, ',', ')')
			param.HasDefault = true
		}
		params = append(params, param)
		devourWS(ts)
		if ts.Peek().Kind == ',' {
			ts.Next()
			continue
		}
		break
	}
	devourWS(ts)
	if ts.Peek().Kind != ')' {
		return nil, scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \")\" in parameter list")
	}
	ts.Next()
	return params, nil
}

// EatIdent reads a CSS identifier, splicing in any "#{...}" interpolation
// segments and resolving backslash escapes.
func (p *Parser) EatIdent(ts tokSource, scope scssscope.Scope, superSel scssselector.SelectorList) (string, error) {
	var sb strings.Builder
	for {
		t := ts.Peek()
		switch {
		case t.Kind == '#' && ts.PeekAt(1).Kind == '{':
			text, err := p.ParseInterpolation(ts, scope, superSel)
			if err != nil {
				return "", err
			}
			sb.WriteString(text)
		case t.Kind == '\\':
			ts.Next()
			if !ts.AtEOF() {
				sb.WriteRune(ts.Next().Kind)
			}
		case isIdentCont(t.Kind):
			sb.WriteRune(ts.Next().Kind)
		default:
			return sb.String(), nil
		}
	}
}

// ParseQuotedString reads string contents up to (and consuming) the
// matching closing quote. The opening quote must already be consumed by
// the caller, which is why the quote rune is passed in explicitly.
func (p *Parser) ParseQuotedString(ts tokSource, quote rune, scope scssscope.Scope, superSel scssselector.SelectorList) (scssvalue.Value, error) {
	var sb strings.Builder
	for {
		if ts.AtEOF() {
			return scssvalue.Value{}, scssast.NewError(scssast.SyntaxError, logger.Range{}, "unterminated string literal")
		}
		t := ts.Peek()
		switch {
		case t.Kind == quote:
			ts.Next()
			return scssvalue.Quoted(sb.String(), logger.Range{}), nil
		case t.Kind == '\\':
			ts.Next()
			if !ts.AtEOF() {
				sb.WriteRune(ts.Next().Kind)
			}
		case t.Kind == '#' && ts.PeekAt(1).Kind == '{':
			text, err := p.ParseInterpolation(ts, scope, superSel)
			if err != nil {
				return scssvalue.Value{}, err
			}
			sb.WriteString(text)
		default:
			sb.WriteRune(ts.Next().Kind)
		}
	}
}

// ParseInterpolation consumes a leading "#{", evaluates everything up to
// the matching "}" as a value-list expression, and returns its CSS string
// form. The "#" must still be the current token.
func (p *Parser) ParseInterpolation(ts tokSource, scope scssscope.Scope, superSel scssselector.SelectorList) (string, error) {
	ts.Next() // '#'
	ts.Next() // '{'
	var inner []scsslexer.Token
	depth := 1
	for {
		if ts.AtEOF() {
			return "", scssast.NewError(scssast.SyntaxError, logger.Range{}, "unterminated interpolation")
		}
		t := ts.Peek()
		if t.Kind == '{' {
			depth++
		}
		if t.Kind == '}' {
			depth--
			if depth == 0 {
				ts.Next()
				break
			}
		}
		inner = append(inner, ts.Next())
	}
	v, err := p.EvalValueList(inner, scope, superSel)
	if err != nil {
		return "", err
	}
	return scssvalue.CSSString(v), nil
}

// resolveInterpolatedText renders a raw token run (a selector, an at-rule
// prelude, an unknown at-rule's name) to plain text, evaluating any
// "#{...}" segments along the way and leaving everything else untouched.
func (p *Parser) resolveInterpolatedText(toks []scsslexer.Token, scope scssscope.Scope, superSel scssselector.SelectorList) (string, error) {
	var sb strings.Builder
	i := 0
	for i < len(toks) {
		if toks[i].Kind == '#' && i+1 < len(toks) && toks[i+1].Kind == '{' {
			depth := 1
			j := i + 2
			for j < len(toks) && depth > 0 {
				switch toks[j].Kind {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						goto found
					}
				}
				j++
			}
		found:
			inner := toks[i+2:min(j, len(toks))]
			v, err := p.EvalValueList(inner, scope, superSel)
			if err != nil {
				return "", err
			}
			sb.WriteString(scssvalue.CSSString(v))
			i = j + 1
			continue
		}
		sb.WriteRune(toks[i].Kind)
		i++
	}
	return sb.String(), nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// callFunction resolves a call by name: user-defined functions shadow
// built-ins, and a name matching neither is treated as a plain CSS
// function (calc(), var(), url(), min(), and friends) which passes its
// (already-evaluated) arguments through verbatim.
func (p *Parser) callFunction(name string, args scssvalue.CallArgs, scope scssscope.Scope, superSel scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	if fn, ok := scope.GetFn(name); ok {
		return p.callUserFunction(fn, args, superSel, span)
	}
	if entry, ok := p.builtins.Lookup(name); ok {
		return entry.Handler(args, superSel, span)
	}
	return p.passthroughFunctionCall(name, args, span), nil
}

func (p *Parser) passthroughFunctionCall(name string, args scssvalue.CallArgs, span logger.Range) scssvalue.Value {
	parts := make([]string, 0, len(args.Positional)+len(args.Named))
	for _, v := range args.Positional {
		parts = append(parts, scssvalue.CSSString(v))
	}
	for k, v := range args.Named {
		parts = append(parts, k+": "+scssvalue.CSSString(v))
	}
	return scssvalue.Unquoted(name+"("+strings.Join(parts, ", ")+")", span)
}

// bindParams matches actual CallArgs against a formal parameter list,
// evaluating default-value tokens (in closure, not call-site scope) for
// parameters the caller omitted, and collecting any trailing variadic
// parameter into an ArgList. Shared between mixin @include and function
// calls, which both use the same binding rule.
func (p *Parser) bindParams(params []scssscope.Param, args scssvalue.CallArgs, closure scssscope.Scope, superSel scssselector.SelectorList) (scssscope.Scope, error) {
	callScope := closure.Clone()
	positional := args.Positional
	for i, param := range params {
		if param.Variadic {
			var rest []scssvalue.Value
			if i < len(positional) {
				rest = append(rest, positional[i:]...)
			}
			named := map[string]scssvalue.Value{}
			for k, v := range args.Named {
				named[k] = v
			}
			callScope.InsertVar(param.Name, scssvalue.ArgListVal(scssvalue.ArgList{Positional: rest, Named: named, Separator: scssvalue.SepComma}, logger.Range{}))
			continue
		}
		if v, ok := args.Named[param.Name]; ok {
			callScope.InsertVar(param.Name, v)
			continue
		}
		if i < len(positional) {
			callScope.InsertVar(param.Name, positional[i])
			continue
		}
		if param.HasDefault {
			v, err := p.EvalValueList(param.Default, callScope, superSel)
			if err != nil {
				return callScope, err
			}
			callScope.InsertVar(param.Name, v)
			continue
		}
		return callScope, scssast.NewError(scssast.ArityError, logger.Range{}, "missing argument $"+param.Name)
	}
	return callScope, nil
}

// callUserFunction binds arguments and runs the function body, which is
// restricted to @if/@else chains, @for loops, and variable assignments
// terminating in @return.
func (p *Parser) callUserFunction(fn scssscope.FunctionDef, args scssvalue.CallArgs, superSel scssselector.SelectorList, span logger.Range) (scssvalue.Value, error) {
	callScope, err := p.bindParams(fn.Params, args, fn.Closure, superSel)
	if err != nil {
		return scssvalue.Value{}, err
	}
	v, returned, err := p.execFunctionBody(newSliceCursor(fn.Body), callScope, superSel)
	if err != nil {
		return scssvalue.Value{}, err
	}
	if !returned {
		return scssvalue.Value{}, scssast.NewError(scssast.UserError, span, "function \""+fn.Name+"\" finished without @return")
	}
	return v, nil
}
