// This file implements the statement-level grammar: the construct
// classifier (style declaration vs. rule set vs. at-rule vs. comment) and
// every at-rule's evaluation, driven entirely over token slices via
// sliceCursor so the same machinery handles the top-level stylesheet, a
// rule set's nested body, and a mixin/function's body.
package scssparser

import (
	"strings"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scssast"
	"github.com/scssc/scssc/internal/scsslexer"
	"github.com/scssc/scssc/internal/scssscope"
	"github.com/scssc/scssc/internal/scssselector"
	"github.com/scssc/scssc/internal/scssvalue"
)

// ParseStylesheet drains the live character cursor once into a token
// slice and evaluates it top to bottom against a fresh root scope,
// returning the statements that survive to CSS output.
func (p *Parser) ParseStylesheet() ([]scssast.Statement, error) {
	var toks []scsslexer.Token
	for !p.cur.AtEOF() {
		toks = append(toks, p.cur.Next())
	}
	root := scssscope.New()
	p.rootScope = root
	return p.evalBlock(newSliceCursor(toks), root, scssselector.SelectorList{})
}

// evalBlock evaluates every statement in sc until EOF, appending the
// statements each construct produces (zero for variable/mixin/function
// definitions and control-flow headers, one or more for declarations,
// rule sets, and surviving at-rules).
func (p *Parser) evalBlock(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList) ([]scssast.Statement, error) {
	var out []scssast.Statement
	for {
		sc.devourWhitespace()
		if sc.AtEOF() {
			return out, nil
		}
		if err := p.evalConstruct(sc, scope, superSel, &out); err != nil {
			return out, err
		}
	}
}

// readStatementHead scans sc (without consuming the terminator) until a
// depth-0 "{", ";", or "}", or EOF, tracking paren/bracket nesting so a
// value like "url(http://x/;y)" or a pseudo-class argument list doesn't
// terminate early. A "#{...}" interpolation is copied whole, so its braces
// never end the head.
func readStatementHead(sc *sliceCursor) (head []scsslexer.Token, term rune) {
	depth := 0
	for !sc.AtEOF() {
		c := sc.Peek().Kind
		if c == '#' && sc.PeekAt(1).Kind == '{' {
			interp := 0
			for !sc.AtEOF() {
				t := sc.Next()
				head = append(head, t)
				if t.Kind == '{' {
					interp++
				} else if t.Kind == '}' {
					if interp--; interp == 0 {
						break
					}
				}
			}
			continue
		}
		if depth == 0 && (c == '{' || c == ';' || c == '}') {
			return head, c
		}
		switch c {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		}
		head = append(head, sc.Next())
	}
	return head, 0
}

// readBalancedBody consumes the "{" already confirmed present, then reads
// and returns every token up to the matching "}", consuming that too.
func readBalancedBody(sc *sliceCursor) []scsslexer.Token {
	sc.Next() // '{'
	var body []scsslexer.Token
	depth := 1
	for !sc.AtEOF() {
		c := sc.Peek().Kind
		if c == '{' {
			depth++
		}
		if c == '}' {
			depth--
			if depth == 0 {
				sc.Next()
				return body
			}
		}
		body = append(body, sc.Next())
	}
	return body
}

func splitAtFirstColon(toks []scsslexer.Token) (before, after []scsslexer.Token, found bool) {
	depth := 0
	for i, t := range toks {
		switch t.Kind {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ':':
			if depth == 0 {
				return toks[:i], toks[i+1:], true
			}
		}
		_ = i
	}
	return toks, nil, false
}

// trailingFlag strips a trailing "!default"/"!global"/"!important" marker
// (possibly surrounded by whitespace) from a value token run, reporting
// which one (if any) was present.
func trailingFlag(toks []scsslexer.Token) (rest []scsslexer.Token, flag string) {
	end := len(toks)
	for end > 0 && isSpace(toks[end-1].Kind) {
		end--
	}
	for _, word := range []string{"default", "global", "important"} {
		wl := len(word)
		if end-wl < 0 {
			continue
		}
		if !strings.EqualFold(identText(toks[end-wl:end]), word) {
			continue
		}
		i := end - wl - 1
		for i >= 0 && isSpace(toks[i].Kind) {
			i--
		}
		if i >= 0 && toks[i].Kind == '!' {
			rest := toks[:i]
			for len(rest) > 0 && isSpace(rest[len(rest)-1].Kind) {
				rest = rest[:len(rest)-1]
			}
			return rest, word
		}
	}
	return toks, ""
}

func trimSpaceToks(toks []scsslexer.Token) []scsslexer.Token {
	i, j := 0, len(toks)
	for i < j && isSpace(toks[i].Kind) {
		i++
	}
	for j > i && isSpace(toks[j-1].Kind) {
		j--
	}
	return toks[i:j]
}

// evalConstruct classifies and evaluates exactly one top-level construct,
// appending whatever statements it produces to *out.
func (p *Parser) evalConstruct(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	c := sc.Peek().Kind

	switch {
	case c == '/' && sc.PeekAt(1).Kind == '/':
		for !sc.AtEOF() && sc.Peek().Kind != '\n' {
			sc.Next()
		}
		return nil

	case c == '/' && sc.PeekAt(1).Kind == '*':
		sc.Next()
		sc.Next()
		var sb strings.Builder
		sb.WriteString("/*")
		for !sc.AtEOF() {
			if sc.Peek().Kind == '*' && sc.PeekAt(1).Kind == '/' {
				sc.Next()
				sc.Next()
				sb.WriteString("*/")
				break
			}
			sb.WriteRune(sc.Next().Kind)
		}
		*out = append(*out, scssast.CommentStmt(sb.String()))
		return nil

	case c == '$':
		return p.evalVariableAssignment(sc, scope, superSel)

	case c == '@':
		return p.evalAtRule(sc, scope, superSel, out)

	default:
		return p.evalStyleOrRuleSet(sc, scope, superSel, out)
	}
}

func (p *Parser) evalVariableAssignment(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList) error {
	sc.Next() // '$'
	name, err := p.EatIdent(sc, scope, superSel)
	if err != nil {
		return err
	}
	sc.devourWhitespace()
	if sc.Peek().Kind != ':' {
		return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected \":\" after \"$"+name+"\"")
	}
	sc.Next()
	head, term := readStatementHead(sc)
	if term == ';' {
		sc.Next()
	}
	valToks, flag := trailingFlag(trimSpaceToks(head))
	v, err := p.EvalValueList(valToks, scope, superSel)
	if err != nil {
		return err
	}
	switch flag {
	case "global":
		p.rootScope.InsertVar(name, v)
	case "default":
		if _, exists := scope.GetVar(name); !exists {
			scope.InsertVar(name, v)
		}
	default:
		scope.InsertVar(name, v)
	}
	return nil
}

func (p *Parser) evalStyleOrRuleSet(sc *sliceCursor, scope scssscope.Scope, superSel scssselector.SelectorList, out *[]scssast.Statement) error {
	head, term := readStatementHead(sc)
	switch term {
	case '{':
		text, err := p.resolveInterpolatedText(trimSpaceToks(head), scope, superSel)
		if err != nil {
			return err
		}
		own := scssselector.Parse(text)
		zipped := scssselector.Zip(superSel, own)
		if superSel.IsEmpty() {
			zipped = own
		}
		body := readBalancedBody(sc)
		rules, err := p.evalBlock(newSliceCursor(body), scope, zipped)
		if err != nil {
			return err
		}
		// A nested rule set inside this one's body doesn't stay nested in
		// the printed output: Sass flattens it to a sibling selector
		// (already zipped against this selector by the recursive call
		// above), so only the direct declarations/at-rules stay inside
		// this wrapper.
		var declBody []scssast.Statement
		var nestedRuleSets []scssast.Statement
		for _, r := range rules {
			if r.Kind == scssast.KRuleSet {
				nestedRuleSets = append(nestedRuleSets, r)
			} else {
				declBody = append(declBody, r)
			}
		}
		*out = append(*out, scssast.RuleSetStmt(scssast.RuleSet{Selector: zipped, Rules: declBody, SuperSelector: superSel}))
		*out = append(*out, nestedRuleSets...)
		return nil

	default:
		if term == ';' {
			sc.Next()
		}
		before, after, found := splitAtFirstColon(trimSpaceToks(head))
		if !found {
			if len(trimSpaceToks(head)) == 0 {
				return nil
			}
			return scssast.NewError(scssast.SyntaxError, logger.Range{}, "expected declaration or rule set")
		}
		prop, err := p.resolveInterpolatedText(trimSpaceToks(before), scope, superSel)
		if err != nil {
			return err
		}
		valToks, flag := trailingFlag(trimSpaceToks(after))
		v, err := p.EvalValueList(valToks, scope, superSel)
		if err != nil {
			return err
		}
		if flag == "important" {
			v = scssvalue.Unquoted(scssvalue.CSSString(v)+" !important", v.Span)
		}
		*out = append(*out, scssast.StyleStmt(scssast.Style{Property: prop, Value: v}))
		return nil
	}
}
