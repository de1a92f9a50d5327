// Package scssprinter is the thin collaborator that turns an
// already-evaluated internal/scssast tree into CSS text — it makes no
// decisions of its own (no selector composition, no value computation):
// by the time a Statement reaches here, everything it needed from the
// scope or the value evaluator has already been resolved. Output
// formatting accumulates fragments in a Joiner rather than repeated
// string concatenation.
package scssprinter

import (
	"github.com/scssc/scssc/internal/helpers"
	"github.com/scssc/scssc/internal/scssast"
	"github.com/scssc/scssc/internal/scssvalue"
)

// Options controls the only formatting choice left open: whether the
// output is indented for readability or compacted onto as few lines as
// practical.
type Options struct {
	MinifyWhitespace bool
}

func Print(stmts []scssast.Statement, options Options) []byte {
	p := &printer{options: options}
	p.printStatements(stmts, 0)
	p.j.EnsureNewlineAtEnd()
	return p.j.Done()
}

type printer struct {
	j       helpers.Joiner
	options Options
}

func (p *printer) indent(level int) {
	if p.options.MinifyWhitespace {
		return
	}
	for i := 0; i < level; i++ {
		p.j.AddString("  ")
	}
}

func (p *printer) newline() {
	if !p.options.MinifyWhitespace {
		p.j.AddString("\n")
	}
}

func (p *printer) printStatements(stmts []scssast.Statement, level int) {
	for _, s := range stmts {
		switch s.Kind {
		case scssast.KStyle:
			p.printStyle(s.Style, level)
		case scssast.KRuleSet:
			p.printRuleSet(s.RuleSet, level)
		case scssast.KAtRule:
			p.printAtRule(s.AtRule, level)
		case scssast.KComment:
			if !p.options.MinifyWhitespace {
				p.indent(level)
				p.j.AddString(s.Comment.Text)
				p.newline()
			}
		}
	}
}

func (p *printer) printStyle(s scssast.Style, level int) {
	p.indent(level)
	p.j.AddString(s.Property)
	p.j.AddString(":")
	if !p.options.MinifyWhitespace {
		p.j.AddString(" ")
	}
	p.j.AddString(scssvalue.DeclString(s.Value))
	p.j.AddString(";")
	p.newline()
}

func (p *printer) printRuleSet(r scssast.RuleSet, level int) {
	if r.Selector.IsEmpty() || len(r.Rules) == 0 {
		return
	}
	p.indent(level)
	p.j.AddString(r.Selector.String())
	if p.options.MinifyWhitespace {
		p.j.AddString("{")
	} else {
		p.j.AddString(" {\n")
	}
	p.printStatements(r.Rules, level+1)
	p.indent(level)
	p.j.AddString("}")
	p.newline()
}

func (p *printer) printAtRule(a scssast.AtRule, level int) {
	p.indent(level)
	p.j.AddString("@")
	p.j.AddString(a.Name)
	if a.Prelude != "" {
		p.j.AddString(" ")
		p.j.AddString(a.Prelude)
	}
	if len(a.Rules) == 0 {
		p.j.AddString(";")
		p.newline()
		return
	}
	if p.options.MinifyWhitespace {
		p.j.AddString("{")
	} else {
		p.j.AddString(" {\n")
	}
	p.printStatements(a.Rules, level+1)
	p.indent(level)
	p.j.AddString("}")
	p.newline()
}
