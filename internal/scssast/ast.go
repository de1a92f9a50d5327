// Package scssast defines the intermediate form produced by
// internal/scssparser: a tree of already-evaluated statements (style
// declarations, rule sets with child rule sets, at-rules, comments) that
// internal/scssprinter traverses to emit plain CSS. Nothing in this
// package evaluates anything — by the time a Statement exists, every
// variable, mixin call, and expression it came from has already been
// resolved.
package scssast

import (
	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/internal/scssselector"
	"github.com/scssc/scssc/internal/scssvalue"
)

// Style is a single property:value declaration. Properties may themselves
// have contained "#{...}" interpolation, but that is resolved by the time
// a Style is constructed.
type Style struct {
	Property string
	Value    scssvalue.Value
	Span     logger.Range
}

// RuleSet is a selector, its evaluated child statements, and the outer
// selector in effect when it was parsed (kept so a nested "&" anywhere
// further down can still compose against it, though by the time a RuleSet
// exists in the tree its own selector has already been zipped).
type RuleSet struct {
	Selector      scssselector.SelectorList
	Rules         []Statement
	SuperSelector scssselector.SelectorList
}

// AtRule carries only the at-rules that survive to CSS output: @media,
// @supports, unknown vendor at-rules, @keyframes. Control-flow at-rules
// (@if, @for, @each, @while, @mixin, @function, @return, @content,
// @import) are consumed during evaluation and never reach the tree.
type AtRule struct {
	Name    string
	Prelude string
	Rules   []Statement
	// IsUnknown is set when the at-rule's name is not one of the CSS
	// at-rules the parser recognizes (such as @media or @font-face). The
	// printer prints known and unknown at-rules the same way.
	IsUnknown bool
}

type Comment struct {
	Text string
}

// Kind discriminates the Statement sum type.
type Kind uint8

const (
	KStyle Kind = iota
	KRuleSet
	KAtRule
	KComment
)

// Statement is the evaluated-statement sum type. Exactly one of Style,
// RuleSet, AtRule, Comment is meaningful, selected by Kind.
type Statement struct {
	Kind    Kind
	Style   Style
	RuleSet RuleSet
	AtRule  AtRule
	Comment Comment
}

func StyleStmt(s Style) Statement     { return Statement{Kind: KStyle, Style: s} }
func RuleSetStmt(r RuleSet) Statement { return Statement{Kind: KRuleSet, RuleSet: r} }
func AtRuleStmt(a AtRule) Statement   { return Statement{Kind: KAtRule, AtRule: a} }
func CommentStmt(text string) Statement {
	return Statement{Kind: KComment, Comment: Comment{Text: text}}
}

// ErrorKind enumerates this compiler's error taxonomy.
type ErrorKind uint8

const (
	SyntaxError ErrorKind = iota
	ResolutionError
	TypeError
	UnitError
	ArityError
	UserError
	IoError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case ResolutionError:
		return "ResolutionError"
	case TypeError:
		return "TypeError"
	case UnitError:
		return "UnitError"
	case ArityError:
		return "ArityError"
	case UserError:
		return "UserError"
	case IoError:
		return "IoError"
	default:
		return "Error"
	}
}

// Error is every error this compiler raises: a kind, the span it points
// at, and a human-readable message. Propagation is fail-fast — Error is
// always returned, never panicked. A panic that does occur is recovered at
// the pkg/scss boundary and reported as an "internal error" diagnostic, so
// an unexpected internal failure never surfaces as a Go stack trace to a
// CLI user.
type Error struct {
	Kind ErrorKind
	Span logger.Range
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

func NewError(kind ErrorKind, span logger.Range, msg string) *Error {
	return &Error{Kind: kind, Span: span, Msg: msg}
}
