// Package scssselector parses and composes CSS selectors: attribute
// selectors, pseudo-classes with argument lists, the parent reference "&",
// and the "zip" nesting operation that combines an outer selector with an
// inner one.
//
// By the time text reaches this package, any "#{...}" interpolation
// inside it has already been evaluated and stringified by
// internal/scssparser — selector parsing itself never needs the scope or
// evaluator and only ever walks already-resolved text.
package scssselector

import "strings"

// ComplexSelector is one comma-separated alternative: a sequence of
// compound selectors joined by combinators. It is kept as the rendered
// text of that sequence (e.g. "a > b.c:hover") rather than split further,
// since nothing downstream (zip, CSS printing) needs to address individual
// compounds separately.
type ComplexSelector string

// SelectorList is an ordered list of complex selectors — the top-level
// comma-separated list a selector parses into.
type SelectorList struct {
	Complex []ComplexSelector
}

func Single(s string) SelectorList {
	return SelectorList{Complex: []ComplexSelector{ComplexSelector(strings.TrimSpace(s))}}
}

// Parse splits a selector string into its comma-separated complex
// selectors, respecting parens/brackets so that a comma inside
// ":nth-child(2n+1)" or an attribute selector's value doesn't split the
// selector in two.
func Parse(text string) SelectorList {
	var out []ComplexSelector
	depth := 0
	start := 0
	runes := []rune(text)
	for i, r := range runes {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				part := strings.TrimSpace(string(runes[start:i]))
				if part != "" {
					out = append(out, ComplexSelector(collapseSpace(part)))
				}
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		out = append(out, ComplexSelector(collapseSpace(tail)))
	}
	return SelectorList{Complex: out}
}

func collapseSpace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// ContainsParentRef reports whether a complex selector contains the parent
// reference "&" anywhere in its text.
func ContainsParentRef(c ComplexSelector) bool {
	return strings.ContainsRune(string(c), '&')
}

// Zip performs the Sass nesting rule: if an inner complex selector
// contains "&", every "&" is substituted with the
// outer complex selector (cartesian over outer × inner); otherwise the
// outer selector is prepended as a descendant combinator to the inner one.
func Zip(outer, inner SelectorList) SelectorList {
	if len(outer.Complex) == 0 {
		return inner
	}
	var out []ComplexSelector
	for _, o := range outer.Complex {
		for _, in := range inner.Complex {
			if ContainsParentRef(in) {
				out = append(out, ComplexSelector(collapseSpace(strings.ReplaceAll(string(in), "&", string(o)))))
			} else {
				out = append(out, ComplexSelector(collapseSpace(string(o)+" "+string(in))))
			}
		}
	}
	return SelectorList{Complex: out}
}

// String renders the full comma-separated selector list, the form that
// lands directly in CSS output.
func (l SelectorList) String() string {
	parts := make([]string, len(l.Complex))
	for i, c := range l.Complex {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func (l SelectorList) IsEmpty() bool {
	return len(l.Complex) == 0
}
