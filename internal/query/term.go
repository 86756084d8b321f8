package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is the filter expression tree. AllTerm is its neutral element:
// AndTerms(AllTerm{}, x) == x and AndTerms(x, AllTerm{}) == x.
type Term interface {
	isTerm()
	render() string
}

// AllTerm matches every node; it is dropped whenever combined with
// anything else.
type AllTerm struct{}

func (AllTerm) isTerm()        {}
func (AllTerm) render() string { return "" }

// Comparison is a single "path op value" predicate.
type Comparison struct {
	Path  string
	Op    string // ==, !=, <, <=, >, >=, =~, !~
	Value Value
}

func (Comparison) isTerm() {}
func (c Comparison) render() string {
	return fmt.Sprintf("%s%s%s", c.Path, c.Op, c.Value.render())
}

// FuncCall is a predicate written as a function call, e.g. is(volume).
// Its arguments are always rendered quoted, matching the canonical form
// the query executor expects.
type FuncCall struct {
	Name string
	Args []string
}

func (FuncCall) isTerm() {}
func (f FuncCall) render() string {
	quoted := make([]string, len(f.Args))
	for i, a := range f.Args {
		quoted[i] = strconv.Quote(a)
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(quoted, ", "))
}

// Not negates a term.
type Not struct{ Term Term }

func (Not) isTerm() {}
func (n Not) render() string {
	return "not " + parenthesize(n.Term)
}

// And is a conjunction of two terms.
type And struct{ Left, Right Term }

func (And) isTerm() {}
func (a And) render() string {
	return parenthesize(a.Left) + " and " + parenthesize(a.Right)
}

// Or is a disjunction of two terms.
type Or struct{ Left, Right Term }

func (Or) isTerm() {}
func (o Or) render() string {
	return parenthesize(o.Left) + " or " + parenthesize(o.Right)
}

func parenthesize(t Term) string {
	switch t.(type) {
	case Or, And:
		return "(" + t.render() + ")"
	default:
		return t.render()
	}
}

// neutralTerm reports whether t filters nothing, i.e. is absent or
// AllTerm.
func neutralTerm(t Term) bool {
	if t == nil {
		return true
	}
	_, ok := t.(AllTerm)
	return ok
}

// AndTerms conjunctively combines two terms, absorbing AllTerm on either
// side so the result stays in canonical (AllTerm-free when possible) form.
func AndTerms(a, b Term) Term {
	_, aIsAll := a.(AllTerm)
	_, bIsAll := b.(AllTerm)
	switch {
	case aIsAll && bIsAll:
		return AllTerm{}
	case aIsAll:
		return b
	case bIsAll:
		return a
	default:
		return And{Left: a, Right: b}
	}
}

// Value is a literal operand of a Comparison.
type Value struct {
	// exactly one of the following is populated
	Str     *string
	Num     *string // kept as the original numeric literal text
	Bool    *bool
	RawWord *string // bare identifier-shaped token, rendered unquoted
}

func StringValue(s string) Value { return Value{Str: &s} }
func NumberValue(s string) Value { return Value{Num: &s} }
func BoolValue(b bool) Value     { return Value{Bool: &b} }
func WordValue(s string) Value   { return Value{RawWord: &s} }

func (v Value) render() string {
	switch {
	case v.Str != nil:
		return strconv.Quote(*v.Str)
	case v.Num != nil:
		return *v.Num
	case v.Bool != nil:
		if *v.Bool {
			return "true"
		}
		return "false"
	case v.RawWord != nil:
		return *v.RawWord
	default:
		return "null"
	}
}

func onSectionTerm(t Term, section string) Term {
	switch n := t.(type) {
	case AllTerm:
		return n
	case Comparison:
		n.Path = onSectionPath(n.Path, section)
		return n
	case FuncCall:
		return n
	case Not:
		return Not{Term: onSectionTerm(n.Term, section)}
	case And:
		return And{Left: onSectionTerm(n.Left, section), Right: onSectionTerm(n.Right, section)}
	case Or:
		return Or{Left: onSectionTerm(n.Left, section), Right: onSectionTerm(n.Right, section)}
	default:
		return t
	}
}

func onSectionPath(path, section string) string {
	if strings.Contains(path, ".") {
		return path
	}
	return section + "." + path
}
