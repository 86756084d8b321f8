package query

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The query sub-language grammar: boolean term expressions over dotted
// identifier paths (with array-wildcard segments like tags[*].name),
// comparisons against string/number/bool literals, parenthesized
// and/or/not, function-call predicates such as is(kind), navigation
// arrows (-->, -default[1:]->, <-delete-, ...) each optionally followed
// by a term filtering the nodes the traversal reaches, and trailing
// sort/limit clauses. It does not support the "in" operator or
// array-literal values: bracketed array literals would clash with the
// bracketed wildcard path segments the Ident token already covers, and
// resolving that needs a stateful lexer mode.
//
// The Arrow rule must precede Number and Op: "-default->" starts like a
// negative number and "<-" like a comparison, and the longer arrow form
// has to win. A bare "<" or "-" still falls through to Op/Number since
// the arrow pattern requires its closing "-"/"->".

var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `<-[a-zA-Z0-9_]*(?:\[[0-9]*(?::[0-9]*)?\])?-|-[a-zA-Z0-9_]*(?:\[[0-9]*(?::[0-9]*)?\])?->`},
	{Name: "Number", Pattern: `-?[0-9]+(?:\.[0-9]+)?`},
	{Name: "Op", Pattern: `==|!=|<=|>=|=~|!~|<|>`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.\[\]\*]*`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type queryFile struct {
	Term  *orExpr      `@@?`
	Steps []*navStep   `@@*`
	Sorts []*sortField `("sort" @@ ("," @@)*)?`
	Limit *limitSpec   `("limit" @@)?`
}

// navStep is one inline navigation: an arrow token plus the optional
// term applied to the nodes the traversal reaches.
type navStep struct {
	Arrow string  `@Arrow`
	Term  *orExpr `@@?`
}

type orExpr struct {
	Left *andExpr   `@@`
	Or   []*andExpr `("or" @@)*`
}

type andExpr struct {
	Left *notExpr   `@@`
	And  []*notExpr `("and" @@)*`
}

type notExpr struct {
	Negate  bool     `@"not"?`
	Primary *primary `@@`
}

type primary struct {
	All   bool        `  @"all"`
	Paren *parenExpr  `| @@`
	Call  *call       `| @@`
	Cmp   *comparison `| @@`
}

type parenExpr struct {
	Expr *orExpr `"(" @@ ")"`
}

type call struct {
	Name string  `@Ident "("`
	Args []*atom `(@@ ("," @@)*)? ")"`
}

type comparison struct {
	Path  string `@Ident`
	Op    string `@Op`
	Value *atom  `@@`
}

type atom struct {
	Str  *string `  @String`
	Num  *string `| @Number`
	Bool *string `| @("true" | "false")`
	Word *string `| @Ident`
}

type sortField struct {
	Field string  `@Ident`
	Order *string `@("asc" | "desc")?`
}

type limitSpec struct {
	First  int  `@Number`
	Second *int `("," @Number)?`
}

var queryParser = participle.MustBuild[queryFile](
	participle.Lexer(queryLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)
