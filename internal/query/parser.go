package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/graphshell/gsh/internal/clierr"
)

// ParseQuery parses the query sub-language (see grammar.go) into a Query
// whose Term, Navigation, Sort and Limit fields reflect the parsed text.
// Navigation comes from inline arrow syntax; Aggregate and Preamble are
// left empty, since they come from dedicated QueryPart roles the
// coalescer (internal/cli) handles rather than from this grammar.
//
// A bare (undotted) sort field defaults to the "reported" section, since
// that is where the vast majority of queryable attributes live.
func ParseQuery(text string) (*Query, error) {
	ast, err := queryParser.ParseString("", text)
	if err != nil {
		return nil, &clierr.QueryParseError{Offset: offsetOf(err), Message: err.Error()}
	}
	q := New()
	if ast.Term != nil {
		q.Term = termFromAST(ast.Term)
	}
	for _, step := range ast.Steps {
		nav, err := navigationFromArrow(step.Arrow)
		if err != nil {
			return nil, &clierr.QueryParseError{Message: err.Error()}
		}
		if step.Term != nil {
			nav.Term = termFromAST(step.Term)
		}
		q.Navigation = append(q.Navigation, nav)
	}
	for _, sf := range ast.Sorts {
		order := SortAsc
		if sf.Order != nil && *sf.Order == "desc" {
			order = SortDesc
		}
		q.Sort = append(q.Sort, SortField{Field: defaultReportedSection(sf.Field), Order: order})
	}
	if ast.Limit != nil {
		if ast.Limit.Second != nil {
			q.Limit = &Limit{Offset: ast.Limit.First, Count: *ast.Limit.Second}
		} else {
			q.Limit = &Limit{Count: ast.Limit.First}
		}
	}
	return q, nil
}

func defaultReportedSection(field string) string {
	return onSectionPath(field, "reported")
}

// navigationFromArrow decodes one arrow token: -edge[min:max]-> or
// <-edge[min:max]-, where edge and the depth range are both optional
// (--> and <-- are one default-edge hop). An open-ended range like
// [1:] leaves the max depth Unbounded.
func navigationFromArrow(s string) (Navigation, error) {
	nav := Navigation{Direction: DirOut, MinDepth: 1, MaxDepth: 1, EdgeType: DefaultEdgeType}
	var body string
	if strings.HasPrefix(s, "<-") {
		nav.Direction = DirIn
		body = strings.TrimSuffix(strings.TrimPrefix(s, "<-"), "-")
	} else {
		body = strings.TrimSuffix(strings.TrimPrefix(s, "-"), "->")
	}
	if open := strings.IndexByte(body, '['); open >= 0 {
		min, max, err := parseDepthRange(body[open+1 : len(body)-1])
		if err != nil {
			return Navigation{}, err
		}
		nav.MinDepth, nav.MaxDepth = min, max
		body = body[:open]
	}
	if body != "" {
		nav.EdgeType = body
	}
	return nav, nil
}

func parseDepthRange(spec string) (min, max int, err error) {
	lo, hi, hasColon := strings.Cut(spec, ":")
	min = 1
	if lo != "" {
		min, err = strconv.Atoi(lo)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid navigation depth %q", lo)
		}
	}
	if !hasColon {
		return min, min, nil
	}
	if hi == "" {
		return min, Unbounded, nil
	}
	max, err = strconv.Atoi(hi)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid navigation depth %q", hi)
	}
	return min, max, nil
}

func offsetOf(err error) int {
	var perr participle.Error
	if errors.As(err, &perr) {
		return perr.Position().Offset
	}
	return 0
}

func termFromAST(e *orExpr) Term {
	t := andFromAST(e.Left)
	for _, rhs := range e.Or {
		t = Or{Left: t, Right: andFromAST(rhs)}
	}
	return t
}

func andFromAST(e *andExpr) Term {
	t := notFromAST(e.Left)
	for _, rhs := range e.And {
		t = And{Left: t, Right: notFromAST(rhs)}
	}
	return t
}

func notFromAST(e *notExpr) Term {
	t := primaryFromAST(e.Primary)
	if e.Negate {
		return Not{Term: t}
	}
	return t
}

func primaryFromAST(p *primary) Term {
	switch {
	case p.All:
		return AllTerm{}
	case p.Paren != nil:
		return termFromAST(p.Paren.Expr)
	case p.Call != nil:
		args := make([]string, len(p.Call.Args))
		for i, a := range p.Call.Args {
			args[i] = atomText(a)
		}
		return FuncCall{Name: p.Call.Name, Args: args}
	case p.Cmp != nil:
		return Comparison{Path: p.Cmp.Path, Op: p.Cmp.Op, Value: valueFromAtom(p.Cmp.Value)}
	default:
		return AllTerm{}
	}
}

func atomText(a *atom) string {
	switch {
	case a.Str != nil:
		return *a.Str
	case a.Num != nil:
		return *a.Num
	case a.Bool != nil:
		return *a.Bool
	case a.Word != nil:
		return *a.Word
	default:
		return ""
	}
}

func valueFromAtom(a *atom) Value {
	switch {
	case a.Str != nil:
		return StringValue(*a.Str)
	case a.Num != nil:
		return NumberValue(*a.Num)
	case a.Bool != nil:
		return BoolValue(*a.Bool == "true")
	case a.Word != nil:
		return WordValue(*a.Word)
	default:
		return WordValue("")
	}
}
