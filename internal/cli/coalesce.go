package cli

import (
	"strings"

	"github.com/graphshell/gsh/internal/clierr"
	"github.com/graphshell/gsh/internal/query"
)

// NamedCommand pairs a resolved descriptor with its raw argument tail,
// the shape the coalescer, validator and binder all operate on.
type NamedCommand struct {
	Desc Descriptor
	Raw  string
}

func rawOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// SplitQueryPrefix returns the longest leading run of cmds whose
// descriptors are QueryParts, and the remainder. Coalescing only ever
// consumes a contiguous prefix; the first non-QueryPart ends the query
// block.
func SplitQueryPrefix(cmds []NamedCommand) (prefix, rest []NamedCommand) {
	i := 0
	for i < len(cmds) && cmds[i].Desc.Role().IsQueryPart() {
		i++
	}
	return cmds[:i], cmds[i:]
}

// Coalesce folds a contiguous QueryPart prefix into a single synthetic
// execute_query command, optionally followed by synthetic companion
// transforms. execQuery and aggregateToCount are looked
// up by the caller so the coalescer does not need direct registry
// construction knowledge.
func Coalesce(prefix []NamedCommand, execQuery, aggregateToCount Descriptor) ([]NamedCommand, error) {
	if len(prefix) == 0 {
		return nil, nil
	}

	q := query.New()
	var synthetic []NamedCommand
	reversed := false

	for _, c := range prefix {
		raw := c.Raw
		switch c.Desc.Role() {
		case RoleQueryAllPart:
			parsed, err := query.ParseQuery(raw)
			if err != nil {
				return nil, err
			}
			q.Combine(parsed)
		case RoleReportedPart:
			parsed, err := query.ParseQuery(raw)
			if err != nil {
				return nil, err
			}
			q.Combine(parsed.OnSection("reported"))
		case RoleDesiredPart:
			parsed, err := query.ParseQuery(raw)
			if err != nil {
				return nil, err
			}
			q.Combine(parsed.OnSection("desired"))
		case RoleMetadataPart:
			parsed, err := query.ParseQuery(raw)
			if err != nil {
				return nil, err
			}
			q.Combine(parsed.OnSection("metadata"))
		case RolePredecessor:
			q.Navigation = append(q.Navigation, query.Navigation{Direction: query.DirIn, MinDepth: 1, MaxDepth: 1, EdgeType: edgeTypeOrDefault(raw)})
		case RoleSuccessor:
			q.Navigation = append(q.Navigation, query.Navigation{Direction: query.DirOut, MinDepth: 1, MaxDepth: 1, EdgeType: edgeTypeOrDefault(raw)})
		case RoleAncestor:
			q.Navigation = append(q.Navigation, query.Navigation{Direction: query.DirIn, MinDepth: 1, MaxDepth: query.Unbounded, EdgeType: edgeTypeOrDefault(raw)})
		case RoleDescendant:
			q.Navigation = append(q.Navigation, query.Navigation{Direction: query.DirOut, MinDepth: 1, MaxDepth: query.Unbounded, EdgeType: edgeTypeOrDefault(raw)})
		case RoleAggregatePart:
			if q.Aggregate != nil {
				return nil, &clierr.IllegalPipeline{Name: c.Desc.Name(), Detail: clierr.DetailAggregateConflict}
			}
			agg, err := parseAggregateArg(raw)
			if err != nil {
				return nil, err
			}
			q.Aggregate = agg
		case RoleMergeAncestorsPart:
			q.Preamble["merge_with_ancestors"] = raw
		case RoleCountCommand:
			if q.Aggregate != nil {
				return nil, &clierr.IllegalPipeline{Name: c.Desc.Name(), Detail: clierr.DetailAggregateConflict}
			}
			var vars []query.AggregateVariable
			if raw != "" {
				vars = []query.AggregateVariable{{Path: raw, As: "name"}}
			}
			q.Aggregate = &query.Aggregate{
				GroupVars:  vars,
				GroupFuncs: []query.AggregateFunction{{Name: "sum", Arg: "1", As: "count"}},
			}
			q.Sort = []query.SortField{{Field: "count", Order: query.SortAsc}}
			synthetic = append(synthetic, NamedCommand{Desc: aggregateToCount, Raw: raw})
		case RoleHeadCommand:
			n, err := query.ParseSize(raw)
			if err != nil {
				return nil, sizeParseError(c.Desc.Name(), raw, err)
			}
			formula := "head"
			if reversed {
				formula = "tail"
			}
			q.Limit = combineLimit(q.Limit, formula, n)
		case RoleTailCommand:
			n, err := query.ParseSize(raw)
			if err != nil {
				return nil, sizeParseError(c.Desc.Name(), raw, err)
			}
			formula := "tail"
			if reversed {
				formula = "head"
			}
			q.Limit = combineLimit(q.Limit, formula, n)
			if len(q.Sort) > 0 {
				for i := range q.Sort {
					q.Sort[i].Order = q.Sort[i].Order.Reversed()
				}
				reversed = !reversed
			}
		}
	}
	q.Reversed = reversed
	simplified := q.Simplify()

	out := []NamedCommand{{Desc: execQuery, Raw: simplified.String()}}
	out = append(out, synthetic...)
	return out, nil
}

func edgeTypeOrDefault(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return query.DefaultEdgeType
	}
	return raw
}

// combineLimit composes a head/tail window with the prior one: head n
// after a window {o, c} keeps {o, min(c, n)}; tail n keeps
// {o + max(0, c-n), min(c, n)}. A command run while the query is already
// in "reversed" mode uses the opposite formula, since reversing swaps
// which end of the window head and tail address.
func combineLimit(prior *query.Limit, formula string, n int) *query.Limit {
	if prior == nil {
		return &query.Limit{Offset: 0, Count: n}
	}
	if formula == "head" {
		return &query.Limit{Offset: prior.Offset, Count: minInt(prior.Count, n)}
	}
	return &query.Limit{Offset: prior.Offset + maxInt(0, prior.Count-n), Count: minInt(prior.Count, n)}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func sizeParseError(name, raw string, cause error) error {
	return &clierr.ArgParseError{Command: name, RawArgs: raw, CauseKind: "ValueError", CauseMsg: cause.Error()}
}

// parseAggregateArg parses the small "group_vars : group_funcs" syntax
// used by the aggregate command, e.g. "reported.kind : sum(1) as count".
// It is deliberately not part of the query sub-language grammar in
// internal/query; the aggregate clause only ever arrives through this
// one command's argument tail.
func parseAggregateArg(raw string) (*query.Aggregate, error) {
	raw = strings.TrimSpace(raw)
	varsPart, funcsPart := raw, ""
	if idx := strings.Index(raw, ":"); idx >= 0 {
		varsPart, funcsPart = raw[:idx], raw[idx+1:]
	}
	agg := &query.Aggregate{}
	for _, v := range splitNonEmpty(varsPart, ',') {
		name, alias := splitAs(v)
		agg.GroupVars = append(agg.GroupVars, query.AggregateVariable{Path: name, As: alias})
	}
	for _, f := range splitNonEmpty(funcsPart, ',') {
		fn, alias := splitAs(f)
		name, arg := fn, fn
		if open := strings.Index(fn, "("); open >= 0 && strings.HasSuffix(fn, ")") {
			name = fn[:open]
			arg = fn[open+1 : len(fn)-1]
		}
		if alias == "" {
			alias = name
		}
		agg.GroupFuncs = append(agg.GroupFuncs, query.AggregateFunction{Name: name, Arg: arg, As: alias})
	}
	return agg, nil
}

func splitAs(s string) (name, alias string) {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, " as "); idx >= 0 {
		return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+4:])
	}
	return s, ""
}

func splitNonEmpty(s string, sep byte) []string {
	var out []string
	for _, part := range strings.Split(s, string(sep)) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
