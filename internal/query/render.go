package query

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultSort is the triple appended to any query without an explicit
// sort clause, keeping result order stable across runs.
var DefaultSort = []SortField{
	{Field: "reported.kind", Order: SortAsc},
	{Field: "reported.name", Order: SortAsc},
	{Field: "reported.id", Order: SortAsc},
}

// String renders q in the canonical textual form passed to the
// execute_query source descriptor. The default sort triple is used
// whenever q.Sort is empty; it is a rendering-time fallback, not stored
// on the value, so Simplify need not special-case it for idempotence.
func (q *Query) String() string {
	sort := q.Sort
	if len(sort) == 0 {
		sort = DefaultSort
	}
	sortStr := "sort " + renderSortFields(sort)

	var parts []string
	if preambleStr := renderPreamble(q.Preamble); preambleStr != "" {
		parts = append(parts, preambleStr)
	}
	if q.Aggregate != nil {
		parts = append(parts, q.Aggregate.String()+":")
	}
	if termStr := q.Term.render(); termStr != "" {
		parts = append(parts, termStr)
	}

	switch len(q.Navigation) {
	case 0:
		parts = append(parts, sortStr)
	case 1:
		parts = append(parts, renderNavigation(q.Navigation[0]))
		if t := renderStepTerm(q.Navigation[0].Term); t != "" {
			parts = append(parts, t)
		}
		parts = append(parts, sortStr)
	default:
		parts = append(parts, renderNavigation(q.Navigation[0]), stepTermOrAll(q.Navigation[0].Term), sortStr)
		for _, n := range q.Navigation[1:] {
			parts = append(parts, renderNavigation(n))
			if t := renderStepTerm(n.Term); t != "" {
				parts = append(parts, t)
			}
		}
	}

	if q.Limit != nil {
		parts = append(parts, fmt.Sprintf("limit %d, %d", q.Limit.Offset, q.Limit.Count))
	}
	if q.Reversed {
		parts = append(parts, "reversed")
	}
	return strings.Join(parts, " ")
}

// renderPreamble renders q.Preamble as a leading "preamble(k = v, ...):"
// marker so entries like merge_with_ancestors (set by the
// MergeAncestorsPart role) have an observable effect on the stringified
// query instead of being silently dropped. Keys are sorted for a
// deterministic rendering.
func renderPreamble(preamble map[string]string) string {
	if len(preamble) == 0 {
		return ""
	}
	keys := make([]string, 0, len(preamble))
	for k := range preamble {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s = %s", k, preamble[k])
	}
	return fmt.Sprintf("preamble(%s):", strings.Join(pairs, ", "))
}

// renderStepTerm renders a navigation step's term, or "" when the step
// keeps everything.
func renderStepTerm(t Term) string {
	if neutralTerm(t) {
		return ""
	}
	return t.render()
}

// stepTermOrAll is renderStepTerm with the explicit "all" marker for a
// neutral term, used between two navigations where the canonical form
// always names the intermediate node set.
func stepTermOrAll(t Term) string {
	if neutralTerm(t) {
		return "all"
	}
	return t.render()
}

func renderSortFields(fields []SortField) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s %s", f.Field, f.Order)
	}
	return strings.Join(parts, ", ")
}

func renderNavigation(n Navigation) string {
	edge := n.EdgeType
	if edge == "" {
		edge = DefaultEdgeType
	}
	var body string
	switch {
	case n.MinDepth == 1 && n.MaxDepth == 1:
		body = edge
	case n.MinDepth == n.MaxDepth:
		body = fmt.Sprintf("%s[%d]", edge, n.MinDepth)
	case n.MaxDepth == Unbounded:
		body = fmt.Sprintf("%s[%d:]", edge, n.MinDepth)
	default:
		body = fmt.Sprintf("%s[%d:%d]", edge, n.MinDepth, n.MaxDepth)
	}
	if n.Direction == DirOut {
		return "-" + body + "->"
	}
	return "<-" + body + "-"
}
