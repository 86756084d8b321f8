package command

import "github.com/graphshell/gsh/internal/cli"

// Descriptors returns every CommandDescriptor this repository ships: the
// 13 QueryPart stand-ins, the two synthetic commands query coalescing
// produces, and the leaf source/transform commands. This is the list a
// real deployment passes to cli.NewRegistry; a production build swaps
// the execute_query stand-in for one backed by its storage layer and
// adds its own job-scheduling commands on top.
func Descriptors() []cli.Descriptor {
	descs := QueryParts()
	descs = append(descs,
		ExecuteQuery(),
		AggregateToCount(),
		Echo(),
		Env(),
		Chunk(),
		Flatten(),
		Uniq(),
		Sort(),
		Jq(),
		Jsony(),
		Limit(),
		CountItems(),
	)
	return descs
}

// Aliases returns the canonical alias table for Descriptors(): short or
// legacy spellings of a few commonly used commands. "find" is the
// legacy spelling of "search"; the rest are
// ordinary abbreviations. "desc" is deliberately NOT aliased to
// "descendants": it would collide with nothing here, but is reserved to
// avoid confusion with the unrelated client-side "sort ... desc" syntax.
func Aliases() map[string]string {
	return map[string]string{
		"find": "search",
		"pred": "predecessors",
		"succ": "successors",
		"anc":  "ancestors",
		"yaml": "jsony",
		"cnt":  "count_items",
	}
}
