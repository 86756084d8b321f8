package command

import (
	"context"

	"github.com/graphshell/gsh/internal/cli"
)

// queryPart is the shared shape of the 13 descriptors the coalescer
// consumes: each carries only the name/role/help text the registry and
// help renderer need. None of them is ever bound, so ParseArgs
// unconditionally fails.
type queryPart struct {
	name string
	role cli.Role
	info string
	help string
}

func (q queryPart) Name() string              { return q.name }
func (q queryPart) Role() cli.Role            { return q.role }
func (q queryPart) Info() string              { return q.info }
func (q queryPart) Help() string              { return q.help }
func (q queryPart) ProducesMediaType() string { return "" }
func (q queryPart) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	return cli.Bound{}, queryPartArgError(q.name)
}

// QueryParts returns the 13 descriptors that seed a query's coalescing
// prefix: search, its section-scoped variants, the four navigation
// directions, aggregate, merge_ancestors, count, head and tail.
func QueryParts() []cli.Descriptor {
	return []cli.Descriptor{
		queryPart{name: "search", role: cli.RoleQueryAllPart, info: "search across all sections",
			help: "search <term> - filters nodes by a boolean term over reported/desired/metadata"},
		queryPart{name: "reported", role: cli.RoleReportedPart, info: "search the reported section",
			help: "reported <term> - filters nodes by a term scoped to reported.*"},
		queryPart{name: "desired", role: cli.RoleDesiredPart, info: "search the desired section",
			help: "desired <term> - filters nodes by a term scoped to desired.*"},
		queryPart{name: "metadata", role: cli.RoleMetadataPart, info: "search the metadata section",
			help: "metadata <term> - filters nodes by a term scoped to metadata.*"},
		queryPart{name: "predecessors", role: cli.RolePredecessor, info: "navigate to direct predecessors",
			help: "predecessors [edge_type] - one hop inbound, default edge type \"default\""},
		queryPart{name: "successors", role: cli.RoleSuccessor, info: "navigate to direct successors",
			help: "successors [edge_type] - one hop outbound, default edge type \"default\""},
		queryPart{name: "ancestors", role: cli.RoleAncestor, info: "navigate to all ancestors",
			help: "ancestors [edge_type] - unbounded inbound closure"},
		queryPart{name: "descendants", role: cli.RoleDescendant, info: "navigate to all descendants",
			help: "descendants [edge_type] - unbounded outbound closure"},
		queryPart{name: "aggregate", role: cli.RoleAggregatePart, info: "group and aggregate results",
			help: "aggregate <vars> : <funcs> - group by vars, compute funcs over each group"},
		queryPart{name: "merge_ancestors", role: cli.RoleMergeAncestorsPart, info: "merge ancestor kinds into each result",
			help: "merge_ancestors <kind>[,<kind>...] - attaches matching ancestor sections to each result"},
		queryPart{name: "count", role: cli.RoleCountCommand, info: "count results, optionally grouped",
			help: "count [var] - groups by var (as name) with sum(1) as count, sorted by count, reshaped into {group, count}"},
		queryPart{name: "head", role: cli.RoleHeadCommand, info: "keep the first N results",
			help: "head [-]N - keeps the first N rows of the current window"},
		queryPart{name: "tail", role: cli.RoleTailCommand, info: "keep the last N results",
			help: "tail [-]N - keeps the last N rows of the current window, reversing sort if one was set"},
	}
}
