package command

import (
	"context"

	"github.com/graphshell/gsh/internal/cli"
)

// aggregateToCount is the synthetic companion transform coalescing
// appends after execute_query when a count command folded into the
// query: it consumes grouped rows and emits {group: ..., count: n}
// documents. The query executor emits flat rows
// carrying each group variable's alias plus the "count" alias set up
// by Coalesce's RoleCountCommand branch; this reshapes each row into
// the nested {group, count} form the rest of the pipeline expects.
type aggregateToCount struct{}

// AggregateToCount is the descriptor registered under the name
// "aggregate_to_count".
func AggregateToCount() cli.Descriptor { return aggregateToCount{} }

func (aggregateToCount) Name() string              { return "aggregate_to_count" }
func (aggregateToCount) Role() cli.Role            { return cli.RoleInternal }
func (aggregateToCount) Info() string              { return "reshapes grouped rows into {group, count}" }
func (aggregateToCount) Help() string              { return "" }
func (aggregateToCount) ProducesMediaType() string { return "application/json" }

func (aggregateToCount) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	return cli.Bound{Transform: func(ctx context.Context, in cli.Stream) cli.Stream {
		return mapStream(ctx, in, reshapeGroupCount)
	}}, nil
}

func reshapeGroupCount(v Document) (Document, error) {
	row, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	count, hasCount := row["count"]
	if !hasCount {
		return v, nil
	}
	group := make(map[string]any, len(row)-1)
	for k, val := range row {
		if k == "count" {
			continue
		}
		group[k] = val
	}
	return map[string]any{"group": group, "count": count}, nil
}
