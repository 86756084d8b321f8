package command

import (
	"context"

	"github.com/graphshell/gsh/internal/cli"
)

// executeQuery is the synthetic query executor descriptor coalescing
// produces: a Source, bound with the simplified query string as its
// sole argument. The real backend that walks the graph and streams JSON
// documents back lives behind the server's storage layer; this stand-in
// emits one document describing the query it would have run, enough to
// drive the rest of the pipeline through the registry/coalescer/
// validator/binder/composer chain end to end.
type executeQuery struct{}

// ExecuteQuery is the descriptor registered under the name
// "execute_query"; Coalesce looks it up by name via the Registry.
func ExecuteQuery() cli.Descriptor { return executeQuery{} }

func (executeQuery) Name() string              { return "execute_query" }
func (executeQuery) Role() cli.Role            { return cli.RoleInternal }
func (executeQuery) Info() string              { return "runs the coalesced query against the graph" }
func (executeQuery) Help() string              { return "" }
func (executeQuery) ProducesMediaType() string { return "application/json" }

func (executeQuery) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	return cli.Bound{Source: func(ctx context.Context) cli.Stream {
		return singleItem(map[string]any{"query": raw})
	}}, nil
}
