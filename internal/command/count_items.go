package command

import (
	"context"

	"github.com/graphshell/gsh/internal/cli"
)

// countItemsCommand is a Transform that discards its input and emits the
// number of documents it saw, the client-side counterpart to the
// query-level count shorthand (internal/cli/coalesce.go RoleCountCommand)
// for pipelines where counting happens after a non-query transform.
type countItemsCommand struct{}

// CountItems registers under "count_items".
func CountItems() cli.Descriptor { return countItemsCommand{} }

func (countItemsCommand) Name() string              { return "count_items" }
func (countItemsCommand) Role() cli.Role            { return cli.RoleTransform }
func (countItemsCommand) Info() string              { return "count the documents that reach this point" }
func (countItemsCommand) Help() string              { return "count_items - discards input, emits {count: n}" }
func (countItemsCommand) ProducesMediaType() string { return "application/json" }

func (countItemsCommand) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	return cli.Bound{Transform: func(ctx context.Context, in cli.Stream) cli.Stream {
		out := make(chan cli.Item, 1)
		go func() {
			defer close(out)
			n := 0
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-in:
					if !ok {
						select {
						case out <- cli.Item{Value: map[string]any{"count": n}}:
						case <-ctx.Done():
						}
						return
					}
					if item.Err != nil {
						select {
						case out <- item:
						case <-ctx.Done():
						}
						return
					}
					n++
				}
			}
		}()
		return out
	}}, nil
}
