package command

import (
	"context"

	"github.com/graphshell/gsh/internal/cli"
)

// flattenCommand is a Transform that expands every []Document document
// back into its elements, the inverse of chunk.
type flattenCommand struct{}

// Flatten registers under "flatten".
func Flatten() cli.Descriptor { return flattenCommand{} }

func (flattenCommand) Name() string              { return "flatten" }
func (flattenCommand) Role() cli.Role            { return cli.RoleTransform }
func (flattenCommand) Info() string              { return "expand list documents into their elements" }
func (flattenCommand) Help() string              { return "flatten - emits each element of a list document as its own document" }
func (flattenCommand) ProducesMediaType() string { return "application/json" }

func (flattenCommand) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	return cli.Bound{Transform: func(ctx context.Context, in cli.Stream) cli.Stream {
		out := make(chan cli.Item)
		go func() {
			defer close(out)
			emit := func(item cli.Item) bool {
				select {
				case out <- item:
					return true
				case <-ctx.Done():
					return false
				}
			}
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-in:
					if !ok {
						return
					}
					if item.Err != nil {
						emit(item)
						return
					}
					list, isList := item.Value.([]Document)
					if !isList {
						if !emit(item) {
							return
						}
						continue
					}
					for _, v := range list {
						if !emit(cli.Item{Value: v}) {
							return
						}
					}
				}
			}
		}()
		return out
	}}, nil
}
