package command

import (
	"context"
	"encoding/json"

	"github.com/graphshell/gsh/internal/cli"
)

// uniqCommand is a Transform that drops documents already seen,
// comparing by their canonical JSON encoding (so map/slice documents
// compare by value, not identity).
type uniqCommand struct{}

// Uniq registers under "uniq".
func Uniq() cli.Descriptor { return uniqCommand{} }

func (uniqCommand) Name() string              { return "uniq" }
func (uniqCommand) Role() cli.Role            { return cli.RoleTransform }
func (uniqCommand) Info() string              { return "drop duplicate documents" }
func (uniqCommand) Help() string              { return "uniq - passes through only the first occurrence of each document" }
func (uniqCommand) ProducesMediaType() string { return "application/json" }

func (uniqCommand) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	return cli.Bound{Transform: func(ctx context.Context, in cli.Stream) cli.Stream {
		out := make(chan cli.Item)
		go func() {
			defer close(out)
			seen := map[string]struct{}{}
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-in:
					if !ok {
						return
					}
					if item.Err == nil {
						key, err := canonicalKey(item.Value)
						if err == nil {
							if _, dup := seen[key]; dup {
								continue
							}
							seen[key] = struct{}{}
						}
					}
					select {
					case out <- item:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
		return out
	}}, nil
}

func canonicalKey(v Document) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
