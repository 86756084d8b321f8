package command

import (
	"context"
	"strconv"

	"github.com/graphshell/gsh/internal/cli"
)

// chunkCommand is a Transform that batches N consecutive documents into
// a single []Document document, the inverse of flatten.
type chunkCommand struct{}

// Chunk registers under "chunk".
func Chunk() cli.Descriptor { return chunkCommand{} }

func (chunkCommand) Name() string              { return "chunk" }
func (chunkCommand) Role() cli.Role            { return cli.RoleTransform }
func (chunkCommand) Info() string              { return "batch documents into fixed-size lists" }
func (chunkCommand) Help() string              { return "chunk [size] - groups every size (default 100) documents into one list" }
func (chunkCommand) ProducesMediaType() string { return "application/json" }

func (chunkCommand) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	size := 100
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return cli.Bound{}, argError("chunk: size must be a positive integer, got %q", raw)
		}
		size = n
	}
	return cli.Bound{Transform: func(ctx context.Context, in cli.Stream) cli.Stream {
		out := make(chan cli.Item)
		go func() {
			defer close(out)
			batch := make([]Document, 0, size)
			flush := func() bool {
				if len(batch) == 0 {
					return true
				}
				select {
				case out <- cli.Item{Value: batch}:
					batch = make([]Document, 0, size)
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
						flush()
						return
					}
					if item.Err != nil {
						flush()
						select {
						case out <- item:
						case <-ctx.Done():
						}
						return
					}
					batch = append(batch, item.Value)
					if len(batch) == size {
						if !flush() {
							return
						}
					}
				}
			}
		}()
		return out
	}}, nil
}
