package command

import (
	"context"
	"strconv"
	"strings"

	"github.com/graphshell/gsh/internal/cli"
)

// limitCommand is a client-side Transform windowing whatever documents
// already reached it, distinct from the query sub-language's own
// "limit offset, count" clause (internal/query), which bounds what the
// backend returns in the first place. Useful after a transform (uniq,
// jq, ...) has changed the row count the backend-side limit no longer
// accounts for.
type limitCommand struct{}

// Limit registers under "limit".
func Limit() cli.Descriptor { return limitCommand{} }

func (limitCommand) Name() string              { return "limit" }
func (limitCommand) Role() cli.Role            { return cli.RoleTransform }
func (limitCommand) Info() string              { return "window the stream by offset and count" }
func (limitCommand) Help() string              { return "limit [offset,] count - passes through at most count documents, skipping offset first" }
func (limitCommand) ProducesMediaType() string { return "application/json" }

func (limitCommand) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	offset, count, err := parseOffsetCount(raw)
	if err != nil {
		return cli.Bound{}, err
	}
	return cli.Bound{Transform: func(ctx context.Context, in cli.Stream) cli.Stream {
		out := make(chan cli.Item)
		go func() {
			defer close(out)
			seen := 0
			emitted := 0
			for {
				if count >= 0 && emitted >= count {
					return
				}
				select {
				case <-ctx.Done():
					return
				case item, ok := <-in:
					if !ok {
						return
					}
					if item.Err != nil {
						select {
						case out <- item:
						case <-ctx.Done():
						}
						return
					}
					if seen < offset {
						seen++
						continue
					}
					select {
					case out <- item:
						emitted++
					case <-ctx.Done():
						return
					}
				}
			}
		}()
		return out
	}}, nil
}

func parseOffsetCount(raw string) (offset, count int, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, -1, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) == 1 {
		n, perr := strconv.Atoi(strings.TrimSpace(parts[0]))
		if perr != nil {
			return 0, 0, argError("limit: count must be an integer, got %q", parts[0])
		}
		return 0, n, nil
	}
	o, perr := strconv.Atoi(strings.TrimSpace(parts[0]))
	if perr != nil {
		return 0, 0, argError("limit: offset must be an integer, got %q", parts[0])
	}
	c, perr := strconv.Atoi(strings.TrimSpace(parts[1]))
	if perr != nil {
		return 0, 0, argError("limit: count must be an integer, got %q", parts[1])
	}
	return o, c, nil
}
