package command

import (
	"context"
	"sort"
	"strings"

	"github.com/graphshell/gsh/internal/cli"
)

// sortCommand is a stream-level Transform: unlike the query sub-language's
// `sort` clause (internal/query), which is folded into the query string
// execute_query runs against the backend, this command re-sorts whatever
// documents already reached it client-side, by a dotted field path.
type sortCommand struct{}

// Sort registers under "sort" as a Transform (not to be confused with
// the query-part roles of the same textual keyword inside a search
// term).
func Sort() cli.Descriptor { return sortCommand{} }

func (sortCommand) Name() string              { return "sort" }
func (sortCommand) Role() cli.Role            { return cli.RoleTransform }
func (sortCommand) Info() string              { return "sort buffered documents by a field path" }
func (sortCommand) Help() string              { return "sort <field> [desc] - buffers the stream and re-orders it by a dotted field path" }
func (sortCommand) ProducesMediaType() string { return "application/json" }

func (sortCommand) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return cli.Bound{}, argError("sort: missing field path")
	}
	path := fields[0]
	desc := len(fields) > 1 && strings.EqualFold(fields[1], "desc")

	return cli.Bound{Transform: func(ctx context.Context, in cli.Stream) cli.Stream {
		out := make(chan cli.Item, 1)
		go func() {
			defer close(out)
			var items []cli.Item
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-in:
					if !ok {
						sort.SliceStable(items, func(i, j int) bool {
							less := lessByPath(items[i].Value, items[j].Value, path)
							if desc {
								return !less
							}
							return less
						})
						for _, it := range items {
							select {
							case out <- it:
							case <-ctx.Done():
								return
							}
						}
						return
					}
					items = append(items, item)
					if item.Err != nil {
						for _, it := range items {
							select {
							case out <- it:
							case <-ctx.Done():
								return
							}
						}
						return
					}
				}
			}
		}()
		return out
	}}, nil
}

func lessByPath(a, b Document, path string) bool {
	av, aok := lookupPath(a, path)
	bv, bok := lookupPath(b, path)
	if !aok || !bok {
		return aok && !bok
	}
	as, aIsStr := av.(string)
	bs, bIsStr := bv.(string)
	if aIsStr && bIsStr {
		return as < bs
	}
	af, aIsNum := asFloat(av)
	bf, bIsNum := asFloat(bv)
	if aIsNum && bIsNum {
		return af < bf
	}
	return false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func lookupPath(v Document, path string) (any, bool) {
	cur := v
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
