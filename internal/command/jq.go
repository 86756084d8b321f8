package command

import (
	"context"
	"strings"

	"github.com/google/shlex"

	"github.com/graphshell/gsh/internal/cli"
)

// jqCommand is a Transform that extracts one or more dotted field paths
// from each document, jq-workalike shorthand for the common case of
// picking a handful of fields back out of a graph node. Its own argument
// tail is tokenized with shlex the same way a shell would, so a path can
// be quoted if it ever needs to contain whitespace; this is independent
// of the outer grammar's own quoting (internal/cli/parse.go), which has
// already isolated this raw tail before jq ever sees it.
type jqCommand struct{}

// Jq registers under "jq".
func Jq() cli.Descriptor { return jqCommand{} }

func (jqCommand) Name() string { return "jq" }
func (jqCommand) Role() cli.Role { return cli.RoleTransform }
func (jqCommand) Info() string { return "project one or more fields out of each document" }
func (jqCommand) Help() string {
	return "jq <path> [path...] - keeps only the named dotted field paths from each document; a single path yields the bare value, multiple paths yield an object"
}
func (jqCommand) ProducesMediaType() string { return "application/json" }

func (jqCommand) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	paths, err := shlex.Split(raw)
	if err != nil {
		return cli.Bound{}, argError("jq: %v", err)
	}
	if len(paths) == 0 {
		return cli.Bound{}, argError("jq: missing field path")
	}
	return cli.Bound{Transform: func(ctx context.Context, in cli.Stream) cli.Stream {
		return mapStream(ctx, in, func(v Document) (Document, error) {
			return project(v, paths), nil
		})
	}}, nil
}

func project(v Document, paths []string) Document {
	if len(paths) == 1 {
		out, _ := lookupPath(v, paths[0])
		return out
	}
	result := make(map[string]any, len(paths))
	for _, p := range paths {
		if val, ok := lookupPath(v, p); ok {
			result[lastSegment(p)] = val
		}
	}
	return result
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
