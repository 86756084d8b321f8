package command

import (
	"context"

	"github.com/graphshell/gsh/internal/cli"
)

// envCommand is a Source that emits the resolved environment as a
// single JSON document, the only way a user can observe the merged
// k=v prefix and base environment of a statement.
type envCommand struct{}

// Env registers under "env".
func Env() cli.Descriptor { return envCommand{} }

func (envCommand) Name() string              { return "env" }
func (envCommand) Role() cli.Role            { return cli.RoleSource }
func (envCommand) Info() string              { return "emit the resolved environment" }
func (envCommand) Help() string              { return "env - emits the statement's resolved_env as one document" }
func (envCommand) ProducesMediaType() string { return "application/json" }

func (envCommand) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	snapshot := make(map[string]any, len(env))
	for k, v := range env {
		snapshot[k] = v
	}
	return cli.Bound{Source: func(ctx context.Context) cli.Stream {
		return singleItem(snapshot)
	}}, nil
}
