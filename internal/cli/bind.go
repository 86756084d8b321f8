package cli

import (
	"context"

	"github.com/graphshell/gsh/internal/clierr"
)

// BoundCommand pairs a descriptor with the Bound value its ParseArgs
// produced, ready for stream composition.
type BoundCommand struct {
	Desc  Descriptor
	Bound Bound
}

// Bind invokes each descriptor's ParseArgs with the resolved environment
// and wraps any failure as an ArgParseError. Go has no
// separate sync/async descriptor distinction: ParseArgs always takes a
// context and the binder simply calls it, letting goroutine-based
// descriptors suspend internally at their own await points.
func Bind(ctx context.Context, cmds []NamedCommand, env map[string]any) ([]BoundCommand, error) {
	out := make([]BoundCommand, 0, len(cmds))
	for _, c := range cmds {
		bound, err := c.Desc.ParseArgs(ctx, c.Raw, env)
		if err != nil {
			return nil, &clierr.ArgParseError{
				Command:   c.Desc.Name(),
				RawArgs:   c.Raw,
				CauseKind: causeKind(err),
				CauseMsg:  err.Error(),
			}
		}
		out = append(out, BoundCommand{Desc: c.Desc, Bound: bound})
	}
	return out, nil
}

func causeKind(err error) string {
	switch err.(type) {
	case *clierr.QueryParseError:
		return "QueryParseError"
	default:
		return "ValueError"
	}
}
