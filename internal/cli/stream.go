package cli

import "context"

// Compose builds the output stream of a bound pipeline by left-folding
// each Transform over the Source's stream. It does not
// start draining; the caller drives the result through a Sink. cmds must
// already be validated (element 0 a Source, the rest Transforms).
func Compose(ctx context.Context, cmds []BoundCommand) Stream {
	if len(cmds) == 0 {
		ch := make(chan Item)
		close(ch)
		return ch
	}
	stream := cmds[0].Bound.Source(ctx)
	for _, c := range cmds[1:] {
		stream = c.Bound.Transform(ctx, stream)
	}
	return stream
}

// Sink drains a Stream into a result of type T.
type Sink[T any] func(ctx context.Context, in Stream) (T, error)

// Drain is the simplest Sink: collect every Item.Value, stopping at the
// first Item.Err (which is returned to the caller).
func Drain(ctx context.Context, in Stream) ([]any, error) {
	var out []any
	for {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case item, ok := <-in:
			if !ok {
				return out, nil
			}
			if item.Err != nil {
				return out, item.Err
			}
			out = append(out, item.Value)
		}
	}
}
