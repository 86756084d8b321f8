// Package command provides the leaf CommandDescriptor implementations
// that exercise the registry, coalescer, validator, binder and stream
// composer in internal/cli end to end: the 13 query-part stand-ins the
// coalescer consumes, the two synthetic commands coalescing produces,
// and a small set of source/transform commands a real deployment would
// back with its own storage and job-scheduling layers.
package command

import (
	"context"
	"fmt"

	"github.com/graphshell/gsh/internal/cli"
)

// Document is one record flowing through a stream: either a query
// executor's JSON document, or a small value produced by a leaf
// transform. It is deliberately `any`-shaped (cli.Item.Value already
// is); the alias just gives call sites a name to document intent.
type Document = any

func singleItem(v Document) cli.Stream {
	ch := make(chan cli.Item, 1)
	ch <- cli.Item{Value: v}
	close(ch)
	return ch
}

// forward copies in to the returned stream unchanged, except that ctx
// cancellation stops early.
func forward(ctx context.Context, in cli.Stream) cli.Stream {
	out := make(chan cli.Item)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-in:
				if !ok {
					return
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
}

func mapStream(ctx context.Context, in cli.Stream, f func(Document) (Document, error)) cli.Stream {
	out := make(chan cli.Item)
	go func() {
		defer close(out)
		for {
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
				v, err := f(item.Value)
				next := cli.Item{Value: v, Err: err}
				select {
				case out <- next:
				case <-ctx.Done():
					return
				}
				if err != nil {
					return
				}
			}
		}
	}()
	return out
}

// queryPartArgError is returned by every query-part stand-in's ParseArgs:
// coalescing always consumes these roles before binding runs, so
// ParseArgs reaching one at all means the coalescer was bypassed.
func queryPartArgError(name string) error {
	return fmt.Errorf("%s is a query part and must be coalesced before binding", name)
}

// argError formats a leaf command's own argument-validation failure; it
// becomes an ArgParseError's cause once Bind wraps it.
func argError(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
