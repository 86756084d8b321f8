package command

import (
	"context"
	"strings"

	"github.com/graphshell/gsh/internal/cli"
)

// echoCommand is a Source that emits its raw argument text as a single
// document, or, when the text contains more than one whitespace-separated
// word, one document per word (so `echo a b c` behaves like a small
// fixture generator rather than a single opaque string).
type echoCommand struct{}

// Echo registers under "echo".
func Echo() cli.Descriptor { return echoCommand{} }

func (echoCommand) Name() string              { return "echo" }
func (echoCommand) Role() cli.Role            { return cli.RoleSource }
func (echoCommand) Info() string              { return "emit its argument as a document" }
func (echoCommand) Help() string              { return "echo <text> - emits text, or one result per word" }
func (echoCommand) ProducesMediaType() string { return "application/json" }

func (echoCommand) ParseArgs(ctx context.Context, raw string, env map[string]any) (cli.Bound, error) {
	words := strings.Fields(raw)
	return cli.Bound{Source: func(ctx context.Context) cli.Stream {
		if len(words) <= 1 {
			return singleItem(raw)
		}
		ch := make(chan cli.Item, len(words))
		for _, w := range words {
			ch <- cli.Item{Value: w}
		}
		close(ch)
		return ch
	}}, nil
}
