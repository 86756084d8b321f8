package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func helpRegistry() *Registry {
	return NewRegistry([]Descriptor{
		stubDescriptor{name: "echo", role: RoleSource},
		stubDescriptor{name: "uniq", role: RoleTransform},
		stubDescriptor{name: "execute_query", role: RoleInternal},
	}, map[string]string{"say": "echo"})
}

func TestRenderHelpFullListing(t *testing.T) {
	out := RenderHelp(helpRegistry(), "")
	require.Contains(t, out, "echo - echo info")
	require.Contains(t, out, "uniq - uniq info")
	require.NotContains(t, out, "execute_query")
	require.Contains(t, out, "say (echo) - echo info")
	require.Contains(t, out, "@NAME@")
	require.Contains(t, out, "TODAY")
	require.Contains(t, out, "'|'")
	require.Contains(t, out, "';'")
}

func TestRenderHelpKnownCommand(t *testing.T) {
	out := RenderHelp(helpRegistry(), "echo")
	require.Equal(t, "echo - echo info\n\necho help", out)
}

func TestRenderHelpAliasPrefixesTarget(t *testing.T) {
	out := RenderHelp(helpRegistry(), "say")
	require.True(t, strings.HasPrefix(out, "say is an alias for echo\n\n"))
	require.Contains(t, out, "echo - echo info")
}

func TestRenderHelpUnknownName(t *testing.T) {
	out := RenderHelp(helpRegistry(), "nope")
	require.Equal(t, "No command found with this name: nope", out)
}

func TestHelpSourceEmitsSingleItem(t *testing.T) {
	items, err := Drain(context.Background(), HelpSource(helpRegistry(), "echo")(context.Background()))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "echo - echo info\n\necho help", items[0])
}
