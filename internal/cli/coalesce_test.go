package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func execQueryDesc() Descriptor  { return stubDescriptor{name: "execute_query", role: RoleInternal} }
func aggToCountDesc() Descriptor { return stubDescriptor{name: "aggregate_to_count", role: RoleInternal} }

func nc(role Role, name, raw string) NamedCommand {
	return NamedCommand{Desc: stubDescriptor{name: name, role: role}, Raw: raw}
}

func TestCoalesceSingleUnboundedNavigation(t *testing.T) {
	cmds := []NamedCommand{
		nc(RoleQueryAllPart, "search", "some_int==0"),
		nc(RoleDescendant, "descendants", ""),
	}
	out, err := Coalesce(cmds, execQueryDesc(), aggToCountDesc())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Contains(t, out[0].Raw, "-default[1:]->")
	require.Contains(t, out[0].Raw, "sort reported.kind asc, reported.name asc, reported.id asc")
}

func TestCoalesceTwoBoundedNavigationsInsertAllBridge(t *testing.T) {
	cmds := []NamedCommand{
		nc(RoleQueryAllPart, "search", "some_int==0"),
		nc(RoleSuccessor, "successors", ""),
		nc(RolePredecessor, "predecessors", ""),
	}
	out, err := Coalesce(cmds, execQueryDesc(), aggToCountDesc())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Contains(t, out[0].Raw, "-default-> all sort reported.kind asc, reported.name asc, reported.id asc <-default-")
}

func TestCoalesceHeadTailHeadComposesLimit(t *testing.T) {
	cmds := []NamedCommand{
		nc(RoleQueryAllPart, "search", "is(volume)"),
		nc(RoleHeadCommand, "head", "-10"),
		nc(RoleTailCommand, "tail", "-5"),
		nc(RoleHeadCommand, "head", "-3"),
	}
	out, err := Coalesce(cmds, execQueryDesc(), aggToCountDesc())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, `is("volume") sort reported.kind asc, reported.name asc, reported.id asc limit 5, 3`, out[0].Raw)
}

func TestCoalesceTailThenHeadReversesExplicitSort(t *testing.T) {
	cmds := []NamedCommand{
		nc(RoleQueryAllPart, "search", "is(volume) sort name"),
		nc(RoleTailCommand, "tail", "-10"),
		nc(RoleHeadCommand, "head", "5"),
	}
	out, err := Coalesce(cmds, execQueryDesc(), aggToCountDesc())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, `is("volume") sort reported.name desc limit 5, 5 reversed`, out[0].Raw)
}

func TestCoalesceAggregateAndCountConflict(t *testing.T) {
	cmds := []NamedCommand{
		nc(RoleQueryAllPart, "search", "is(volume)"),
		nc(RoleAggregatePart, "aggregate", "reported.kind"),
		nc(RoleCountCommand, "count", ""),
	}
	_, err := Coalesce(cmds, execQueryDesc(), aggToCountDesc())
	require.Error(t, err)
}

func TestSplitQueryPrefixStopsAtFirstNonQueryPart(t *testing.T) {
	cmds := []NamedCommand{
		nc(RoleQueryAllPart, "search", "is(volume)"),
		nc(RoleHeadCommand, "head", "5"),
		nc(RoleTransform, "uniq", ""),
	}
	prefix, rest := SplitQueryPrefix(cmds)
	require.Len(t, prefix, 2)
	require.Len(t, rest, 1)
	require.Equal(t, "uniq", rest[0].Desc.Name())
}
