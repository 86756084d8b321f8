package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphshell/gsh/internal/clierr"
)

// echoDescriptor is a minimal real Source: it emits its raw argument as
// a single string item, enough to exercise Evaluate/Execute end-to-end
// without a real backend collaborator.
type echoDescriptor struct{}

func (echoDescriptor) Name() string              { return "echo" }
func (echoDescriptor) Role() Role                { return RoleSource }
func (echoDescriptor) Info() string              { return "echo info" }
func (echoDescriptor) Help() string              { return "echo help" }
func (echoDescriptor) ProducesMediaType() string { return "text/plain" }
func (echoDescriptor) ParseArgs(ctx context.Context, raw string, env map[string]any) (Bound, error) {
	return Bound{Source: func(ctx context.Context) Stream {
		ch := make(chan Item, 1)
		ch <- Item{Value: raw}
		close(ch)
		return ch
	}}, nil
}

// execQueryStubDescriptor stands in for the real backend collaborator:
// it emits its stringified query as a single item so coalesced
// pipelines can be evaluated end-to-end in tests.
type execQueryStubDescriptor struct{}

func (execQueryStubDescriptor) Name() string              { return "execute_query" }
func (execQueryStubDescriptor) Role() Role                { return RoleInternal }
func (execQueryStubDescriptor) Info() string              { return "runs a query" }
func (execQueryStubDescriptor) Help() string              { return "" }
func (execQueryStubDescriptor) ProducesMediaType() string { return "application/json" }
func (execQueryStubDescriptor) ParseArgs(ctx context.Context, raw string, env map[string]any) (Bound, error) {
	return Bound{Source: func(ctx context.Context) Stream {
		ch := make(chan Item, 1)
		ch <- Item{Value: raw}
		close(ch)
		return ch
	}}, nil
}

type aggregateStubDescriptor struct{}

func (aggregateStubDescriptor) Name() string              { return "aggregate_to_count" }
func (aggregateStubDescriptor) Role() Role                { return RoleInternal }
func (aggregateStubDescriptor) Info() string              { return "" }
func (aggregateStubDescriptor) Help() string              { return "" }
func (aggregateStubDescriptor) ProducesMediaType() string { return "application/json" }
func (aggregateStubDescriptor) ParseArgs(ctx context.Context, raw string, env map[string]any) (Bound, error) {
	return Bound{Transform: func(ctx context.Context, in Stream) Stream { return in }}, nil
}

type addJobDescriptor struct{}

func (addJobDescriptor) Name() string              { return "add_job" }
func (addJobDescriptor) Role() Role                { return RoleSource }
func (addJobDescriptor) Info() string              { return "" }
func (addJobDescriptor) Help() string              { return "" }
func (addJobDescriptor) ProducesMediaType() string { return "application/json" }
func (addJobDescriptor) ParseArgs(ctx context.Context, raw string, env map[string]any) (Bound, error) {
	return Bound{Source: func(ctx context.Context) Stream {
		ch := make(chan Item, 1)
		ch <- Item{Value: raw}
		close(ch)
		return ch
	}}, nil
}

type uniqDescriptor struct{}

func (uniqDescriptor) Name() string              { return "uniq" }
func (uniqDescriptor) Role() Role                { return RoleTransform }
func (uniqDescriptor) Info() string              { return "" }
func (uniqDescriptor) Help() string              { return "" }
func (uniqDescriptor) ProducesMediaType() string { return "application/json" }
func (uniqDescriptor) ParseArgs(ctx context.Context, raw string, env map[string]any) (Bound, error) {
	return Bound{Transform: func(ctx context.Context, in Stream) Stream { return in }}, nil
}

func testRegistry() *Registry {
	return NewRegistry([]Descriptor{
		echoDescriptor{},
		execQueryStubDescriptor{},
		aggregateStubDescriptor{},
		addJobDescriptor{},
		uniqDescriptor{},
		stubDescriptor{name: "search", role: RoleQueryAllPart},
		stubDescriptor{name: "descendants", role: RoleDescendant},
	}, nil)
}

func TestEvaluateSimpleSourceTransformPipeline(t *testing.T) {
	lines, err := Evaluate(context.Background(), "echo hello | uniq", true, nil, testRegistry())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	items, err := Drain(context.Background(), lines[0].Stream)
	require.NoError(t, err)
	require.Equal(t, []any{"hello"}, items)
}

func TestEvaluateUnknownCommandPropagates(t *testing.T) {
	_, err := Evaluate(context.Background(), "bogus_command", true, nil, testRegistry())
	var uc *clierr.UnknownCommand
	require.ErrorAs(t, err, &uc)
	require.Equal(t, "Command >bogus_command< is not known. typo?", err.Error())
}

func TestEvaluateIllegalPipelineTransformFirstPropagates(t *testing.T) {
	_, err := Evaluate(context.Background(), "uniq", true, nil, testRegistry())
	var ip *clierr.IllegalPipeline
	require.ErrorAs(t, err, &ip)
}

func TestEvaluateCoalescesQueryPrefixIntoExecuteQuery(t *testing.T) {
	lines, err := Evaluate(context.Background(), "search some_int==0 | descendants", true, nil, testRegistry())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Bound, 1)
	require.Equal(t, "execute_query", lines[0].Bound[0].Desc.Name())
}

func TestEvaluateAddJobSkipsPlaceholderSubstitution(t *testing.T) {
	lines, err := Evaluate(context.Background(), "add_job @TODAY@", true, nil, testRegistry())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	items, err := Drain(context.Background(), lines[0].Stream)
	require.NoError(t, err)
	require.Equal(t, []any{"@TODAY@"}, items)
}

func TestEvaluateEnvAssignmentsMergeIntoResolvedEnv(t *testing.T) {
	lines, err := Evaluate(context.Background(), "x=1 echo hi", true, map[string]any{"y": "base"}, testRegistry())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, int64(1), lines[0].ResolvedEnv["x"])
	require.Equal(t, "base", lines[0].ResolvedEnv["y"])
}

func TestParsedCommandLineProducesReflectsLastDescriptor(t *testing.T) {
	lines, err := Evaluate(context.Background(), "echo hi | uniq", true, nil, testRegistry())
	require.NoError(t, err)
	require.Equal(t, "application/json", lines[0].Produces())
	require.True(t, lines[0].ProducesJSON())
	require.False(t, lines[0].ProducesBinary())
}

func TestExecuteDrainsEachStatementThroughSink(t *testing.T) {
	results, err := Execute(context.Background(), "echo one; echo two", Drain, nil, testRegistry())
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, []any{"one"}, results[0])
	require.Equal(t, []any{"two"}, results[1])
}
