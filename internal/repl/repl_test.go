package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphshell/gsh/internal/cli"
	"github.com/graphshell/gsh/internal/command"
	"github.com/graphshell/gsh/internal/feedback"
)

// setup mirrors Run()'s registry construction without starting go-prompt,
// and captures feedback's streams into buffers.
func setup(t *testing.T) (out, errs *bytes.Buffer) {
	t.Helper()
	originalOut := feedback.GetOutputStream()
	originalErr := feedback.GetErrorStream()
	t.Cleanup(func() {
		feedback.SetOutputStream(originalOut)
		feedback.SetErrorStream(originalErr)
	})
	out, errs = &bytes.Buffer{}, &bytes.Buffer{}
	feedback.SetOutputStream(out)
	feedback.SetErrorStream(errs)
	registry = cli.NewRegistry(command.Descriptors(), command.Aliases())
	return out, errs
}

func TestExecutor_EchoPipeline(t *testing.T) {
	out, errs := setup(t)
	executor("echo hello")
	require.Empty(t, errs.String())
	require.Contains(t, out.String(), "hello")
}

func TestExecutor_UnknownCommand(t *testing.T) {
	_, errs := setup(t)
	executor("echo foo | uniq | some_not_existing_command")
	require.Contains(t, errs.String(), "Command >some_not_existing_command< is not known. typo?")
}

func TestExecutor_IllegalPipeline(t *testing.T) {
	_, errs := setup(t)
	executor("uniq")
	require.Contains(t, errs.String(), "Command >uniq< can not be used in this position: no source data given")
}

func TestExecutor_Help(t *testing.T) {
	out, errs := setup(t)
	executor("help")
	require.Empty(t, errs.String())
	require.Contains(t, out.String(), "Available commands:")
}

func TestExecutor_HelpKnownCommand(t *testing.T) {
	out, _ := setup(t)
	executor("help echo")
	require.True(t, strings.HasPrefix(out.String(), "echo - "))
}

func TestExecutor_EmptyLineIsNoop(t *testing.T) {
	out, errs := setup(t)
	executor("   ")
	require.Empty(t, out.String())
	require.Empty(t, errs.String())
}

func TestExecutor_QueryCoalescing(t *testing.T) {
	out, errs := setup(t)
	executor("search some_int==0 | descendants")
	require.Empty(t, errs.String())
	require.Contains(t, out.String(), "default[1:]")
}
