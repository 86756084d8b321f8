package clierr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnknownCommandMessage(t *testing.T) {
	err := &UnknownCommand{Name: "some_not_existing_command"}
	require.Equal(t, "Command >some_not_existing_command< is not known. typo?", err.Error())
}

func TestIllegalPipelineMessages(t *testing.T) {
	noSource := &IllegalPipeline{Name: "uniq", Detail: DetailNoSourceData}
	require.Equal(t, "Command >uniq< can not be used in this position: no source data given", noSource.Error())

	mustBeFirst := &IllegalPipeline{Name: "echo", Detail: DetailMustBeFirst}
	require.Equal(t, "Command >echo< can not be used in this position: must be the first command", mustBeFirst.Error())
}

func TestArgParseErrorMessage(t *testing.T) {
	err := &ArgParseError{
		Command:   "chunk",
		RawArgs:   "not-a-number",
		CauseKind: "ValueError",
		CauseMsg:  "invalid literal for int()",
	}
	require.Equal(t, "chunk: can not parse: not-a-number: ValueError: invalid literal for int()", err.Error())
}
