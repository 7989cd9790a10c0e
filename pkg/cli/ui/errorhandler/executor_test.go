package errorhandler_test

import (
	"errors"
	"testing"

	"github.com/dev1-sg/ecrdocs/pkg/cli/ui/errorhandler"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errBoom            = errors.New("boom")
	errOriginalFailure = errors.New("original failure")
	errBoomOriginal    = errors.New("boom: original failure")
)

func TestExecute_Success(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:  "ecrdocs",
		RunE: func(_ *cobra.Command, _ []string) error { return nil },
	}

	require.NoError(t, errorhandler.NewExecutor().Execute(cmd))
}

func TestExecute_NilCommand(t *testing.T) {
	t.Parallel()

	require.NoError(t, errorhandler.NewExecutor().Execute(nil))
}

func TestExecute_UnknownSubcommandKeepsUsageHint(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "ecrdocs"}
	root.AddCommand(&cobra.Command{Use: "catalog", Run: func(_ *cobra.Command, _ []string) {}})
	root.SetArgs([]string{"gallery"})

	err := errorhandler.NewExecutor().Execute(root)
	require.Error(t, err)

	assert.Contains(t, err.Error(), `unknown command "gallery" for "ecrdocs"`)
	assert.Contains(t, err.Error(), "Run 'ecrdocs --help' for usage.")
	assert.NotContains(t, err.Error(), "Error: ")
}

func TestCommandError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		printed string
		cause   error
		want    string
	}{
		{
			name:  "cause only when nothing was printed",
			cause: errBoom,
			want:  "boom",
		},
		{
			name:    "message and cause joined when distinct",
			printed: "normalized",
			cause:   errOriginalFailure,
			want:    "normalized: original failure",
		},
		{
			name:    "message kept when it already includes the cause",
			printed: "boom: original failure",
			cause:   errBoomOriginal,
			want:    "boom: original failure",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cmd := &cobra.Command{
				Use:           "ecrdocs",
				SilenceErrors: true,
				SilenceUsage:  true,
				RunE: func(cmd *cobra.Command, _ []string) error {
					if testCase.printed != "" {
						cmd.PrintErrln(testCase.printed)
					}

					return testCase.cause
				},
			}

			err := errorhandler.NewExecutor().Execute(cmd)

			var cmdErr *errorhandler.CommandError
			require.ErrorAs(t, err, &cmdErr)
			assert.Equal(t, testCase.want, cmdErr.Error())
			assert.ErrorIs(t, err, testCase.cause)
		})
	}
}

func TestCommandError_NilAndEmpty(t *testing.T) {
	t.Parallel()

	var nilErr *errorhandler.CommandError

	assert.Empty(t, nilErr.Error())
	assert.NoError(t, nilErr.Unwrap())
	assert.Empty(t, (&errorhandler.CommandError{}).Error())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "blank", input: "   \n\t  ", want: ""},
		{name: "single line", input: "Error: no such directory\n", want: "no such directory"},
		{name: "keeps following lines", input: "  Error: something bad \nRun help\n", want: "something bad\nRun help"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, errorhandler.Normalize(testCase.input))
		})
	}
}
