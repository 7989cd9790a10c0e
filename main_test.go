package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSafelyReturnsRunnerExitCode(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	code := runSafely([]string{"a"}, func(args []string) int {
		return len(args) + 1
	}, &errOut)

	assert.Equal(t, 2, code)
	assert.Empty(t, errOut.String())
}

func TestRunSafelyRecoversPanic(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	code := runSafely(nil, func([]string) int {
		panic("boom")
	}, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "panic recovered: boom")
}
