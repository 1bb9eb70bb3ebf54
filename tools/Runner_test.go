package tools

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Output(t *testing.T) {
	runner := ExecRunner{}

	code, output, err := runner.Output(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Contains(t, output, "out")
	assert.Contains(t, output, "err")
}

func TestExecRunner_Run(t *testing.T) {
	var buf bytes.Buffer
	runner := ExecRunner{Writer: &buf}

	code, err := runner.Run(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", buf.String())
}

func TestExecRunner_MissingProgram(t *testing.T) {
	runner := ExecRunner{}

	code, _, err := runner.Output(context.Background(), "definitely-not-a-real-program-snapreview")
	assert.Error(t, err)
	assert.Equal(t, -1, code)
}
