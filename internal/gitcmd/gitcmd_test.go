package gitcmd

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLines(t *testing.T) {
	t.Parallel()

	lines := ScanLines(strings.NewReader("one\ntwo\n\nthree\n"))
	assert.Equal(t, []string{"one", "two", "three"}, lines)

	assert.Nil(t, ScanLines(strings.NewReader("")))
}

func TestExitErr_Error(t *testing.T) {
	t.Parallel()

	withStderr := &ExitErr{ExitCode: 128, Stderr: "fatal: not a git repository"}
	assert.Equal(t, "git exited with code 128: fatal: not a git repository", withStderr.Error())

	bare := &ExitErr{ExitCode: 1}
	assert.Equal(t, "git exited with code 1", bare.Error())
}

func TestExitErr_Unwrap(t *testing.T) {
	t.Parallel()

	inner := &exec.ExitError{}
	err := &ExitErr{ExitCode: 1, Err: inner}

	var exitErr *exec.ExitError

	assert.True(t, errors.As(err, &exitErr))
}

func TestRunner_NotARepository(t *testing.T) {
	t.Parallel()

	if _, lookErr := exec.LookPath("git"); lookErr != nil {
		t.Skip("git not installed")
	}

	runner := &Runner{RepoDir: t.TempDir()}

	_, err := runner.Log(context.Background(), CommitFormat)
	require.Error(t, err)

	var exitErr *ExitErr

	require.ErrorAs(t, err, &exitErr)
	assert.NotZero(t, exitErr.ExitCode)
}
