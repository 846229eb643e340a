// Package gitcmd runs git subprocesses and returns their output lines. It is
// the reader collaborator: everything downstream consumes plain text lines.
package gitcmd

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// Pretty formats requested from git log, one per input source.
const (
	// CommitFormat emits "<parents>\t<epoch> <±hhmm>\t<author>".
	CommitFormat = "%P%x09%at %z%x09%aN"
	// TicketFormat emits "<author>\t<subject>".
	TicketFormat = "%aN%x09%s"
)

// ExitErr reports a git subprocess that exited non-zero.
type ExitErr struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExitErr) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git exited with code %d: %s", e.ExitCode, e.Stderr)
	}

	return fmt.Sprintf("git exited with code %d", e.ExitCode)
}

func (e *ExitErr) Unwrap() error {
	return e.Err
}

// Runner invokes git in a repository directory. LogArgs are prepended to
// every git log invocation (e.g. --all, --no-merges).
type Runner struct {
	RepoDir string
	LogArgs []string
}

// Log runs git log with the given pretty format and returns the output lines.
func (r *Runner) Log(ctx context.Context, format string, extra ...string) ([]string, error) {
	args := append([]string{"log"}, r.LogArgs...)
	args = append(args, "--pretty=format:"+format)
	args = append(args, extra...)

	return r.run(ctx, args...)
}

// LsTree lists all file paths tracked at HEAD.
func (r *Runner) LsTree(ctx context.Context) ([]string, error) {
	return r.run(ctx, "ls-tree", "-r", "--name-only", "HEAD")
}

// Tags lists tag names in creation order.
func (r *Runner) Tags(ctx context.Context) ([]string, error) {
	return r.run(ctx, "tag", "--sort=creatordate")
}

// CountCommits counts the commits reachable in a revision range such as
// "v1.0..v1.1", honoring the runner's merge-exclusion argument.
func (r *Runner) CountCommits(ctx context.Context, rangeSpec string) (int, error) {
	args := []string{"rev-list", "--count"}

	for _, a := range r.LogArgs {
		if a == "--no-merges" {
			args = append(args, a)
		}
	}

	args = append(args, rangeSpec)

	lines, err := r.run(ctx, args...)
	if err != nil {
		return 0, err
	}

	if len(lines) == 0 {
		return 0, nil
	}

	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return 0, fmt.Errorf("parse rev-list count %q: %w", lines[0], err)
	}

	return count, nil
}

func (r *Runner) run(ctx context.Context, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.RepoDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running git subprocess", "args", args, "dir", r.RepoDir)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitErr{
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
				Err:      err,
			}
		}

		return nil, fmt.Errorf("start git: %w", err)
	}

	return ScanLines(&stdout), nil
}

// ScanLines reads all non-empty lines from a reader.
func ScanLines(buf io.Reader) []string {
	var lines []string

	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
