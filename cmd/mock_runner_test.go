package cmd

import (
	"bytes"
	"errors"

	"github.com/spf13/cobra"

	"github.com/lugassawan/tilik/internal/ci"
	"github.com/lugassawan/tilik/internal/git"
)

const (
	repoPath     = "/repo"
	featPath     = "/repo/wt/feat"
	headMain     = "aaa"
	headFeat     = "bbb"
	branchMain   = "main"
	branchFeat   = "feat"
	worktreeList = "worktree /repo\nHEAD aaa\nbranch refs/heads/main\n\n" +
		"worktree /repo/wt/feat\nHEAD bbb\nbranch refs/heads/feat\n"
)

var errGitFailed = errors.New("git failed")

// mockRunner implements git.Runner with configurable closures for testing.
type mockRunner struct {
	run      func(args ...string) (string, error)
	runInDir func(dir string, args ...string) (string, error)
}

func (m *mockRunner) Run(args ...string) (string, error) {
	return m.run(args...)
}

func (m *mockRunner) RunInDir(dir string, args ...string) (string, error) {
	return m.runInDir(dir, args...)
}

// noopRunInDir is a default runInDir that returns empty output.
func noopRunInDir(_ string, _ ...string) (string, error) {
	return "", nil
}

type mockCIRunner struct {
	run func(dir string, args ...string) (string, error)
}

func (m *mockCIRunner) Run(dir string, args ...string) (string, error) {
	return m.run(dir, args...)
}

// newTestCmd creates a cobra.Command with the list flags and separate
// buffers for stdout and stderr capture.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	out := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool(flagNoColor, true, "")
	cmd.Flags().Bool(flagJSON, false, "")
	cmd.SetOut(out)
	cmd.SetErr(errBuf)
	return cmd, out, errBuf
}

// overrideNewRunner temporarily replaces the newRunner function for testing.
func overrideNewRunner(r git.Runner) func() {
	orig := newRunner
	newRunner = func() git.Runner { return r }
	return func() { newRunner = orig }
}

// overrideNewCIRunner temporarily replaces the gh runner factory.
func overrideNewCIRunner(r ci.Runner) func() {
	orig := newCIRunner
	newCIRunner = func() ci.Runner { return r }
	return func() { newCIRunner = orig }
}
