package git

import "errors"

var errGitFailed = errors.New("git failed")

// mockRunner implements Runner with configurable closures for testing.
type mockRunner struct {
	run      func(args ...string) (string, error)
	runInDir func(dir string, args ...string) (string, error)
}

func (m *mockRunner) Run(args ...string) (string, error) {
	return m.run(args...)
}

func (m *mockRunner) RunInDir(dir string, args ...string) (string, error) {
	if m.runInDir != nil {
		return m.runInDir(dir, args...)
	}
	return m.run(args...)
}

// fixedRunner returns the same output for every invocation.
func fixedRunner(out string, err error) *mockRunner {
	return &mockRunner{
		run: func(_ ...string) (string, error) { return out, err },
	}
}
