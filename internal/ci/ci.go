// Package ci fetches pull-request and check status through the GitHub CLI.
package ci

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts gh command execution for testability.
type Runner interface {
	Run(dir string, args ...string) (string, error)
}

// ExecRunner shells out to the gh binary.
type ExecRunner struct{}

func (ExecRunner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("gh", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("gh %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CheckState summarizes the CI checks of a pull request.
type CheckState string

const (
	ChecksNone    CheckState = ""
	ChecksPassing CheckState = "passing"
	ChecksFailing CheckState = "failing"
	ChecksPending CheckState = "pending"
)

// Status describes the pull request tracking a branch. The zero value
// means no PR was found (or CI was not requested).
type Status struct {
	PRNumber int
	State    string // OPEN, MERGED or CLOSED
	Checks   CheckState
}

// IsZero reports whether no PR information is present.
func (s Status) IsZero() bool { return s.PRNumber == 0 }

// Symbol renders the status for a table cell, e.g. "#12 ✓".
func (s Status) Symbol() string {
	if s.IsZero() {
		return ""
	}

	mark := ""
	switch s.Checks {
	case ChecksPassing:
		mark = " ✓"
	case ChecksFailing:
		mark = " ✗"
	case ChecksPending:
		mark = " ●"
	}
	return fmt.Sprintf("#%d%s", s.PRNumber, mark)
}

type prListEntry struct {
	Number            int    `json:"number"`
	State             string `json:"state"`
	StatusCheckRollup []struct {
		Status     string `json:"status"`
		Conclusion string `json:"conclusion"`
	} `json:"statusCheckRollup"`
}

// FetchPRStatus looks up the open or recently closed PR whose head is the
// given branch. A branch without a PR yields a zero Status and no error.
func FetchPRStatus(r Runner, dir, branch string) (Status, error) {
	out, err := r.Run(dir, "pr", "list",
		"--head", branch,
		"--state", "all",
		"--limit", "1",
		"--json", "number,state,statusCheckRollup")
	if err != nil {
		return Status{}, err
	}

	var entries []prListEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		return Status{}, fmt.Errorf("parse gh pr list output: %w", err)
	}
	if len(entries) == 0 {
		return Status{}, nil
	}

	e := entries[0]
	return Status{
		PRNumber: e.Number,
		State:    e.State,
		Checks:   rollupState(e),
	}, nil
}

// rollupState folds individual check results into one state: any failure
// wins, then any pending, then passing.
func rollupState(e prListEntry) CheckState {
	if len(e.StatusCheckRollup) == 0 {
		return ChecksNone
	}

	state := ChecksPassing
	for _, c := range e.StatusCheckRollup {
		switch strings.ToUpper(c.Conclusion) {
		case "FAILURE", "TIMED_OUT", "CANCELLED":
			return ChecksFailing
		case "SUCCESS", "NEUTRAL", "SKIPPED":
			// keep current state
		default:
			if strings.ToUpper(c.Status) != "COMPLETED" {
				state = ChecksPending
			}
		}
	}
	return state
}
