package git

import (
	"testing"
)

func TestCommitTimestamp(t *testing.T) {
	ts, err := CommitTimestamp(fixedRunner("1718000000", nil), "/repo", "abc")
	if err != nil {
		t.Fatalf("CommitTimestamp: %v", err)
	}
	if ts != 1718000000 {
		t.Errorf("ts = %d, want 1718000000", ts)
	}
}

func TestCommitTimestampUnparseable(t *testing.T) {
	if _, err := CommitTimestamp(fixedRunner("not-a-number", nil), "/repo", "abc"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAheadBehind(t *testing.T) {
	tests := []struct {
		name              string
		out               string
		wantA, wantB      int
		wantErr           bool
	}{
		{name: "ahead and behind", out: "1\t2", wantA: 2, wantB: 1},
		{name: "equal", out: "0\t0"},
		{name: "garbage", out: "nonsense", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, err := AheadBehind(fixedRunner(tt.out, nil), "/repo", "main", "HEAD")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if a != tt.wantA || b != tt.wantB {
				t.Errorf("ahead/behind = %d/%d, want %d/%d", a, b, tt.wantA, tt.wantB)
			}
		})
	}
}

func TestParseShortstat(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want LineDiff
	}{
		{
			name: "insertions and deletions",
			out:  " 3 files changed, 10 insertions(+), 2 deletions(-)",
			want: LineDiff{Added: 10, Deleted: 2},
		},
		{
			name: "insertions only",
			out:  " 1 file changed, 1 insertion(+)",
			want: LineDiff{Added: 1},
		},
		{
			name: "deletions only",
			out:  " 2 files changed, 5 deletions(-)",
			want: LineDiff{Deleted: 5},
		},
		{name: "empty diff", out: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseShortstat(tt.out)
			if got != tt.want {
				t.Errorf("parseShortstat(%q) = %+v, want %+v", tt.out, got, tt.want)
			}
		})
	}
}

func TestUpstreamBranch(t *testing.T) {
	out, err := UpstreamBranch(fixedRunner("origin/feature/login", nil), "feature/login")
	if err != nil {
		t.Fatalf("UpstreamBranch: %v", err)
	}
	if out != "origin/feature/login" {
		t.Errorf("upstream = %q", out)
	}
}

func TestUpstreamBranchNone(t *testing.T) {
	r := fixedRunner("fatal: no upstream configured for branch 'x'", errGitFailed)
	out, err := UpstreamBranch(r, "x")
	if err != nil {
		t.Fatalf("expected no error for missing upstream, got %v", err)
	}
	if out != "" {
		t.Errorf("upstream = %q, want empty", out)
	}
}

func TestHasMergeConflicts(t *testing.T) {
	t.Run("clean merge", func(t *testing.T) {
		got, err := HasMergeConflicts(fixedRunner("treesha", nil), "main", "feat")
		if err != nil || got {
			t.Errorf("got (%v, %v), want (false, nil)", got, err)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		out := "treesha\n100644 blob ...\nCONFLICT (content): Merge conflict in a.go"
		got, err := HasMergeConflicts(fixedRunner(out, errGitFailed), "main", "feat")
		if err != nil {
			t.Fatalf("HasMergeConflicts: %v", err)
		}
		if !got {
			t.Error("got false, want true")
		}
	})

	t.Run("hard failure", func(t *testing.T) {
		if _, err := HasMergeConflicts(fixedRunner("fatal: bad ref", errGitFailed), "main", "feat"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestConfigValueUnset(t *testing.T) {
	got, err := ConfigValue(fixedRunner("", errGitFailed), "/repo", "tilik.status.feat")
	if err != nil {
		t.Fatalf("ConfigValue: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
