package list

import "testing"

func TestParseStatusSymbols(t *testing.T) {
	tests := []struct {
		name      string
		porcelain string
		symbols   string
		dirty     bool
	}{
		{"clean", "", "", false},
		{"untracked only", "?? notes.txt\n", "?", true},
		{"modified only", " M main.go\n", "!", true},
		{"staged only", "M  main.go\n", "+", true},
		{"staged and modified", "MM main.go\n", "+!", true},
		{"renamed", "R  old.go -> new.go\n", "+»", true},
		{"deleted", " D gone.go\n", "✘", true},
		{"everything", "M  a.go\n M b.go\n?? c.go\nR  d.go -> e.go\n D f.go\n", "+!?»✘", true},
		{"category appears once", "?? a\n?? b\n?? c\n", "?", true},
		{"short line ignored", "x\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			symbols, dirty := ParseStatusSymbols(tt.porcelain)
			if symbols != tt.symbols {
				t.Errorf("symbols = %q, want %q", symbols, tt.symbols)
			}
			if dirty != tt.dirty {
				t.Errorf("dirty = %v, want %v", dirty, tt.dirty)
			}
		})
	}
}
