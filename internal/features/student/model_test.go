package student

import "testing"

func TestRankOrder(t *testing.T) {
	tests := []struct {
		rank string
		want int
	}{
		{"White", 0},
		{"Yellow", 2},
		{"Red", 8},
		{"1st Dan", 10},
		{"5th Dan", 14},
		{"Purple", -1},
		{"", -1},
	}

	for _, tt := range tests {
		t.Run(tt.rank, func(t *testing.T) {
			if got := RankOrder(tt.rank); got != tt.want {
				t.Errorf("RankOrder(%q) = %d, want %d", tt.rank, got, tt.want)
			}
		})
	}
}

func TestRanksAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Ranks {
		if seen[r] {
			t.Errorf("duplicate rank %q", r)
		}
		seen[r] = true
	}
}
