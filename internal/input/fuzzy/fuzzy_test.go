package fuzzy

import (
	"reflect"
	"testing"
)

var names = []string{"enter", "end", "escape", "esc", "pagedown", "pageup", "f1", "f10", "f11"}

func TestMatchOrder(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"entr", []string{"enter"}},
		{"pgdn", []string{"pagedown"}},
		{"esc", []string{"esc", "escape"}},
		{"f1", []string{"f1", "f10", "f11"}},
		{"PAGE", []string{"pageup", "pagedown"}},
		{"escpae", []string{"escape"}},
		{"pageuq", []string{"pageup"}},
		{"xyz", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Suggest(tt.query, names, 0)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchLimit(t *testing.T) {
	got := Match("e", names, 2)
	if len(got) != 2 {
		t.Fatalf("len(Match) = %d, want 2", len(got))
	}
	if got[0].Score < got[1].Score {
		t.Errorf("results not sorted: %d < %d", got[0].Score, got[1].Score)
	}
}

func TestMatchPositions(t *testing.T) {
	got := Match("pgdn", names, 1)
	if len(got) != 1 {
		t.Fatalf("len(Match) = %d, want 1", len(got))
	}
	want := []int{0, 2, 4, 7}
	if !reflect.DeepEqual(got[0].Matches, want) {
		t.Errorf("Matches = %v, want %v", got[0].Matches, want)
	}
}

func TestMatchTypoRanksBelowSubsequence(t *testing.T) {
	// "ed" is a subsequence of "end" and one edit away from "fd".
	got := Match("ed", []string{"fd", "end"}, 0)
	if len(got) != 2 {
		t.Fatalf("len(Match) = %d, want 2: %+v", len(got), got)
	}
	if got[0].Text != "end" || got[1].Text != "fd" {
		t.Errorf("order = [%s %s], want [end fd]", got[0].Text, got[1].Text)
	}
	if got[1].Matches != nil {
		t.Errorf("typo match Matches = %v, want nil", got[1].Matches)
	}
}

func TestMatchDeterministic(t *testing.T) {
	first := Suggest("e", names, 0)
	for i := 0; i < 10; i++ {
		if got := Suggest("e", names, 0); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d = %v, want %v", i, got, first)
		}
	}
}
