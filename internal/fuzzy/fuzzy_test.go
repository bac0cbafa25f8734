package fuzzy

import "testing"

func TestDistance(t *testing.T) {
	m := NewMatcher(10)
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "ab", 1},
		{"verbose", "verboes", 2},
		{"kitten", "sitting", 3},
		{"run", "ru", 1},
	}
	for _, tc := range cases {
		if got := m.distance(tc.a, tc.b); got != tc.want {
			t.Errorf("distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDistanceEarlyTermination(t *testing.T) {
	m := NewMatcher(2)
	if got := m.distance("completely", "different"); got != 3 {
		t.Errorf("distance beyond the bound = %d, want maxDistance+1", got)
	}
}

func TestBest(t *testing.T) {
	candidates := []string{"verbose", "version", "help"}

	if got := Best("verboes", candidates, 2); got != "verbose" {
		t.Errorf("Best = %q, want verbose", got)
	}
	if got := Best("vresion", candidates, 2); got != "version" {
		t.Errorf("Best = %q, want version", got)
	}
	if got := Best("zzzzzzz", candidates, 2); got != "" {
		t.Errorf("Best = %q, want no match", got)
	}
}

func TestBestSkipsShortInput(t *testing.T) {
	if got := Best("v", []string{"vv"}, 2); got != "" {
		t.Errorf("Best = %q, single-letter input should never match", got)
	}
}

func TestBestSkipsExactMatches(t *testing.T) {
	// An exact hit means the caller failed to look it up, not a typo.
	if got := Best("run", []string{"run", "rung"}, 2); got != "rung" {
		t.Errorf("Best = %q, want the near miss, not the exact match", got)
	}
}

func TestBestCaseOnlyTypo(t *testing.T) {
	if got := Best("Verbose", []string{"verbose"}, 2); got != "verbose" {
		t.Errorf("Best = %q, want the case-corrected candidate", got)
	}
	// A case-only mismatch beats any candidate at a real edit distance.
	if got := Best("VERSION", []string{"versions", "version"}, 2); got != "version" {
		t.Errorf("Best = %q, want the case-only match", got)
	}
}

func TestBestFoldsCase(t *testing.T) {
	if got := Best("VERBOSE", []string{"verbosee"}, 2); got != "verbosee" {
		t.Errorf("Best = %q, want case-insensitive matching", got)
	}
}

func TestBestFirstWinsOnTie(t *testing.T) {
	if got := Best("ab", []string{"aab", "abb"}, 2); got != "aab" {
		t.Errorf("Best = %q, want the earlier candidate on a tie", got)
	}
}
