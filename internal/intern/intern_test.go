package intern

import "testing"

func TestChar(t *testing.T) {
	for _, r := range "azAZ09" {
		if got := Char(r); got != string(r) {
			t.Errorf("Char(%q) = %q", r, got)
		}
	}
	// Outside the tables the call still returns the right string.
	if got := Char('é'); got != "é" {
		t.Errorf("Char('é') = %q", got)
	}
}

func TestDashChar(t *testing.T) {
	if got := DashChar('x'); got != "-x" {
		t.Errorf("DashChar('x') = %q", got)
	}
	if got := DashChar('7'); got != "-7" {
		t.Errorf("DashChar('7') = %q", got)
	}
	if got := DashChar('ß'); got != "-ß" {
		t.Errorf("DashChar('ß') = %q", got)
	}
}

func TestLookupsAreStable(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		if Char(r) != string(r) || DashChar(r) != "-"+string(r) {
			t.Fatalf("table mismatch at %q", r)
		}
	}
}
