package applicant

import "testing"

// Provisional numbers must be stable per account and distinct across
// accounts, regardless of how many student rows exist or have been deleted.
func TestProvisionalMatricNo(t *testing.T) {
	if got := provisionalMatricNo(7); got != "APP/000007" {
		t.Errorf("provisionalMatricNo(7) = %q, want APP/000007", got)
	}
	if got := provisionalMatricNo(1234567); got != "APP/1234567" {
		t.Errorf("provisionalMatricNo(1234567) = %q", got)
	}

	seen := make(map[string]bool)
	for id := uint(1); id <= 1000; id++ {
		no := provisionalMatricNo(id)
		if seen[no] {
			t.Fatalf("duplicate matric number %q at id %d", no, id)
		}
		seen[no] = true
	}

	if provisionalMatricNo(42) != provisionalMatricNo(42) {
		t.Error("matric number not stable for the same account")
	}
}
