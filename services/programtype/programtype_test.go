package programtype

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"MASTERS", Masters},
		{"Masters", Masters},
		{"MSc", Masters},
		{"m.sc", Masters},
		{" Master of Science ", Masters},
		{"PhD", PHD},
		{"ph.d", PHD},
		{"Doctorate (PhD)", PHD},
		{"PGD", PGD},
		{"pgd management", PGD},
		{"Certificate", "CERTIFICATE"},
		{"  diploma  ", "DIPLOMA"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// Re-running Normalize on its own output must not change the category.
func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"m.sc", "MASTERS", "PhD", "pgd", "Diploma"} {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)): got %q, want %q", raw, twice, once)
		}
	}
}

// Every variant of a recognized category must normalize back to it.
func TestVariantsRoundTrip(t *testing.T) {
	for _, category := range []string{Masters, PHD, PGD} {
		for _, v := range Variants(category) {
			if got := Normalize(v); got != category {
				t.Errorf("Normalize(%q) = %q, want %q", v, got, category)
			}
		}
	}
}

func TestVariantsFallback(t *testing.T) {
	got := Variants("DIPLOMA")
	want := []string{"DIPLOMA", "diploma"}
	if len(got) != len(want) {
		t.Fatalf("Variants(DIPLOMA) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Variants(DIPLOMA)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
