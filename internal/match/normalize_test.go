package match

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CARLOS ALCARAZ", "carlos alcaraz"},
		{"carlos alcaraz", "carlos alcaraz"},
		{"J. Sinner", "j sinner"},
		{"J Sinner", "j sinner"},
		{"Córdoba", "cordoba"},
		{"Cordoba", "cordoba"},
		{"  Atlético   Nacional  ", "atletico nacional"},
		{"Bélgica", "belgica"},
		{"Perú", "peru"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_CaseAndAccentInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"CARLOS ALCARAZ", "carlos alcaraz"},
		{"J. Sinner", "J Sinner"},
		{"Córdoba", "Cordoba"},
	}
	for _, p := range pairs {
		if Normalize(p[0]) != Normalize(p[1]) {
			t.Errorf("Normalize(%q) != Normalize(%q): %q vs %q",
				p[0], p[1], Normalize(p[0]), Normalize(p[1]))
		}
	}
}
