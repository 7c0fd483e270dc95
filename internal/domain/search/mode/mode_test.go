package mode

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		m    Mode
		want bool
	}{
		{TopK, true},
		{Curated, true},
		{Mode(""), false},
		{Mode("semantic"), false},
	}
	for _, tc := range tests {
		if got := tc.m.IsValid(); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.m, got, tc.want)
		}
	}
}
