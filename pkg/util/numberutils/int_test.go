package numberutils

import "testing"

func TestToIntWithDefault(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultVal int
		want       int
	}{
		{"valid number", "42", 0, 42},
		{"negative number", "-7", 0, -7},
		{"empty string", "", 5, 5},
		{"not a number", "abc", 5, 5},
		{"trailing garbage", "42x", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToIntWithDefault(tt.input, tt.defaultVal); got != tt.want {
				t.Errorf("ToIntWithDefault(%q, %d): got %d, want %d", tt.input, tt.defaultVal, got, tt.want)
			}
		})
	}
}
