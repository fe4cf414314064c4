package prompt

import "testing"

func TestMergeSelection(t *testing.T) {
	tests := []struct {
		name   string
		preset string
		custom string
		sep    string
		want   string
		ok     bool
	}{
		{"both empty", "", "", " ", "", false},
		{"whitespace only", "  ", "\t", " ", "", false},
		{"preset only", "30s", "", " ", "30s", true},
		{"custom only", "", "ageless", " ", "ageless", true},
		{"preset first", "X", "Y", " ", "X Y", true},
		{"comma separator", "X", "Y", ", ", "X, Y", true},
		{"trimmed parts", "  X ", " Y  ", " ", "X Y", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MergeSelection(tt.preset, tt.custom, tt.sep)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("MergeSelection(%q, %q) = (%q, %v), want (%q, %v)", tt.preset, tt.custom, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMergeMultiSelection(t *testing.T) {
	tests := []struct {
		name    string
		presets []string
		custom  string
		want    string
		ok      bool
	}{
		{"empty", nil, "", "", false},
		{"presets in order", []string{"B", "A"}, "", "B, A", true},
		{"custom appended last", []string{"X"}, "Y", "X, Y", true},
		{"custom only", nil, "Y", "Y", true},
		{"blank entries dropped", []string{"", "X", " "}, " ", "X", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MergeMultiSelection(tt.presets, tt.custom, ", ")
			if got != tt.want || ok != tt.ok {
				t.Fatalf("MergeMultiSelection(%v, %q) = (%q, %v), want (%q, %v)", tt.presets, tt.custom, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWithPrefix(t *testing.T) {
	if got := WithPrefix("set in ", "Forest"); got != "set in Forest" {
		t.Errorf("WithPrefix() = %q", got)
	}
	if got := WithPrefix("set in ", ""); got != "" {
		t.Errorf("WithPrefix() with empty value = %q, want empty", got)
	}
}
