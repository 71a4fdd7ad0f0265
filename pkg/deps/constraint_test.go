package deps

import (
	"slices"
	"testing"
)

func TestIsConstrained(t *testing.T) {
	tests := []struct {
		dep  string
		want bool
	}{
		{"glibc", false},
		{"lib32-glibc", false},
		{"gtk+", false},
		{"python>=3.10", true},
		{"pacman>6.1", true},
		{"openssl<3", true},
		{"glibc=2.38", true},
		{"zlib<=1:1.3", true},
	}
	for _, tt := range tests {
		if got := IsConstrained(tt.dep); got != tt.want {
			t.Errorf("IsConstrained(%q) = %v, want %v", tt.dep, got, tt.want)
		}
	}
}

func TestSplitDependencies(t *testing.T) {
	p := &Package{
		Name:         "app",
		Dependencies: []string{"git", "python>=3", "go", " ", "git", "go=2:1.22"},
	}

	names, constrained := splitDependencies(p)
	if want := []string{"git", "go"}; !slices.Equal(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if want := []string{"python>=3", "go=2:1.22"}; !slices.Equal(constrained, want) {
		t.Errorf("constrained = %v, want %v", constrained, want)
	}
}
