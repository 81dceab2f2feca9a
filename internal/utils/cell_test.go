package utils

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		cell     string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"Braking", false},
		{" 0 ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.cell); got != tt.expected {
			t.Errorf("IsBlank(%q) = %v, expected %v", tt.cell, got, tt.expected)
		}
	}
}

func TestIsNotAvailable(t *testing.T) {
	markers := []string{"#N/A", "N/A "}

	tests := []struct {
		cell     string
		expected bool
	}{
		{"#N/A", true},
		{" #n/a ", true},
		{"N/A", true},
		{"", false},
		{"4.5", false},
		{"#VALUE!", false},
	}

	for _, tt := range tests {
		if got := IsNotAvailable(tt.cell, markers); got != tt.expected {
			t.Errorf("IsNotAvailable(%q) = %v, expected %v", tt.cell, got, tt.expected)
		}
	}
}

func TestCellAt(t *testing.T) {
	row := []string{"a", "b"}

	if got := CellAt(row, 1); got != "b" {
		t.Errorf("CellAt(row, 1) = %q, expected %q", got, "b")
	}
	if got := CellAt(row, 5); got != "" {
		t.Errorf("CellAt(row, 5) = %q, expected empty", got)
	}
	if got := CellAt(row, -1); got != "" {
		t.Errorf("CellAt(row, -1) = %q, expected empty", got)
	}
}
