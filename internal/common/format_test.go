package common

import "testing"

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.23e12, "1.2T"},
		{345.6e9, "345.6B"},
		{78.9e6, "78.9M"},
		{4500, "4.5K"},
		{999, "999"},
		{0, "0"},
		{-2.5e9, "-2.5B"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(1234.5); got != "1,234.5" {
		t.Errorf("FormatMoney(1234.5) = %q", got)
	}
}
