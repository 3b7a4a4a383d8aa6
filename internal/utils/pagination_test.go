package utils

import "testing"

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 20); got != 20 {
		t.Errorf("ParseIntDefault(\"\") = %d", got)
	}
	if got := ParseIntDefault("abc", 20); got != 20 {
		t.Errorf("ParseIntDefault(\"abc\") = %d", got)
	}
	if got := ParseIntDefault("7", 20); got != 7 {
		t.Errorf("ParseIntDefault(\"7\") = %d", got)
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		def  int
		want int
	}{
		{"", DefaultLimit, DefaultLimit},
		{"", DefaultAdminLimit, DefaultAdminLimit},
		{"30", DefaultLimit, 30},
		{"-5", DefaultLimit, DefaultLimit},
		{"500", DefaultLimit, MaxLimit}, // потолок
	}
	for _, tt := range tests {
		if got := ParseLimit(tt.raw, tt.def); got != tt.want {
			t.Errorf("ParseLimit(%q, %d) = %d, want %d", tt.raw, tt.def, got, tt.want)
		}
	}
}

func TestParseOffset(t *testing.T) {
	if got := ParseOffset(""); got != DefaultOffset {
		t.Errorf("ParseOffset(\"\") = %d", got)
	}
	if got := ParseOffset("-1"); got != DefaultOffset {
		t.Errorf("ParseOffset(\"-1\") = %d", got)
	}
	if got := ParseOffset("40"); got != 40 {
		t.Errorf("ParseOffset(\"40\") = %d", got)
	}
}
