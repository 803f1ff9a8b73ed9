package job

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"50000", 50000, true},
		{" 12 ", 12, true},
		{"\t3.5\n", 3.5, true},
		{"", 0, true},
		{"   ", 0, true},
		{"-2", -2, true},
		{"+7", 7, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"2E-1", 0.2, true},
		{"0x10", 16, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{"007", 7, true},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"1,000", 0, false},
		{"1_000", 0, false},
		{"Infinity", 0, false},
		{"-Infinity", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"0x", 0, false},
		{"-0x10", 0, false},
		{"0x1p-2", 0, false},
		{"1e999", 0, false},
		{"5 000", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		if ok != tt.ok {
			t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Fatalf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNumericInput_Empty(t *testing.T) {
	tests := []struct {
		in   NumericInput
		want bool
	}{
		{NumericInput{}, true},
		{NumericInput{Text: "0", IsNumber: true}, true},
		{NumericInput{Text: "-0", IsNumber: true}, true},
		{NumericInput{Text: "0.0", IsNumber: true}, true},
		{NumericInput{Text: "0"}, false},
		{NumericInput{Text: " "}, false},
		{NumericInput{Text: "12", IsNumber: true}, false},
		{NumericInput{Text: "abc"}, false},
	}
	for _, tt := range tests {
		if got := tt.in.Empty(); got != tt.want {
			t.Fatalf("%+v.Empty() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
