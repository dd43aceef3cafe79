package calc

import (
	"strings"
	"testing"
)

func TestEval(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"1+2*3", "7 (0x7) (0b111)"},
		{"0x10 | 0b0001", "17 (0x11) (0b10001)"},
		{"1<<4", "16 (0x10) (0b10000)"},
		{"2**10", "1024 (0x400) (0b10000000000)"},
		{"(1+2)(3+4)", "21 (0x15) (0b10101)"},
		{"2(3)", "6 (0x6) (0b110)"},
		{"1/0", "inf"},
		{"-1/0", "-inf"},
		{"10/4", "2.5"},
		{"3-5", "-2 (0x-2) (0b-10)"},
		{"2**3**2", "64 (0x40) (0b1000000)"},
		{"8>>1>>1", "2 (0x2) (0b10)"},
		{"1+2^3+4", "4 (0x4) (0b100)"},
		{"-3+4", "1 (0x1) (0b1)"},
		{"(1+2) * (10 - 4)", "18 (0x12) (0b10010)"},
	}
	for _, tc := range cases {
		got, err := Eval(tc.expr)
		if err != nil {
			t.Errorf("Eval(%q): unexpected error %v", tc.expr, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Eval(%q) = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"(1+2", "parentheses"},
		{"1+2)", "parentheses"},
		{"1+", "values"},
		{"1..2", "float"},
		{"", "evaluate"},
	}
	for _, tc := range cases {
		_, err := Eval(tc.expr)
		if err == nil {
			t.Errorf("Eval(%q): expected error", tc.expr)
			continue
		}
		if !strings.Contains(strings.ToLower(err.Error()), tc.want) {
			t.Errorf("Eval(%q) error = %q, want substring %q", tc.expr, err.Error(), tc.want)
		}
	}
}

func TestRadixRewrite(t *testing.T) {
	if got := rewriteRadixLiterals("0xFF + 0b101"); got != "255 + 5" {
		t.Errorf("rewriteRadixLiterals = %q", got)
	}
}
