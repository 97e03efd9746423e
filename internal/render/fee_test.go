package render

import "testing"

func TestFeeToPercentString(t *testing.T) {
	cases := []struct {
		fee  uint32
		want string
	}{
		{0, "0%"},
		{1, "0.0001%"},
		{10, "0.001%"},
		{100, "0.01%"},
		{500, "0.05%"},
		{2500, "0.25%"},
		{3000, "0.3%"},
		{10000, "1%"},
		{12500, "1.25%"},
		{100000, "10%"},
		{123456, "12.3456%"},
		{1000000, "100%"},
		{16777215, "1677.7215%"}, // max uint24
	}
	for _, tc := range cases {
		if got := FeeToPercentString(tc.fee); got != tc.want {
			t.Fatalf("fee %d: got %q want %q", tc.fee, got, tc.want)
		}
	}
}

func TestFeeToPercentStringWellFormed(t *testing.T) {
	for fee := uint32(1); fee < 2_000_000; fee += 317 {
		got := FeeToPercentString(fee)
		if got[len(got)-1] != '%' {
			t.Fatalf("fee %d: missing percent suffix: %q", fee, got)
		}
		dots := 0
		for i := 0; i < len(got)-1; i++ {
			switch {
			case got[i] == '.':
				dots++
			case got[i] < '0' || got[i] > '9':
				t.Fatalf("fee %d: unexpected byte %q in %q", fee, got[i], got)
			}
		}
		if dots > 1 {
			t.Fatalf("fee %d: multiple decimal points: %q", fee, got)
		}
	}
}
