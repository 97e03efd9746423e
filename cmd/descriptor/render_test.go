package main

import "testing"

func TestChainIDMismatch(t *testing.T) {
	cases := []struct {
		name     string
		record   uint64
		rpc      uint64
		mismatch bool
	}{
		{"matching ids", 56, 56, false},
		{"differing ids", 1, 56, true},
		{"record unknown", 0, 56, false},
		{"rpc unknown", 56, 0, false},
		{"both unknown", 0, 0, false},
	}
	for _, tc := range cases {
		if got := chainIDMismatch(tc.record, tc.rpc); got != tc.mismatch {
			t.Fatalf("%s: chainIDMismatch(%d, %d) = %v, want %v",
				tc.name, tc.record, tc.rpc, got, tc.mismatch)
		}
	}
}
