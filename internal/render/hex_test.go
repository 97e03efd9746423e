package render

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestToHexStringZeroPads(t *testing.T) {
	got, err := ToHexString(big.NewInt(0), 20)
	if err != nil {
		t.Fatalf("zero value: %v", err)
	}
	if got != "0x"+strings.Repeat("0", 40) {
		t.Fatalf("zero value: got %q", got)
	}

	got, err = ToHexString(big.NewInt(0xdeadbeef), 20)
	if err != nil {
		t.Fatalf("deadbeef: %v", err)
	}
	if got != "0x"+strings.Repeat("0", 32)+"deadbeef" {
		t.Fatalf("deadbeef: got %q", got)
	}
	if len(got) != 42 {
		t.Fatalf("address width: got %d", len(got))
	}
}

func TestToHexStringLengthInsufficient(t *testing.T) {
	// 16^(2*length) is the first value that no longer fits.
	limit := new(big.Int).Exp(big.NewInt(16), big.NewInt(2*3), nil)

	under := new(big.Int).Sub(limit, big.NewInt(1))
	if got, err := ToHexString(under, 3); err != nil || got != "0xffffff" {
		t.Fatalf("under limit: got %q, %v", got, err)
	}

	if _, err := ToHexString(limit, 3); !errors.Is(err, ErrLengthInsufficient) {
		t.Fatalf("at limit: expected ErrLengthInsufficient, got %v", err)
	}
}

func TestToHexStringNoPrefix(t *testing.T) {
	if got := ToHexStringNoPrefix(big.NewInt(0xabc), 3); got != "000abc" {
		t.Fatalf("color fragment: got %q", got)
	}

	// No fit check: extra high bits are simply dropped, the caller owns
	// the width guarantee.
	if got := ToHexStringNoPrefix(big.NewInt(0x1ffffff), 3); got != "ffffff" {
		t.Fatalf("truncating encode: got %q", got)
	}
}
