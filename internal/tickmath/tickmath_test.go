package tickmath

import (
	"math/big"
	"testing"
)

func TestGetSqrtRatioAtTickZero(t *testing.T) {
	got, err := GetSqrtRatioAtTick(0)
	if err != nil {
		t.Fatalf("tick 0: %v", err)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 96)
	if got.Cmp(want) != 0 {
		t.Fatalf("tick 0: got %s want %s", got, want)
	}
}

func TestGetSqrtRatioAtTickBounds(t *testing.T) {
	min, err := GetSqrtRatioAtTick(MinTick)
	if err != nil {
		t.Fatalf("min tick: %v", err)
	}
	if min.Cmp(MinSqrtRatio) != 0 {
		t.Fatalf("min sqrt ratio: got %s want %s", min, MinSqrtRatio)
	}

	max, err := GetSqrtRatioAtTick(MaxTick)
	if err != nil {
		t.Fatalf("max tick: %v", err)
	}
	if max.Cmp(MaxSqrtRatio) != 0 {
		t.Fatalf("max sqrt ratio: got %s want %s", max, MaxSqrtRatio)
	}
}

func TestGetSqrtRatioAtTickOutOfBounds(t *testing.T) {
	if _, err := GetSqrtRatioAtTick(MinTick - 1); err != ErrTickOutOfBounds {
		t.Fatalf("expected bounds error below, got %v", err)
	}
	if _, err := GetSqrtRatioAtTick(MaxTick + 1); err != ErrTickOutOfBounds {
		t.Fatalf("expected bounds error above, got %v", err)
	}
}

func TestGetSqrtRatioAtTickMonotonic(t *testing.T) {
	ticks := []int32{-887272, -500000, -1000, -1, 0, 1, 1000, 500000, 887272}
	var prev *big.Int
	for _, tick := range ticks {
		ratio, err := GetSqrtRatioAtTick(tick)
		if err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		if prev != nil && ratio.Cmp(prev) <= 0 {
			t.Fatalf("ratio not increasing at tick %d", tick)
		}
		if ratio.BitLen() > 160 {
			t.Fatalf("ratio exceeds 160 bits at tick %d", tick)
		}
		prev = ratio
	}
}

func TestGetSqrtRatioAtTickSymmetryAroundZero(t *testing.T) {
	// sqrt(1.0001^t) * sqrt(1.0001^-t) == 1, so the Q96 product should sit
	// within rounding distance of 2^192.
	for _, tick := range []int32{1, 60, 887220} {
		up, err := GetSqrtRatioAtTick(tick)
		if err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		down, err := GetSqrtRatioAtTick(-tick)
		if err != nil {
			t.Fatalf("tick %d: %v", -tick, err)
		}

		product := new(big.Int).Mul(up, down)
		q192 := new(big.Int).Lsh(big.NewInt(1), 192)
		diff := new(big.Int).Sub(product, q192)
		diff.Abs(diff)

		// Allow the rounding slack of the two Q64.96 downcasts.
		slack := new(big.Int).Add(up, down)
		if diff.Cmp(slack) > 0 {
			t.Fatalf("tick %d reciprocal drift too large: %s", tick, diff)
		}
	}
}
