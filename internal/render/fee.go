package render

// FeeToPercentString renders a fee in parts-per-million units as a percent
// string with up to five significant figures: 500 -> "0.05%", 3000 ->
// "0.3%", 10000 -> "1%". Zero short-circuits to "0%".
func FeeToPercentString(fee uint32) string {
	if fee == 0 {
		return "0%"
	}

	digits := 0
	numSigfigs := 0
	for temp := fee; temp != 0; temp /= 10 {
		if numSigfigs > 0 {
			// Every digit above the least significant figure counts.
			numSigfigs++
		} else if temp%10 != 0 {
			numSigfigs++
		}
		digits++
	}

	params := decimalParams{isPercent: true}
	if digits >= 5 {
		// The fifth digit is the ones place of the percent value.
		decimalPlace := 0
		if digits-numSigfigs < 4 {
			decimalPlace = 1
		}
		nZeros := 0
		if digits-5 >= numSigfigs-1 {
			nZeros = digits - 5 - (numSigfigs - 1)
		}
		params.zerosStartIndex = numSigfigs
		params.zerosEndIndex = params.zerosStartIndex + nZeros - 1
		params.sigfigIndex = params.zerosStartIndex - 1 + decimalPlace
		params.bufferLength = nZeros + numSigfigs + 1 + decimalPlace
	} else {
		nZeros := 5 - digits
		params.zerosStartIndex = 2
		params.zerosEndIndex = nZeros + params.zerosStartIndex - 1
		params.bufferLength = nZeros + numSigfigs + 2
		params.sigfigIndex = params.bufferLength - 2
		params.isLessThanOne = true
	}

	params.sigfigs = uint64(fee) / pow10u(digits-numSigfigs)
	if digits > 4 {
		params.decimalIndex = digits - 4
	}

	return generateDecimalString(params)
}

func pow10u(n int) uint64 {
	out := uint64(1)
	for ; n > 0; n-- {
		out *= 10
	}
	return out
}
