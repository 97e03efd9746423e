// Package render turns on-chain fixed-point numeric state into canonical
// ASCII price and fee strings. Everything here is pure integer arithmetic:
// outputs must be bit-identical across independent re-executions, so no
// floating point is used anywhere.
package render

// decimalParams describes how significant figures lay out in a fixed-width
// character buffer. The fill runs from the least significant digit at
// sigfigIndex backwards toward the front of the buffer.
type decimalParams struct {
	sigfigs         uint64
	bufferLength    int
	sigfigIndex     int
	decimalIndex    int // 0 means no decimal point
	zerosStartIndex int
	zerosEndIndex   int // inclusive
	isLessThanOne   bool
	isPercent       bool
}

// generateDecimalString renders the layout into its buffer. The layouts
// computed by the price and fee paths initialize every byte exactly, so a
// short result here is a bug in the layout, not a recoverable condition.
func generateDecimalString(params decimalParams) string {
	buffer := make([]byte, params.bufferLength)
	if params.isPercent {
		buffer[len(buffer)-1] = '%'
	}
	if params.isLessThanOne {
		buffer[0] = '0'
		buffer[1] = '.'
	}

	for cursor := params.zerosStartIndex; cursor <= params.zerosEndIndex; cursor++ {
		buffer[cursor] = '0'
	}

	for params.sigfigs > 0 {
		// Soak up the decimal point when the cursor reaches it.
		if params.decimalIndex > 0 && params.sigfigIndex == params.decimalIndex {
			buffer[params.sigfigIndex] = '.'
			params.sigfigIndex--
		}
		buffer[params.sigfigIndex] = '0' + byte(params.sigfigs%10)
		params.sigfigIndex--
		params.sigfigs /= 10
	}

	return string(buffer)
}
