package charscan

import "math"

// Significant digits kept before switching to round-and-drop. Two guard
// digits past float64's 15 decimal digits keep the final rounding correct.
const maxSignificantDigits = 15 + 2

// Float64 reads a decimal or scientific-notation numeral from text and
// returns the nearest representable float64. Parsing is best-effort in the
// manner of C's strtod: leading whitespace is skipped, an optional '+' or
// '-' sign is honored, and scanning stops at the first character that cannot
// extend the numeral, leaving the stream positioned there. Malformed or
// empty input yields ±0; no error is ever reported.
//
// A case-insensitive "nan" or "inf" prefix returns NaN or ±Inf immediately,
// consuming exactly those three characters.
//
// Inputs with more significant digits than float64 can hold are handled by
// rounding the first dropped digit into the result (half-up, half-to-even on
// ties) and tracking the dropped positions as an exponent adjustment, so
// arbitrarily long digit runs cost one pass and no extra precision loss.
func Float64(text Stream) float64 {
	var result [2]float64
	var accumulator [2]float64
	var exponentAdjustment [2]int
	exponentAccumulator := [2]int{-1, -1}
	exponent, decPointIndex, digit := 0, 0, 0
	lastDigit, numSignificantDigits := 0, 0
	isNegative, digitsFound := false, false

	text.SkipWhitespace()

	switch text.Peek() {
	case '-':
		isNegative = true
		fallthrough
	case '+':
		text.Next()
	}

	switch text.Peek() {
	case 'n', 'N':
		if ToLower(text.PeekAt(1)) == 'a' && ToLower(text.PeekAt(2)) == 'n' {
			text.Next()
			text.Next()
			text.Next()
			return math.NaN()
		}
	case 'i', 'I':
		if ToLower(text.PeekAt(1)) == 'n' && ToLower(text.PeekAt(2)) == 'f' {
			text.Next()
			text.Next()
			text.Next()
			if isNegative {
				return math.Inf(-1)
			}
			return math.Inf(1)
		}
	}

	for {
		if text.IsDigit() {
			lastDigit = digit
			digit = int(text.Next() - '0')
			digitsFound = true

			if decPointIndex != 0 {
				exponentAdjustment[1]++
			}

			// Leading zeros are not significant
			if numSignificantDigits == 0 && digit == 0 {
				continue
			}

			numSignificantDigits++
			if numSignificantDigits > maxSignificantDigits {
				// Round the dropped digit into the lane: half-up, with a
				// half-to-even tie break on the previous digit's parity
				if digit > 5 || (digit == 5 && lastDigit&1 != 0) {
					accumulator[decPointIndex]++
				}

				if decPointIndex > 0 {
					exponentAdjustment[1]--
				} else {
					exponentAdjustment[0]++
				}

				// Skip the rest of the digit run; only the magnitude of the
				// integer part still matters
				for text.IsDigit() {
					text.Next()
					if decPointIndex == 0 {
						exponentAdjustment[0]++
					}
				}
			} else {
				// Flush before the accumulator outgrows exact integer math
				const maxAccumulatorValue = float64((math.MaxUint32 - 9) / 10)
				if accumulator[decPointIndex] > maxAccumulatorValue {
					result[decPointIndex] = mulExp10(result[decPointIndex],
						exponentAccumulator[decPointIndex]) + accumulator[decPointIndex]
					accumulator[decPointIndex] = 0
					exponentAccumulator[decPointIndex] = 0
				}

				accumulator[decPointIndex] = accumulator[decPointIndex]*10 + float64(digit)
				exponentAccumulator[decPointIndex]++
			}
		} else if decPointIndex == 0 && text.Peek() == '.' {
			text.Next()
			decPointIndex = 1

			if numSignificantDigits > maxSignificantDigits {
				for text.IsDigit() {
					text.Next()
				}
				break
			}
		} else {
			break
		}
	}

	result[0] = mulExp10(result[0], exponentAccumulator[0]) + accumulator[0]

	if decPointIndex != 0 {
		result[1] = mulExp10(result[1], exponentAccumulator[1]) + accumulator[1]
	}

	c := text.Peek()
	if (c == 'e' || c == 'E') && digitsFound {
		negativeExponent := false
		text.Next()

		switch text.Peek() {
		case '-':
			negativeExponent = true
			fallthrough
		case '+':
			text.Next()
		}

		for text.IsDigit() {
			exponent = exponent*10 + int(text.Next()-'0')
		}

		if negativeExponent {
			exponent = -exponent
		}
	}

	r := mulExp10(result[0], exponent+exponentAdjustment[0])
	if decPointIndex != 0 {
		r += mulExp10(result[1], exponent-exponentAdjustment[1])
	}

	if isNegative {
		return -r
	}
	return r
}

// mulExp10 returns value * 10^exponent using binary exponentiation of 10.
// Powers of ten up to 10^22 are exact in float64, so for the exponents this
// package produces the scaling costs a single rounding; math.Pow would not
// give that guarantee. Negative exponents divide, which is what makes large
// negative exponents underflow cleanly to 0 (value / +Inf).
func mulExp10(value float64, exponent int) float64 {
	if exponent == 0 || value == 0 {
		return value
	}

	negative := exponent < 0
	if negative {
		exponent = -exponent
	}

	power, factor := 1.0, 10.0
	for {
		if exponent&1 != 0 {
			power *= factor
		}
		exponent >>= 1
		if exponent == 0 {
			break
		}
		factor *= factor
	}

	if negative {
		return value / power
	}
	return value * power
}
