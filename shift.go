package fxp

// ipow returns base raised to exponent by iterated squaring. The exponent
// must be non-negative.
func ipow[Rep Representation](base Rep, exponent int32) Rep {
	if debugChecks && exponent < 0 {
		panic("fxp: negative integer power")
	}

	if exponent == 0 {
		return 1
	}

	extra := Rep(1)
	square := base

	for exponent > 1 {
		if exponent&1 == 1 {
			extra *= square
		}

		exponent >>= 1
		square *= square
	}

	return square * extra
}

// rightShift divides value by base^scale in T's arithmetic, truncating for
// integer T. The scale must be positive.
func rightShift[T Value](value T, scale Scale, base int64) T {
	if debugChecks && scale <= 0 {
		panic("fxp: right shift scale must be positive")
	}

	return value / T(ipow(base, int32(scale)))
}

// leftShift multiplies value by base^-scale in T's arithmetic. The scale
// must be negative.
func leftShift[T Value](value T, scale Scale, base int64) T {
	if debugChecks && scale >= 0 {
		panic("fxp: left shift scale must be negative")
	}

	return value * T(ipow(base, -int32(scale)))
}

// shift moves value by the scale without rounding: zero scale is identity,
// positive scale divides, negative scale multiplies. Used on values whose
// scale is already well formed, such as conversion back out of a fixed-point
// number.
func shift[T Value](value T, scale Scale, base int64) T {
	switch {
	case scale == 0:
		return value
	case scale > 0:
		return rightShift(value, scale, base)
	default:
		return leftShift(value, scale, base)
	}
}

// roundedDiv divides value by base rounding half away from zero. The
// quotient and remainder stay in integer arithmetic, so the result is exact
// for the full int64 range.
func roundedDiv(value, base int64) int64 {
	q := value / base
	r := value % base
	if r < 0 {
		r = -r
	}

	if 2*r >= base {
		if value < 0 {
			return q - 1
		}

		return q + 1
	}

	return q
}

// shiftRound moves an integer value by the scale with a precise round: one
// extra digit of the result is kept through the shift and the final divide
// by base rounds half away from zero. Zero scale returns the value
// unchanged.
func shiftRound(value int64, scale Scale, base int64) int64 {
	if scale == 0 {
		return value
	}

	factor := ipow(base, scale.abs())

	var temp int64
	if scale > 0 {
		temp = value / (factor / base)
	} else {
		temp = value * (factor * base)
	}

	return roundedDiv(temp, base)
}

// shiftRoundFloat is shiftRound for floating input: the shift happens in
// float64, the intermediate truncates to int64, and the final divide by base
// rounds half away from zero. Zero scale truncates toward zero.
func shiftRoundFloat(value float64, scale Scale, base int64) int64 {
	if scale == 0 {
		return int64(value)
	}

	factor := ipow(base, scale.abs())

	var temp int64
	if scale > 0 {
		temp = int64(value / float64(factor/base))
	} else {
		temp = int64(value * float64(factor*base))
	}

	return roundedDiv(temp, base)
}
