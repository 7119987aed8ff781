package fxp

import "unsafe"

// repMin returns the smallest value of Rep. The width comes from
// unsafe.Sizeof, which is a compile time constant.
func repMin[Rep Representation]() Rep {
	var z Rep

	return Rep(-1) << (unsafe.Sizeof(z)*8 - 1)
}

// repMax returns the largest value of Rep.
func repMax[Rep Representation]() Rep {
	return ^repMin[Rep]()
}

func repName[Rep Representation]() string {
	var z Rep

	if unsafe.Sizeof(z) == 4 {
		return "int32"
	}

	return "int64"
}

// AddOverflows reports whether lhs + rhs falls outside Rep. The operands are
// int64 so that intermediates widened during scale alignment can be checked
// before they narrow back to Rep.
func AddOverflows[Rep Representation](lhs, rhs int64) bool {
	min := int64(repMin[Rep]())
	max := int64(repMax[Rep]())

	if rhs > 0 {
		return lhs > max-rhs
	}

	return lhs < min-rhs
}

// SubOverflows reports whether lhs - rhs falls outside Rep.
func SubOverflows[Rep Representation](lhs, rhs int64) bool {
	min := int64(repMin[Rep]())
	max := int64(repMax[Rep]())

	if rhs > 0 {
		return lhs < min+rhs
	}

	return lhs > max+rhs
}

// MulOverflows reports whether lhs * rhs falls outside Rep.
func MulOverflows[Rep Representation](lhs, rhs int64) bool {
	min := int64(repMin[Rep]())
	max := int64(repMax[Rep]())

	switch {
	case rhs > 0:
		return lhs > max/rhs || lhs < min/rhs
	case rhs < -1:
		return lhs > min/rhs || lhs < max/rhs
	default:
		return rhs == -1 && lhs == min
	}
}

// DivOverflows reports whether lhs / rhs falls outside Rep. Only the
// negated minimum does.
func DivOverflows[Rep Representation](lhs, rhs int64) bool {
	return lhs == int64(repMin[Rep]()) && rhs == -1
}
