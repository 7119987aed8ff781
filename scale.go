package fxp

// Scale is the radix exponent of a fixed-point number. Negative scales carry
// fractional digits (1.23 is 123 at scale -2), positive scales coarsen (20
// is 2 at scale 1).
//
// Scale is a distinct type: a plain integer variable must be converted
// explicitly with Scale(n), and int32(s) converts back.
type Scale int32

// Neg returns the negated scale.
func (s Scale) Neg() Scale {
	return -s
}

func (s Scale) abs() int32 {
	if s < 0 {
		return int32(-s)
	}

	return int32(s)
}
