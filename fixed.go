package fxp

import "math"

// Fixed is a fixed-point number: an integer representation scaled by a
// compile-time radix raised to a runtime scale. The zero value is 0 at
// scale 0.
//
// Fixed is immutable and trivially copyable: no pointers, no allocation,
// and arithmetic never returns an error. Overflow wraps like the
// representation itself unless the fxpdebug build tag is set.
type Fixed[Rep Representation, Rad Radix] struct {
	value Rep
	scale Scale
}

// Scaled is the transparent (representation, scale) pair behind a
// fixed-point number.
type Scaled[Rep Representation] struct {
	Value Rep
	Scale Scale
}

// Decimal32 is a base 10 fixed-point number backed by an int32.
type Decimal32 = Fixed[int32, Base10]

// Decimal64 is a base 10 fixed-point number backed by an int64.
type Decimal64 = Fixed[int64, Base10]

// Binary32 is a base 2 fixed-point number backed by an int32.
type Binary32 = Fixed[int32, Base2]

// Binary64 is a base 2 fixed-point number backed by an int64.
type Binary64 = Fixed[int64, Base2]

// New returns value as a fixed-point number at the given scale: the stored
// representation is round(value * radix^-scale), rounding half away from
// zero. Integer input shifts in integer arithmetic; floating input shifts
// in float64 and truncates before the final round. At zero scale the input
// is stored as is (floats truncate toward zero).
func New[Rep Representation, Rad Radix, V Value](value V, scale Scale) Fixed[Rep, Rad] {
	var rad Rad

	var rep int64
	if V(1)/V(2) != 0 { // floating V
		rep = shiftRoundFloat(float64(value), scale, rad.Base())
	} else {
		rep = shiftRound(int64(value), scale, rad.Base())
	}

	return Fixed[Rep, Rad]{Rep(rep), scale}
}

// NewDecimal32 returns a Decimal32 holding value at the given scale.
func NewDecimal32[V Value](value V, scale Scale) Decimal32 {
	return New[int32, Base10](value, scale)
}

// NewDecimal64 returns a Decimal64 holding value at the given scale.
func NewDecimal64[V Value](value V, scale Scale) Decimal64 {
	return New[int64, Base10](value, scale)
}

// NewBinary32 returns a Binary32 holding value at the given scale.
func NewBinary32[V Value](value V, scale Scale) Binary32 {
	return New[int32, Base2](value, scale)
}

// NewBinary64 returns a Binary64 holding value at the given scale.
func NewBinary64[V Value](value V, scale Scale) Binary64 {
	return New[int64, Base2](value, scale)
}

// FromScaled stores an already scaled representation verbatim. It is the
// fast path: no shifting, no rounding.
func FromScaled[Rad Radix, Rep Representation](s Scaled[Rep]) Fixed[Rep, Rad] {
	return Fixed[Rep, Rad]{s.Value, s.Scale}
}

// Scaled returns the (representation, scale) pair.
func (f Fixed[Rep, Rad]) Scaled() Scaled[Rep] {
	return Scaled[Rep]{f.value, f.scale}
}

// Scale returns the scale.
func (f Fixed[Rep, Rad]) Scale() Scale {
	return f.scale
}

// align shifts the operand with the smaller scale up to the larger scale
// with a precise round. Alignment widens to int64 so a Rep overflow can be
// observed before narrowing.
func align(lhs int64, ls Scale, rhs int64, rs Scale, base int64) (int64, int64, Scale) {
	switch {
	case ls > rs:
		return lhs, shiftRound(rhs, ls-rs, base), ls
	case ls < rs:
		return shiftRound(lhs, rs-ls, base), rhs, rs
	}

	return lhs, rhs, ls
}

// Add returns f + o at the larger of the two scales. The operand with the
// smaller scale is rounded up to it first.
func (f Fixed[Rep, Rad]) Add(o Fixed[Rep, Rad]) Fixed[Rep, Rad] {
	var rad Rad

	lhs, rhs, scale := align(int64(f.value), f.scale, int64(o.value), o.scale, rad.Base())
	if debugChecks && AddOverflows[Rep](lhs, rhs) {
		panic("fxp: addition overflows " + repName[Rep]())
	}

	return Fixed[Rep, Rad]{Rep(lhs + rhs), scale}
}

// Sub returns f - o at the larger of the two scales.
func (f Fixed[Rep, Rad]) Sub(o Fixed[Rep, Rad]) Fixed[Rep, Rad] {
	var rad Rad

	lhs, rhs, scale := align(int64(f.value), f.scale, int64(o.value), o.scale, rad.Base())
	if debugChecks && SubOverflows[Rep](lhs, rhs) {
		panic("fxp: subtraction overflows " + repName[Rep]())
	}

	return Fixed[Rep, Rad]{Rep(lhs - rhs), scale}
}

// Mul returns f * o: representations multiply, scales add.
func (f Fixed[Rep, Rad]) Mul(o Fixed[Rep, Rad]) Fixed[Rep, Rad] {
	if debugChecks && MulOverflows[Rep](int64(f.value), int64(o.value)) {
		panic("fxp: multiplication overflows " + repName[Rep]())
	}

	return Fixed[Rep, Rad]{f.value * o.value, f.scale + o.scale}
}

// Div returns f / o: the quotient of the representations rounds half away
// from zero through a float64 ratio, and scales subtract. Large magnitudes
// can lose a unit to the float64 intermediate. Division by zero yields an
// unspecified value; it does not panic.
func (f Fixed[Rep, Rad]) Div(o Fixed[Rep, Rad]) Fixed[Rep, Rad] {
	if debugChecks && DivOverflows[Rep](int64(f.value), int64(o.value)) {
		panic("fxp: division overflows " + repName[Rep]())
	}

	q := Rep(math.Round(float64(f.value) / float64(o.value)))

	return Fixed[Rep, Rad]{q, f.scale - o.scale}
}

// Equal reports whether f and o represent the same number. Operands align
// to the larger scale first, so representations at different scales
// compare equal when they round to the same value.
func (f Fixed[Rep, Rad]) Equal(o Fixed[Rep, Rad]) bool {
	var rad Rad

	lhs, rhs, _ := align(int64(f.value), f.scale, int64(o.value), o.scale, rad.Base())

	return lhs == rhs
}

// Inc returns f plus one unit constructed at f's scale. The unit is
// subject to construction rounding, so at coarse scales it can round to
// zero and leave f unchanged.
func (f Fixed[Rep, Rad]) Inc() Fixed[Rep, Rad] {
	return f.Add(New[Rep, Rad](1, f.scale))
}

// Rescale returns f expressed at the given scale. Coarsening rounds half
// away from zero; refining multiplies exactly and can wrap like any other
// operation.
func (f Fixed[Rep, Rad]) Rescale(scale Scale) Fixed[Rep, Rad] {
	var rad Rad

	v := shiftRound(int64(f.value), scale-f.scale, rad.Base())

	return Fixed[Rep, Rad]{Rep(v), scale}
}

// To converts f to U: the representation casts to U first, then shifts by
// the negated scale in U's arithmetic. Integer U truncates toward zero,
// floating U divides exactly as floats do.
func To[U Value, Rep Representation, Rad Radix](f Fixed[Rep, Rad]) U {
	var rad Rad

	return shift(U(f.value), f.scale.Neg(), rad.Base())
}

// Float64 returns the floating magnitude of f.
func (f Fixed[Rep, Rad]) Float64() float64 {
	return To[float64](f)
}

// Int64 returns the integral magnitude of f, truncated toward zero.
func (f Fixed[Rep, Rad]) Int64() int64 {
	return To[int64](f)
}
