// Package fxp provides fixed-point numbers with an integer representation
// and a compile-time radix.
//
// The equation for a fixed-point number is:
//
//  number = value * radix ^ scale
//
// Where value is an unscaled 32 or 64 bit signed integer, radix is 2 or 10,
// and scale is a signed base exponent. A negative scale carries fractional
// digits, a positive scale coarsens. For example:
//
//  1.23  = 123 * 10^-2
//  20    =   2 * 10^1
//  0.625 =   5 * 2^-3
//
// Four instantiations are named:
//
//  | Alias     | Representation | Radix |
//  |-----------|----------------|-------|
//  | Decimal32 | int32          | 10    |
//  | Decimal64 | int64          | 10    |
//  | Binary32  | int32          | 2     |
//  | Binary64  | int64          | 2     |
//
// Representation and radix are type parameters: mixing them in arithmetic
// does not compile, and each instantiation folds its base to a constant.
//
// Construction
//
// New shifts the input so that the stored integer is
// round(value * radix^-scale), rounding half away from zero:
//
//  New[int32, Base10](1.001, -3) // stores 1001
//  New[int64, Base10](200, -2)   // stores 20000
//  New[int64, Base10](15, 1)     // stores 2
//
// FromScaled stores an already scaled integer verbatim. The zero value is 0
// at scale 0 and is ready to use.
//
// Arithmetic
//
// Values are immutable. Add, Sub, and Equal align the operand with the
// smaller scale up to the larger scale, rounding half away from zero, so the
// result carries the coarser scale of the two. Mul multiplies values and
// adds scales. Div rounds the floating ratio of the values and subtracts
// scales. There are no error returns and no panics: results that exceed the
// representation wrap exactly like the underlying integer type.
//
// Building with the fxpdebug tag turns on overflow preconditions. A checked
// build panics where a release build would wrap.
//
// Layout
//
// A value is a flat {representation, scale} pair with no pointers, so arrays
// of representations plus one shared out-of-band scale can be handed to bulk
// collaborators as binary data. Package column frames exactly that layout.
package fxp
