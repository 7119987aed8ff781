package fxp

import "golang.org/x/exp/constraints"

// Representation is the set of integer types that may back a fixed-point
// number. Anything else is rejected at compile time.
type Representation interface {
	int32 | int64
}

// Value is the set of types accepted at the construction boundary and
// produced by conversion: signed integers and IEEE floats.
type Value interface {
	constraints.Signed | constraints.Float
}

// Base2 marks binary fixed-point instantiations.
type Base2 struct{}

// Base returns 2.
func (Base2) Base() int64 { return 2 }

// Base10 marks decimal fixed-point instantiations.
type Base10 struct{}

// Base returns 10.
func (Base10) Base() int64 { return 10 }

// Radix is the set of radix markers.
type Radix interface {
	Base2 | Base10

	Base() int64
}
