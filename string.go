package fxp

import "strconv"

// String renders the floating magnitude of f in the shortest form that
// round-trips a float64.
func (f Fixed[Rep, Rad]) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 64)
}
