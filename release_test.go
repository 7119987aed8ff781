//go:build !fxpdebug

package fxp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAround(t *testing.T) {
	// Without the fxpdebug tag overflow wraps in the representation just
	// like the underlying integer type.
	hi := FromScaled[Base10](Scaled[int32]{math.MaxInt32, 0})
	one := NewDecimal32(1, 0)

	require.Equal(t, Scaled[int32]{math.MinInt32, 0}, hi.Add(one).Scaled())

	lo := FromScaled[Base10](Scaled[int32]{math.MinInt32, 0})
	require.Equal(t, Scaled[int32]{math.MinInt32, 0}, lo.Mul(NewDecimal32(-1, 0)).Scaled())
}
