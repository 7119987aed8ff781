package fxp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIpow(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		type TC struct {
			name     string
			base     int64
			exponent int32
			want     int64
		}

		tcs := []TC{
			{"10^0", 10, 0, 1},
			{"10^1", 10, 1, 10},
			{"10^2", 10, 2, 100},
			{"10^9", 10, 9, 1_000_000_000},
			{"10^18", 10, 18, 1_000_000_000_000_000_000},
			{"2^0", 2, 0, 1},
			{"2^1", 2, 1, 2},
			{"2^10", 2, 10, 1024},
			{"2^62", 2, 62, 4_611_686_018_427_387_904},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
				require.Equal(t, tc.want, ipow(tc.base, tc.exponent))
			})
		}
	})

	t.Run("int32", func(t *testing.T) {
		type TC struct {
			name     string
			base     int32
			exponent int32
			want     int32
		}

		tcs := []TC{
			{"10^0", 10, 0, 1},
			{"10^4", 10, 4, 10_000},
			{"10^9", 10, 9, 1_000_000_000},
			{"2^30", 2, 30, 1_073_741_824},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
				require.Equal(t, tc.want, ipow(tc.base, tc.exponent))
			})
		}
	})
}

func TestRoundedDiv(t *testing.T) {
	type TC struct {
		name  string
		value int64
		base  int64
		want  int64
	}

	tcs := []TC{
		{"0", 0, 10, 0},
		{"0.4", 4, 10, 0},
		{"0.5", 5, 10, 1},
		{"1.4", 14, 10, 1},
		{"1.5", 15, 10, 2},
		{"2.5", 25, 10, 3},
		{"9.9", 99, 10, 10},
		{"-0.5", -5, 10, -1},
		{"-1.4", -14, 10, -1},
		{"-1.5", -15, 10, -2},
		{"-2.5", -25, 10, -3},
		{"0.5 base 2", 1, 2, 1},
		{"1.5 base 2", 3, 2, 2},
		{"-1.5 base 2", -3, 2, -2},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.want, roundedDiv(tc.value, tc.base))
		})
	}
}

func TestShiftRound(t *testing.T) {
	type TC struct {
		name  string
		value int64
		scale Scale
		base  int64
		want  int64
	}

	tcs := []TC{
		{"zero scale", 123, 0, 10, 123},
		{"left 3", 1, -3, 10, 1_000},
		{"left 3 negative", -1, -3, 10, -1_000},
		{"left 6", 42, -6, 10, 42_000_000},
		{"right 1 rounds up", 15, 1, 10, 2},
		{"right 1 tie away", 25, 1, 10, 3},
		{"right 1 negative", -15, 1, 10, -2},
		{"right 1", 449, 1, 10, 45},
		{"right 2 down", 149, 2, 10, 1},
		{"right 2 up", 151, 2, 10, 2},
		{"right 2 tie", 150, 2, 10, 2},
		{"right 2 tie negative", -150, 2, 10, -2},
		{"base 2 zero scale", 7, 0, 2, 7},
		{"base 2 left 4", 1, -4, 2, 16},
		{"base 2 right 1", 3, 1, 2, 2},
		{"base 2 right 2 down", 5, 2, 2, 1},
		{"base 2 right 2 up", 7, 2, 2, 2},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.want, shiftRound(tc.value, tc.scale, tc.base))
		})
	}
}

func TestShiftRoundFloat(t *testing.T) {
	type TC struct {
		name  string
		value float64
		scale Scale
		base  int64
		want  int64
	}

	tcs := []TC{
		{"zero scale truncates", 1.5, 0, 10, 1},
		{"zero scale truncates negative", -1.5, 0, 10, -1},
		{"1.001 left 3", 1.001, -3, 10, 1_001},
		{"-1.001 left 3", -1.001, -3, 10, -1_001},
		{"0.5 left 1", 0.5, -1, 10, 5},
		{"0.05 left 1 rounds away", 0.05, -1, 10, 1},
		{"0.25 left 1 tie away", 0.25, -1, 10, 3},
		{"1.9 left 1", 1.9, -1, 10, 19},
		{"19 right 1", 19, 1, 10, 2},
		{"14 right 1", 14, 1, 10, 1},
		{"base 2 0.625 left 3", 0.625, -3, 2, 5},
		{"base 2 1.5 left 1", 1.5, -1, 2, 3},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.want, shiftRoundFloat(tc.value, tc.scale, tc.base))
		})
	}
}

func TestShift(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		require.Equal(t, int64(1234), shift(int64(1234), 0, 10))
		require.Equal(t, int64(1), shift(int64(1999), 3, 10))
		require.Equal(t, int64(2_000), shift(int64(2), -3, 10))
		require.Equal(t, int64(-1), shift(int64(-1999), 3, 10))
	})

	t.Run("int32", func(t *testing.T) {
		require.Equal(t, int32(5), shift(int32(500), 2, 10))
		require.Equal(t, int32(12), shift(int32(3), -2, 2))
	})

	t.Run("float64", func(t *testing.T) {
		require.Equal(t, 0.7, shift(7.0, 1, 10))
		require.Equal(t, 0.01, shift(1.0, 2, 10))
		require.Equal(t, 12.0, shift(3.0, -2, 2))
		require.Equal(t, 0.5, shift(1.0, 1, 2))
	})

	t.Run("float32", func(t *testing.T) {
		require.Equal(t, float32(0.5), shift(float32(1), 1, 2))
		require.Equal(t, float32(250), shift(float32(2.5), -2, 10))
	})
}
