//go:build !purego

package mul

import "math/bits"

// Mul128 returns the 128-bit product of x and y as (hi, lo).
func Mul128(x, y uint64) (hi, lo uint64) {
	return bits.Mul64(x, y)
}
