//go:build purego

package mul

// Mul128 returns the 128-bit product of x and y as (hi, lo).
func Mul128(x, y uint64) (hi, lo uint64) {
	return Portable(x, y)
}
