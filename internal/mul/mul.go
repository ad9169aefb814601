package mul

// Portable returns the 128-bit product of x and y as (hi, lo) using only
// 32x32->64-bit multiplies.
func Portable(x, y uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1

	x0, x1 := x&mask32, x>>32
	y0, y1 := y&mask32, y>>32

	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1 := t & mask32
	w2 := t >> 32
	w1 += x0 * y1

	hi = x1*y1 + w2 + w1>>32
	lo = x * y

	return hi, lo
}
