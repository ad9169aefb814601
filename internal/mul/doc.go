// Package mul provides the 64x64->128-bit multiply used by the compression
// function.
//
// [Mul128] resolves at compile time: by default it is [math/bits.Mul64], which
// the compiler lowers to a single wide-multiply instruction on every 64-bit
// target. Building with the purego tag selects [Portable], a decomposition into
// 32-bit partial products with identical results.
package mul
